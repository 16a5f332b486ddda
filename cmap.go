package cmap

import (
	"fmt"

	"github.com/kovidgoyal/cmap/jab"
)

var _ = fmt.Print

// Color is an RGB triple with components in [0,1].
type Color [3]float64

// JAB is a perceptual triple: lightness J in [0,100] and unbounded chroma
// coordinates a, b.
type JAB [3]float64

// ColorSequence is an ordered run of colors, typically the 256 entries of a
// colormap. Operations on it require at least two entries.
type ColorSequence []Color

// PerceptualSequence is a ColorSequence converted into the perceptual space,
// parallel-indexed to its source.
type PerceptualSequence []JAB

// Trajectory is a candidate lightness channel, index-aligned to a
// PerceptualSequence.
type Trajectory []float64

// BoundPair is the feasible lightness interval for one or more chroma pairs.
// MinJ <= MaxJ always holds; an empty interval is reported as
// ErrBoundsNotFound, never as a BoundPair.
type BoundPair struct {
	MinJ, MaxJ float64
}

// Converter is the pluggable colorspace adapter. The zero-dependency default
// is jab.Model; any other perceptually uniform model can be substituted.
type Converter interface {
	ToPerceptual(rgb [3]float64) [3]float64
	ToRGB(v [3]float64) [3]float64
	ToRGBNoClamp(v [3]float64) [3]float64
}

// DefaultConverter is used whenever a nil Converter is supplied.
var DefaultConverter Converter = jab.Model{}

func converterOrDefault(c Converter) Converter {
	if c == nil {
		return DefaultConverter
	}
	return c
}

// Clamped returns a copy of the sequence with every component saturated into
// [0,1].
func (s ColorSequence) Clamped() ColorSequence {
	out := make(ColorSequence, len(s))
	for i, c := range s {
		out[i] = Color{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
	}
	return out
}

// Perceptual converts the sequence into (J,a,b) coordinates. Components are
// clamped to [0,1] before conversion and J is clamped to [0,100] after, so
// the result always satisfies the PerceptualSequence invariants. A nil conv
// selects DefaultConverter.
func (s ColorSequence) Perceptual(conv Converter) (PerceptualSequence, error) {
	if len(s) < 2 {
		return nil, fmt.Errorf("%w: have %d colors", ErrEmptySequence, len(s))
	}
	cv := converterOrDefault(conv)
	out := make(PerceptualSequence, len(s))
	for i, c := range s {
		v := cv.ToPerceptual([3]float64{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])})
		v[0] = max(0, min(v[0], 100))
		out[i] = JAB(v)
	}
	return out, nil
}

// RGB converts the sequence back into displayable colors, clamped to [0,1].
func (s PerceptualSequence) RGB(conv Converter) ColorSequence {
	cv := converterOrDefault(conv)
	out := make(ColorSequence, len(s))
	for i, v := range s {
		out[i] = Color(cv.ToRGB([3]float64(v)))
	}
	return out
}

// J extracts the lightness channel as a Trajectory.
func (s PerceptualSequence) J() Trajectory {
	out := make(Trajectory, len(s))
	for i, v := range s {
		out[i] = v[0]
	}
	return out
}

// Pairs extracts the chroma channel as (a,b) pairs.
func (s PerceptualSequence) Pairs() [][2]float64 {
	out := make([][2]float64, len(s))
	for i, v := range s {
		out[i] = [2]float64{v[1], v[2]}
	}
	return out
}

// WithJ returns a copy of the sequence whose lightness channel is replaced by
// tr. The chroma channels are untouched.
func (s PerceptualSequence) WithJ(tr Trajectory) (PerceptualSequence, error) {
	if len(tr) != len(s) {
		return nil, fmt.Errorf("%w: sequence has %d entries, trajectory %d", ErrDimensionMismatch, len(s), len(tr))
	}
	out := make(PerceptualSequence, len(s))
	for i, v := range s {
		out[i] = JAB{tr[i], v[1], v[2]}
	}
	return out, nil
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}
