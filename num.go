package cmap

import (
	"fmt"
	"math"
)

// Distance returns the Euclidean distance between two points of equal
// dimension. Points of different dimension are an error, never a sentinel.
func Distance(p1, p2 []float64) (float64, error) {
	if len(p1) != len(p2) {
		return 0, fmt.Errorf("%w: %d vs %d", ErrDimensionMismatch, len(p1), len(p2))
	}
	val := 0.0
	for i := range p1 {
		d := p2[i] - p1[i]
		val += d * d
	}
	return math.Sqrt(val), nil
}

// Normalize shifts and scales values so their mean is 0 and their standard
// deviation is 1. Values with zero variance cannot be normalized.
func Normalize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrEmptySequence)
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	if variance == 0 {
		return nil, ErrZeroSpread
	}
	std := math.Sqrt(variance)
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v - mean) / std
	}
	return out, nil
}

// Clamp saturates every value into [low, high] and returns a same-length
// copy. Values already inside the range are unchanged.
func Clamp(values []float64, low, high float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = max(low, min(v, high))
	}
	return out
}

// AdjustRange rescales values affinely so they span exactly [lo, hi],
// preserving relative order. Constant input has no spread to rescale.
func AdjustRange(values []float64, lo, hi float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrEmptySequence)
	}
	vmin, vmax := values[0], values[0]
	for _, v := range values[1:] {
		vmin = min(vmin, v)
		vmax = max(vmax, v)
	}
	if vmax == vmin {
		return nil, ErrZeroSpread
	}
	mult := (hi - lo) / (vmax - vmin)
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v-vmin)*mult + lo
	}
	return out, nil
}

// Deltas returns the perceptual distance between each consecutive pair of
// points, so len(result) == len(seq)-1.
func Deltas(seq PerceptualSequence) ([]float64, error) {
	if len(seq) < 2 {
		return nil, fmt.Errorf("%w: have %d points", ErrEmptySequence, len(seq))
	}
	out := make([]float64, len(seq)-1)
	for i := range out {
		d, err := Distance(seq[i][:], seq[i+1][:])
		if err != nil {
			return nil, err
		}
		out[i] = d
	}
	return out, nil
}

// linspace returns n evenly spaced values from lo to hi inclusive.
func linspace(lo, hi float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = lo
		return out
	}
	step := (hi - lo) / float64(n-1)
	for i := range out {
		out[i] = lo + step*float64(i)
	}
	out[n-1] = hi
	return out
}

// interpUniform linearly interpolates y, treated as samples at the integer
// positions 0..len(y)-1, at each query position. Queries outside the sample
// range clamp to the endpoint values.
func interpUniform(queries []float64, y []float64) []float64 {
	out := make([]float64, len(queries))
	last := len(y) - 1
	for i, x := range queries {
		switch {
		case x <= 0:
			out[i] = y[0]
		case x >= float64(last):
			out[i] = y[last]
		default:
			k := int(x)
			frac := x - float64(k)
			out[i] = y[k] + (y[k+1]-y[k])*frac
		}
	}
	return out
}
