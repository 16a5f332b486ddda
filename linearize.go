package cmap

import (
	"fmt"
	"math"
)

// DefaultResampleFactor is the upsampling density used by the linearizer
// when the caller passes 0. Higher values track the true constant-arc-length
// resampling more closely at proportionally higher cost; the committed
// points can be off by roughly one upsampled segment, i.e. an error on the
// order of 1/factor of the curve length.
const DefaultResampleFactor = 10000

// LinearizeAB resamples a chroma trajectory so that consecutive points are
// (approximately) equidistant in perceptual space. The curve is upsampled by
// linear interpolation to factor points, its cumulative a-b arc length is
// walked, and an upsampled point is committed as the next output sample
// whenever the accumulated distance is a local minimum against the next
// multiple of the target spacing. The first and last points are kept as-is
// and the output always has the input's length.
func LinearizeAB(ab [][2]float64, factor int) ([][2]float64, error) {
	n := len(ab)
	if n < 2 {
		return nil, fmt.Errorf("%w: have %d chroma pairs", ErrEmptySequence, n)
	}
	if factor == 0 {
		factor = DefaultResampleFactor
	}
	if factor < n {
		return nil, fmt.Errorf("cmap: resample factor %d is below the sequence length %d", factor, n)
	}

	a := make([]float64, n)
	b := make([]float64, n)
	for i, p := range ab {
		a[i], b[i] = p[0], p[1]
	}
	queries := linspace(0, float64(n-1), factor)
	longA := interpUniform(queries, a)
	longB := interpUniform(queries, b)

	total := 0.0
	for i := 1; i < factor; i++ {
		total += math.Hypot(longA[i]-longA[i-1], longB[i]-longB[i-1])
	}
	d := total / float64(n-1) // desired spacing between output points

	out := make([][2]float64, n)
	copy(out, ab)
	outInd := 0
	longInd := 1
	dSoFar := 0.0
	for outInd < n-2 && longInd < factor-1 {
		seg := math.Hypot(longA[longInd]-longA[longInd-1], longB[longInd]-longB[longInd-1])
		next := math.Hypot(longA[longInd+1]-longA[longInd], longB[longInd+1]-longB[longInd])
		dSoFar += seg
		dNext := dSoFar + next
		target := d * float64(outInd+1)
		// commit this upsampled point if stopping here is closer to the
		// target arc position than carrying on one more segment
		if math.Abs(target-dSoFar) < math.Abs(target-dNext) {
			outInd++
			out[outInd] = [2]float64{longA[longInd], longB[longInd]}
		}
		longInd++
	}
	return out, nil
}

// Linearize applies LinearizeAB to the sequence's chroma channels, leaving
// the lightness channel and the point count untouched.
func Linearize(seq PerceptualSequence, factor int) (PerceptualSequence, error) {
	ab, err := LinearizeAB(seq.Pairs(), factor)
	if err != nil {
		return nil, err
	}
	out := make(PerceptualSequence, len(seq))
	for i, v := range seq {
		out[i] = JAB{v[0], ab[i][0], ab[i][1]}
	}
	return out, nil
}
