package cmap

import (
	"fmt"
	"math"

	"github.com/kovidgoyal/go-parallel"

	"github.com/kovidgoyal/cmap/jab"
)

// SearchOptions controls the lightness scan. The zero value (or a nil
// pointer) selects the defaults: scan [0,100], DefaultConverter, and a probe
// budget large enough for any single colormap.
type SearchOptions struct {
	Lo, Hi float64
	// MaxProbes caps the number of converter invocations per FindBounds
	// call. When the cap is hit the search fails with ErrSearchExhausted
	// instead of looping over an infeasible map forever.
	MaxProbes int
	Conv      Converter
}

const (
	defaultHi        = 100.0
	defaultMaxProbes = 4_000_000

	coarseStep = 5.0
	fineStep   = 0.1
)

func (o *SearchOptions) withDefaults() SearchOptions {
	var out SearchOptions
	if o != nil {
		out = *o
	}
	if out.Hi == 0 {
		out.Hi = defaultHi
	}
	if out.MaxProbes == 0 {
		out.MaxProbes = defaultMaxProbes
	}
	out.Conv = converterOrDefault(out.Conv)
	return out
}

// prober counts converter invocations against the budget.
type prober struct {
	conv   Converter
	budget int
	used   int
}

func (p *prober) feasible(J, a, b float64) (bool, error) {
	if p.used >= p.budget {
		return false, fmt.Errorf("%w: after %d probes", ErrSearchExhausted, p.used)
	}
	p.used++
	rgb := p.conv.ToRGBNoClamp([3]float64{J, a, b})
	return jab.Displayable(rgb), nil
}

// scanPair walks J from lo to hi looking for values that convert, together
// with the fixed (a,b), to a displayable color. The walk is coarse-to-fine:
// each feasible J starts a greedy run of +5 steps for as long as feasibility
// holds, then the scan resumes at the +0.1 resolution. Returns the min and
// max feasible J seen, and whether any J was feasible at all.
func (p *prober) scanPair(a, b, lo, hi float64) (pmin, pmax float64, any bool, err error) {
	pmin = math.Inf(1)
	pmax = math.Inf(-1)
	record := func(J float64) {
		any = true
		pmin = min(pmin, J)
		pmax = max(pmax, J)
	}
	J := lo
	for J <= hi {
		ok, err := p.feasible(J, a, b)
		if err != nil {
			return 0, 0, false, err
		}
		if ok {
			record(J)
		}
		for J+coarseStep <= hi {
			ok, err := p.feasible(J+coarseStep, a, b)
			if err != nil {
				return 0, 0, false, err
			}
			if !ok {
				break
			}
			J += coarseStep
			record(J)
		}
		J += fineStep
	}
	return pmin, pmax, any, nil
}

// FindBounds returns the widest lightness interval that every supplied
// chroma pair accepts, scanning [opt.Lo, opt.Hi]. The running interval
// starts at the full scan range and each pair narrows it by intersection
// with that pair's own feasible range.
//
// A pair with no feasible point at all does not narrow the interval: such a
// pair is treated as unscannable rather than as proof of emptiness (the scan
// resolution can miss a thin feasible band). If no pair was ever
// feasible, or the intersection came up empty, the result is
// ErrBoundsNotFound.
func FindBounds(pairs [][2]float64, opt *SearchOptions) (BoundPair, error) {
	if len(pairs) == 0 {
		return BoundPair{}, fmt.Errorf("%w: no chroma pairs", ErrEmptySequence)
	}
	o := opt.withDefaults()
	p := &prober{conv: o.Conv, budget: o.MaxProbes}
	minJ, maxJ := o.Lo, o.Hi
	found := false
	for _, pair := range pairs {
		pmin, pmax, any, err := p.scanPair(pair[0], pair[1], o.Lo, o.Hi)
		if err != nil {
			return BoundPair{}, err
		}
		if !any {
			continue
		}
		found = true
		minJ = max(minJ, pmin)
		maxJ = min(maxJ, pmax)
	}
	if !found || minJ > maxJ {
		return BoundPair{}, ErrBoundsNotFound
	}
	return BoundPair{MinJ: minJ, MaxJ: maxJ}, nil
}

// PointwiseBounds computes, for every index of the sequence, the feasible
// lightness interval of that single chroma pair. The per-index searches are
// independent, so they are fanned out across goroutines; results are
// identical to running FindBounds on each pair in sequence.
//
// Indices whose pair has no feasible lightness at all make the whole call
// fail with ErrBoundsNotFound (a fit cannot proceed past such a point).
func PointwiseBounds(seq PerceptualSequence, opt *SearchOptions) (low, high Trajectory, err error) {
	if len(seq) < 2 {
		return nil, nil, fmt.Errorf("%w: have %d points", ErrEmptySequence, len(seq))
	}
	low = make(Trajectory, len(seq))
	high = make(Trajectory, len(seq))
	errs := make([]error, len(seq))
	f := func(start, limit int) {
		for i := start; i < limit; i++ {
			b, err := FindBounds([][2]float64{{seq[i][1], seq[i][2]}}, opt)
			if err != nil {
				errs[i] = err
				continue
			}
			low[i], high[i] = b.MinJ, b.MaxJ
		}
	}
	if err := parallel.Run_in_parallel_over_range(0, f, 0, len(seq)); err != nil {
		return nil, nil, err
	}
	for i, e := range errs {
		if e != nil {
			return nil, nil, fmt.Errorf("index %d: %w", i, e)
		}
	}
	return low, high, nil
}
