package cmap

import (
	"fmt"
	"math"
)

// FitOptions controls the lightness fits. The zero value (or a nil pointer)
// selects the defaults.
type FitOptions struct {
	// DeltaSlope and DeltaB are the step sizes of the max-range search:
	// slope magnitude shrinks toward zero by DeltaSlope, the intercept
	// climbs by DeltaB. Defaults are 1 and 1.
	DeltaSlope, DeltaB float64
	// MaxCandidates caps how many candidate lines the max-range search may
	// test before failing with ErrSearchExhausted. Default 1e6.
	MaxCandidates int
	// Search configures the per-index bound computation.
	Search *SearchOptions
}

const defaultMaxCandidates = 1_000_000

func (o *FitOptions) withDefaults() FitOptions {
	var out FitOptions
	if o != nil {
		out = *o
	}
	if out.DeltaSlope == 0 {
		out.DeltaSlope = 1
	}
	if out.DeltaB == 0 {
		out.DeltaB = 1
	}
	if out.MaxCandidates == 0 {
		out.MaxCandidates = defaultMaxCandidates
	}
	return out
}

// Correction holds the outputs of CorrectJ.
type Correction struct {
	// Low and High are the pointwise feasible lightness bounds.
	Low, High Trajectory
	// Best is the least-squares refit of the original lightness channel,
	// corrected to stay inside [1,99].
	Best Trajectory
	// MaxRange is the steepest feasible straight line through the bounds,
	// leaning against the original trend to maximize total lightness
	// change. It is nil when no such line exists; callers must check.
	MaxRange Trajectory
}

// olsLine fits y = slope*x + intercept by ordinary least squares over
// x = 0..n-1 and returns the fitted values.
func olsLine(y Trajectory) Trajectory {
	n := len(y)
	xbar := float64(n-1) / 2
	ybar := 0.0
	for _, v := range y {
		ybar += v
	}
	ybar /= float64(n)
	num, den := 0.0, 0.0
	for i, v := range y {
		dx := float64(i) - xbar
		num += dx * (v - ybar)
		den += dx * dx
	}
	slope := num / den
	intercept := ybar - slope*xbar
	out := make(Trajectory, n)
	for i := range out {
		out[i] = slope*float64(i) + intercept
	}
	return out
}

// FitToOriginal produces the "fit to existing line" trajectory: an OLS line
// through traj, pulled back inside [1,99] when it escapes. If the fitted
// line tops out above 99 it is refit and shifted so its maximum is exactly
// 99; if that pushes the minimum below 1, the fit degrades to a straight
// 1->99 (or 99->1) ramp matching the trend.
func FitToOriginal(traj Trajectory) (Trajectory, error) {
	if len(traj) < 2 {
		return nil, fmt.Errorf("%w: have %d lightness values", ErrEmptySequence, len(traj))
	}
	line := olsLine(traj)
	if maxOf(line) > 99 {
		shifted := make(Trajectory, len(traj))
		for i, v := range traj {
			shifted[i] = v - 99
		}
		line = olsLine(shifted)
		offset := 99 - maxOf(line)
		for i := range line {
			line[i] += offset
		}
		if minOf(line) < 1 {
			if line[0] < line[len(line)-1] {
				line = linspace(1, 99, len(traj))
			} else {
				line = linspace(99, 1, len(traj))
			}
		}
	}
	return line, nil
}

// MaxRangeFit searches for the steepest straight lightness line that stays
// inside [low[i], high[i]] at every index. The slope leans against the
// original trend (a rising map gets the negative-direction search and vice
// versa) so that total lightness change is maximized.
//
// Search order is deterministic and meaningful: slope magnitude descends from
// the widest conceivable value toward zero, and within each slope the
// intercept ascends from low[0]. The first candidate inside the bounds wins.
// A nil, nil return means the completed search proved no such line exists;
// ErrSearchExhausted means the candidate budget ran out first.
func MaxRangeFit(traj Trajectory, low, high Trajectory, opt *FitOptions) (Trajectory, error) {
	n := len(traj)
	if n < 2 {
		return nil, fmt.Errorf("%w: have %d lightness values", ErrEmptySequence, n)
	}
	if len(low) != n || len(high) != n {
		return nil, fmt.Errorf("%w: trajectory %d, bounds %d/%d", ErrDimensionMismatch, n, len(low), len(high))
	}
	o := opt.withDefaults()

	// A flat map has no trend to lean against; there is nothing to maximize.
	if traj[0] == traj[n-1] {
		return nil, nil
	}

	var slope, deltaSlope float64
	if traj[0] <= traj[n-1] {
		deltaSlope = -math.Abs(o.DeltaSlope)
		slope = high[n-1] - low[0]
		if slope < 0 {
			return nil, nil
		}
	} else {
		deltaSlope = math.Abs(o.DeltaSlope)
		slope = low[n-1] - high[0]
		if slope > 0 {
			return nil, nil
		}
	}

	rising := deltaSlope < 0
	maxB := max(high[0], high[n-1])
	line := make(Trajectory, n)
	candidates := 0
	// The loop ends when the shrinking slope magnitude reaches or crosses
	// zero; an exact float comparison against zero would never terminate
	// for fractional slopes.
	for (rising && slope > 0) || (!rising && slope < 0) {
		b := low[0]
		for b <= maxB {
			if candidates >= o.MaxCandidates {
				return nil, fmt.Errorf("%w: after %d candidate lines", ErrSearchExhausted, candidates)
			}
			candidates++
			for i := range line {
				line[i] = (slope/float64(n))*float64(i) + b
			}
			if withinBounds(line, low, high) {
				out := make(Trajectory, n)
				copy(out, line)
				return out, nil
			}
			// Once the candidate pokes above the upper bound at either end,
			// raising the intercept further cannot help this slope.
			if line[n-1] > high[n-1] || line[0] > high[0] {
				break
			}
			b += o.DeltaB
		}
		slope += deltaSlope
	}
	return nil, nil
}

// CorrectJ computes the pointwise feasible bounds of the sequence's chroma
// trajectory and both corrected lightness trajectories. Any index whose
// chroma pair admits no lightness at all aborts the fit with
// ErrBoundsNotFound: the colormap cannot be processed this way.
func CorrectJ(seq PerceptualSequence, opt *FitOptions) (*Correction, error) {
	if len(seq) < 2 {
		return nil, fmt.Errorf("%w: have %d points", ErrEmptySequence, len(seq))
	}
	o := opt.withDefaults()
	low, high, err := PointwiseBounds(seq, o.Search)
	if err != nil {
		return nil, err
	}
	traj := seq.J()
	best, err := FitToOriginal(traj)
	if err != nil {
		return nil, err
	}
	maxRange, err := MaxRangeFit(traj, low, high, &o)
	if err != nil {
		return nil, err
	}
	return &Correction{Low: low, High: high, Best: best, MaxRange: maxRange}, nil
}

func withinBounds(line, low, high Trajectory) bool {
	for i, v := range line {
		if v < low[i] || v > high[i] {
			return false
		}
	}
	return true
}

func maxOf(values Trajectory) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = max(m, v)
	}
	return m
}

func minOf(values Trajectory) float64 {
	m := values[0]
	for _, v := range values[1:] {
		m = min(m, v)
	}
	return m
}
