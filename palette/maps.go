package palette

import (
	"github.com/kovidgoyal/cmap"
)

// Two families of generated maps: closed-form ramps (the classic matplotlib
// piecewise formulas) and control-point gradients interpolated up to Size
// entries. Anchor values for the perceptual family are taken from the
// published tables at quarter positions.

func fromFunc(f func(t float64) cmap.Color) cmap.ColorSequence {
	out := make(cmap.ColorSequence, Size)
	for i := range out {
		t := float64(i) / float64(Size-1)
		c := f(t)
		out[i] = cmap.Color{clamp01(c[0]), clamp01(c[1]), clamp01(c[2])}
	}
	return out
}

type controlPoint struct {
	t float64
	c cmap.Color
}

// fromControlPoints linearly interpolates between anchors. Anchors must be
// sorted by t, starting at 0 and ending at 1.
func fromControlPoints(points []controlPoint) cmap.ColorSequence {
	out := make(cmap.ColorSequence, Size)
	seg := 0
	for i := range out {
		t := float64(i) / float64(Size-1)
		for seg+2 < len(points) && t > points[seg+1].t {
			seg++
		}
		p0, p1 := points[seg], points[seg+1]
		frac := (t - p0.t) / (p1.t - p0.t)
		frac = clamp01(frac)
		var c cmap.Color
		for k := range 3 {
			c[k] = p0.c[k] + (p1.c[k]-p0.c[k])*frac
		}
		out[i] = c
	}
	return out
}

func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

func init() {
	register("gray", fromFunc(func(t float64) cmap.Color {
		return cmap.Color{t, t, t}
	}))
	register("hot", fromFunc(func(t float64) cmap.Color {
		return cmap.Color{t / 0.365079, (t - 0.365079) / (0.746032 - 0.365079), (t - 0.746032) / (1 - 0.746032)}
	}))
	register("cool", fromFunc(func(t float64) cmap.Color {
		return cmap.Color{t, 1 - t, 1}
	}))
	register("spring", fromFunc(func(t float64) cmap.Color {
		return cmap.Color{1, t, 1 - t}
	}))
	register("summer", fromFunc(func(t float64) cmap.Color {
		return cmap.Color{t, 0.5 + t/2, 0.4}
	}))
	register("autumn", fromFunc(func(t float64) cmap.Color {
		return cmap.Color{1, t, 0}
	}))
	register("winter", fromFunc(func(t float64) cmap.Color {
		return cmap.Color{0, t, 1 - t/2}
	}))
	register("copper", fromFunc(func(t float64) cmap.Color {
		return cmap.Color{1.247 * t, 0.7812 * t, 0.4975 * t}
	}))
	register("jet", fromControlPoints([]controlPoint{
		{0.00, cmap.Color{0, 0, 0.5}},
		{0.11, cmap.Color{0, 0, 1}},
		{0.34, cmap.Color{0, 1, 1}},
		{0.65, cmap.Color{1, 1, 0}},
		{0.89, cmap.Color{1, 0, 0}},
		{1.00, cmap.Color{0.5, 0, 0}},
	}))
	register("viridis", fromControlPoints([]controlPoint{
		{0.00, cmap.Color{0.267, 0.005, 0.329}},
		{0.25, cmap.Color{0.229, 0.322, 0.546}},
		{0.50, cmap.Color{0.128, 0.567, 0.551}},
		{0.75, cmap.Color{0.369, 0.789, 0.383}},
		{1.00, cmap.Color{0.993, 0.906, 0.144}},
	}))
	register("plasma", fromControlPoints([]controlPoint{
		{0.00, cmap.Color{0.050, 0.030, 0.528}},
		{0.25, cmap.Color{0.513, 0.038, 0.627}},
		{0.50, cmap.Color{0.798, 0.280, 0.470}},
		{0.75, cmap.Color{0.975, 0.557, 0.254}},
		{1.00, cmap.Color{0.940, 0.975, 0.131}},
	}))
	register("inferno", fromControlPoints([]controlPoint{
		{0.00, cmap.Color{0.001, 0.000, 0.014}},
		{0.25, cmap.Color{0.342, 0.062, 0.429}},
		{0.50, cmap.Color{0.729, 0.216, 0.330}},
		{0.75, cmap.Color{0.954, 0.517, 0.050}},
		{1.00, cmap.Color{0.988, 0.998, 0.645}},
	}))
	register("magma", fromControlPoints([]controlPoint{
		{0.00, cmap.Color{0.001, 0.000, 0.014}},
		{0.25, cmap.Color{0.316, 0.072, 0.485}},
		{0.50, cmap.Color{0.716, 0.215, 0.475}},
		{0.75, cmap.Color{0.987, 0.536, 0.382}},
		{1.00, cmap.Color{0.987, 0.991, 0.750}},
	}))
	register("coolwarm", fromControlPoints([]controlPoint{
		{0.00, cmap.Color{0.230, 0.299, 0.754}},
		{0.50, cmap.Color{0.865, 0.865, 0.865}},
		{1.00, cmap.Color{0.706, 0.016, 0.150}},
	}))
}
