package jab

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func nearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func TestNeutralEndpoints(t *testing.T) {
	black := ToPerceptual([3]float64{0, 0, 0})
	require.InDelta(t, 0, black[0], 1e-9)
	require.InDelta(t, 0, black[1], 1e-9)
	require.InDelta(t, 0, black[2], 1e-9)

	white := ToPerceptual([3]float64{1, 1, 1})
	require.InDelta(t, 100, white[0], 0.05)
	// the published 4-digit matrices leave a little chroma residue at white
	require.InDelta(t, 0, white[1], 0.2)
	require.InDelta(t, 0, white[2], 0.2)
}

func TestRoundTrip_TableDriven(t *testing.T) {
	testCases := []struct {
		name string
		rgb  [3]float64
	}{
		{"mid gray", [3]float64{0.5, 0.5, 0.5}},
		{"muted red", [3]float64{0.7, 0.3, 0.3}},
		{"muted green", [3]float64{0.3, 0.7, 0.3}},
		{"muted blue", [3]float64{0.3, 0.3, 0.7}},
		{"viridis start", [3]float64{0.267, 0.005, 0.329}},
		{"viridis end", [3]float64{0.993, 0.906, 0.144}},
		{"warm mid", [3]float64{0.9, 0.6, 0.2}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v := ToPerceptual(tc.rgb)
			back := ToRGB(v)
			for i := range 3 {
				if !nearlyEqual(tc.rgb[i], back[i], 0.01) {
					t.Fatalf("roundtrip mismatch at channel %d: in=%.6f out=%.6f", i, tc.rgb[i], back[i])
				}
			}
		})
	}
}

func TestToPerceptualClampsInput(t *testing.T) {
	// components outside [0,1] must be clamped before conversion
	a := ToPerceptual([3]float64{-0.5, 1.5, 0.25})
	b := ToPerceptual([3]float64{0, 1, 0.25})
	require.InDelta(t, b[0], a[0], 1e-12)
	require.InDelta(t, b[1], a[1], 1e-12)
	require.InDelta(t, b[2], a[2], 1e-12)
}

func TestToRGBClampsOutput(t *testing.T) {
	// deep out-of-gamut chroma must still yield components in [0,1]
	rgb := ToRGB([3]float64{50, 120, 120})
	for i, c := range rgb {
		require.GreaterOrEqualf(t, c, 0.0, "channel %d", i)
		require.LessOrEqualf(t, c, 1.0, "channel %d", i)
	}
	// while the raw conversion escapes the cube
	raw := ToRGBNoClamp([3]float64{50, 120, 120})
	require.False(t, Displayable(raw))
}

func TestValid(t *testing.T) {
	testCases := []struct {
		name string
		c    float64
		eps  float64
		want bool
	}{
		{"zero", 0, Tolerance, true},
		{"one", 1, Tolerance, true},
		{"slack below", -0.0005, Tolerance, true},
		{"slack above", 1.0005, Tolerance, true},
		{"too low", -0.01, Tolerance, false},
		{"too high", 1.01, Tolerance, false},
		{"nan", math.NaN(), Tolerance, false},
		{"inf", math.Inf(1), Tolerance, false},
		{"neg inf", math.Inf(-1), Tolerance, false},
		{"wide eps", 1.05, 0.1, true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Valid(tc.c, tc.eps))
		})
	}
}

func TestConvert(t *testing.T) {
	rgb := [3]float64{0.2, 0.4, 0.6}

	same, err := Convert(rgb, DEVICE_RGB, DEVICE_RGB)
	require.NoError(t, err)
	require.Equal(t, rgb, same)

	v, err := Convert(rgb, DEVICE_RGB, PERCEPTUAL)
	require.NoError(t, err)
	require.Equal(t, ToPerceptual(rgb), v)

	back, err := Convert(v, PERCEPTUAL, DEVICE_RGB)
	require.NoError(t, err)
	require.Equal(t, ToRGB(v), back)
}

func TestBradfordAdaptationPreservesWhite(t *testing.T) {
	adapt := chromaticAdaptationMatrix(whiteD65, whiteD50)
	x, y, z := mulMat3Vec(adapt, whiteD65)
	require.InDelta(t, whiteD50[0], x, 1e-4)
	require.InDelta(t, whiteD50[1], y, 1e-4)
	require.InDelta(t, whiteD50[2], z, 1e-4)
}
