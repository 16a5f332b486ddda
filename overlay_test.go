package cmap

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func grayRamp(n int) ColorSequence {
	out := make(ColorSequence, n)
	for i := range out {
		v := float64(i) / float64(n-1)
		out[i] = Color{v, v, v}
	}
	return out
}

func TestOverlay(t *testing.T) {
	cm := grayRamp(256)
	data := [][]float64{
		{0, 1},
		{0.5, 1},
	}
	img, err := Overlay(data, cm)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())

	// min maps to the first entry, max to the last
	require.Equal(t, uint8(0), img.NRGBAAt(0, 0).R)
	require.Equal(t, uint8(255), img.NRGBAAt(1, 0).R)
	require.Equal(t, uint8(255), img.NRGBAAt(1, 1).R)
	// midpoint lands mid-map
	require.InDelta(t, 128, float64(img.NRGBAAt(0, 1).R), 1)
	require.Equal(t, uint8(0xff), img.NRGBAAt(0, 0).A)
}

func TestOverlayErrors(t *testing.T) {
	cm := grayRamp(8)
	_, err := Overlay(nil, cm)
	require.ErrorIs(t, err, ErrEmptySequence)

	_, err = Overlay([][]float64{{1, 2}, {3}}, cm)
	require.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = Overlay([][]float64{{5, 5}, {5, 5}}, cm)
	require.ErrorIs(t, err, ErrZeroSpread)

	_, err = Overlay([][]float64{{0, 1}}, cm[:1])
	require.ErrorIs(t, err, ErrEmptySequence)
}

func TestTestPattern(t *testing.T) {
	cm := grayRamp(256)
	img, err := TestPattern(cm)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 256, 45), img.Bounds())

	// the underlying ramp rises left to right, so the top row must end
	// brighter than it starts
	require.Greater(t, img.NRGBAAt(255, 0).R, img.NRGBAAt(0, 0).R)
}

func TestResampleField(t *testing.T) {
	src := [][]float64{
		{0, 1},
		{2, 3},
	}
	same, err := resampleField(src, 2, 2)
	require.NoError(t, err)
	require.Equal(t, src, same)

	up, err := resampleField(src, 8, 4)
	require.NoError(t, err)
	require.Len(t, up, 4)
	for _, row := range up {
		require.Len(t, row, 8)
		for _, v := range row {
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, 3.0)
		}
	}
}

func TestMix(t *testing.T) {
	// low-chroma ramp: a near-neutral map has a wide feasible lightness range
	cm := make(ColorSequence, 64)
	for i := range cm {
		v := 0.3 + 0.4*float64(i)/63
		cm[i] = Color{v, v * 0.95, v}
	}
	colorField := [][]float64{
		{0, 0.4, 0.8},
		{0.2, 0.6, 1.0},
	}
	lightField := [][]float64{
		{0.1, 0.5},
		{0.9, 0.3},
	}
	res, err := Mix(colorField, lightField, cm, 1.0, 0.0, nil)
	require.NoError(t, err)
	want := image.Rect(0, 0, 3, 2)
	require.Equal(t, want, res.Colored.Bounds())
	require.Equal(t, want, res.Isoluminant.Bounds())
	require.Equal(t, want, res.Mixed.Bounds())

	// values at the low cutoff render black in the mixed variants
	require.Equal(t, uint8(0), res.Mixed.NRGBAAt(0, 0).R)
	require.Equal(t, uint8(0), res.Isoluminant.NRGBAAt(0, 0).G)
	// but the plain colored field uses the first map entry
	require.NotZero(t, res.Colored.NRGBAAt(0, 0).R)

	// above the cutoff, pixels carry color
	require.NotZero(t, res.Mixed.NRGBAAt(1, 0).R)
}

func TestMixRejectsBadCutoffs(t *testing.T) {
	cm := grayRamp(8)
	_, err := Mix([][]float64{{0, 1}}, [][]float64{{0, 1}}, cm, 0, 1, nil)
	require.Error(t, err)
}
