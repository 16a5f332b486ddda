package cmap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestColorSequenceClamped(t *testing.T) {
	s := ColorSequence{{-0.5, 0.5, 1.5}, {0, 1, 0.25}}
	got := s.Clamped()
	want := ColorSequence{{0, 0.5, 1}, {0, 1, 0.25}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected clamp result (-want +got):\n%s", diff)
	}
	// original untouched
	require.Equal(t, ColorSequence{{-0.5, 0.5, 1.5}, {0, 1, 0.25}}, s)
}

func TestPerceptualRequiresTwoColors(t *testing.T) {
	_, err := ColorSequence{{0.5, 0.5, 0.5}}.Perceptual(nil)
	require.ErrorIs(t, err, ErrEmptySequence)
}

func TestPerceptualClampsComponentsAndJ(t *testing.T) {
	// out-of-range RGB converts as if clamped first
	a, err := ColorSequence{{-1, 2, 0.5}, {0.25, 0.25, 0.25}}.Perceptual(nil)
	require.NoError(t, err)
	b, err := ColorSequence{{0, 1, 0.5}, {0.25, 0.25, 0.25}}.Perceptual(nil)
	require.NoError(t, err)
	require.Equal(t, b, a)
	for _, v := range a {
		require.GreaterOrEqual(t, v[0], 0.0)
		require.LessOrEqual(t, v[0], 100.0)
	}
}

func TestPerceptualRoundTripThroughRGB(t *testing.T) {
	s := ColorSequence{{0.2, 0.4, 0.6}, {0.5, 0.5, 0.5}, {0.7, 0.3, 0.2}}
	seq, err := s.Perceptual(nil)
	require.NoError(t, err)
	back := seq.RGB(nil)
	require.Len(t, back, len(s))
	for i := range s {
		for k := range 3 {
			require.InDeltaf(t, s[i][k], back[i][k], 0.01, "color %d channel %d", i, k)
		}
	}
}

func TestAccessors(t *testing.T) {
	seq := PerceptualSequence{{10, 1, 2}, {20, 3, 4}}
	require.Equal(t, Trajectory{10, 20}, seq.J())
	require.Equal(t, [][2]float64{{1, 2}, {3, 4}}, seq.Pairs())

	replaced, err := seq.WithJ(Trajectory{50, 60})
	require.NoError(t, err)
	require.Equal(t, PerceptualSequence{{50, 1, 2}, {60, 3, 4}}, replaced)
	// source untouched
	require.Equal(t, PerceptualSequence{{10, 1, 2}, {20, 3, 4}}, seq)

	_, err = seq.WithJ(Trajectory{50})
	require.ErrorIs(t, err, ErrDimensionMismatch)
}
