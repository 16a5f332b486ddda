package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kovidgoyal/cmap"
	"github.com/kovidgoyal/cmap/palette"
)

var _ = fmt.Print

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: go run ./cmd/cmap colormap-name")
		fmt.Fprintln(os.Stderr, "known colormaps:", strings.Join(palette.Names(), ", "))
		os.Exit(1)
	}
	cs, err := palette.Lookup(os.Args[1])
	if err != nil {
		return
	}
	seq, err := cs.Perceptual(nil)
	if err != nil {
		return
	}

	bp, berr := cmap.FindBounds(seq.Pairs(), nil)
	switch {
	case errors.Is(berr, cmap.ErrBoundsNotFound):
		fmt.Printf("%s: no lightness range works for every chroma pair; isoluminant variants are impossible\n", os.Args[1])
	case berr != nil:
		err = berr
		return
	default:
		fmt.Printf("%s: every chroma pair displays at lightness J in [%.1f, %.1f]\n", os.Args[1], bp.MinJ, bp.MaxJ)
	}

	corr, cerr := cmap.CorrectJ(seq, nil)
	switch {
	case errors.Is(cerr, cmap.ErrBoundsNotFound):
		fmt.Println("lightness fits: not possible, some point admits no lightness at all")
	case cerr != nil:
		err = cerr
		return
	default:
		fmt.Printf("fit to original: J %.1f -> %.1f\n", corr.Best[0], corr.Best[len(corr.Best)-1])
		if corr.MaxRange == nil {
			fmt.Println("max-range fit: no feasible line")
		} else {
			fmt.Printf("max-range fit: J %.1f -> %.1f\n", corr.MaxRange[0], corr.MaxRange[len(corr.MaxRange)-1])
		}
	}

	before, err := cmap.Deltas(seq)
	if err != nil {
		return
	}
	lin, err := cmap.Linearize(seq, 0)
	if err != nil {
		return
	}
	after, err := cmap.Deltas(lin)
	if err != nil {
		return
	}
	fmt.Printf("perceptual step spread: %.4f before linearization, %.4f after\n", spread(before), spread(after))
}

func spread(deltas []float64) float64 {
	lo, hi := deltas[0], deltas[0]
	for _, d := range deltas[1:] {
		lo = min(lo, d)
		hi = max(hi, d)
	}
	return hi - lo
}
