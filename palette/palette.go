// Package palette is the registry of standard colormaps: a fixed, validated
// table mapping names to 256-entry RGB sequences, plus a constructor for
// custom maps supplied by the caller. The core engine never depends on what
// is in the table, only on the ColorSequence it hands back.
package palette

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/kovidgoyal/cmap"
)

// Size is the number of entries every registered colormap carries.
const Size = 256

var ErrUnknownColormap = errors.New("palette: unknown colormap name")

var registry = map[string]cmap.ColorSequence{}

// register validates a generated map and adds it to the table. The table is
// static program data, so a bad entry is a programming error.
func register(name string, cs cmap.ColorSequence) {
	if len(cs) != Size {
		panic(fmt.Sprintf("palette: map %q has %d entries, want %d", name, len(cs), Size))
	}
	if _, dup := registry[name]; dup {
		panic(fmt.Sprintf("palette: duplicate map %q", name))
	}
	for i, c := range cs {
		for _, v := range c {
			if math.IsNaN(v) || v < 0 || v > 1 {
				panic(fmt.Sprintf("palette: map %q entry %d has component %v outside [0,1]", name, i, v))
			}
		}
	}
	registry[name] = cs
}

// Lookup returns a fresh copy of the named colormap, so callers can modify
// the result freely.
func Lookup(name string) (cmap.ColorSequence, error) {
	cs, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColormap, name)
	}
	out := make(cmap.ColorSequence, len(cs))
	copy(out, cs)
	return out, nil
}

// Names lists every registered colormap in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// FromColors builds a custom colormap from caller-supplied data. At least
// two colors are required, every component must be a real number, and the
// components are clamped to [0,1].
func FromColors(colors []cmap.Color) (cmap.ColorSequence, error) {
	if len(colors) < 2 {
		return nil, fmt.Errorf("%w: have %d colors", cmap.ErrEmptySequence, len(colors))
	}
	for i, c := range colors {
		for _, v := range c {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: entry %d contains %v", cmap.ErrInvalidColor, i, v)
			}
		}
	}
	return cmap.ColorSequence(colors).Clamped(), nil
}
