package cmap

import "errors"

var (
	// ErrInvalidColor reports an RGB component that is not a usable color
	// value (NaN, infinite, or far outside [0,1]).
	ErrInvalidColor = errors.New("cmap: invalid RGB component")

	// ErrBoundsNotFound means the search completed and proved that no
	// lightness value is feasible for every chroma pair supplied.
	ErrBoundsNotFound = errors.New("cmap: no common feasible lightness range")

	// ErrSearchExhausted means the probe budget ran out before the search
	// could either find a result or prove there is none. It is deliberately
	// distinct from ErrBoundsNotFound.
	ErrSearchExhausted = errors.New("cmap: search exhausted its probe budget")

	// ErrDimensionMismatch reports points of unequal dimension passed to a
	// distance computation.
	ErrDimensionMismatch = errors.New("cmap: points have different dimensions")

	// ErrEmptySequence reports input with fewer entries than the operation
	// can work on.
	ErrEmptySequence = errors.New("cmap: sequence needs at least two entries")

	// ErrZeroSpread reports values whose minimum equals their maximum (or
	// whose variance is zero), which cannot be rescaled.
	ErrZeroSpread = errors.New("cmap: values have no spread")
)
