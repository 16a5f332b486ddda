package cmap

import (
	"fmt"
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// The routines here turn scalar fields into in-memory NRGBA structures by
// pushing values through a colormap. They are consumers of the core: no
// files are written and nothing is plotted.

func fieldShape(data [][]float64) (h, w int, err error) {
	h = len(data)
	if h == 0 {
		return 0, 0, fmt.Errorf("%w: empty field", ErrEmptySequence)
	}
	w = len(data[0])
	for _, row := range data {
		if len(row) != w {
			return 0, 0, fmt.Errorf("%w: ragged field rows", ErrDimensionMismatch)
		}
	}
	if w == 0 {
		return 0, 0, fmt.Errorf("%w: empty field rows", ErrEmptySequence)
	}
	return h, w, nil
}

func asNRGBA(c Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(math.Round(clamp01(c[0]) * 255)),
		G: uint8(math.Round(clamp01(c[1]) * 255)),
		B: uint8(math.Round(clamp01(c[2]) * 255)),
		A: 0xff,
	}
}

// Overlay colors a scalar field with a colormap: values are min-max scaled
// onto the map's index range and each cell becomes the matching map entry.
// A constant field has no spread to scale and is an error.
func Overlay(data [][]float64, cm ColorSequence) (*image.NRGBA, error) {
	h, w, err := fieldShape(data)
	if err != nil {
		return nil, err
	}
	if len(cm) < 2 {
		return nil, fmt.Errorf("%w: colormap has %d entries", ErrEmptySequence, len(cm))
	}
	vmin, vmax := data[0][0], data[0][0]
	for _, row := range data {
		for _, v := range row {
			vmin = min(vmin, v)
			vmax = max(vmax, v)
		}
	}
	if vmax == vmin {
		return nil, ErrZeroSpread
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	last := float64(len(cm) - 1)
	for y, row := range data {
		for x, v := range row {
			idx := int(math.Round((v - vmin) * last / (vmax - vmin)))
			img.SetNRGBA(x, y, asNRGBA(cm[idx]))
		}
	}
	return img, nil
}

// TestPattern renders the standard colormap stress image: a sine wave whose
// amplitude decays to zero down the rows, superimposed on a left-to-right
// ramp, pushed through the map. Structure that vanishes in the result is
// structure the map cannot show.
func TestPattern(cm ColorSequence) (*image.NRGBA, error) {
	const height = 45
	const sinMag = 8.0
	if len(cm) < 2 {
		return nil, fmt.Errorf("%w: colormap has %d entries", ErrEmptySequence, len(cm))
	}
	width := len(cm)
	data := make([][]float64, height)
	for i := range data {
		row := make([]float64, width)
		amp := sinMag - sinMag*float64(i)/float64(height)
		for x := range row {
			row[x] = amp*math.Sin(float64(x)) + float64(x)
		}
		data[i] = row
	}
	flat := make([]float64, 0, height*width)
	for _, row := range data {
		flat = append(flat, row...)
	}
	norm, err := Normalize(flat)
	if err != nil {
		return nil, err
	}
	for i := range data {
		data[i] = norm[i*width : (i+1)*width]
	}
	return Overlay(data, cm)
}

// resampleField rescales a scalar field to w x h using Catmull-Rom
// interpolation over a 16-bit grayscale intermediate. Fields already at the
// target shape are returned unchanged.
func resampleField(src [][]float64, w, h int) ([][]float64, error) {
	sh, sw, err := fieldShape(src)
	if err != nil {
		return nil, err
	}
	if sh == h && sw == w {
		return src, nil
	}
	vmin, vmax := src[0][0], src[0][0]
	for _, row := range src {
		for _, v := range row {
			vmin = min(vmin, v)
			vmax = max(vmax, v)
		}
	}
	spread := vmax - vmin
	if spread == 0 {
		spread = 1
	}
	gray := image.NewGray16(image.Rect(0, 0, sw, sh))
	for y, row := range src {
		for x, v := range row {
			gray.SetGray16(x, y, color.Gray16{Y: uint16(math.Round((v - vmin) / spread * 0xffff))})
		}
	}
	dst := image.NewGray16(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), gray, gray.Bounds(), xdraw.Src, nil)
	out := make([][]float64, h)
	for y := range out {
		row := make([]float64, w)
		for x := range row {
			row[x] = vmin + float64(dst.Gray16At(x, y).Y)/0xffff*spread
		}
		out[y] = row
	}
	return out, nil
}

// MixResult holds the three images produced by Mix.
type MixResult struct {
	// Colored is the color field pushed straight through the colormap.
	Colored *image.NRGBA
	// Isoluminant uses the same chroma but a constant mid-range lightness.
	Isoluminant *image.NRGBA
	// Mixed takes chroma from the color field and lightness from the light
	// field.
	Mixed *image.NRGBA
}

// Mix combines two scalar fields: colorField picks each pixel's chroma via
// the colormap, lightField drives its lightness within the map's feasible
// range. colorField values are cut off at [lo, hi] before indexing, and
// values at or below lo render black (background). The light field is
// resampled to the color field's shape when they differ. A colormap whose
// chroma pairs admit no common lightness fails with ErrBoundsNotFound.
func Mix(colorField, lightField [][]float64, cs ColorSequence, hi, lo float64, opt *SearchOptions) (*MixResult, error) {
	if hi <= lo {
		return nil, fmt.Errorf("cmap: cutoffs out of order: high %v, low %v", hi, lo)
	}
	h, w, err := fieldShape(colorField)
	if err != nil {
		return nil, err
	}
	o := opt.withDefaults()
	seq, err := cs.Perceptual(o.Conv)
	if err != nil {
		return nil, err
	}
	bp, err := FindBounds(seq.Pairs(), opt)
	if err != nil {
		return nil, err
	}
	light, err := resampleField(lightField, w, h)
	if err != nil {
		return nil, err
	}
	flat := make([]float64, 0, h*w)
	for _, row := range light {
		flat = append(flat, row...)
	}
	jvals, err := AdjustRange(flat, bp.MinJ, bp.MaxJ)
	if err != nil {
		return nil, err
	}

	res := &MixResult{
		Colored:     image.NewNRGBA(image.Rect(0, 0, w, h)),
		Isoluminant: image.NewNRGBA(image.Rect(0, 0, w, h)),
		Mixed:       image.NewNRGBA(image.Rect(0, 0, w, h)),
	}
	last := float64(len(cs) - 1)
	midJ := (bp.MinJ + bp.MaxJ) / 2
	black := color.NRGBA{A: 0xff}
	for y, row := range colorField {
		for x, v := range row {
			idx := int(math.Round((min(max(v, lo), hi) - lo) * last / (hi - lo)))
			res.Colored.SetNRGBA(x, y, asNRGBA(cs[idx]))
			if v <= lo {
				res.Isoluminant.SetNRGBA(x, y, black)
				res.Mixed.SetNRGBA(x, y, black)
				continue
			}
			a, b := seq[idx][1], seq[idx][2]
			res.Isoluminant.SetNRGBA(x, y, asNRGBA(Color(o.Conv.ToRGB([3]float64{midJ, a, b}))))
			res.Mixed.SetNRGBA(x, y, asNRGBA(Color(o.Conv.ToRGB([3]float64{jvals[y*w+x], a, b}))))
		}
	}
	return res, nil
}
