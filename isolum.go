package cmap

// IsoluminantMaps cycles through the whole-map feasible lightness range and
// renders one constant-J colormap per integer step, keeping the original
// chroma trajectory. The returned slice can be empty when the feasible range
// spans less than one integer. A colormap whose chroma pairs share no
// feasible lightness fails with ErrBoundsNotFound.
func IsoluminantMaps(seq PerceptualSequence, opt *SearchOptions) ([]ColorSequence, error) {
	bp, err := FindBounds(seq.Pairs(), opt)
	if err != nil {
		return nil, err
	}
	o := opt.withDefaults()
	h := int(bp.MaxJ) - int(bp.MinJ)
	maps := make([]ColorSequence, 0, h)
	for j := range h {
		J := float64(int(bp.MinJ) + j)
		cs := make(ColorSequence, len(seq))
		for i, p := range seq {
			cs[i] = Color(o.Conv.ToRGB([3]float64{J, p[1], p[2]}))
		}
		maps = append(maps, cs)
	}
	return maps, nil
}
