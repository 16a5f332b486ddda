package jab

import (
	"fmt"
	"math"
)

// This package maps sRGB colors (D65) into a perceptually uniform
// lightness/chroma coordinate system (J, a, b) and back. The uniform space is
// CIELAB relative to the D50 white point; chromatic adaptation between the
// two whites uses the Bradford method, and the linear matrix transforms on
// each side are fused into a single 3x3 multiply per direction.
//
// Notes:
// - J is the lightness coordinate in [0,100]; a and b are unbounded chroma.
// - The inverse direction is deliberately available both clamped (for
//   producing displayable colors) and unclamped (for probing whether a
//   (J,a,b) triple lands inside the RGB cube at all).

type Vec3 [3]float64
type Mat3 [3][3]float64

// Tolerance is the default slack allowed on RGB components when deciding
// whether a converted value is still a displayable color.
const Tolerance = 0.001

// Standard reference whites (CIE XYZ) normalized so Y = 1.0
// Note that whiteD50 uses Z value from ICC spec rather that CIE spec.
var (
	whiteD50 = Vec3{0.96422, 1.00000, 0.82491}
	whiteD65 = Vec3{0.95047, 1.00000, 1.08883}
)

// Bradford transform matrices (forward and inverse)
var (
	bradford = Mat3{
		{0.8951, 0.2664, -0.1614},
		{-0.7502, 1.7135, 0.0367},
		{0.0389, -0.0685, 1.0296},
	}
	invBradford = Mat3{
		{0.9869929, -0.1470543, 0.1599627},
		{0.4323053, 0.5183603, 0.0492912},
		{-0.0085287, 0.0400428, 0.9684867},
	}
)

// Linear sRGB (D65) from CIE XYZ and its inverse
var (
	srgbFromXYZ = Mat3{
		{3.2406, -1.5372, -0.4986},
		{-0.9689, 1.8758, 0.0415},
		{0.0557, -0.2040, 1.0570},
	}
	xyzFromSRGB = Mat3{
		{0.4124, 0.3576, 0.1805},
		{0.2126, 0.7152, 0.0722},
		{0.0193, 0.1192, 0.9505},
	}
)

// Fused matrices: XYZ(D50) -> linear sRGB(D65) and linear sRGB(D65) -> XYZ(D50).
// Each folds the Bradford adaptation into the neighbouring matrix so that the
// only linear operation per conversion is a single matrix multiply.
var (
	combinedXYZD50ToLinearSRGB Mat3
	combinedLinearSRGBToXYZD50 Mat3
)

func init() {
	adaptTo65 := chromaticAdaptationMatrix(whiteD50, whiteD65)
	combinedXYZD50ToLinearSRGB = mulMat3(srgbFromXYZ, adaptTo65)
	adaptTo50 := chromaticAdaptationMatrix(whiteD65, whiteD50)
	combinedLinearSRGBToXYZD50 = mulMat3(adaptTo50, xyzFromSRGB)
}

// Public API

// ToPerceptual converts an sRGB triple into (J, a, b). The RGB components are
// clamped to [0,1] before conversion.
func ToPerceptual(rgb [3]float64) [3]float64 {
	r := srgbToLinearComp(clamp01(rgb[0]))
	g := srgbToLinearComp(clamp01(rgb[1]))
	b := srgbToLinearComp(clamp01(rgb[2]))
	X, Y, Z := mulMat3Vec(combinedLinearSRGBToXYZD50, Vec3{r, g, b})
	J, ca, cb := xyzToJab_D50(X, Y, Z)
	return [3]float64{J, ca, cb}
}

// ToRGB converts (J, a, b) into an sRGB triple, clamping each component to
// [0,1] after the inverse transform.
func ToRGB(v [3]float64) [3]float64 {
	r, g, b := jabToSRGBNoClamp(v[0], v[1], v[2])
	return [3]float64{clamp01(r), clamp01(g), clamp01(b)}
}

// ToRGBNoClamp converts (J, a, b) into raw sRGB components. The results may
// lie outside [0,1]; use Valid to decide whether the color is displayable.
func ToRGBNoClamp(v [3]float64) [3]float64 {
	r, g, b := jabToSRGBNoClamp(v[0], v[1], v[2])
	return [3]float64{r, g, b}
}

// Valid reports whether a converted RGB component is finite and lies within
// [-eps, 1+eps]. Pass Tolerance for the standard slack.
func Valid(c, eps float64) bool {
	return !math.IsNaN(c) && !math.IsInf(c, 0) && c > -eps && c < 1+eps
}

// Displayable reports whether all three raw RGB components pass Valid with
// the standard tolerance.
func Displayable(rgb [3]float64) bool {
	return Valid(rgb[0], Tolerance) && Valid(rgb[1], Tolerance) && Valid(rgb[2], Tolerance)
}

// ColorSpace tags the coordinate system a triple is expressed in.
type ColorSpace int

const (
	DEVICE_RGB ColorSpace = iota
	PERCEPTUAL
)

var colorSpaceNames = map[ColorSpace]string{
	DEVICE_RGB: "DeviceRGB",
	PERCEPTUAL: "Perceptual",
}

func (c ColorSpace) String() string {
	return colorSpaceNames[c]
}

// Convert maps a triple between the tagged coordinate systems. Converting a
// space to itself returns the value unchanged.
func Convert(v [3]float64, from, to ColorSpace) ([3]float64, error) {
	switch {
	case from == to:
		return v, nil
	case from == DEVICE_RGB && to == PERCEPTUAL:
		return ToPerceptual(v), nil
	case from == PERCEPTUAL && to == DEVICE_RGB:
		return ToRGB(v), nil
	}
	return v, fmt.Errorf("jab: cannot convert from %s to %s", from, to)
}

// Model is the pluggable converter value; its methods delegate to the
// package-level conversions so any other uniform colorspace can be swapped
// in behind the same method set.
type Model struct{}

func (Model) ToPerceptual(rgb [3]float64) [3]float64 { return ToPerceptual(rgb) }
func (Model) ToRGB(v [3]float64) [3]float64          { return ToRGB(v) }
func (Model) ToRGBNoClamp(v [3]float64) [3]float64   { return ToRGBNoClamp(v) }

// Helpers: core conversions

func jabToSRGBNoClamp(J, a, b float64) (r, g, bl float64) {
	X, Y, Z := jabToXYZ_D50(J, a, b)
	rl, gl, blv := mulMat3Vec(combinedXYZD50ToLinearSRGB, Vec3{X, Y, Z})
	r = linearToSRGBComp(rl)
	g = linearToSRGBComp(gl)
	bl = linearToSRGBComp(blv)
	return
}

func finv(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta {
		return t * t * t
	}
	// when t <= delta: 3*delta^2*(t - 4/29)
	return 3 * delta * delta * (t - 4.0/29.0)
}

// jabToXYZ_D50 converts (J, a, b) to CIE XYZ values relative to the D50
// whitepoint (Y=1).
func jabToXYZ_D50(J, a, b float64) (X, Y, Z float64) {
	var fy = (J + 16.0) / 116.0
	var fx = fy + (a / 500.0)
	var fz = fy - (b / 200.0)

	X = finv(fx) * whiteD50[0]
	Y = finv(fy) * whiteD50[1]
	Z = finv(fz) * whiteD50[2]
	return
}

func ff(t float64) float64 {
	const delta = 6.0 / 29.0
	if t > delta*delta*delta {
		return math.Cbrt(t)
	}
	// t <= delta^3
	return t/(3*delta*delta) + 4.0/29.0
}

// xyzToJab_D50 converts XYZ (relative to D50, Y=1) into (J, a, b).
func xyzToJab_D50(X, Y, Z float64) (J, a, b float64) {
	fx := ff(X / whiteD50[0])
	fy := ff(Y / whiteD50[1])
	fz := ff(Z / whiteD50[2])

	J = 116.0*fy - 16.0
	a = 500.0 * (fx - fy)
	b = 200.0 * (fy - fz)
	return
}

// linearToSRGBComp applies the sRGB (gamma) companding function to a linear
// component. Negative inputs use the odd extension of the curve so that
// out-of-gamut colors keep their sign and fail the validity check instead of
// silently landing on 0.
func linearToSRGBComp(c float64) float64 {
	if c < 0 {
		return -linearToSRGBComp(-c)
	}
	if c <= 0.0031308 {
		return 12.92 * c
	}
	return 1.055*math.Pow(c, 1.0/2.4) - 0.055
}

// srgbToLinearComp inverts the companding function. Inputs here are already
// clamped to [0,1].
func srgbToLinearComp(c float64) float64 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// clamp01 clamps value to [0,1]
func clamp01(x float64) float64 {
	return max(0, min(x, 1))
}

// Matrix & vector utilities

func mulMat3(a, b Mat3) Mat3 {
	var out Mat3
	for i := range 3 {
		for j := range 3 {
			sum := 0.0
			for k := range 3 {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

func mulMat3Vec(m Mat3, v Vec3) (x, y, z float64) {
	x = m[0][0]*v[0] + m[0][1]*v[1] + m[0][2]*v[2]
	y = m[1][0]*v[0] + m[1][1]*v[1] + m[1][2]*v[2]
	z = m[2][0]*v[0] + m[2][1]*v[1] + m[2][2]*v[2]
	return
}

// chromaticAdaptationMatrix constructs a 3x3 matrix that adapts XYZ values
// from sourceWhite to targetWhite using the Bradford method.
func chromaticAdaptationMatrix(sourceWhite, targetWhite Vec3) Mat3 {
	// Convert whites to LMS using Bradford
	srcL, srcM, srcS := mulMat3Vec(bradford, sourceWhite)
	tgtL, tgtM, tgtS := mulMat3Vec(bradford, targetWhite)
	// diag of ratios
	diag := Mat3{
		{tgtL / srcL, 0, 0},
		{0, tgtM / srcM, 0},
		{0, 0, tgtS / srcS},
	}
	// adapt = invBradford * diag * bradford
	return mulMat3(invBradford, mulMat3(diag, bradford))
}
