package colour

import "math"

// LinearSRGB is sRGB with the transfer function removed.
type LinearSRGB struct {
	R, G, B float64
}

// SRGB applies the sRGB transfer function.
func (c LinearSRGB) SRGB() SRGB {
	return SRGB{
		R: encodeGamma(c.R),
		G: encodeGamma(c.G),
		B: encodeGamma(c.B),
	}
}

// XYZ converts to CIE XYZ (D65).
func (c LinearSRGB) XYZ() XYZ {
	x, y, z := linearSRGBToXYZ.mul(c.R, c.G, c.B)
	return XYZ{X: x, Y: y, Z: z}
}

// OKLab converts straight from linear sRGB through LMS.
func (c LinearSRGB) OKLab() OKLab {
	return lmsToLab(linearSRGBToLMS.mul(c.R, c.G, c.B))
}

// Hex returns the colour as a "#rrggbb" string.
func (c LinearSRGB) Hex() string {
	return c.SRGB().Hex()
}

// RelativeLuminance is the Y channel of the colour in XYZ.
func (c LinearSRGB) RelativeLuminance() float64 {
	return c.XYZ().Y
}

// XYZ is a CIE 1931 XYZ colour relative to a D65 white of luminance 1.
type XYZ struct {
	X, Y, Z float64
}

// LinearSRGB converts to linear sRGB.
func (c XYZ) LinearSRGB() LinearSRGB {
	r, g, b := xyzToLinearSRGB.mul(c.X, c.Y, c.Z)
	return LinearSRGB{R: r, G: g, B: b}
}

// SRGB converts to gamma-encoded sRGB.
func (c XYZ) SRGB() SRGB {
	return c.LinearSRGB().SRGB()
}

// OKLab converts to OKLab through LMS.
func (c XYZ) OKLab() OKLab {
	return lmsToLab(xyzToLMS.mul(c.X, c.Y, c.Z))
}

// Hex returns the colour as a "#rrggbb" string.
func (c XYZ) Hex() string {
	return c.SRGB().Hex()
}

// D65 white used for CIE Lab.
var labWhite = XYZ{X: 0.9504, Y: 1.0, Z: 1.0888}

const (
	labDelta  = 6.0 / 29
	labDelta3 = labDelta * labDelta * labDelta
)

// Lab converts to CIE L*a*b* relative to the D65 white point.
func (c XYZ) Lab() Lab {
	fx := labF(c.X / labWhite.X)
	fy := labF(c.Y / labWhite.Y)
	fz := labF(c.Z / labWhite.Z)
	return Lab{
		L: 116*fy - 16,
		A: 500 * (fx - fy),
		B: 200 * (fy - fz),
	}
}

func labF(t float64) float64 {
	if t > labDelta3 {
		return math.Cbrt(t)
	}
	return t/(3*labDelta*labDelta) + 4.0/29
}

// Lab is a CIE L*a*b* colour. L runs 0..100.
type Lab struct {
	L, A, B float64
}

// LabOf converts any colour to CIE Lab.
func LabOf(c Color) Lab {
	return c.OKLab().XYZ().Lab()
}

func lmsToLab(l, m, s float64) OKLab {
	L, a, b := lmsToOKLab.mul(math.Cbrt(l), math.Cbrt(m), math.Cbrt(s))
	return OKLab{L: L, A: a, B: b}
}
