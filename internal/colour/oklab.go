package colour

import "math"

// OKLab is a colour in Björn Ottosson's perceptual OKLab space.
type OKLab struct {
	L, A, B float64
}

// OKLab returns c.
func (c OKLab) OKLab() OKLab {
	return c
}

// XYZ converts to CIE XYZ.
func (c OKLab) XYZ() XYZ {
	l, m, s := okLabToLMS.mul(c.L, c.A, c.B)
	x, y, z := lmsToXYZ.mul(l*l*l, m*m*m, s*s*s)
	return XYZ{X: x, Y: y, Z: z}
}

// SRGB converts to gamma-encoded sRGB. The result may be out of gamut.
func (c OKLab) SRGB() SRGB {
	return c.XYZ().SRGB()
}

// Hex returns the colour as a "#rrggbb" string, clamping out-of-gamut
// channels.
func (c OKLab) Hex() string {
	return c.SRGB().Hex()
}

// LCh returns the polar form of the colour.
func (c OKLab) LCh() OKLch {
	return OKLch{L: c.L, C: math.Hypot(c.A, c.B), H: hueOf(c.A, c.B)}
}

// DistanceOK is the Euclidean distance between two OKLab colours.
func (c OKLab) DistanceOK(o OKLab) float64 {
	dl, da, db := c.L-o.L, c.A-o.A, c.B-o.B
	return math.Sqrt(dl*dl + da*da + db*db)
}

// OKLch is OKLab in lightness, chroma and hue (degrees) form.
type OKLch struct {
	L, C, H float64
}

// NewOKLch builds an OKLch colour, normalising the hue.
func NewOKLch(l, c, h float64) OKLch {
	return OKLch{L: l, C: c, H: NormalizeHue(h)}
}

// OKLab converts to rectangular form.
func (c OKLch) OKLab() OKLab {
	h := radians(c.H)
	return OKLab{L: c.L, A: c.C * math.Cos(h), B: c.C * math.Sin(h)}
}

// SRGB converts to gamma-encoded sRGB.
func (c OKLch) SRGB() SRGB {
	return c.OKLab().SRGB()
}

// Hex returns the colour as a "#rrggbb" string.
func (c OKLch) Hex() string {
	return c.SRGB().Hex()
}

// InGamut reports whether the colour is displayable in sRGB.
func (c OKLch) InGamut() bool {
	return c.SRGB().InGamut()
}
