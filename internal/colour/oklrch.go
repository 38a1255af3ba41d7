package colour

import (
	"fmt"
	"math"
)

// OKLrch swaps OKLch lightness for Lr, Ottosson's revised estimate that
// tracks CIE L* more closely. See
// https://bottosson.github.io/posts/colorpicker/#intermission---a-new-lightness-estimate-for-oklab.
// The constants assume a reference white with Y = 1.
const (
	LrK1 = 0.206
	LrK2 = 0.03
)

// LrK3 keeps Lr = 1 at L = 1.
const LrK3 = (1 + LrK1) / (1 + LrK2)

// LFromLr converts Lr to OKLab lightness.
func LFromLr(lr float64) float64 {
	return lr * (lr + LrK1) / (lr + LrK2) / LrK3
}

// LrFromL converts OKLab lightness to Lr, taking the positive root.
func LrFromL(l float64) float64 {
	k := LrK3*l - LrK1
	return (k + math.Sqrt(k*k+4*LrK2*LrK3*l)) / 2
}

// OKLrch is the colour type the palette engine works in.
type OKLrch struct {
	Lr, C, H float64
}

// NewOKLrch builds an OKLrch colour, normalising the hue.
func NewOKLrch(lr, c, h float64) OKLrch {
	return OKLrch{Lr: lr, C: c, H: NormalizeHue(h)}
}

// ToOKLrch converts any colour to OKLrch.
func ToOKLrch(c Color) OKLrch {
	lch := c.OKLab().LCh()
	return OKLrch{Lr: LrFromL(lch.L), C: lch.C, H: lch.H}
}

// OKLrchFromHex parses a hex colour straight into OKLrch.
func OKLrchFromHex(s string) (OKLrch, error) {
	c, err := ParseHex(s)
	if err != nil {
		return OKLrch{}, err
	}
	return ToOKLrch(c), nil
}

// L returns the OKLab lightness of the colour.
func (c OKLrch) L() float64 {
	return LFromLr(c.Lr)
}

// LCh converts to plain OKLch.
func (c OKLrch) LCh() OKLch {
	return OKLch{L: c.L(), C: c.C, H: c.H}
}

// OKLab converts to OKLab.
func (c OKLrch) OKLab() OKLab {
	return c.LCh().OKLab()
}

// SRGB converts to gamma-encoded sRGB.
func (c OKLrch) SRGB() SRGB {
	return c.OKLab().SRGB()
}

// Hex returns the colour as a "#rrggbb" string.
func (c OKLrch) Hex() string {
	return c.SRGB().Hex()
}

// InGamut reports whether the colour is displayable in sRGB.
func (c OKLrch) InGamut() bool {
	return c.SRGB().InGamut()
}

// WithLr returns a copy with a different Lr.
func (c OKLrch) WithLr(lr float64) OKLrch {
	c.Lr = lr
	return c
}

// WithC returns a copy with a different chroma.
func (c OKLrch) WithC(chroma float64) OKLrch {
	c.C = chroma
	return c
}

// WithH returns a copy with a different hue.
func (c OKLrch) WithH(h float64) OKLrch {
	c.H = NormalizeHue(h)
	return c
}

// String formats the colour as "oklrch(lr c h)".
func (c OKLrch) String() string {
	return fmt.Sprintf("oklrch(%.4f %.4f %.2f)", c.Lr, c.C, c.H)
}
