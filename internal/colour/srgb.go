// Package colour implements the colour spaces, distance metrics and gamut
// and contrast searches that palette derivation is built on.
//
// Every colour type is an immutable value. Conversions are computed on
// demand; no representation is authoritative.
package colour

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a string is not a six digit hex colour.
var ErrInvalidHex = errors.New("invalid hex colour")

// gamutTolerance is how far outside [0, 1] a channel may stray and still
// count as displayable.
const gamutTolerance = 0.000005

// Color is implemented by every colour representation in this package.
type Color interface {
	OKLab() OKLab
	SRGB() SRGB
	Hex() string
}

// SRGB is a gamma-encoded sRGB colour with channels in device units [0, 1].
// Channels may fall outside that range while a colour is out of gamut.
type SRGB struct {
	R, G, B float64
}

// ParseHex parses a colour of the form "#rrggbb" or "rrggbb".
// Upper and lower case digits are both accepted.
func ParseHex(s string) (SRGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return SRGB{}, fmt.Errorf("%w: %q must have 6 hex digits", ErrInvalidHex, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return SRGB{}, fmt.Errorf("%w: %q contains non-hex characters", ErrInvalidHex, s)
	}

	return SRGBFromOctets(uint8(v>>16), uint8(v>>8), uint8(v)), nil // #nosec G115 -- masked by the uint8 conversion
}

// MustParseHex is like ParseHex but panics on malformed input.
// It is intended for package-level constants.
func MustParseHex(s string) SRGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SRGBFromOctets builds a colour from 8-bit channels.
func SRGBFromOctets(r, g, b uint8) SRGB {
	return SRGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// Octets returns the channels clamped to [0, 1] and rounded to the nearest
// 8-bit value.
func (c SRGB) Octets() [3]uint8 {
	return [3]uint8{octet(c.R), octet(c.G), octet(c.B)}
}

func octet(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

// Hex returns the colour as a lowercase "#rrggbb" string.
func (c SRGB) Hex() string {
	o := c.Octets()
	return fmt.Sprintf("#%02x%02x%02x", o[0], o[1], o[2])
}

// InGamut reports whether every channel lies within [0, 1], allowing a
// small tolerance for rounding. NaN channels are never in gamut.
func (c SRGB) InGamut() bool {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if !(v >= -gamutTolerance && v <= 1+gamutTolerance) {
			return false
		}
	}
	return true
}

// Linear removes the sRGB transfer function.
func (c SRGB) Linear() LinearSRGB {
	return LinearSRGB{
		R: decodeGamma(c.R),
		G: decodeGamma(c.G),
		B: decodeGamma(c.B),
	}
}

// OKLab converts the colour to OKLab.
func (c SRGB) OKLab() OKLab {
	return c.Linear().OKLab()
}

// SRGB returns c.
func (c SRGB) SRGB() SRGB {
	return c
}

// decodeGamma linearises one channel. The sign is carried through so
// out-of-gamut intermediates survive a round trip.
func decodeGamma(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	v = math.Abs(v)
	if v <= 0.04045 {
		return sign * v / 12.92
	}
	return sign * math.Pow((v+0.055)/1.055, 2.4)
}

// encodeGamma is the inverse of decodeGamma.
func encodeGamma(v float64) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1
	}
	v = math.Abs(v)
	if v <= 0.0031308 {
		return sign * 12.92 * v
	}
	return sign * (1.055*math.Pow(v, 1/2.4) - 0.055)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
