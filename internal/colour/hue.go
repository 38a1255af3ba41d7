package colour

import "math"

// NormalizeHue maps an angle in degrees onto [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -1e-17 + 360 rounds to 360.
	if h >= 360 {
		h = 0
	}
	return h
}

// HueDelta returns the signed angular difference to - from, in (-180, 180].
func HueDelta(from, to float64) float64 {
	d := NormalizeHue(to - from)
	if d > 180 {
		d -= 360
	}
	return d
}

// HueDistance returns the shortest angular distance between two hues.
// Returns a value between 0 and 180 degrees.
func HueDistance(h1, h2 float64) float64 {
	return math.Abs(HueDelta(h1, h2))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// hueOf returns the polar angle of (a, b) in degrees, normalised.
// Achromatic points (a = b = 0) report hue 0.
func hueOf(a, b float64) float64 {
	if a == 0 && b == 0 {
		return 0
	}
	return NormalizeHue(degrees(math.Atan2(b, a)))
}
