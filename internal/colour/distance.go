package colour

import "math"

// Luminance returns the relative luminance of a colour according to WCAG 2.x:
// the Y channel of its linear sRGB in XYZ. 0 is black and 1 is white.
// https://www.w3.org/TR/WCAG21/#dfn-relative-luminance
func Luminance(c Color) float64 {
	return c.SRGB().Linear().RelativeLuminance()
}

// ContrastRatio returns the WCAG contrast ratio between two colours.
// Returns a value between 1 and 21, where 21 is black against white.
// https://www.w3.org/TR/WCAG21/#dfn-contrast-ratio
func ContrastRatio(c1, c2 Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// DistanceMode selects a perceptual distance formula.
type DistanceMode int

const (
	// DistanceOK is Euclidean distance in OKLab.
	DistanceOK DistanceMode = iota
	// DistanceCIEDE2000 is the CIE 2000 colour difference in CIE Lab.
	DistanceCIEDE2000
)

// String returns the flag spelling of the mode.
func (m DistanceMode) String() string {
	switch m {
	case DistanceOK:
		return "ok"
	case DistanceCIEDE2000:
		return "ciede2000"
	default:
		return "unknown"
	}
}

// DeltaE measures the perceptual distance between two colours.
func DeltaE(c1, c2 Color, mode DistanceMode) float64 {
	if mode == DistanceCIEDE2000 {
		return CIEDE2000(LabOf(c1), LabOf(c2))
	}
	return c1.OKLab().DistanceOK(c2.OKLab())
}

// CIEDE2000 implements the CIE 2000 colour difference with unit weights
// (kL = kC = kH = 1), following Sharma, Wu and Dalal (2005).
func CIEDE2000(c1, c2 Lab) float64 {
	const pow25to7 = 6103515625.0 // 25^7

	cab1 := math.Hypot(c1.A, c1.B)
	cab2 := math.Hypot(c2.A, c2.B)
	cabMean7 := math.Pow((cab1+cab2)/2, 7)
	g := 0.5 * (1 - math.Sqrt(cabMean7/(cabMean7+pow25to7)))

	a1 := (1 + g) * c1.A
	a2 := (1 + g) * c2.A
	cp1 := math.Hypot(a1, c1.B)
	cp2 := math.Hypot(a2, c2.B)
	hp1 := hueOf(a1, c1.B)
	hp2 := hueOf(a2, c2.B)

	dL := c2.L - c1.L
	dC := cp2 - cp1

	chromaProduct := cp1 * cp2
	var dh float64
	switch {
	case chromaProduct == 0:
		dh = 0
	case math.Abs(hp2-hp1) <= 180:
		dh = hp2 - hp1
	case hp2-hp1 > 180:
		dh = hp2 - hp1 - 360
	default:
		dh = hp2 - hp1 + 360
	}
	dH := 2 * math.Sqrt(chromaProduct) * math.Sin(radians(dh/2))

	lMean := (c1.L + c2.L) / 2
	cMean := (cp1 + cp2) / 2

	var hMean float64
	switch {
	case chromaProduct == 0:
		hMean = hp1 + hp2
	case math.Abs(hp1-hp2) <= 180:
		hMean = (hp1 + hp2) / 2
	case hp1+hp2 < 360:
		hMean = (hp1 + hp2 + 360) / 2
	default:
		hMean = (hp1 + hp2 - 360) / 2
	}

	t := 1 -
		0.17*math.Cos(radians(hMean-30)) +
		0.24*math.Cos(radians(2*hMean)) +
		0.32*math.Cos(radians(3*hMean+6)) -
		0.20*math.Cos(radians(4*hMean-63))

	dTheta := 30 * math.Exp(-math.Pow((hMean-275)/25, 2))
	cMean7 := math.Pow(cMean, 7)
	rc := 2 * math.Sqrt(cMean7/(cMean7+pow25to7))

	l50 := (lMean - 50) * (lMean - 50)
	sl := 1 + 0.015*l50/math.Sqrt(20+l50)
	sc := 1 + 0.045*cMean
	sh := 1 + 0.015*cMean*t
	rt := -math.Sin(radians(2*dTheta)) * rc

	tl := dL / sl
	tc := dC / sc
	th := dH / sh

	return math.Sqrt(tl*tl + tc*tc + th*th + rt*tc*th)
}
