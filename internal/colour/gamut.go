package colour

import "math"

const (
	// chromaEpsilon is the width at which chroma bisection stops.
	chromaEpsilon = 0.0001
	// chromaCeiling bounds the upward search; nothing in sRGB gets close.
	chromaCeiling = 0.5
	// maxSearchIterations caps every bisection in this package.
	maxSearchIterations = 200
)

// MaxChroma fits c into the sRGB gamut at its lightness and hue.
//
// An out-of-gamut colour is reduced to the largest chroma that displays.
// An in-gamut colour is returned untouched unless maximize is set, in which
// case its chroma is raised as far as the gamut allows. The result is
// always in gamut.
// Adapted from https://github.com/LeaVerou/css.land/blob/master/lch/lch.js
func MaxChroma(c OKLrch, maximize bool) OKLrch {
	var lo, hi float64
	if c.InGamut() {
		if !maximize {
			return c
		}
		lo, hi = c.C, chromaCeiling
	} else {
		lo, hi = 0, c.C
	}

	l := c.L()
	for i := 0; hi-lo > chromaEpsilon && i < maxSearchIterations; i++ {
		mid := (lo + hi) / 2
		if (OKLch{L: l, C: mid, H: c.H}).InGamut() {
			lo = mid
		} else {
			hi = mid
		}
	}

	// lo is the last chroma that was seen in gamut.
	return c.WithC(lo)
}

// Dechromatize maximises chroma and then scales it by factor, which is
// clamped to [0, 1].
func Dechromatize(c OKLrch, factor float64) OKLrch {
	m := MaxChroma(c, true)
	return m.WithC(m.C * math.Max(0, math.Min(1, factor)))
}

// ChromaPolicy re-fits a colour's chroma after its lightness changes.
type ChromaPolicy func(OKLrch) OKLrch

// KeepChroma only pulls out-of-gamut colours back in.
func KeepChroma(c OKLrch) OKLrch {
	return MaxChroma(c, false)
}

// MaximizeChroma pushes chroma to the gamut boundary.
func MaximizeChroma(c OKLrch) OKLrch {
	return MaxChroma(c, true)
}

// ScaleChroma returns a policy that keeps chroma at factor times the gamut
// boundary.
func ScaleChroma(factor float64) ChromaPolicy {
	return func(c OKLrch) OKLrch {
		return Dechromatize(c, factor)
	}
}
