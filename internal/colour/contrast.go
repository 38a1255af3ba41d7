package colour

import "math"

// Contrast targets used by the palette.
const (
	// ContrastOutline is the minimum for non-text decoration such as
	// outlines.
	ContrastOutline = 3.5
	// ContrastText meets WCAG AA for body text.
	ContrastText = 4.5
	// ContrastStrong is required for text drawn on tier colours and
	// containers.
	ContrastStrong = 6.5
)

const (
	// contrastStep is the Lr increment of WalkContrast.
	contrastStep = 0.002
	// maxWalkSteps covers the full Lr range at contrastStep.
	maxWalkSteps = int(1/contrastStep) + 1
	// balanceEpsilon is how close the two contrasts of BalanceContrast
	// must be.
	balanceEpsilon = 0.01
)

// WalkContrast nudges the lightness of c in the direction of dir until its
// contrast against ref reaches target. A negative dir darkens (light
// palettes), a positive dir lightens (dark palettes). policy refits chroma
// after every step. The walk stops at the ends of the Lr range, so the
// result may fall short of target when target is unreachable.
func WalkContrast(c, ref OKLrch, target, dir float64, policy ChromaPolicy) OKLrch {
	step := contrastStep
	if dir < 0 {
		step = -step
	}

	for i := 0; i < maxWalkSteps && ContrastRatio(c, ref) < target; i++ {
		lr := c.Lr + step
		if lr <= 0 || lr >= 1 {
			c = policy(c.WithLr(math.Max(0, math.Min(1, lr))))
			break
		}
		c = policy(c.WithLr(lr))
	}

	return c
}

// BalanceContrast bisects the lightness of c between bg and fg until its
// contrast against both is equal, within balanceEpsilon. policy refits
// chroma after every step since the gamut boundary moves with lightness.
func BalanceContrast(c, bg, fg OKLrch, policy ChromaPolicy) OKLrch {
	// The contrast against bg grows as lightness moves away from bg.
	lo, hi := bg.Lr, fg.Lr
	mid := policy(c.WithLr((lo + hi) / 2))

	for i := 0; i < maxSearchIterations; i++ {
		diff := ContrastRatio(mid, bg) - ContrastRatio(mid, fg)
		if math.Abs(diff) <= balanceEpsilon || math.Abs(hi-lo) < 1e-9 {
			break
		}
		if diff < 0 {
			lo = mid.Lr
		} else {
			hi = mid.Lr
		}
		mid = policy(c.WithLr((lo + hi) / 2))
	}

	return mid
}
