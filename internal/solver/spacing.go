package solver

import (
	"cmp"
	"fmt"
	"math"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/substance/internal/colour"
)

// hueEpsilon ends a hue bisection once a step moves less than this.
const hueEpsilon = 0.0001

// maxHueSteps caps a single hue bisection. Halving the interval reaches
// hueEpsilon in well under this many steps, so hitting it means the search
// is not converging.
var maxHueSteps = 200

// SpacingOptions tune SpaceHues.
type SpacingOptions struct {
	// Lightness and Chroma place every hue at a common reference colour.
	// Chroma is then maximised within the sRGB gamut.
	Lightness float64
	Chroma    float64
	// Epsilon is the standard deviation of adjacent distances at which
	// the hues count as evenly spaced.
	Epsilon float64
	// MaxPasses bounds the outer relaxation loop.
	MaxPasses int
	Logger    hclog.Logger
}

// DefaultSpacingOptions returns the reference profile used by seed
// derivation.
func DefaultSpacingOptions() SpacingOptions {
	return SpacingOptions{
		Lightness: 0.53,
		Chroma:    0.5,
		Epsilon:   0.1,
		MaxPasses: 100,
	}
}

func (o SpacingOptions) logger() hclog.Logger {
	if o.Logger == nil {
		return hclog.NewNullLogger()
	}
	return o.Logger
}

// Stats summarises the CIEDE2000 distances between neighbouring hues on the
// closed cycle (the last hue neighbours the first).
type Stats struct {
	Mean   float64
	StdDev float64
}

func adjacentStats(colors []colour.OKLrch) Stats {
	n := len(colors)
	dists := make([]float64, n)
	var sum float64
	for i := range colors {
		dists[i] = distance(colors[i], colors[(i+1)%n])
		sum += dists[i]
	}
	mean := sum / float64(n)

	var sq float64
	for _, d := range dists {
		sq += (d - mean) * (d - mean)
	}
	return Stats{Mean: mean, StdDev: math.Sqrt(sq / float64(n))}
}

func distance(a, b colour.OKLrch) float64 {
	return colour.DeltaE(a, b, colour.DistanceCIEDE2000)
}

func (o SpacingOptions) reference(hue float64) colour.OKLrch {
	return colour.MaxChroma(colour.NewOKLrch(o.Lightness, o.Chroma, hue), true)
}

// HueStats reports how evenly hues are spaced at the reference profile of
// opts.
func HueStats(hues []float64, opts SpacingOptions) Stats {
	colors := make([]colour.OKLrch, len(hues))
	for i, h := range hues {
		colors[i] = opts.reference(h)
	}
	return adjacentStats(colors)
}

// SpaceHues nudges every hue but the first until neighbouring hues are
// perceptually equidistant. Hues are treated as a closed cycle in the order
// given.
//
// Each pass sweeps forward, pulling any hue that sits further than the mean
// distance from its predecessor back towards it, then backward doing the
// same against the successor. The loop ends when the standard deviation of
// the distances drops to opts.Epsilon, when a pass moves nothing, or after
// opts.MaxPasses passes. The last two are accepted as a stable spacing.
func SpaceHues(hues []float64, opts SpacingOptions) ([]float64, error) {
	if len(hues) < 3 {
		return nil, fmt.Errorf("%w: need at least 3 hues to space, got %d", ErrInvalidTargets, len(hues))
	}
	log := opts.logger()

	colors := make([]colour.OKLrch, len(hues))
	for i, h := range hues {
		colors[i] = opts.reference(h)
	}
	n := len(colors)

	stats := adjacentStats(colors)
	pass := 0
	for ; pass < opts.MaxPasses && stats.StdDev > opts.Epsilon; pass++ {
		changed := false

		for i := 1; i < n; i++ {
			prev := colors[i-1]
			if distance(colors[i], prev) <= stats.Mean {
				continue
			}
			mean := stats.Mean
			next, err := findHue(colors[i], prev.H, colors[i].H, func(c colour.OKLrch) int {
				return cmp.Compare(mean, distance(c, prev))
			})
			if err != nil {
				return nil, fmt.Errorf("failed to space hue %d: %w", i, err)
			}
			changed = changed || next.H != colors[i].H
			colors[i] = next
			stats = adjacentStats(colors)
		}

		if stats.StdDev <= opts.Epsilon {
			log.Trace("spacing pass", "pass", pass, "sweep", "forward", "mean", stats.Mean, "stddev", stats.StdDev)
			break
		}

		for i := n - 1; i >= 1; i-- {
			succ := colors[(i+1)%n]
			if distance(colors[i], succ) <= stats.Mean {
				continue
			}
			mean := stats.Mean
			next, err := findHue(colors[i], colors[i].H, succ.H, func(c colour.OKLrch) int {
				return cmp.Compare(distance(c, succ), mean)
			})
			if err != nil {
				return nil, fmt.Errorf("failed to space hue %d: %w", i, err)
			}
			changed = changed || next.H != colors[i].H
			colors[i] = next
			stats = adjacentStats(colors)
		}

		log.Trace("spacing pass", "pass", pass, "mean", stats.Mean, "stddev", stats.StdDev, "changed", changed)
		if !changed {
			break
		}
	}

	out := make([]float64, n)
	for i, c := range colors {
		out[i] = c.H
	}
	log.Debug("hues spaced", "passes", pass, "stddev", stats.StdDev, "hues", out)
	return out, nil
}

// findHue bisects the hue of c between lo and hi, which run counter-clockwise
// and may wrap. dir reports which way to move: positive towards hi,
// negative towards lo, zero when c is acceptable. Every candidate is re-fitted
// to the gamut boundary.
func findHue(c colour.OKLrch, lo, hi float64, dir func(colour.OKLrch) int) (colour.OKLrch, error) {
	for range maxHueSteps {
		if span := colour.NormalizeHue(hi - lo); span > 180 {
			return c, fmt.Errorf("%w: %.4f to %.4f spans %.4f degrees, want at most 180", ErrInvalidRange, lo, hi, span)
		}

		var hue float64
		switch r := dir(c); {
		case r > 0:
			hue, lo = (c.H+hi)/2, c.H
		case r < 0:
			hue, hi = (c.H+lo)/2, c.H
		default:
			return c, nil
		}

		// The plain average lands on the far side of the circle when the
		// interval wraps through 0.
		if hue < lo {
			hue += 180
		}

		next := colour.MaxChroma(c.WithH(hue), true)
		if math.Abs(next.H-c.H) < hueEpsilon {
			return next, nil
		}
		c = next
	}
	return c, fmt.Errorf("%w: no fit between %.4f and %.4f after %d steps", ErrNotConverged, lo, hi, maxHueSteps)
}
