package seed

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/substance/internal/colour"
	"github.com/jmylchreest/substance/internal/scheme"
	"github.com/jmylchreest/substance/internal/solver"
)

// Anchor ties a required role to the colour and hue range it should land
// near.
type Anchor struct {
	Role  scheme.Role
	Color colour.OKLrch
	Range solver.HueRange
}

func newAnchor(role scheme.Role, hex string, start, end float64) Anchor {
	return Anchor{
		Role:  role,
		Color: colour.ToOKLrch(colour.MustParseHex(hex)),
		Range: solver.MustHueRange(string(role), start, end),
	}
}

var anchors = []Anchor{
	newAnchor(scheme.RoleActive, "00ffff", 180, 220),
	newAnchor(scheme.RoleError, "ff0000", 350, 30),
	newAnchor(scheme.RoleLink, "0000ff", 220, 280),
	newAnchor(scheme.RoleLinkVisited, "ff00ff", 280, 350),
	newAnchor(scheme.RolePositive, "00ff00", 90, 180),
	newAnchor(scheme.RoleWarning, "ff7f00", 30, 90),
}

// Anchors returns the anchored roles in assignment order.
func Anchors() []Anchor {
	out := make([]Anchor, len(anchors))
	copy(out, anchors)
	return out
}

// Strategy selects how anchored roles are matched to tiers.
type Strategy string

const (
	// StrategyColors minimises the summed squared OKLab distance between
	// each anchor colour and the anchor rotated onto its tier's hue.
	StrategyColors Strategy = "colors"
	// StrategyRanges gives each role the tier nearest the centre of its
	// hue range, repairing collisions.
	StrategyRanges Strategy = "ranges"
)

// Strategies lists the valid strategies.
var Strategies = []Strategy{StrategyColors, StrategyRanges}

// ParseStrategy validates a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	st := Strategy(strings.ToLower(strings.TrimSpace(s)))
	for _, v := range Strategies {
		if st == v {
			return st, nil
		}
	}
	return "", fmt.Errorf("unknown assignment strategy %q (want colors or ranges)", s)
}

func (s Strategy) String() string { return string(s) }

// Set implements pflag.Value.
func (s *Strategy) Set(v string) error {
	st, err := ParseStrategy(v)
	if err != nil {
		return err
	}
	*s = st
	return nil
}

// Type implements pflag.Value.
func (s *Strategy) Type() string { return "strategy" }

func (s Strategy) targets() []solver.Target {
	out := make([]solver.Target, len(anchors))
	for i, a := range anchors {
		if s == StrategyRanges {
			out[i] = solver.RangeTarget(a.Range)
		} else {
			out[i] = solver.ColorTarget(string(a.Role), a.Color)
		}
	}
	return out
}

func (s Strategy) assign(tiers []solver.Tier) (solver.Assignment, error) {
	if s == StrategyRanges {
		return solver.AssignNearest(s.targets(), tiers)
	}
	return solver.AssignPermutation(s.targets(), tiers)
}
