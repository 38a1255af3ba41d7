// Package preset holds the built-in schemes.
package preset

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"

	"github.com/jmylchreest/substance/internal/colour"
	"github.com/jmylchreest/substance/internal/scheme"
	"github.com/jmylchreest/substance/internal/seed"
)

// Preset is a named scheme. It is either spelled out tier by tier or
// derived from a seed string.
type Preset struct {
	Name        string
	Description string
	// Seed is set for seed-derived presets.
	Seed string
	// Dynamic presets take their seed from configuration at build time.
	Dynamic bool

	config *scheme.Config
}

// Explicit reports whether the preset lists its tiers directly.
func (p Preset) Explicit() bool { return p.config != nil }

// Build constructs the preset's scheme. dynamicSeed is only read by dynamic
// presets. The derivation is nil for explicit presets.
func (p Preset) Build(dynamicSeed string, opts seed.Options) (*scheme.Scheme, *seed.Derivation, error) {
	if p.config != nil {
		s, err := scheme.New(*p.config)
		if err != nil {
			return nil, nil, fmt.Errorf("preset %s: %w", p.Name, err)
		}
		return s, nil, nil
	}

	s := p.Seed
	if p.Dynamic {
		s = dynamicSeed
	}
	sc, d, err := seed.FromString(s, opts)
	if err != nil {
		return nil, nil, fmt.Errorf("preset %s: %w", p.Name, err)
	}
	return sc, d, nil
}

func tiers(hues ...float64) [scheme.TierCount]colour.OKLrch {
	var out [scheme.TierCount]colour.OKLrch
	for i, h := range hues {
		out[i] = colour.NewOKLrch(0, 0, h)
	}
	return out
}

var presets = []Preset{
	{
		Name:        "substance",
		Description: "the reference scheme",
		config: &scheme.Config{
			Tiers:          tiers(340, 285, 230, 160, 95, 30),
			Neutral:        colour.NewOKLrch(0, 0.01, 340),
			NeutralVariant: colour.NewOKLrch(0, 0.02, 30),
			Bindings: map[scheme.Role]scheme.Binding{
				scheme.RoleLink:        scheme.TierBinding(3),
				scheme.RoleLinkVisited: scheme.TierBinding(1),
				scheme.RoleWarning:     scheme.TierBinding(5),
				scheme.RolePositive:    scheme.TierBinding(4),
				scheme.RoleTerm4:       scheme.TierBinding(2),
				scheme.RoleTerm6:       scheme.TierBinding(3),
				scheme.RoleError:       scheme.TierBinding(6),
			},
		},
	},
	{
		Name:        "redefined",
		Description: "warm neutrals with a red lead tier",
		config: &scheme.Config{
			Tiers:          tiers(10, 290, 80, 260, 180, 330),
			Neutral:        colour.NewOKLrch(0, 0.015, 60),
			NeutralVariant: colour.NewOKLrch(0, 0.02, 60),
			Bindings: map[scheme.Role]scheme.Binding{
				scheme.RoleLink:        scheme.TierBinding(1),
				scheme.RoleLinkVisited: scheme.TierBinding(2),
				scheme.RoleWarning:     scheme.TierBinding(3),
				scheme.RolePositive:    scheme.TierBinding(5),
				scheme.RoleTerm1:       scheme.TierBinding(1),
				scheme.RoleTerm4:       scheme.TierBinding(2),
				scheme.RoleTerm5:       scheme.TierBinding(6),
				scheme.RoleError:       scheme.TierBinding(1),
				scheme.RoleSelection:   scheme.TierBinding(6),
			},
		},
	},
	{Name: "bia", Description: "derived from purple", Seed: "#9648cd,14352,0.02,0.085,1,2"},
	{Name: "bubbaloo", Description: "derived from pink", Seed: "#c3437e,15432,,,1"},
	{Name: "voltera", Description: "derived from green", Seed: "#308434,31542,0.025,,0,5"},
	{Name: "dynamic", Description: "derived from the configured seed", Dynamic: true},
}

// All returns every preset in display order.
func All() []Preset {
	return slices.Clone(presets)
}

// Names returns the preset names in display order.
func Names() []string {
	return lo.Map(presets, func(p Preset, _ int) string { return p.Name })
}

// Get looks a preset up by name, ignoring case.
func Get(name string) (Preset, error) {
	p, ok := lo.Find(presets, func(p Preset) bool { return strings.EqualFold(p.Name, strings.TrimSpace(name)) })
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (available: %s)", name, strings.Join(Names(), ", "))
	}
	return p, nil
}
