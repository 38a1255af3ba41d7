package seed

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/substance/internal/colour"
	"github.com/jmylchreest/substance/internal/scheme"
	"github.com/jmylchreest/substance/internal/solver"
)

// Options control Derive.
type Options struct {
	Strategy Strategy
	Spacing  solver.SpacingOptions
	// Logger also serves as the spacing logger when Spacing.Logger is nil.
	Logger hclog.Logger
}

// DefaultOptions returns the colors strategy with the default spacing
// profile.
func DefaultOptions() Options {
	return Options{
		Strategy: StrategyColors,
		Spacing:  solver.DefaultSpacingOptions(),
	}
}

// Derivation records every intermediate step from seed to scheme.
type Derivation struct {
	Params Params
	// SpacedHues are the six hues after spacing. SpacedHues[0] is the
	// seed hue.
	SpacedHues []float64
	Stats      solver.Stats
	Tiers      []solver.Tier
	Assignment solver.Assignment
	Config     scheme.Config
}

// Derive turns seed parameters into a scheme configuration:
//
//  1. tier1 takes the hue of the seed colour
//  2. five more hues follow at 60° steps and are spaced evenly
//  3. Points places the spaced hues on tiers 2..6
//  4. the anchored roles are assigned to tiers
//  5. the neutrals take the spaced hues picked by their colour points
func Derive(p Params, opts Options) (*Derivation, error) {
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if opts.Strategy == "" {
		opts.Strategy = StrategyColors
	}
	if opts.Spacing.Lightness == 0 {
		l := opts.Spacing.Logger
		opts.Spacing = solver.DefaultSpacingOptions()
		opts.Spacing.Logger = l
	}
	if opts.Spacing.Logger == nil {
		opts.Spacing.Logger = logger
	}

	base, err := p.Color()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}

	hues := make([]float64, scheme.TierCount)
	for i := range hues {
		hues[i] = colour.NormalizeHue(base.H + float64(i)*60)
	}
	spaced, err := solver.SpaceHues(hues, opts.Spacing)
	if err != nil {
		return nil, fmt.Errorf("failed to space hues: %w", err)
	}

	tiers := make([]solver.Tier, scheme.TierCount)
	tiers[0] = solver.Tier{Name: "tier1", Hue: base.H}
	for i, point := range p.Points {
		tiers[i+1] = solver.Tier{Name: fmt.Sprintf("tier%d", i+2), Hue: spaced[point]}
	}

	assignment, err := opts.Strategy.assign(tiers)
	if err != nil {
		return nil, fmt.Errorf("failed to assign roles: %w", err)
	}

	cfg := scheme.Config{
		Neutral:        colour.NewOKLrch(0, p.NeutralChroma, spaced[p.NeutralPoint]),
		NeutralVariant: colour.NewOKLrch(0, p.NeutralVariantChroma, spaced[p.NeutralVariantPoint]),
		Bindings:       make(map[scheme.Role]scheme.Binding, len(assignment.Matches)),
	}
	for i, t := range tiers {
		cfg.Tiers[i] = colour.NewOKLrch(0, 0, t.Hue)
	}
	for _, m := range assignment.Matches {
		cfg.Bindings[scheme.Role(m.Target)] = scheme.TierBinding(m.TierIndex + 1)
	}

	d := &Derivation{
		Params:     p,
		SpacedHues: spaced,
		Stats:      solver.HueStats(spaced, opts.Spacing),
		Tiers:      tiers,
		Assignment: assignment,
		Config:     cfg,
	}

	logger.Debug("seed derived",
		"seed", p.String(),
		"strategy", opts.Strategy,
		"tier1", base.H,
		"mean", d.Stats.Mean,
		"stddev", d.Stats.StdDev,
		"cost", assignment.Cost)

	return d, nil
}

// Scheme builds the scheme described by the derivation.
func (d *Derivation) Scheme() (*scheme.Scheme, error) {
	return scheme.New(d.Config)
}

// FromString parses s and builds its scheme.
func FromString(s string, opts Options) (*scheme.Scheme, *Derivation, error) {
	p, err := Parse(s)
	if err != nil {
		return nil, nil, err
	}
	d, err := Derive(p, opts)
	if err != nil {
		return nil, nil, err
	}
	sc, err := d.Scheme()
	if err != nil {
		return nil, nil, err
	}
	return sc, d, nil
}
