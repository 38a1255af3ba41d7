package scheme

import (
	"sync"

	"github.com/jmylchreest/substance/internal/colour"
)

// Config describes a scheme. Only the hues of Tiers matter, plus the
// chroma and hue of the neutrals; every swatch sets its own lightness.
type Config struct {
	Tiers          [TierCount]colour.OKLrch
	Neutral        colour.OKLrch
	NeutralVariant colour.OKLrch
	// Bindings override DefaultBindings. The required roles must be set.
	Bindings map[Role]Binding
}

// Scheme is a validated Config whose palettes are computed on first use.
// It is safe for concurrent use.
type Scheme struct {
	cfg Config
	res resolution

	once     [2]sync.Once
	palettes [2]*Palette
}

// New validates cfg and resolves its bindings. Palettes are not computed
// until Light, Dark or Palette is called.
func New(cfg Config) (*Scheme, error) {
	res, err := resolve(cfg.Bindings)
	if err != nil {
		return nil, err
	}
	return &Scheme{cfg: cfg, res: res}, nil
}

// Light returns the light palette.
func (s *Scheme) Light() *Palette { return s.Palette(Light) }

// Dark returns the dark palette.
func (s *Scheme) Dark() *Palette { return s.Palette(Dark) }

// Palette returns the palette for mode m, computing it once.
func (s *Scheme) Palette(m Mode) *Palette {
	i := 0
	if m == Dark {
		i = 1
	}
	s.once[i].Do(func() {
		s.palettes[i] = newPalette(m, s.cfg, s.res)
	})
	return s.palettes[i]
}

// Config returns the configuration the scheme was built from.
func (s *Scheme) Config() Config { return s.cfg }

// Binding returns the effective binding of r, after defaults.
func (s *Scheme) Binding(r Role) (Binding, bool) {
	b, ok := s.res.bindings[r]
	return b, ok
}

// TierOf returns the tier (from 1) r resolves to. It reports false for
// roles bound to their own colour.
func (s *Scheme) TierOf(r Role) (int, bool) {
	row, ok := s.res.rows[r]
	if !ok || row >= TierCount {
		return 0, false
	}
	return row + 1, true
}
