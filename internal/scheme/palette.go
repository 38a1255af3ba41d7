package scheme

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jmylchreest/substance/internal/colour"
)

// Chroma factors applied to the less prominent swatches.
const (
	mutedChroma = 0.65
	fixedChroma = 0.85
)

// Variant picks one of the five swatches of a row.
type Variant int

const (
	VariantColor Variant = iota
	VariantOn
	VariantContainer
	VariantOnContainer
	VariantFixed
)

// Variants lists every row variant in display order.
var Variants = []Variant{VariantColor, VariantOn, VariantContainer, VariantOnContainer, VariantFixed}

// Name formats the accessor name of variant v of base, e.g.
// "on_tier1_container".
func (v Variant) Name(base string) string {
	switch v {
	case VariantOn:
		return "on_" + base
	case VariantContainer:
		return base + "_container"
	case VariantOnContainer:
		return "on_" + base + "_container"
	case VariantFixed:
		return base + "_fixed"
	default:
		return base
	}
}

// Row is the five swatches derived from one base colour.
type Row struct {
	Color       colour.OKLrch
	On          colour.OKLrch
	Container   colour.OKLrch
	OnContainer colour.OKLrch
	Fixed       colour.OKLrch
}

// Get returns variant v.
func (r Row) Get(v Variant) colour.OKLrch {
	switch v {
	case VariantOn:
		return r.On
	case VariantContainer:
		return r.Container
	case VariantOnContainer:
		return r.OnContainer
	case VariantFixed:
		return r.Fixed
	default:
		return r.Color
	}
}

// Level is a surface container elevation.
type Level int

const (
	Lowest Level = iota
	Low
	Medium
	High
	Highest
)

var levelNames = [...]string{"lowest", "low", "", "high", "highest"}

// TermVariant picks the normal, fixed (bright) or container (faint) form of
// a terminal colour.
type TermVariant int

const (
	TermNormal TermVariant = iota
	TermFixed
	TermContainer
)

// Entry is one named, resolved palette colour.
type Entry struct {
	Name  string
	Color colour.OKLrch
}

// Palette is the resolved colour set of one mode. It is immutable.
type Palette struct {
	mode  Mode
	rows  []Row
	roles map[Role]int
	// extraRoles names the role behind each row past the tiers.
	extraRoles []Role

	surface          colour.OKLrch
	onSurface        colour.OKLrch
	onSurfaceVariant colour.OKLrch
	outline          colour.OKLrch
	outlineVariant   colour.OKLrch
	containers       [5]colour.OKLrch

	swatchOnce sync.Once
	swatches   [][]Swatch
}

func newPalette(mode Mode, cfg Config, res resolution) *Palette {
	ts := tones[mode]
	dir := mode.Sign()
	at := func(c colour.OKLrch, tone float64) colour.OKLrch {
		return c.WithLr(tone / 100)
	}

	p := &Palette{
		mode:       mode,
		roles:      res.rows,
		extraRoles: res.extraRole,
	}

	n, nv := cfg.Neutral, cfg.NeutralVariant
	p.surface = colour.KeepChroma(at(n, ts.surface[0]))
	p.onSurface = colour.KeepChroma(at(n, ts.surface[1]))
	p.onSurfaceVariant = colour.WalkContrast(colour.KeepChroma(at(nv, ts.surface[2])),
		p.surface, colour.ContrastText, dir, colour.KeepChroma)
	p.outline = colour.WalkContrast(colour.KeepChroma(at(nv, ts.surface[3])),
		p.surface, colour.ContrastOutline, dir, colour.KeepChroma)
	p.outlineVariant = colour.KeepChroma(at(nv, ts.surface[4]))

	for i, tone := range ts.container {
		p.containers[i] = colour.KeepChroma(at(n, tone))
	}

	bases := append(cfg.Tiers[:], res.extra...)
	p.rows = make([]Row, len(bases))
	for i, base := range bases {
		t := ts.tier
		var r Row
		r.On = colour.Dechromatize(at(base, t[1]), mutedChroma)
		r.Color = colour.WalkContrast(colour.MaxChroma(at(base, t[0]), true),
			r.On, colour.ContrastStrong, dir, colour.MaximizeChroma)
		r.Container = colour.Dechromatize(at(base, t[2]), mutedChroma)
		r.OnContainer = colour.WalkContrast(colour.MaxChroma(at(base, t[3]), true),
			r.Container, colour.ContrastStrong, dir, colour.MaximizeChroma)
		r.Fixed = colour.BalanceContrast(colour.Dechromatize(at(base, t[4]), fixedChroma),
			p.surface, p.onSurface, colour.ScaleChroma(fixedChroma))
		p.rows[i] = r
	}

	return p
}

// Mode returns the mode the palette was computed for.
func (p *Palette) Mode() Mode { return p.mode }

// Tier returns variant v of tier n. n counts from 1 and must be at most
// TierCount.
func (p *Palette) Tier(n int, v Variant) colour.OKLrch {
	if n < 1 || n > TierCount {
		panic(fmt.Sprintf("scheme: tier %d out of range", n))
	}
	return p.rows[n-1].Get(v)
}

// Role returns variant v of the row bound to r.
func (p *Palette) Role(r Role, v Variant) (colour.OKLrch, bool) {
	i, ok := p.roles[r]
	if !ok {
		return colour.OKLrch{}, false
	}
	return p.rows[i].Get(v), true
}

func (p *Palette) Surface() colour.OKLrch          { return p.surface }
func (p *Palette) OnSurface() colour.OKLrch        { return p.onSurface }
func (p *Palette) OnSurfaceVariant() colour.OKLrch { return p.onSurfaceVariant }
func (p *Palette) Outline() colour.OKLrch          { return p.outline }
func (p *Palette) OutlineVariant() colour.OKLrch   { return p.outlineVariant }

// SurfaceContainer returns the container colour at level l.
func (p *Palette) SurfaceContainer(l Level) colour.OKLrch {
	return p.containers[l]
}

// Term returns terminal colour n (0..7). 1..6 follow their roles; 0 and 7
// come from the neutral surfaces.
func (p *Palette) Term(n int, v TermVariant) colour.OKLrch {
	switch n {
	case 0:
		switch v {
		case TermFixed:
			return p.containers[Medium]
		case TermContainer:
			return p.surface
		default:
			return p.outlineVariant
		}
	case 7:
		switch v {
		case TermFixed:
			return p.onSurfaceVariant
		case TermContainer:
			return p.outline
		default:
			return p.onSurface
		}
	}

	if n < 1 || n > 6 {
		panic(fmt.Sprintf("scheme: terminal colour %d out of range", n))
	}
	row := p.rows[p.roles[termRole(n)]]
	switch v {
	case TermFixed:
		return row.Fixed
	case TermContainer:
		return row.Container
	default:
		return row.Color
	}
}

// Entries lists every accessor of the palette with its colour: tier rows,
// surfaces, containers, roles and terminal colours.
func (p *Palette) Entries() []Entry {
	var out []Entry
	for n := 1; n <= TierCount; n++ {
		for _, v := range Variants {
			out = append(out, Entry{Name: v.Name(fmt.Sprintf("tier%d", n)), Color: p.Tier(n, v)})
		}
	}

	out = append(out,
		Entry{Name: "surface", Color: p.surface},
		Entry{Name: "on_surface", Color: p.onSurface},
		Entry{Name: "on_surface_variant", Color: p.onSurfaceVariant},
		Entry{Name: "outline", Color: p.outline},
		Entry{Name: "outline_variant", Color: p.outlineVariant},
	)

	for l := Lowest; l <= Highest; l++ {
		name := "surface_container"
		if levelNames[l] != "" {
			name += "_" + levelNames[l]
		}
		out = append(out, Entry{Name: name, Color: p.containers[l]})
	}

	for _, r := range allRoles {
		if strings.HasPrefix(string(r), "term") {
			// Listed with term0 and term7 below.
			continue
		}
		for _, v := range Variants {
			c, _ := p.Role(r, v)
			out = append(out, Entry{Name: v.Name(string(r)), Color: c})
		}
	}

	for n := 0; n <= 7; n++ {
		base := fmt.Sprintf("term%d", n)
		out = append(out,
			Entry{Name: base, Color: p.Term(n, TermNormal)},
			Entry{Name: base + "_fixed", Color: p.Term(n, TermFixed)},
			Entry{Name: base + "_container", Color: p.Term(n, TermContainer)},
		)
	}

	return out
}
