package scheme

import (
	"fmt"
	"math"

	"github.com/jmylchreest/substance/internal/colour"
)

// Swatch is one labelled palette colour together with the colour its text
// is drawn in.
type Swatch struct {
	Label   string
	Acronym string
	// Tone is the swatch lightness as a percentage of Lr.
	Tone  int
	Color colour.OKLrch
	Text  colour.OKLrch
}

func newSwatch(label, acronym string, c, text colour.OKLrch) Swatch {
	return Swatch{
		Label:   label,
		Acronym: acronym,
		Tone:    int(math.Round(c.Lr * 100)),
		Color:   c,
		Text:    text,
	}
}

// Spec is the "<acronym>-<tone>" tag printed under a swatch label.
func (s Swatch) Spec() string {
	return fmt.Sprintf("%s-%d", s.Acronym, s.Tone)
}

func rowSwatches(name, acronym string, r Row) []Swatch {
	return []Swatch{
		newSwatch(name, acronym, r.Color, r.On),
		newSwatch("On "+name, acronym, r.On, r.Color),
		newSwatch(name+" Container", acronym, r.Container, r.OnContainer),
		newSwatch("On "+name+" Container", acronym, r.OnContainer, r.Container),
		newSwatch(name+" Fixed", acronym, r.Fixed, r.On),
	}
}

// Rows returns the swatch rows of the palette: one per tier, one per
// colour-bound role, then the surface and surface container rows. They are
// built on first use and shared by later calls, so callers must not modify
// them.
func (p *Palette) Rows() [][]Swatch {
	p.swatchOnce.Do(func() { p.swatches = p.buildRows() })
	return p.swatches
}

func (p *Palette) buildRows() [][]Swatch {
	rows := make([][]Swatch, 0, len(p.rows)+2)
	for i, r := range p.rows {
		if i < TierCount {
			rows = append(rows, rowSwatches(fmt.Sprintf("Tier %d", i+1), fmt.Sprintf("T%d", i+1), r))
			continue
		}
		k := i - TierCount
		rows = append(rows, rowSwatches(p.extraRoles[k].Title(), fmt.Sprintf("C%d", k+1), r))
	}

	rows = append(rows, []Swatch{
		newSwatch("Surface", "N", p.surface, p.onSurface),
		newSwatch("On Surface", "N", p.onSurface, p.surface),
		newSwatch("On Surface Variant", "NV", p.onSurfaceVariant, p.surface),
		newSwatch("Outline", "NV", p.outline, p.surface),
		newSwatch("Outline Variant", "NV", p.outlineVariant, p.onSurface),
	})

	containers := make([]Swatch, len(p.containers))
	for l, c := range p.containers {
		label := "Surface Container"
		if name := levelNames[l]; name != "" {
			label += " " + Role(name).Title()
		}
		containers[l] = newSwatch(label, "N", c, p.onSurface)
	}
	rows = append(rows, containers)

	return rows
}

// TermRows returns the terminal colours 0..7 as faint, normal and bright
// rows.
func (p *Palette) TermRows() [3][8]colour.OKLrch {
	var out [3][8]colour.OKLrch
	for n := range 8 {
		out[0][n] = p.Term(n, TermContainer)
		out[1][n] = p.Term(n, TermFixed)
		out[2][n] = p.Term(n, TermNormal)
	}
	return out
}
