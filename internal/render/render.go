// Package render draws palettes as labelled terminal swatches.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/padding"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/jmylchreest/substance/internal/colour"
	"github.com/jmylchreest/substance/internal/scheme"
)

// Options sets the swatch geometry.
type Options struct {
	// LabelWidth is the width of a swatch's text column.
	LabelWidth int
	// LabelLines is the number of lines a label is wrapped into.
	LabelLines int
	// TermWidth is the width of a terminal colour block.
	TermWidth int
}

// DefaultOptions returns the standard swatch geometry.
func DefaultOptions() Options {
	return Options{LabelWidth: 18, LabelLines: 2, TermWidth: 8}
}

// Renderer draws swatches for one output.
type Renderer struct {
	lg   *lipgloss.Renderer
	opts Options
}

// New returns a renderer for w. Colour is enabled according to when.
func New(w io.Writer, when ColorFlag, opts Options) *Renderer {
	lg := lipgloss.NewRenderer(w)
	if ColorEnabled(w, when) {
		lg.SetColorProfile(termenv.TrueColor)
	} else {
		lg.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{lg: lg, opts: opts}
}

// ColorEnabled reports whether output to w should be coloured. For
// ColorAuto that means w is a terminal and NO_COLOR is unset.
func ColorEnabled(w io.Writer, when ColorFlag) bool {
	switch when {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(interface{ Fd() uintptr })
	return ok && term.IsTerminal(int(f.Fd())) // #nosec G115 -- file descriptors fit in int
}

func (r *Renderer) style(fg, bg colour.OKLrch) lipgloss.Style {
	return r.lg.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex())).
		Padding(0, 1)
}

// labelLines wraps label at width into exactly n lines of exactly width
// columns.
func labelLines(label string, width, n int) []string {
	lines := strings.Split(wordwrap.String(label, width), "\n")
	if len(lines) > n {
		lines = lines[:n]
	}
	for len(lines) < n {
		lines = append(lines, "")
	}
	for i, line := range lines {
		line = truncate.String(strings.TrimRight(line, " "), uint(width)) // #nosec G115 -- width is small and positive
		lines[i] = padding.String(line, uint(width))                      // #nosec G115 -- width is small and positive
	}
	return lines
}

// Swatch draws one swatch: the wrapped label followed by a line with the
// tone tag and hex value.
func (r *Renderer) Swatch(s scheme.Swatch) string {
	style := r.style(s.Text, s.Color)
	lines := labelLines(s.Label, r.opts.LabelWidth, r.opts.LabelLines)

	spec := fmt.Sprintf("%-6s     %s", s.Spec(), s.Color.Hex())
	lines = append(lines, padding.String(truncate.String(spec, uint(r.opts.LabelWidth)), uint(r.opts.LabelWidth))) // #nosec G115 -- width is small and positive

	for i, line := range lines {
		lines[i] = style.Render(line)
	}
	return strings.Join(lines, "\n")
}

// Row draws swatches side by side.
func (r *Renderer) Row(swatches []scheme.Swatch) string {
	blocks := make([]string, len(swatches))
	for i, s := range swatches {
		blocks[i] = r.Swatch(s)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// TermRows draws the terminal colours as faint, normal and bright lines.
func (r *Renderer) TermRows(p *scheme.Palette) string {
	blank := strings.Repeat(" ", r.opts.TermWidth)
	rows := p.TermRows()
	lines := make([]string, len(rows))
	for i, row := range rows {
		var b strings.Builder
		for _, c := range row {
			b.WriteString(r.style(c, c).Render(blank))
		}
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

// Palette draws every swatch row of p followed by the terminal colours.
func (r *Renderer) Palette(p *scheme.Palette) string {
	rows := p.Rows()
	out := make([]string, 0, len(rows)+1)
	for _, row := range rows {
		out = append(out, r.Row(row))
	}
	out = append(out, r.TermRows(p))
	return strings.Join(out, "\n")
}

// Heading draws a section title.
func (r *Renderer) Heading(title string) string {
	return r.lg.NewStyle().Bold(true).Render(title)
}
