// Package seed parses seed strings and derives complete scheme
// configurations from them.
//
// A seed has up to six comma separated fields:
//
//	hex,points,neutral_chroma,neutral_variant_chroma,neutral_color_point,neutral_variant_color_point
//
// Empty or missing fields take their defaults, so "" is a valid seed.
package seed

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jmylchreest/substance/internal/colour"
)

// ErrInvalidSeed is wrapped by every seed validation error.
var ErrInvalidSeed = errors.New("invalid seed")

// Defaults for empty seed fields.
const (
	DefaultHex                  = "ff0000"
	DefaultPoints               = "31524"
	DefaultNeutralChroma        = 0.0
	DefaultNeutralVariantChroma = 0.05
)

// fieldCount is the number of fields a seed may have.
const fieldCount = 6

var hexPattern = regexp.MustCompile(`^[a-f0-9]{6}$`)

// Params is a parsed seed.
type Params struct {
	// Hex is the seed colour as six lowercase digits without "#".
	Hex string
	// Points picks, for tiers 2..6, which spaced hue (1..5) each tier
	// takes. Every value appears exactly once.
	Points [5]int

	NeutralChroma        float64
	NeutralVariantChroma float64
	// NeutralPoint and NeutralVariantPoint index the spaced hues (0..5)
	// the neutrals take their hue from.
	NeutralPoint        int
	NeutralVariantPoint int
}

// Default returns the parameters of the empty seed.
func Default() Params {
	p, err := Parse("")
	if err != nil {
		panic(err)
	}
	return p
}

// Parse parses a seed string. The error names the offending field.
func Parse(s string) (Params, error) {
	fields := strings.Split(s, ",")
	if len(fields) > fieldCount {
		return Params{}, fmt.Errorf("%w: %d fields, at most %d allowed: %q", ErrInvalidSeed, len(fields), fieldCount, s)
	}
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	field := func(i int) string {
		if i < len(fields) {
			return fields[i]
		}
		return ""
	}

	var (
		p   Params
		err error
	)

	p.Hex = strings.ToLower(strings.TrimPrefix(field(0), "#"))
	if p.Hex == "" {
		p.Hex = DefaultHex
	}
	if !hexPattern.MatchString(p.Hex) {
		return Params{}, fmt.Errorf("%w: hex must be 6 hex digits: %q", ErrInvalidSeed, field(0))
	}

	points := field(1)
	if points == "" {
		points = DefaultPoints
	}
	if p.Points, err = parsePoints(points); err != nil {
		return Params{}, err
	}

	if p.NeutralChroma, err = parseChroma("neutral_chroma", field(2), DefaultNeutralChroma); err != nil {
		return Params{}, err
	}
	if p.NeutralVariantChroma, err = parseChroma("neutral_variant_chroma", field(3), DefaultNeutralVariantChroma); err != nil {
		return Params{}, err
	}

	if p.NeutralPoint, err = parseColorPoint("neutral_color_point", field(4), 0); err != nil {
		return Params{}, err
	}
	if p.NeutralVariantPoint, err = parseColorPoint("neutral_variant_color_point", field(5), p.NeutralPoint); err != nil {
		return Params{}, err
	}

	return p, nil
}

func parsePoints(s string) ([5]int, error) {
	var out [5]int
	if len(s) != len(out) {
		return out, fmt.Errorf("%w: points must have five digits: %q", ErrInvalidSeed, s)
	}

	var seen [6]bool
	for i, r := range s {
		d := int(r - '0')
		if d < 1 || d > 5 || seen[d] {
			return out, fmt.Errorf("%w: points must contain each of 1, 2, 3, 4 and 5 exactly once: %q", ErrInvalidSeed, s)
		}
		seen[d] = true
		out[i] = d
	}
	return out, nil
}

func parseChroma(name, s string, def float64) (float64, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %s must be a finite non-negative number: %q", ErrInvalidSeed, name, s)
	}
	return v, nil
}

func parseColorPoint(name, s string, def int) (int, error) {
	if s == "" {
		return def, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 5 {
		return 0, fmt.Errorf("%w: %s must be an integer between 0 and 5: %q", ErrInvalidSeed, name, s)
	}
	return v, nil
}

// String renders the canonical seed. Parsing it yields p again.
func (p Params) String() string {
	var points strings.Builder
	for _, d := range p.Points {
		points.WriteString(strconv.Itoa(d))
	}
	return strings.Join([]string{
		p.Hex,
		points.String(),
		strconv.FormatFloat(p.NeutralChroma, 'f', -1, 64),
		strconv.FormatFloat(p.NeutralVariantChroma, 'f', -1, 64),
		strconv.Itoa(p.NeutralPoint),
		strconv.Itoa(p.NeutralVariantPoint),
	}, ",")
}

// Color returns the seed colour.
func (p Params) Color() (colour.OKLrch, error) {
	return colour.OKLrchFromHex(p.Hex)
}
