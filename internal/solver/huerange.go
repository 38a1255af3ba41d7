// Package solver matches palette tiers to semantic targets and spaces tier
// hues evenly around the colour wheel.
package solver

import (
	"errors"
	"fmt"

	"github.com/jmylchreest/substance/internal/colour"
)

var (
	// ErrInvalidRange is returned for hue intervals that cannot be searched.
	ErrInvalidRange = errors.New("invalid hue range")

	// ErrInvalidTargets is returned when an assignment problem is malformed.
	ErrInvalidTargets = errors.New("invalid assignment targets")

	// ErrNotConverged is returned when a bounded search runs out of steps.
	ErrNotConverged = errors.New("search did not converge")
)

// HueRange is a named interval on the hue circle running counter-clockwise
// from Start for Span degrees. It may wrap through 0.
type HueRange struct {
	Name  string
	Start float64
	Span  float64
}

// NewHueRange builds the interval [start, end). An end below start wraps
// through 360, so NewHueRange("error", 350, 30) spans 40 degrees.
func NewHueRange(name string, start, end float64) (HueRange, error) {
	span := end - start
	if span < 0 {
		span += 360
	}
	if span <= 0 || span > 360 {
		return HueRange{}, fmt.Errorf("%w: %s spans %.2f degrees, want (0, 360]", ErrInvalidRange, name, span)
	}

	return HueRange{Name: name, Start: colour.NormalizeHue(start), Span: span}, nil
}

// MustHueRange is like NewHueRange but panics on an invalid range.
func MustHueRange(name string, start, end float64) HueRange {
	r, err := NewHueRange(name, start, end)
	if err != nil {
		panic(err)
	}
	return r
}

// End returns the exclusive upper bound, normalised.
func (r HueRange) End() float64 {
	return colour.NormalizeHue(r.Start + r.Span)
}

// Contains reports whether hue lies within the range.
func (r HueRange) Contains(hue float64) bool {
	return colour.NormalizeHue(hue-r.Start) < r.Span
}

// Center returns the hue halfway through the range.
func (r HueRange) Center() float64 {
	return colour.NormalizeHue(r.Start + r.Span/2)
}

// Deviation is the signed angular distance of hue from the centre, in
// units of half the span: 0 at the centre, -1 and +1 at the edges.
func (r HueRange) Deviation(hue float64) float64 {
	return colour.HueDelta(r.Center(), hue) / (r.Span / 2)
}

// Cost is the absolute deviation.
func (r HueRange) Cost(hue float64) float64 {
	d := r.Deviation(hue)
	if d < 0 {
		return -d
	}
	return d
}

func (r HueRange) String() string {
	return fmt.Sprintf("%s[%.0f,%.0f)", r.Name, r.Start, r.End())
}
