package solver

import (
	"errors"
	"math"
	"testing"
)

func TestNewHueRange(t *testing.T) {
	tests := []struct {
		name       string
		start, end float64
		wantSpan   float64
		wantErr    bool
	}{
		{name: "plain", start: 30, end: 90, wantSpan: 60},
		{name: "wraps through zero", start: 350, end: 30, wantSpan: 40},
		{name: "full circle", start: 0, end: 360, wantSpan: 360},
		{name: "empty", start: 10, end: 10, wantErr: true},
		{name: "more than a turn", start: 0, end: 400, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := NewHueRange(tt.name, tt.start, tt.end)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRange) {
					t.Fatalf("NewHueRange() error = %v, want ErrInvalidRange", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewHueRange() unexpected error: %v", err)
			}
			if r.Span != tt.wantSpan {
				t.Errorf("NewHueRange().Span = %v, want %v", r.Span, tt.wantSpan)
			}
		})
	}
}

func TestHueRangeWraps(t *testing.T) {
	r := MustHueRange("error", 350, 30)

	if got := r.Center(); math.Abs(got-10) > 1e-9 {
		t.Errorf("Center() = %v, want 10", got)
	}
	if got := r.End(); got != 30 {
		t.Errorf("End() = %v, want 30", got)
	}

	contains := []struct {
		hue  float64
		want bool
	}{
		{350, true},
		{355, true},
		{0, true},
		{10, true},
		{29.9, true},
		{30, false},
		{200, false},
		{349.9, false},
		{-5, true},
		{370, true},
	}
	for _, tt := range contains {
		if got := r.Contains(tt.hue); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.hue, got, tt.want)
		}
	}
}

func TestHueRangeDeviation(t *testing.T) {
	r := MustHueRange("error", 350, 30)

	tests := []struct {
		hue  float64
		want float64
	}{
		{hue: 10, want: 0},
		{hue: 350, want: -1},
		{hue: 30, want: 1},
		{hue: 0, want: -0.5},
		{hue: 20, want: 0.5},
		{hue: 50, want: 2},
		{hue: 190, want: 9},
	}

	for _, tt := range tests {
		if got := r.Deviation(tt.hue); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Deviation(%v) = %v, want %v", tt.hue, got, tt.want)
		}
		if got := r.Cost(tt.hue); math.Abs(got-math.Abs(tt.want)) > 1e-9 {
			t.Errorf("Cost(%v) = %v, want %v", tt.hue, got, math.Abs(tt.want))
		}
	}
}
