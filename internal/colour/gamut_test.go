package colour

import (
	"math"
	"testing"
)

func TestMaxChromaAlwaysInGamut(t *testing.T) {
	for lr := 0.05; lr < 1; lr += 0.05 {
		for h := 0.0; h < 360; h += 15 {
			for _, maximize := range []bool{false, true} {
				got := MaxChroma(NewOKLrch(lr, 0.5, h), maximize)
				if !got.InGamut() {
					t.Fatalf("MaxChroma(%v, %v, %v) = %v, out of gamut", lr, h, maximize, got)
				}
				if got.C > 0.5 {
					t.Fatalf("MaxChroma raised an out-of-gamut chroma: %v", got)
				}
			}

			grey := NewOKLrch(lr, 0, h)
			widened := MaxChroma(grey, true)
			if !widened.InGamut() || widened.C < grey.C {
				t.Fatalf("MaxChroma(%v, true) = %v", grey, widened)
			}
		}
	}
}

func TestMaxChromaFindsBoundary(t *testing.T) {
	for _, h := range []float64{0, 60, 120, 180, 240, 300} {
		got := MaxChroma(NewOKLrch(0.6, 0, h), true)
		if got.C < 0.01 {
			t.Errorf("hue %v: MaxChroma() chroma = %v, want a saturated colour", h, got.C)
		}
		if got.WithC(got.C + 0.001).InGamut() {
			t.Errorf("hue %v: chroma %v is not the gamut boundary", h, got.C)
		}
	}
}

func TestMaxChromaLeavesInGamutColour(t *testing.T) {
	c := NewOKLrch(0.5, 0.02, 200)
	if got := MaxChroma(c, false); got != c {
		t.Errorf("MaxChroma(%v, false) = %v, want unchanged", c, got)
	}
}

func TestDechromatize(t *testing.T) {
	c := NewOKLrch(0.56, 0, 285)
	boundary := MaxChroma(c, true)

	tests := []struct {
		name   string
		factor float64
		want   float64
	}{
		{name: "full", factor: 1, want: boundary.C},
		{name: "scaled", factor: 0.65, want: boundary.C * 0.65},
		{name: "zero", factor: 0, want: 0},
		{name: "clamped high", factor: 2, want: boundary.C},
		{name: "clamped low", factor: -1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Dechromatize(c, tt.factor)
			if math.Abs(got.C-tt.want) > 1e-12 {
				t.Errorf("Dechromatize(%v) chroma = %v, want %v", tt.factor, got.C, tt.want)
			}
			if got.Lr != c.Lr || got.H != c.H {
				t.Errorf("Dechromatize() moved lightness or hue: %v", got)
			}
		})
	}

	if got := ScaleChroma(0.65)(c); got != Dechromatize(c, 0.65) {
		t.Errorf("ScaleChroma(0.65) = %v, want %v", got, Dechromatize(c, 0.65))
	}
}

func TestWalkContrast(t *testing.T) {
	white := NewOKLrch(1, 0, 0)
	black := NewOKLrch(0, 0, 0)

	tests := []struct {
		name   string
		c      OKLrch
		ref    OKLrch
		target float64
		dir    float64
		policy ChromaPolicy
	}{
		{name: "light text", c: NewOKLrch(0.6, 0, 0), ref: white, target: ContrastText, dir: -1, policy: KeepChroma},
		{name: "light outline", c: NewOKLrch(0.7, 0.02, 30), ref: white, target: ContrastOutline, dir: -1, policy: KeepChroma},
		{name: "dark text", c: NewOKLrch(0.3, 0, 0), ref: black, target: ContrastText, dir: 1, policy: KeepChroma},
		{name: "dark strong saturated", c: MaxChroma(NewOKLrch(0.3, 0, 285), true), ref: NewOKLrch(0.12, 0.02, 285), target: ContrastStrong, dir: 1, policy: MaximizeChroma},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WalkContrast(tt.c, tt.ref, tt.target, tt.dir, tt.policy)
			if r := ContrastRatio(got, tt.ref); r < tt.target {
				t.Errorf("WalkContrast() contrast = %v, want >= %v", r, tt.target)
			}
			if !got.InGamut() {
				t.Errorf("WalkContrast() = %v, out of gamut", got)
			}
			if (tt.dir < 0 && got.Lr > tt.c.Lr) || (tt.dir > 0 && got.Lr < tt.c.Lr) {
				t.Errorf("WalkContrast() moved Lr from %v to %v against dir %v", tt.c.Lr, got.Lr, tt.dir)
			}
		})
	}
}

func TestWalkContrastAlreadySatisfied(t *testing.T) {
	c := NewOKLrch(0.1, 0, 0)
	if got := WalkContrast(c, NewOKLrch(1, 0, 0), ContrastText, -1, KeepChroma); got != c {
		t.Errorf("WalkContrast() = %v, want %v unchanged", got, c)
	}
}

func TestWalkContrastStopsAtRangeEnd(t *testing.T) {
	got := WalkContrast(NewOKLrch(0.6, 0, 0), NewOKLrch(1, 0, 0), 30, -1, KeepChroma)
	if got.Lr != 0 {
		t.Errorf("WalkContrast() Lr = %v, want 0 for an unreachable target", got.Lr)
	}

	got = WalkContrast(NewOKLrch(0.4, 0, 0), NewOKLrch(0, 0, 0), 30, 1, KeepChroma)
	if got.Lr != 1 {
		t.Errorf("WalkContrast() Lr = %v, want 1 for an unreachable target", got.Lr)
	}
}

func TestBalanceContrast(t *testing.T) {
	tests := []struct {
		name   string
		c      OKLrch
		bg, fg OKLrch
		policy ChromaPolicy
	}{
		{name: "grey between white and black", c: NewOKLrch(0.3, 0, 0), bg: NewOKLrch(1, 0, 0), fg: NewOKLrch(0, 0, 0), policy: KeepChroma},
		{name: "grey between black and white", c: NewOKLrch(0.9, 0, 0), bg: NewOKLrch(0, 0, 0), fg: NewOKLrch(1, 0, 0), policy: KeepChroma},
		{name: "light surface", c: NewOKLrch(0.56, 0.1, 285), bg: NewOKLrch(0.97, 0.01, 340), fg: NewOKLrch(0.27, 0.01, 340), policy: ScaleChroma(0.85)},
		{name: "dark surface", c: NewOKLrch(0.56, 0.1, 95), bg: NewOKLrch(0.15, 0.01, 340), fg: NewOKLrch(0.85, 0.01, 340), policy: ScaleChroma(0.85)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BalanceContrast(tt.c, tt.bg, tt.fg, tt.policy)
			a := ContrastRatio(got, tt.bg)
			b := ContrastRatio(got, tt.fg)
			if math.Abs(a-b) > 0.05 {
				t.Errorf("BalanceContrast() contrasts = %v and %v, want equal", a, b)
			}
			if !got.InGamut() {
				t.Errorf("BalanceContrast() = %v, out of gamut", got)
			}
			lo, hi := math.Min(tt.bg.Lr, tt.fg.Lr), math.Max(tt.bg.Lr, tt.fg.Lr)
			if got.Lr < lo || got.Lr > hi {
				t.Errorf("BalanceContrast() Lr = %v, outside [%v, %v]", got.Lr, lo, hi)
			}
		})
	}
}
