package preset

import (
	"testing"

	"github.com/jmylchreest/substance/internal/colour"
	"github.com/jmylchreest/substance/internal/scheme"
	"github.com/jmylchreest/substance/internal/seed"
)

func TestBuildAll(t *testing.T) {
	for _, p := range All() {
		t.Run(p.Name, func(t *testing.T) {
			s, d, err := p.Build("", seed.DefaultOptions())
			if err != nil {
				t.Fatalf("Build() unexpected error: %v", err)
			}
			if p.Explicit() != (d == nil) {
				t.Errorf("Explicit() = %v but derivation = %v", p.Explicit(), d)
			}
			if d != nil && d.Stats.StdDev > 0.1 {
				t.Errorf("spacing stddev = %v, want <= 0.1", d.Stats.StdDev)
			}

			for _, m := range scheme.Modes {
				pal := s.Palette(m)
				for n := 1; n <= scheme.TierCount; n++ {
					c, on := pal.Tier(n, scheme.VariantColor), pal.Tier(n, scheme.VariantOn)
					if r := colour.ContrastRatio(c, on); r < colour.ContrastStrong {
						t.Errorf("%s tier%d contrast = %v, want >= %v", m, n, r, colour.ContrastStrong)
					}
				}
				for _, e := range pal.Entries() {
					if !e.Color.InGamut() {
						t.Errorf("%s %s out of gamut", m, e.Name)
					}
				}
			}
		})
	}
}

func TestSubstanceBindings(t *testing.T) {
	p, err := Get("substance")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}
	s, _, err := p.Build("", seed.DefaultOptions())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	tests := []struct {
		role scheme.Role
		want int
	}{
		{scheme.RoleLink, 3},
		{scheme.RoleLinkVisited, 1},
		{scheme.RoleError, 6},
		{scheme.RoleTerm4, 2},
		{scheme.RoleHighlight, 5},
	}
	for _, tt := range tests {
		if got, _ := s.TierOf(tt.role); got != tt.want {
			t.Errorf("TierOf(%s) = %d, want %d", tt.role, got, tt.want)
		}
	}
	if got := s.Config().Tiers[0].H; got != 340 {
		t.Errorf("tier1 hue = %v, want 340", got)
	}
}

func TestDynamicPreset(t *testing.T) {
	p, err := Get("Dynamic")
	if err != nil {
		t.Fatalf("Get() unexpected error: %v", err)
	}

	_, d, err := p.Build("#308434", seed.DefaultOptions())
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	if d.Params.Hex != "308434" {
		t.Errorf("dynamic seed hex = %q, want 308434", d.Params.Hex)
	}

	if _, _, err := p.Build("#nothex", seed.DefaultOptions()); err == nil {
		t.Error("Build() expected an error for a bad dynamic seed")
	}
}

func TestGet(t *testing.T) {
	if _, err := Get("solarized"); err == nil {
		t.Error("Get(solarized) expected an error")
	}
	names := Names()
	if len(names) != 6 || names[0] != "substance" || names[5] != "dynamic" {
		t.Errorf("Names() = %v", names)
	}
}
