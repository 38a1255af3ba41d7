package seed

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/substance/internal/colour"
	"github.com/jmylchreest/substance/internal/scheme"
)

func mustDerive(t *testing.T, s string, opts Options) *Derivation {
	t.Helper()
	p, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", s, err)
	}
	d, err := Derive(p, opts)
	if err != nil {
		t.Fatalf("Derive(%q) unexpected error: %v", s, err)
	}
	return d
}

func TestDerivePurple(t *testing.T) {
	d := mustDerive(t, "#9648cd,14352,0.02,0.085,1,2", DefaultOptions())

	lab := colour.MustParseHex("#9648cd").OKLab().LCh()
	if colour.HueDistance(d.Tiers[0].Hue, lab.H) > 1 {
		t.Errorf("tier1 hue = %v, want about %v", d.Tiers[0].Hue, lab.H)
	}

	wantSpaced := []float64{308.18, 13.09, 54.29, 113.25, 187.94, 252.7}
	for i, want := range wantSpaced {
		if got := d.SpacedHues[i]; colour.HueDistance(got, want) > 0.05 {
			t.Errorf("spaced hue %d = %.2f, want %.2f", i, got, want)
		}
	}
	if d.Stats.StdDev > DefaultOptions().Spacing.Epsilon {
		t.Errorf("spacing stddev = %v, want <= %v", d.Stats.StdDev, DefaultOptions().Spacing.Epsilon)
	}

	// Points 14352 place spaced hues 1, 4, 3, 5 and 2 on tiers 2..6.
	wantTiers := []float64{308.18, 13.09, 187.94, 113.25, 252.7, 54.29}
	for i, want := range wantTiers {
		if got := d.Tiers[i].Hue; colour.HueDistance(got, want) > 0.05 {
			t.Errorf("tier%d hue = %.2f, want %.2f", i+1, got, want)
		}
		if got := d.Config.Tiers[i].H; got != d.Tiers[i].Hue {
			t.Errorf("config tier%d hue = %v, want %v", i+1, got, d.Tiers[i].Hue)
		}
	}

	if got, want := d.Config.Neutral, colour.NewOKLrch(0, 0.02, d.SpacedHues[1]); got != want {
		t.Errorf("neutral = %v, want %v", got, want)
	}
	if got, want := d.Config.NeutralVariant, colour.NewOKLrch(0, 0.085, d.SpacedHues[2]); got != want {
		t.Errorf("neutral variant = %v, want %v", got, want)
	}
}

func TestDeriveAssignsAnchors(t *testing.T) {
	tests := []struct {
		name     string
		seed     string
		strategy Strategy
		want     map[scheme.Role]int
	}{
		{
			name:     "purple colors",
			seed:     "#9648cd,14352,0.02,0.085,1,2",
			strategy: StrategyColors,
			want: map[scheme.Role]int{
				scheme.RoleActive: 3, scheme.RoleError: 2, scheme.RoleLink: 5,
				scheme.RoleLinkVisited: 1, scheme.RolePositive: 4, scheme.RoleWarning: 6,
			},
		},
		{
			name:     "purple ranges",
			seed:     "#9648cd,14352,0.02,0.085,1,2",
			strategy: StrategyRanges,
			want: map[scheme.Role]int{
				scheme.RoleActive: 3, scheme.RoleError: 2, scheme.RoleLink: 5,
				scheme.RoleLinkVisited: 1, scheme.RolePositive: 4, scheme.RoleWarning: 6,
			},
		},
		{
			name:     "pink colors",
			seed:     "#c3437e,15432,,,1",
			strategy: StrategyColors,
			want: map[scheme.Role]int{
				scheme.RoleActive: 4, scheme.RoleError: 2, scheme.RoleLink: 3,
				scheme.RoleLinkVisited: 1, scheme.RolePositive: 5, scheme.RoleWarning: 6,
			},
		},
		{
			name:     "pink ranges",
			seed:     "#c3437e,15432,,,1",
			strategy: StrategyRanges,
			want: map[scheme.Role]int{
				scheme.RoleError: 1, scheme.RoleWarning: 2, scheme.RoleLink: 3,
				scheme.RoleActive: 4, scheme.RolePositive: 5,
			},
		},
		{
			name:     "green colors",
			seed:     "#308434,31542,0.025,,0,5",
			strategy: StrategyColors,
			want: map[scheme.Role]int{
				scheme.RoleActive: 3, scheme.RoleError: 5, scheme.RoleLink: 6,
				scheme.RoleLinkVisited: 2, scheme.RolePositive: 1, scheme.RoleWarning: 4,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.Strategy = tt.strategy
			d := mustDerive(t, tt.seed, opts)

			s, err := d.Scheme()
			if err != nil {
				t.Fatalf("Scheme() unexpected error: %v", err)
			}
			for role, want := range tt.want {
				if got, ok := s.TierOf(role); !ok || got != want {
					t.Errorf("TierOf(%s) = %d, want %d", role, got, want)
				}
			}
		})
	}
}

// The error role lands on the tier whose hue deviates least from the
// error hue range.
func TestDeriveErrorNearestRange(t *testing.T) {
	var errorAnchor Anchor
	for _, a := range Anchors() {
		if a.Role == scheme.RoleError {
			errorAnchor = a
		}
	}

	for _, strategy := range Strategies {
		t.Run(string(strategy), func(t *testing.T) {
			opts := DefaultOptions()
			opts.Strategy = strategy
			d := mustDerive(t, "#9648cd", opts)

			best, bestCost := 0, math.Inf(1)
			for i, tier := range d.Tiers {
				if c := errorAnchor.Range.Cost(tier.Hue); c < bestCost {
					best, bestCost = i, c
				}
			}

			got, ok := d.Assignment.TierFor(string(scheme.RoleError))
			if !ok || got != best {
				t.Errorf("error assigned to tier%d, want tier%d", got+1, best+1)
			}
		})
	}
}

func TestDeriveSeedsConverge(t *testing.T) {
	seeds := []string{"", "#0000ff", "#00ff00", "#ffff00", "#00ffff", "#808080", "#123456"}
	for _, s := range seeds {
		t.Run(s, func(t *testing.T) {
			d := mustDerive(t, s, DefaultOptions())
			if d.Stats.StdDev > 0.1 {
				t.Errorf("stddev = %v, want <= 0.1", d.Stats.StdDev)
			}
			if len(d.Assignment.Matches) != len(Anchors()) {
				t.Errorf("%d roles assigned, want %d", len(d.Assignment.Matches), len(Anchors()))
			}
			if _, err := d.Scheme(); err != nil {
				t.Errorf("Scheme() unexpected error: %v", err)
			}
		})
	}
}

func TestDeriveLogs(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = hclog.New(&hclog.LoggerOptions{Output: &buf, Level: hclog.Trace})

	mustDerive(t, "#9648cd", opts)

	out := buf.String()
	for _, want := range []string{"spacing pass", "hues spaced", "seed derived"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestFromString(t *testing.T) {
	s, d, err := FromString("#308434,31542,0.025,,0,5", Options{})
	if err != nil {
		t.Fatalf("FromString() unexpected error: %v", err)
	}
	if d.Params.String() != "308434,31542,0.025,0.05,0,5" {
		t.Errorf("Params = %q", d.Params.String())
	}
	if s.Config().Neutral.H != d.SpacedHues[0] {
		t.Errorf("neutral hue = %v, want %v", s.Config().Neutral.H, d.SpacedHues[0])
	}

	for _, bad := range []string{"#30843", "#9648cd,,NaN", "#9648cd,,,Inf"} {
		if _, _, err := FromString(bad, Options{}); !errors.Is(err, ErrInvalidSeed) {
			t.Errorf("FromString(%q) error = %v, want ErrInvalidSeed", bad, err)
		}
	}
}
