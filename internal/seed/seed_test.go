package seed

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Params
	}{
		{
			name:  "explicit defaults",
			input: "#ff0000,31524,0,0.05,0,0",
			want:  Params{Hex: "ff0000", Points: [5]int{3, 1, 5, 2, 4}, NeutralVariantChroma: 0.05},
		},
		{
			name:  "empty seed",
			input: "",
			want:  Params{Hex: "ff0000", Points: [5]int{3, 1, 5, 2, 4}, NeutralVariantChroma: 0.05},
		},
		{
			name:  "all fields",
			input: "#9648cd,14352,0.02,0.085,1,2",
			want: Params{
				Hex: "9648cd", Points: [5]int{1, 4, 3, 5, 2},
				NeutralChroma: 0.02, NeutralVariantChroma: 0.085,
				NeutralPoint: 1, NeutralVariantPoint: 2,
			},
		},
		{
			name:  "variant point follows neutral point",
			input: "#c3437e,15432,,,1",
			want: Params{
				Hex: "c3437e", Points: [5]int{1, 5, 4, 3, 2},
				NeutralVariantChroma: 0.05,
				NeutralPoint:         1, NeutralVariantPoint: 1,
			},
		},
		{
			name:  "upper case without hash",
			input: " ABCDEF , 12345 ",
			want:  Params{Hex: "abcdef", Points: [5]int{1, 2, 3, 4, 5}, NeutralVariantChroma: 0.05},
		},
		{
			name:  "only hex",
			input: "#308434",
			want:  Params{Hex: "308434", Points: [5]int{3, 1, 5, 2, 4}, NeutralVariantChroma: 0.05},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "short hex", input: "#12345"},
		{name: "long hex", input: "#ff00001"},
		{name: "non hex digits", input: "#ggg000"},
		{name: "four points", input: "#ff0000,3152"},
		{name: "repeated point", input: "#ff0000,31522"},
		{name: "point out of range", input: "#ff0000,31526"},
		{name: "zero point", input: "#ff0000,01234"},
		{name: "bad chroma", input: ",,abc"},
		{name: "negative chroma", input: ",,,-0.1"},
		{name: "NaN chroma", input: "#9648cd,,NaN"},
		{name: "infinite chroma", input: "#9648cd,,,Inf"},
		{name: "signed infinite chroma", input: ",,+Inf"},
		{name: "color point too large", input: ",,,,6"},
		{name: "negative color point", input: ",,,,,-1"},
		{name: "fractional color point", input: ",,,,1.5"},
		{name: "too many fields", input: "ff0000,31524,0,0.05,0,0,0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.input); !errors.Is(err, ErrInvalidSeed) {
				t.Errorf("Parse(%q) error = %v, want ErrInvalidSeed", tt.input, err)
			}
		})
	}
}

func TestParamsString(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "", want: "ff0000,31524,0,0.05,0,0"},
		{input: "#9648CD,14352,0.02,0.085,1,2", want: "9648cd,14352,0.02,0.085,1,2"},
		{input: "#c3437e,15432,,,1", want: "c3437e,15432,0,0.05,1,1"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			p, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got := p.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}

			again, err := Parse(p.String())
			if err != nil {
				t.Fatalf("Parse(String()) unexpected error: %v", err)
			}
			if again != p {
				t.Errorf("Parse(String()) = %+v, want %+v", again, p)
			}
		})
	}
}

func TestDefault(t *testing.T) {
	if got := Default().String(); got != "ff0000,31524,0,0.05,0,0" {
		t.Errorf("Default().String() = %q", got)
	}
}

func TestParseStrategy(t *testing.T) {
	for _, s := range []string{"colors", "Ranges", " colors "} {
		if _, err := ParseStrategy(s); err != nil {
			t.Errorf("ParseStrategy(%q) unexpected error: %v", s, err)
		}
	}
	if _, err := ParseStrategy("hungarian"); err == nil {
		t.Error("ParseStrategy(hungarian) expected an error")
	}

	var st Strategy
	if err := st.Set("ranges"); err != nil || st != StrategyRanges {
		t.Errorf("Set(ranges) = %v, strategy %q", err, st)
	}
	if st.Type() != "strategy" {
		t.Errorf("Type() = %q", st.Type())
	}
}
