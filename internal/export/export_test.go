package export

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/jmylchreest/substance/internal/colour"
	"github.com/jmylchreest/substance/internal/scheme"
)

func testDocument(t *testing.T) *Document {
	t.Helper()
	var tiers [scheme.TierCount]colour.OKLrch
	for i, h := range []float64{10, 290, 80, 260, 180, 330} {
		tiers[i] = colour.NewOKLrch(0, 0, h)
	}
	s, err := scheme.New(scheme.Config{
		Tiers:          tiers,
		Neutral:        colour.NewOKLrch(0, 0.015, 60),
		NeutralVariant: colour.NewOKLrch(0, 0.02, 60),
		Bindings: map[scheme.Role]scheme.Binding{
			scheme.RoleLink:        scheme.TierBinding(1),
			scheme.RoleLinkVisited: scheme.TierBinding(2),
			scheme.RoleWarning:     scheme.TierBinding(3),
			scheme.RolePositive:    scheme.TierBinding(5),
			scheme.RoleError:       scheme.TierBinding(1),
		},
	})
	if err != nil {
		t.Fatalf("scheme.New() unexpected error: %v", err)
	}
	return NewDocument("redefined", "", s, scheme.Modes)
}

func TestNewDocument(t *testing.T) {
	doc := testDocument(t)

	if len(doc.Modes) != 2 {
		t.Fatalf("Modes has %d entries, want 2", len(doc.Modes))
	}
	light, ok := doc.Lookup("light", "surface")
	if !ok {
		t.Fatal("Lookup(light, surface) not found")
	}
	if light.Lr != 0.97 || !strings.HasPrefix(light.Hex, "#") {
		t.Errorf("light surface = %+v", light)
	}
	dark, _ := doc.Lookup("dark", "surface")
	if dark.Lr != 0.15 {
		t.Errorf("dark surface Lr = %v, want 0.15", dark.Lr)
	}
	if _, ok := doc.Lookup("light", "nonexistent"); ok {
		t.Error("Lookup(nonexistent) reported an entry")
	}
}

func TestEncodeDecode(t *testing.T) {
	doc := testDocument(t)

	for _, f := range []Format{FormatJSON, FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, doc, f); err != nil {
				t.Fatalf("Encode() unexpected error: %v", err)
			}
			got, err := Decode(&buf, f)
			if err != nil {
				t.Fatalf("Decode() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, doc) {
				t.Error("Decode(Encode()) differs from the original document")
			}
		})
	}
}

func TestWriteRead(t *testing.T) {
	doc := testDocument(t)
	fs := afero.NewMemMapFs()

	tests := []struct {
		path   string
		format Format
		// plain is a string the raw file holds when it is uncompressed.
		plain string
	}{
		{path: "out/palette.json", plain: `"name": "redefined"`},
		{path: "out/palette.yaml", plain: "name: redefined"},
		{path: "out/palette.json.xz"},
		{path: "out/palette.yml.gz"},
		{path: "out/palette.txt", format: FormatYAML, plain: "modes:"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if err := Write(fs, tt.path, doc, tt.format); err != nil {
				t.Fatalf("Write() unexpected error: %v", err)
			}

			raw, err := afero.ReadFile(fs, tt.path)
			if err != nil {
				t.Fatalf("ReadFile() unexpected error: %v", err)
			}
			if tt.plain != "" && !bytes.Contains(raw, []byte(tt.plain)) {
				t.Errorf("file does not contain %q", tt.plain)
			}
			if tt.plain == "" && bytes.Contains(raw, []byte("redefined")) {
				t.Error("compressed file contains plain text")
			}

			got, err := Read(fs, tt.path, tt.format)
			if err != nil {
				t.Fatalf("Read() unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, doc) {
				t.Error("Read() differs from the written document")
			}
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.json", FormatJSON},
		{"a.YAML", FormatYAML},
		{"a.yml.xz", FormatYAML},
		{"a", FormatJSON},
	}
	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}

	var f Format
	if err := f.Set("yml"); err != nil || f != FormatYAML {
		t.Errorf("Set(yml) = %v, %q", err, f)
	}
	if err := f.Set("toml"); err == nil {
		t.Error("Set(toml) expected an error")
	}
}
