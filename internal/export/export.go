// Package export serialises resolved palettes as JSON or YAML documents.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/substance/internal/compression"
	"github.com/jmylchreest/substance/internal/scheme"
)

// Format is a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

func (f Format) String() string { return string(f) }

// Set implements pflag.Value.
func (f *Format) Set(v string) error {
	switch ff := Format(strings.ToLower(v)); ff {
	case FormatJSON, FormatYAML:
		*f = ff
		return nil
	case "yml":
		*f = FormatYAML
		return nil
	default:
		return fmt.Errorf("invalid export format %q (want json or yaml)", v)
	}
}

// Type implements pflag.Value.
func (f *Format) Type() string { return "format" }

// FormatOf guesses the format from a file name, ignoring any compression
// extension. Unknown extensions give JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(compression.TrimExt(path))) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Entry is one named palette colour.
type Entry struct {
	Name string  `json:"name" yaml:"name"`
	Hex  string  `json:"hex" yaml:"hex"`
	Lr   float64 `json:"lr" yaml:"lr"`
	C    float64 `json:"c" yaml:"c"`
	H    float64 `json:"h" yaml:"h"`
}

// Document is the exported form of a scheme.
type Document struct {
	Name  string             `json:"name,omitempty" yaml:"name,omitempty"`
	Seed  string             `json:"seed,omitempty" yaml:"seed,omitempty"`
	Modes map[string][]Entry `json:"modes" yaml:"modes"`
}

// NewDocument resolves the palettes of s for the given modes.
func NewDocument(name, seed string, s *scheme.Scheme, modes []scheme.Mode) *Document {
	doc := &Document{Name: name, Seed: seed, Modes: make(map[string][]Entry, len(modes))}
	for _, m := range modes {
		entries := s.Palette(m).Entries()
		out := make([]Entry, len(entries))
		for i, e := range entries {
			out[i] = Entry{Name: e.Name, Hex: e.Color.Hex(), Lr: e.Color.Lr, C: e.Color.C, H: e.Color.H}
		}
		doc.Modes[m.String()] = out
	}
	return doc
}

// Lookup returns the entry called name in mode.
func (d *Document) Lookup(mode, name string) (Entry, bool) {
	for _, e := range d.Modes[mode] {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

// Encode writes doc to w in format f.
func Encode(w io.Writer, doc *Document, f Format) error {
	switch f {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON, "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported export format %q", f)
	}
}

// Decode reads a document in format f from r.
func Decode(r io.Reader, f Format) (*Document, error) {
	var doc Document
	switch f {
	case FormatYAML:
		if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode YAML: %w", err)
		}
	case FormatJSON, "":
		if err := json.NewDecoder(r).Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported export format %q", f)
	}
	return &doc, nil
}

// Write saves doc to path on fs. A ".xz" or ".gz" suffix compresses the
// file. An empty format is guessed from the file name.
func Write(fs afero.Fs, path string, doc *Document, f Format) (err error) {
	if f == "" {
		f = FormatOf(path)
	}

	file, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()

	w, err := compression.NewWriter(file, compression.KindOf(path))
	if err != nil {
		return err
	}
	if err := Encode(w, doc, f); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to flush %s: %w", path, err)
	}
	return nil
}

// Read loads a document written by Write.
func Read(fs afero.Fs, path string, f Format) (*Document, error) {
	if f == "" {
		f = FormatOf(path)
	}

	file, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	r, err := compression.NewReader(file, compression.KindOf(path), compression.DefaultLimit)
	if err != nil {
		return nil, err
	}
	return Decode(r, f)
}
