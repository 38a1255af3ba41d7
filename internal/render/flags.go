package render

import (
	"fmt"
	"strings"

	"github.com/jmylchreest/substance/internal/scheme"
)

// ColorFlag selects when output is coloured. It implements pflag.Value.
type ColorFlag string

const (
	ColorAuto   ColorFlag = "auto"
	ColorAlways ColorFlag = "always"
	ColorNever  ColorFlag = "never"
)

func (c ColorFlag) String() string { return string(c) }

// Set implements pflag.Value.
func (c *ColorFlag) Set(v string) error {
	switch f := ColorFlag(strings.ToLower(v)); f {
	case ColorAuto, ColorAlways, ColorNever:
		*c = f
		return nil
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always or never)", v)
	}
}

// Type implements pflag.Value.
func (c *ColorFlag) Type() string { return "when" }

// ModeFlag selects which palettes to print. It implements pflag.Value.
type ModeFlag string

const (
	ModeLight ModeFlag = "light"
	ModeDark  ModeFlag = "dark"
	ModeBoth  ModeFlag = "both"
)

func (m ModeFlag) String() string { return string(m) }

// Set implements pflag.Value.
func (m *ModeFlag) Set(v string) error {
	switch f := ModeFlag(strings.ToLower(v)); f {
	case ModeLight, ModeDark, ModeBoth:
		*m = f
		return nil
	default:
		return fmt.Errorf("invalid mode %q (want light, dark or both)", v)
	}
}

// Type implements pflag.Value.
func (m *ModeFlag) Type() string { return "mode" }

// Modes returns the palette modes the flag selects, light first.
func (m ModeFlag) Modes() []scheme.Mode {
	switch m {
	case ModeLight:
		return []scheme.Mode{scheme.Light}
	case ModeDark:
		return []scheme.Mode{scheme.Dark}
	default:
		return []scheme.Mode{scheme.Light, scheme.Dark}
	}
}
