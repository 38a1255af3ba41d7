package scheme

import (
	"fmt"
	"strings"
)

// Mode selects a light or dark palette.
type Mode int

const (
	Light Mode = iota
	Dark
)

// Modes lists both modes in render order.
var Modes = []Mode{Light, Dark}

func (m Mode) String() string {
	switch m {
	case Light:
		return "light"
	case Dark:
		return "dark"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Sign is the direction text moves in to gain contrast: darker (-1) on
// light palettes, lighter (+1) on dark ones.
func (m Mode) Sign() float64 {
	if m == Dark {
		return 1
	}
	return -1
}

// ParseMode parses "light" or "dark".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	default:
		return 0, fmt.Errorf("unknown mode %q (want light or dark)", s)
	}
}

// toneSet holds the target tones (Lr x 100) of one mode. Tones are derived
// from a 3 point increment: the highest light container sits 15 below
// white, text is 58 away from its background and fixed colours sit 29 away
// from the highest container.
type toneSet struct {
	// tier: color, on, container, on container, fixed.
	tier [5]float64
	// container: lowest, low, medium, high, highest.
	container [5]float64
	// surface: surface, on surface, on surface variant, outline, outline variant.
	surface [5]float64
}

var tones = map[Mode]toneSet{
	Light: {
		tier:      [5]float64{42, 100, 80, 22, 56},
		container: [5]float64{100, 94, 91, 88, 85},
		surface:   [5]float64{97, 27, 37, 56, 66},
	},
	Dark: {
		tier:      [5]float64{70, 12, 32, 90, 56},
		container: [5]float64{12, 18, 21, 24, 27},
		surface:   [5]float64{15, 85, 75, 56, 46},
	},
}
