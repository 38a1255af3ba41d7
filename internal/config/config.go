// Package config loads settings from flags, the environment and an
// optional substance.toml, in that order of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/jmylchreest/substance/internal/export"
	"github.com/jmylchreest/substance/internal/render"
	"github.com/jmylchreest/substance/internal/seed"
)

// Setting keys.
const (
	KeySeed       = "seed"
	KeyPreset     = "preset"
	KeyAssignment = "assignment"
	KeyColor      = "color"
	KeyMode       = "mode"
	KeyFormat     = "format"
)

const (
	// Name is the config file base name and the environment prefix.
	Name = "substance"
	// DynamicSeedEnv is read for the seed when SUBSTANCE_SEED is unset.
	DynamicSeedEnv = "SUBSTANCE_DYNAMIC_SEED"
)

// EnvKeyReplacer maps setting keys onto environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_", "-", "_")

// Field describes one setting.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that sets f.
func (f Field) Env() string {
	return strings.ToUpper(Name + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Fields lists every setting with its default.
var Fields = []Field{
	{Key: KeySeed, Value: "", Description: "seed string: hex,points,neutral_chroma,neutral_variant_chroma,neutral_color_point,neutral_variant_color_point"},
	{Key: KeyPreset, Value: "", Description: "built-in scheme to use when no seed is given"},
	{Key: KeyAssignment, Value: string(seed.StrategyColors), Description: "role assignment strategy (colors, ranges)"},
	{Key: KeyColor, Value: string(render.ColorAuto), Description: "when to colour output (auto, always, never)"},
	{Key: KeyMode, Value: string(render.ModeBoth), Description: "palettes to show (light, dark, both)"},
	{Key: KeyFormat, Value: "", Description: "export format (json, yaml); guessed from the file name when empty"},
}

// Dir returns the directory substance.toml is looked up in first:
// $XDG_CONFIG_HOME/substance, or the platform user config dir.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, Name)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, Name)
	}
	return ""
}

// Load configures v to read substance.toml from fs, searching paths in
// order, and binds the environment. A missing file is not an error.
func Load(fs afero.Fs, v *viper.Viper, paths ...string) error {
	v.SetFs(fs)
	v.SetConfigName(Name)
	v.SetConfigType("toml")
	for _, p := range paths {
		if p != "" {
			v.AddConfigPath(p)
		}
	}

	v.SetEnvPrefix(Name)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, f := range Fields {
		if f.Key == KeySeed {
			v.MustBindEnv(f.Key, f.Env(), DynamicSeedEnv)
			continue
		}
		v.MustBindEnv(f.Key, f.Env())
	}

	v.SetTypeByDefaultValue(true)
	for _, f := range Fields {
		v.SetDefault(f.Key, f.Value)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to read config: %w", err)
	}
	return nil
}

// Settings are the validated values of every setting.
type Settings struct {
	Seed       string
	Preset     string
	Assignment seed.Strategy
	Color      render.ColorFlag
	Mode       render.ModeFlag
	Format     export.Format
}

// Resolve reads and validates the settings held by v.
func Resolve(v *viper.Viper) (Settings, error) {
	s := Settings{
		Seed:   strings.TrimSpace(v.GetString(KeySeed)),
		Preset: strings.TrimSpace(v.GetString(KeyPreset)),
	}

	if err := s.Assignment.Set(v.GetString(KeyAssignment)); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyAssignment, err)
	}
	if err := s.Color.Set(v.GetString(KeyColor)); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyColor, err)
	}
	if err := s.Mode.Set(v.GetString(KeyMode)); err != nil {
		return Settings{}, fmt.Errorf("%s: %w", KeyMode, err)
	}
	if f := v.GetString(KeyFormat); f != "" {
		if err := s.Format.Set(f); err != nil {
			return Settings{}, fmt.Errorf("%s: %w", KeyFormat, err)
		}
	}
	return s, nil
}
