package cli

import (
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/substance/internal/config"
	"github.com/jmylchreest/substance/internal/image"
	"github.com/jmylchreest/substance/internal/imagecache"
	"github.com/jmylchreest/substance/internal/preset"
	"github.com/jmylchreest/substance/internal/render"
	"github.com/jmylchreest/substance/internal/scheme"
	"github.com/jmylchreest/substance/internal/seed"
)

// defaultPreset is used when neither a seed nor a preset is configured.
const defaultPreset = "substance"

// imageSeed fixes the k-means source so an image always gives one seed.
const imageSeed = 1

// source is a resolved scheme and what it was built from.
type source struct {
	name string
	// seed is the canonical seed string. It is empty for explicit presets.
	seed       string
	scheme     *scheme.Scheme
	derivation *seed.Derivation
}

// sourceFlags are the flags that choose a scheme.
type sourceFlags struct {
	image      string
	assignment seed.Strategy
}

// register adds the scheme selection flags to cmd. The seed, preset and
// assignment flags are bound to their settings in setup.
func (f *sourceFlags) register(cmd *cobra.Command) {
	f.assignment = seed.StrategyColors
	cmd.Flags().String(config.KeySeed, "", "seed string: hex,points,neutral_chroma,neutral_variant_chroma,neutral_point,neutral_variant_point")
	cmd.Flags().String(config.KeyPreset, "", "built-in scheme name (list them with: substance presets)")
	cmd.Flags().Var(&f.assignment, config.KeyAssignment, "role assignment strategy (colors, ranges)")
	cmd.Flags().StringVarP(&f.image, "image", "i", "", "derive the seed from an image file or URL")
}

func registerMode(cmd *cobra.Command) {
	mode := render.ModeBoth
	cmd.Flags().Var(&mode, config.KeyMode, "palettes to use (light, dark, both)")
}

// seedOptions returns derivation options carrying the configured strategy
// and logger.
func (a *app) seedOptions() seed.Options {
	opts := seed.DefaultOptions()
	opts.Strategy = a.settings.Assignment
	opts.Logger = a.logger.Named("seed")
	return opts
}

// imagePath returns a local path for the image at ref, downloading it into
// the image cache when ref is a URL.
func (a *app) imagePath(ctx context.Context, ref string) (string, error) {
	if !imagecache.IsRemote(ref) {
		return ref, nil
	}
	cache, err := imagecache.New(a.fs, imagecache.Options{Logger: a.logger.Named("imagecache")})
	if err != nil {
		return "", err
	}
	return cache.Fetch(ctx, ref)
}

// imageParams extracts the dominant colour of the image at ref, a path or
// URL, and returns it as seed parameters with every other field at its
// default.
func (a *app) imageParams(ctx context.Context, ref string, clusters int) (seed.Params, error) {
	local, err := a.imagePath(ctx, ref)
	if err != nil {
		return seed.Params{}, err
	}
	img, err := image.NewLoader(a.fs).Load(local)
	if err != nil {
		return seed.Params{}, err
	}
	c, err := image.Dominant(img, clusters, imageSeed)
	if err != nil {
		return seed.Params{}, fmt.Errorf("failed to extract seed colour: %w", err)
	}

	p := seed.Default()
	p.Hex = strings.TrimPrefix(c.Hex(), "#")
	a.logger.Debug("image seed", "image", ref, "colour", c.Hex())
	return p, nil
}

// resolve picks the scheme to use. An image wins, then a named preset,
// then a seed, then the default preset. The dynamic preset reads the
// configured seed.
func (a *app) resolve(ctx context.Context, f *sourceFlags) (*source, error) {
	opts := a.seedOptions()

	if f.image != "" {
		p, err := a.imageParams(ctx, f.image, image.DefaultClusters)
		if err != nil {
			return nil, err
		}
		d, err := seed.Derive(p, opts)
		if err != nil {
			return nil, err
		}
		sc, err := d.Scheme()
		if err != nil {
			return nil, err
		}
		return &source{name: path.Base(f.image), seed: p.String(), scheme: sc, derivation: d}, nil
	}

	if a.settings.Preset == "" && a.settings.Seed != "" {
		sc, d, err := seed.FromString(a.settings.Seed, opts)
		if err != nil {
			return nil, err
		}
		return &source{name: "seed", seed: d.Params.String(), scheme: sc, derivation: d}, nil
	}

	name := a.settings.Preset
	if name == "" {
		name = defaultPreset
	}
	p, err := preset.Get(name)
	if err != nil {
		return nil, err
	}
	sc, d, err := p.Build(a.settings.Seed, opts)
	if err != nil {
		return nil, err
	}
	src := &source{name: p.Name, scheme: sc, derivation: d}
	if d != nil {
		src.seed = d.Params.String()
	}
	a.logger.Debug("preset resolved", "name", p.Name, "seed", src.seed)
	return src, nil
}
