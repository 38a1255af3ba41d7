package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/substance/internal/image"
)

func newSeedCmd(a *app) *cobra.Command {
	var clusters int

	cmd := &cobra.Command{
		Use:   "seed <image|url>",
		Short: "Print a seed string for an image",
		Long: `Extract the dominant colour of an image and print it as a seed string.

The image is clustered in OKLab and the heaviest cluster with enough
chroma to carry a hue is used. The result can be passed to --seed or
stored in SUBSTANCE_DYNAMIC_SEED. Remote images are downloaded once and
kept in $XDG_CACHE_HOME/substance/images.

Supported image formats: JPEG, PNG, GIF, WebP`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if clusters < 1 || clusters > 256 {
				return fmt.Errorf("clusters must be between 1 and 256, got %d", clusters)
			}
			p, err := a.imageParams(cmd.Context(), args[0], clusters)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), p.String())
			return err
		},
	}

	cmd.Flags().IntVarP(&clusters, "clusters", "k", image.DefaultClusters, "number of colour clusters (1-256)")
	return cmd
}
