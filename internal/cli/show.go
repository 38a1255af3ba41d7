package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/substance/internal/render"
)

func newShowCmd(a *app) *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Render the palettes of a scheme",
		Long: `Render the light and dark palettes of a scheme as swatches.

Each tier row shows the colour, its text colour, the container, the
container text and the fixed tone. The surface rows and the terminal
colours follow.

Examples:
  # Show the default scheme
  substance show

  # Show a seed in dark mode only
  substance show --seed '#9648cd,14352' --mode dark

  # Show the scheme of a wallpaper
  substance show --image wallpaper.jpg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := a.resolve(cmd.Context(), &flags)
			if err != nil {
				return err
			}

			r := render.New(cmd.OutOrStdout(), a.settings.Color, render.DefaultOptions())
			title := src.name
			if src.seed != "" {
				title = fmt.Sprintf("%s (%s)", src.name, src.seed)
			}

			blocks := make([]string, 0, 2)
			for _, m := range a.settings.Mode.Modes() {
				heading := r.Heading(fmt.Sprintf("%s: %s", title, m))
				blocks = append(blocks, heading+"\n"+r.Palette(src.scheme.Palette(m)))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.Join(blocks, "\n\n"))
			return err
		},
	}

	flags.register(cmd)
	registerMode(cmd)
	return cmd
}
