package cli

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/substance/internal/config"
	"github.com/jmylchreest/substance/internal/export"
)

func newExportCmd(a *app) *cobra.Command {
	var (
		flags  sourceFlags
		format export.Format
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the resolved palettes as JSON or YAML",
		Long: `Write every named colour of the resolved palettes as JSON or YAML.

The format defaults to the output file extension, or JSON on stdout. An
output name ending in .xz or .gz is compressed.

Examples:
  # Print the default scheme as JSON
  substance export

  # Save the dark palette of a seed as compressed YAML
  substance export --seed '#308434' --mode dark -o voltera.yaml.xz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := a.resolve(cmd.Context(), &flags)
			if err != nil {
				return err
			}

			doc := export.NewDocument(src.name, src.seed, src.scheme, a.settings.Mode.Modes())
			if output == "" {
				return export.Encode(cmd.OutOrStdout(), doc, a.settings.Format)
			}
			f := a.settings.Format
			if f == "" {
				f = export.FormatOf(output)
			}
			if err := export.Write(a.fs, output, doc, f); err != nil {
				return err
			}
			a.logger.Info("palettes exported", "path", output, "format", f)
			return nil
		},
	}

	flags.register(cmd)
	registerMode(cmd)
	cmd.Flags().VarP(&format, config.KeyFormat, "f", "output format (json, yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	return cmd
}
