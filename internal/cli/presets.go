package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/substance/internal/config"
	"github.com/jmylchreest/substance/internal/preset"
)

func newPresetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List the built-in schemes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return writePresets(cmd.OutOrStdout())
		},
	}
}

func writePresets(w io.Writer) error {
	table := NewTable([]string{"Name", "Source", "Description"})
	for _, p := range preset.All() {
		var src string
		switch {
		case p.Explicit():
			src = "explicit"
		case p.Dynamic:
			src = "$" + config.DynamicSeedEnv
		default:
			src = p.Seed
		}
		table.AddRow([]string{p.Name, src, p.Description})
	}
	_, err := fmt.Fprint(w, table.Render())
	return err
}
