package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/substance/internal/scheme"
)

// rolesColumnWidth wraps long role lists in the params table.
const rolesColumnWidth = 40

func newParamsCmd(a *app) *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "params",
		Short: "Explain how a scheme was derived",
		Long: `Print the tiers of a scheme with their hues and the roles bound to
each, followed by the spaced hues and the canonical seed string when the
scheme comes from a seed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			src, err := a.resolve(cmd.Context(), &flags)
			if err != nil {
				return err
			}
			return writeParams(cmd.OutOrStdout(), src)
		},
	}

	flags.register(cmd)
	return cmd
}

func formatHue(h float64) string {
	return strconv.FormatFloat(h, 'f', 2, 64)
}

// tierRoles returns the roles bound to tier n, from 1.
func tierRoles(s *scheme.Scheme, n int) []string {
	roles := lo.Filter(scheme.Roles(), func(r scheme.Role, _ int) bool {
		tier, ok := s.TierOf(r)
		return ok && tier == n
	})
	return lo.Map(roles, func(r scheme.Role, _ int) string { return string(r) })
}

func writeParams(w io.Writer, src *source) error {
	light, dark := src.scheme.Light(), src.scheme.Dark()
	cfg := src.scheme.Config()

	table := NewTable([]string{"Tier", "Hue", "Light", "Dark", "Roles"})
	table.SetColumnMaxWidth(4, rolesColumnWidth)
	for i, t := range cfg.Tiers {
		n := i + 1
		table.AddRow([]string{
			fmt.Sprintf("tier%d", n),
			formatHue(t.H),
			light.Tier(n, scheme.VariantColor).Hex(),
			dark.Tier(n, scheme.VariantColor).Hex(),
			strings.Join(tierRoles(src.scheme, n), ", "),
		})
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Scheme: %s\n\n", src.name)
	b.WriteString(table.Render())
	fmt.Fprintf(&b, "\nNeutral:         hue %s, chroma %s\n", formatHue(cfg.Neutral.H), strconv.FormatFloat(cfg.Neutral.C, 'f', -1, 64))
	fmt.Fprintf(&b, "Neutral variant: hue %s, chroma %s\n", formatHue(cfg.NeutralVariant.H), strconv.FormatFloat(cfg.NeutralVariant.C, 'f', -1, 64))

	if d := src.derivation; d != nil {
		fmt.Fprintf(&b, "\nSpaced hues: %s\n", strings.Join(lo.Map(d.SpacedHues, func(h float64, _ int) string { return formatHue(h) }), " "))
		fmt.Fprintf(&b, "Spacing:     mean %.2f, stddev %.2f\n", d.Stats.Mean, d.Stats.StdDev)
		fmt.Fprintf(&b, "Assignment:  cost %.4f\n", d.Assignment.Cost)
		fmt.Fprintf(&b, "Seed:        %s\n", src.seed)
	}

	_, err := io.WriteString(w, b.String())
	return err
}
