package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.trai.ch/ukbuild/internal/core/domain"
)

func (c *CLI) newTargetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the supported architecture and platform pairs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "TARGET\tFEATURE\tENTRY")
			for _, arch := range domain.Architectures() {
				for _, plat := range domain.Platforms() {
					_, _ = fmt.Fprintf(w, "%s-%s\t%s\t%s\n", arch, plat, plat, plat.EntrySymbol())
				}
			}
			return w.Flush()
		},
	}
}
