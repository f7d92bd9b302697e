package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild whenever Kraftfile, Makefile.uk or ukbuild.yaml changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.app.Watch(cmd.Context(), runOptions(cmd))
			if closeErr := c.app.Close(); err == nil {
				err = closeErr
			}
			return err
		},
	}
	addBuildFlags(cmd)
	return cmd
}
