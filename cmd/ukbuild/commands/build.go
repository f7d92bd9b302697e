package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/ukbuild/internal/app"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build Unikraft and emit the link directives",
		Long: `Build Unikraft with kraft, pack its library objects into libunikraft.a and
assemble the linker scripts in the output directory.

Settings are read from OUT_DIR, CARGO_CFG_TARGET_ARCH, CARGO_FEATURE_KVM,
CARGO_FEATURE_LINUXU and ukbuild.yaml. Flags take precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := c.app.Run(cmd.Context(), runOptions(cmd))
			if closeErr := c.app.Close(); err == nil {
				err = closeErr
			}
			return err
		},
	}
	addBuildFlags(cmd)
	return cmd
}

func addBuildFlags(cmd *cobra.Command) {
	cmd.Flags().String("out-dir", "", "Output directory (default $OUT_DIR)")
	cmd.Flags().String("app-dir", "", "Application directory (default $APP_DIR or inferred)")
	cmd.Flags().String("arch", "", "Target architecture (default $CARGO_CFG_TARGET_ARCH)")
	cmd.Flags().Bool("kvm", false, "Build for the kvm platform")
	cmd.Flags().Bool("linuxu", false, "Build for the linuxu platform")
	cmd.Flags().String("format", "", "Directive format: cargo or ldflags")
	cmd.Flags().String("kraft", "", "Path to the kraft executable")
	cmd.Flags().String("ar", "", "Path to the archiver")
}

func runOptions(cmd *cobra.Command) app.RunOptions {
	flags := cmd.Flags()

	var opts app.RunOptions
	opts.OutDir, _ = flags.GetString("out-dir")
	opts.AppDir, _ = flags.GetString("app-dir")
	opts.Arch, _ = flags.GetString("arch")
	opts.Format, _ = flags.GetString("format")
	opts.Kraft, _ = flags.GetString("kraft")
	opts.Ar, _ = flags.GetString("ar")

	if flags.Changed("kvm") {
		kvm, _ := flags.GetBool("kvm")
		opts.KVM = &kvm
	}
	if flags.Changed("linuxu") {
		linuxu, _ := flags.GetBool("linuxu")
		opts.Linuxu = &linuxu
	}
	return opts
}
