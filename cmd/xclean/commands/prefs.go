package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xclean/internal/app"
)

func (c *CLI) newPrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var opts app.PrefsOptions
			if cmd.Flags().Changed("auto-clean") {
				enabled, _ := cmd.Flags().GetBool("auto-clean")
				opts.AutoClean = &enabled
			}
			return c.app.Prefs(cmd.Context(), opts)
		},
	}

	cmd.Flags().Bool("auto-clean", false, "Sweep zombies periodically while the interface or watch mode runs")

	return cmd
}
