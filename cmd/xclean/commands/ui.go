package commands

import "github.com/spf13/cobra"

func (c *CLI) newUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive interface",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.UI(cmd.Context())
		},
	}
}
