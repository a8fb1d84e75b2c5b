package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xclean/internal/app"
)

func (c *CLI) newListCmd() *cobra.Command {
	var opts app.ListOptions

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List DerivedData entries with their sizes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.List(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Zombies, "zombies", "z", false, "Only list entries whose project no longer exists")

	return cmd
}
