package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/xclean/internal/app"
)

func (c *CLI) newCleanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clean [name-or-path...]",
		Short: "Delete DerivedData entries",
		Long: "Delete the named DerivedData entries. An entry matches by project name, " +
			"by directory name or by its absolute path.",
		RunE: func(cmd *cobra.Command, args []string) error {
			all, _ := cmd.Flags().GetBool("all")
			moduleCache, _ := cmd.Flags().GetBool("module-cache")

			if !all && !moduleCache && len(args) == 0 {
				return cmd.Help()
			}

			return c.app.Clean(cmd.Context(), app.CleanOptions{
				All:         all,
				ModuleCache: moduleCache,
				Targets:     args,
			})
		},
	}

	cmd.Flags().BoolP("all", "a", false, "Delete the whole DerivedData directory")
	cmd.Flags().BoolP("module-cache", "m", false, "Delete the shared module cache")
	cmd.MarkFlagsMutuallyExclusive("all", "module-cache")

	return cmd
}
