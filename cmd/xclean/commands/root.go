// Package commands implements the CLI commands for xclean.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/xclean/internal/app"
	"go.trai.ch/xclean/internal/build"
)

// CLI represents the command line interface for xclean.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Configure(opts app.GlobalOptions)
	Run(ctx context.Context, opts app.RunOptions) error
	UI(ctx context.Context) error
	List(ctx context.Context, opts app.ListOptions) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	Sweep(ctx context.Context) error
	Watch(ctx context.Context) error
	Prefs(ctx context.Context, opts app.PrefsOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	var global app.GlobalOptions
	var outputMode string

	rootCmd := &cobra.Command{
		Use:           "xclean",
		Short:         "Find, measure and delete Xcode DerivedData caches",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			c.app.Configure(global)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Run(cmd.Context(), app.RunOptions{OutputMode: outputMode})
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&global.ConfigPath, "config", "c", "", "Path to the config file")
	flags.BoolVar(&global.Debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&global.JSON, "json", false, "Write logs as JSON")
	rootCmd.Flags().StringVarP(&outputMode, "output", "o", "auto", "Output mode: auto, tui or linear")

	c.rootCmd = rootCmd

	rootCmd.AddCommand(c.newUICmd())
	rootCmd.AddCommand(c.newListCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newSweepCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newPrefsCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
