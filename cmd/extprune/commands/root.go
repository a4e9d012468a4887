// Package commands implements the CLI commands for the extprune tool.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/extprune/internal/app"
	"go.trai.ch/extprune/internal/build"
)

// CLI represents the command line interface for extprune.
type CLI struct {
	app     Application
	log     LogSettings
	rootCmd *cobra.Command

	configPath string
	logJSON    bool
}

// Application represents the application logic interface.
type Application interface {
	Prune(ctx context.Context, keepFile string, opts app.PruneOptions) error
	History(ctx context.Context, opts app.HistoryOptions) error
}

// LogSettings configures the logger from global flags.
type LogSettings interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application, log LogSettings) *CLI {
	rootCmd := &cobra.Command{
		Use:           "extprune",
		Short:         "Remove editor extensions that are not in a keep list, and their old versions",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
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

	c := &CLI{
		app:     a,
		log:     log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "Path to the settings file")
	rootCmd.PersistentFlags().BoolVar(&c.logJSON, "log-json", false, "Write logs as JSON")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if c.log != nil && c.logJSON {
			c.log.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newPruneCmd())
	rootCmd.AddCommand(c.newHistoryCmd())
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
