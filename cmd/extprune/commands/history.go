package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/extprune/internal/app"
)

func (c *CLI) newHistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history [extensions-dir]",
		Short: "Show the last run against an extensions directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := app.HistoryOptions{ConfigPath: c.configPath}
			if len(args) == 1 {
				opts.ExtensionsDir = args[0]
			}
			return c.app.History(cmd.Context(), opts)
		},
	}
}
