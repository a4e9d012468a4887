package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/extprune/internal/app"
)

func (c *CLI) newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune <keep-file>",
		Short: "Remove extensions missing from the keep file and old versions of kept ones",
		Long: "Reads one extension identifier per line from the keep file (blank lines and\n" +
			"lines starting with # are ignored), then removes every installed extension\n" +
			"whose identifier is not listed, and every version but the newest of those that are.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extensionsDir, _ := cmd.Flags().GetString("extensions-dir")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			verbose, _ := cmd.Flags().GetBool("verbose")
			keepAll, _ := cmd.Flags().GetBool("keep-all-versions")
			progress, _ := cmd.Flags().GetBool("progress")

			return c.app.Prune(cmd.Context(), args[0], app.PruneOptions{
				ConfigPath:      c.configPath,
				ExtensionsDir:   extensionsDir,
				DryRun:          dryRun,
				Verbose:         verbose,
				KeepAllVersions: keepAll,
				Progress:        progress,
			})
		},
	}
	cmd.Flags().StringP("extensions-dir", "d", "", "Extensions directory (default ~/.vscode/extensions)")
	cmd.Flags().BoolP("dry-run", "n", false, "Show what would be removed without removing anything")
	cmd.Flags().BoolP("verbose", "v", false, "Show the keep list and every decision")
	cmd.Flags().BoolP("keep-all-versions", "a", false, "Keep every version of kept extensions")
	cmd.Flags().BoolP("progress", "p", false, "Print the status of every removal after the run")
	return cmd
}
