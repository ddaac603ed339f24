package cmd

import (
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/shell"
)

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge worktree changes back to parent repo",
	Long: `Merges the branch of the current worktree into its main checkout with
--no-ff, then returns to the worktree. On a detached HEAD the commit is
cherry-picked instead. The worktree must have no uncommitted changes.`,
	Args: cobra.NoArgs,
	RunE: runMerge,
}

var dropCmd = &cobra.Command{
	Use:   "drop",
	Short: "Delete worktree and branch",
	Long: `Removes the current worktree from its main checkout, discarding any
changes, and deletes its branch.`,
	Args: cobra.NoArgs,
	RunE: runDrop,
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	rootCmd.AddCommand(dropCmd)
}

func runMerge(cmd *cobra.Command, args []string) error {
	dir, err := cwd()
	if err != nil {
		return err
	}

	wt, err := app.Default.Git().Inspect(cmd.Context(), dir)
	if err != nil {
		return err
	}

	if wt.Detached() {
		logInfo("Detached HEAD, cherry-picking %s", wt.Head)
	}
	return emit(cmd, shell.Merge(wt.Parent, wt.Path, wt.Branch, wt.Head))
}

func runDrop(cmd *cobra.Command, args []string) error {
	dir, err := cwd()
	if err != nil {
		return err
	}

	wt, err := app.Default.Git().Locate(cmd.Context(), dir)
	if err != nil {
		return err
	}

	return emit(cmd, shell.Drop(wt.Parent, wt.Path, wt.Branch))
}
