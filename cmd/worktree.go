package cmd

import (
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/shell"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/workspace"
)

var worktreeCmd = &cobra.Command{
	Use:   "worktree [NAME...]",
	Short: "Create worktree from current repo",
	Long: `Adds a git worktree of the current repository at <base>/<date>-<NAME>
on the branch <branch_prefix><date>-<NAME>. NAME defaults to the name of the
current directory.

When configs exist, one can be chosen and is copied into .toolkami/ of the
new worktree.`,
	Args: cobra.ArbitraryArgs,
	RunE: runWorktree,
}

func init() {
	rootCmd.AddCommand(worktreeCmd)
}

func runWorktree(cmd *cobra.Command, args []string) error {
	a := app.Default

	dir, err := cwd()
	if err != nil {
		return err
	}
	git := a.Git()
	if !git.IsMainCheckout(dir) {
		if git.IsRepo(dir) {
			return errors.New(errors.ExitNotGitRepo, "in a linked worktree, run worktree from the main checkout")
		}
		return errors.NotGitRepo()
	}

	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		name = filepath.Base(dir)
	}
	dirName := workspace.DatedName(a.Now(), name)
	if err := workspace.ValidateName(dirName); err != nil {
		return errors.ValidationError(err.Error())
	}

	target, err := securejoin.SecureJoin(a.Paths.Base, dirName)
	if err != nil {
		return errors.ValidationError("invalid worktree directory: " + err.Error())
	}

	configs, err := a.Configs()
	if err != nil {
		logWarning("Could not list configs: %v", err)
	}
	choice, ok, err := a.Prompter.ChooseConfig("Select Config", configs)
	if err != nil {
		return errors.TerminalError("config selection failed", err)
	}

	var copyConfig *shell.ConfigCopy
	if ok {
		src, err := a.Paths.ConfigDir(choice)
		if err != nil {
			return errors.ConfigError("invalid config", err)
		}
		copyConfig = &shell.ConfigCopy{Name: choice, Src: src}
	}

	branch := a.Settings.BranchPrefix + dirName
	logging.Debug("adding worktree", "path", target, "branch", branch, "config", choice)

	return emit(cmd, shell.Worktree(target, branch, copyConfig))
}
