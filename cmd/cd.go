package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/shell"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/tui"
)

var cloneName string

var cdCmd = &cobra.Command{
	Use:   "cd [QUERY...]",
	Short: "Interactive selector",
	Long: `Opens the directory picker on the terminal.

Type to filter, arrows or Ctrl-P/Ctrl-N to move, Enter to open, Esc to cancel.
The last row creates <date>-<name> from the search term, or clones it into
<date>-<user>-<repo> when the term is a git URL.`,
	Args: cobra.ArbitraryArgs,
	RunE: runCd,
}

func init() {
	cdCmd.Flags().StringVar(&cloneName, "name", "", "Directory name for a clone instead of <date>-<user>-<repo>")
	rootCmd.AddCommand(cdCmd)
}

func runCd(cmd *cobra.Command, args []string) error {
	a := app.Default
	query := strings.TrimSpace(strings.Join(args, " "))

	if err := a.FS.MkdirAll(a.Paths.Base, 0755); err != nil {
		return errors.ConfigError("failed to create base directory "+a.Paths.Base, err)
	}

	result, err := a.Prompter.PickDirectory(tui.PickerOptions{
		Query:     query,
		BasePath:  a.Paths.Base,
		Items:     a.Kamis,
		CloneName: cloneName,
		Hosts:     a.Settings.Hosts,
		Now:       a.Now,
	})
	if err != nil {
		if errors.Is(err, tui.ErrListItems) {
			return errors.ConfigError("failed to read "+a.Paths.Base, err)
		}
		return errors.TerminalError("picker failed", err)
	}
	logging.Debug("picker finished", "action", result.Action.String(), "path", result.Path)

	return emit(cmd, resultScript(result))
}

// resultScript turns a picker result into shell text. Cancellation yields nil.
func resultScript(result tui.PickerResult) *shell.Script {
	switch result.Action {
	case tui.ActionOpen, tui.ActionCreate:
		return shell.Open(result.Path)
	case tui.ActionClone:
		return shell.Clone(result.URI, result.Path)
	}
	return nil
}
