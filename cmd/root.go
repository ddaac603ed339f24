package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	basePath   string
)

var rootCmd = &cobra.Command{
	Use:   "toolkami [QUERY...]",
	Short: "Minimal directory selector",
	Long: `toolkami picks, creates and clones working directories under one base
path, and manages git worktrees and sandboxes for them.

Commands print shell text on stdout. Load the shell function once with

  eval "$(toolkami init)"

and run toolkami through it, so the printed text is evaluated in your shell.
Without a subcommand the arguments are the initial search of the picker.

Config Selection:
  Place configs in $TOOLKAMI_PATH/.configs/
  Each config dir should contain:
    - Dockerfile (required)
    - docker-compose.yml (required for sandbox)
    - config.toml, settings.json, etc. (optional)
    - Other files (copied to .toolkami/ in worktree)

Environment:
  TOOLKAMI_PATH    Root directory (default: ~/kamis)
  TOOLKAMI_CONFIG  Settings file (default: $XDG_CONFIG_HOME/toolkami/config.toml)`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.Setup(verbose, jsonOutput, os.Stderr)

		a, err := loadApp(basePath)
		if err != nil {
			return err
		}
		app.SetDefault(a)
		return nil
	},
	RunE: runCd,
}

// loadApp builds the application context. Tests replace it.
var loadApp = func(path string) (*app.App, error) {
	return app.Load(path)
}

// Execute runs the command tree and reports a failure once on stderr.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		logging.UserError("%v", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&basePath, "path", "", "Base directory (overrides TOOLKAMI_PATH)")
	rootCmd.Flags().StringVar(&cloneName, "name", "", "Directory name for a clone instead of <date>-<user>-<repo>")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logSuccess = logging.UserSuccess
	logWarning = logging.UserWarning
)
