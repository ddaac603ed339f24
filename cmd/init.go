package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/shell"
)

// executable locates the running binary for the shell function.
var executable = os.Executable

var initCmd = &cobra.Command{
	Use:   "init [PATH]",
	Short: "Generate shell function",
	Long: `Creates PATH (default: the base path) with an example sandbox config and
prints the toolkami shell function. Add this to your shell rc file:

  eval "$(toolkami init)"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	p := paths()
	if len(args) == 1 {
		base, err := config.ExpandHome(args[0])
		if err != nil {
			return errors.ConfigError("invalid path", err)
		}
		p = config.NewPaths(base)
	}

	res, err := config.Scaffold(app.Default.FS, p)
	if err != nil {
		return errors.ConfigError("failed to initialize "+p.Base, err)
	}
	if res.ExampleDir != "" {
		logSuccess("Created example config at %s", res.ExampleDir)
	}

	bin, err := executable()
	if err != nil {
		logging.Debug("failed to locate executable, using argv[0]", "error", err)
		bin = os.Args[0]
	}

	return writeOut(cmd.OutOrStdout(), shell.Function(bin))
}
