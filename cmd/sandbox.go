package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/shell"
)

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Run Docker sandbox from .toolkami/docker-compose.yml",
	Args:  cobra.NoArgs,
	RunE:  runSandbox,
}

func init() {
	rootCmd.AddCommand(sandboxCmd)
}

func runSandbox(cmd *cobra.Command, args []string) error {
	a := app.Default

	dir, err := cwd()
	if err != nil {
		return err
	}

	composeRel := filepath.Join(shell.ConfigDir, config.ComposeFile)
	composePath := filepath.Join(dir, composeRel)
	if !a.FS.Exists(composePath) {
		return errors.ComposeMissing(composePath)
	}

	docker, err := a.Executor.LookPath("docker")
	if err != nil {
		return errors.DockerMissing(err)
	}
	logging.Debug("found docker", "path", docker)

	service, err := config.SandboxService(a.FS, composePath)
	if err != nil {
		return errors.ConfigError("invalid compose file", err)
	}

	return emit(cmd, shell.Sandbox(dir, composeRel, service))
}
