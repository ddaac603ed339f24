package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/app"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/shell"
)

// getwd returns the directory commands act on. Tests replace it.
var getwd = os.Getwd

// paths returns the configured paths.
// This is a helper to reduce repetition in commands.
func paths() *config.Paths {
	return app.Default.Paths
}

// cwd returns the working directory or a general error.
func cwd() (string, error) {
	dir, err := getwd()
	if err != nil {
		return "", errors.Wrap(errors.ExitGeneralError, "failed to get current directory", err)
	}
	return dir, nil
}

// emit writes the script for the shell function to evaluate. An empty
// script prints nothing, so the function evaluates nothing.
func emit(cmd *cobra.Command, script *shell.Script) error {
	if script == nil || script.Empty() {
		logging.Debug("nothing to evaluate")
		return nil
	}
	logging.Debug("emitting shell text", "script", script.String())
	return writeOut(cmd.OutOrStdout(), script.String()+"\n")
}

func writeOut(w io.Writer, text string) error {
	if _, err := io.WriteString(w, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
