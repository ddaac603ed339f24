package errors

import (
	"errors"
	"fmt"
)

// Exit codes for toolkami
const (
	ExitSuccess        = 0
	ExitGeneralError   = 1
	ExitNotGitRepo     = 2
	ExitNotWorktree    = 3
	ExitDirtyWorktree  = 4
	ExitComposeMissing = 5
	ExitConfigError    = 6
	ExitDockerMissing  = 7
	ExitTerminalError  = 8
)

// KamiError is the base error type for toolkami
type KamiError struct {
	Code    int
	Message string
	Cause   error
}

func (e *KamiError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *KamiError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the exit code for this error
func (e *KamiError) ExitCode() int {
	return e.Code
}

// New creates a new KamiError
func New(code int, message string) *KamiError {
	return &KamiError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an existing error with a KamiError
func Wrap(code int, message string, cause error) *KamiError {
	return &KamiError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NotGitRepo returns an error for commands that need a git checkout
func NotGitRepo() *KamiError {
	return New(ExitNotGitRepo, "not in a git repository")
}

// NotWorktree returns an error when the checkout is the main repository
func NotWorktree() *KamiError {
	return New(ExitNotWorktree, "not in a worktree (you're in the main repository)")
}

// DirtyWorktree returns an error listing uncommitted changes
func DirtyWorktree(status string) *KamiError {
	return New(ExitDirtyWorktree, fmt.Sprintf("you have uncommitted changes, commit or stash them first:\n%s", status))
}

// ComposeMissing returns an error for a worktree without a sandbox definition
func ComposeMissing(path string) *KamiError {
	return New(ExitComposeMissing, fmt.Sprintf("no sandbox definition found at %s (run 'toolkami worktree' from a git repo and select a config)", path))
}

// DockerMissing returns an error when docker cannot be found
func DockerMissing(cause error) *KamiError {
	return Wrap(ExitDockerMissing, "docker is not installed or not in PATH", cause)
}

// ConfigError returns an error for configuration issues
func ConfigError(message string, cause error) *KamiError {
	return Wrap(ExitConfigError, message, cause)
}

// TerminalError returns an error for terminal mode failures
func TerminalError(message string, cause error) *KamiError {
	return Wrap(ExitTerminalError, message, cause)
}

// GitError returns an error for failed git queries
func GitError(message string, cause error) *KamiError {
	return Wrap(ExitGeneralError, message, cause)
}

// ValidationError returns an error for input validation failures
func ValidationError(message string) *KamiError {
	return New(ExitGeneralError, message)
}

// GetExitCode extracts the exit code from an error
func GetExitCode(err error) int {
	var kamiErr *KamiError
	if errors.As(err, &kamiErr) {
		return kamiErr.ExitCode()
	}
	return ExitGeneralError
}

// Is checks if an error is of a specific type
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target any) bool {
	return errors.As(err, target)
}
