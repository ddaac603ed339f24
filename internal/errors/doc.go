// Package errors provides typed errors with exit codes for toolkami.
//
// # Error Types
//
// KamiError is the base error type that wraps an error with an exit code:
//
//	type KamiError struct {
//	    Code    int    // Exit code
//	    Message string // User-facing message
//	    Cause   error  // Wrapped error
//	}
//
// # Exit Codes
//
//	ExitSuccess         = 0  // Success
//	ExitGeneralError    = 1  // General/unknown errors
//	ExitNotGitRepo      = 2  // Current directory is not a git repository
//	ExitNotWorktree     = 3  // Current checkout is the main repository
//	ExitDirtyWorktree   = 4  // Uncommitted changes block merge
//	ExitComposeMissing  = 5  // .toolkami/docker-compose.yml not found
//	ExitConfigError     = 6  // Settings or scaffolding failure
//	ExitDockerMissing   = 7  // docker binary not on PATH
//	ExitTerminalError   = 8  // Terminal mode could not be changed
//
// Cancelling a picker is not an error: commands return nil and print nothing.
//
// # Extracting Exit Codes
//
//	if err != nil {
//	    os.Exit(errors.GetExitCode(err))
//	}
package errors
