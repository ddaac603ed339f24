// Package logging provides logging utilities for toolkami.
//
// This package provides two categories of output:
//   - Debug logging: Structured logs for debugging (via slog)
//   - User output: Formatted messages for end users
//
// # Debug Logging
//
// Debug logs are written using slog and controlled by verbosity settings:
//
//	logging.Debug("picker started", "base", paths.Base, "query", query)
//	logging.Warn("skipping unreadable config", "dir", dir, "error", err)
//
// # User Output
//
// User-facing messages are formatted with status indicators:
//
//	logging.UserInfo("No configs found in %s", dir)
//	logging.UserSuccess("Created example config at %s", dir)
//	logging.UserWarning("Settings file %s ignored", path)
//	logging.UserError("%v", err)
//
// Every stream here is stderr. The shell wrapper evaluates whatever
// toolkami prints on stdout, so stdout carries shell text only.
//
// # Status Indicators
//
// User functions prepend status indicators, colored when stderr is a terminal:
//   - ℹ (info)
//   - ✓ (success)
//   - ⚠ (warning)
//   - ✗ (error)
package logging
