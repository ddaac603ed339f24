// Package tui provides the interactive pickers of toolkami.
//
// The package owns the terminal for the duration of one selection: it puts
// the input into raw mode, hides the cursor, redraws through a diffing Frame
// and decodes raw bytes into logical keys. Everything is undone exactly once
// when the selection ends, however it ends.
//
// # Directory Picker
//
// The picker lists directories, narrows them with a subsequence filter as the
// user types, and offers a trailing row that creates a new directory or
// clones a repository when the typed name is a remote reference:
//
//	result, err := tui.RunPicker(tui.PickerOptions{
//	    Query:    "wid",
//	    BasePath: paths.Base,
//	    Items:    provider,
//	})
//	switch result.Action {
//	case tui.ActionOpen, tui.ActionCreate:
//	    // cd into result.Path
//	case tui.ActionClone:
//	    // clone result.URI into result.Path
//	case tui.ActionNone:
//	    // cancelled
//	}
//
// # Config Choice
//
// RunChoice offers a fixed, sorted list below a permanent skip row. With no
// options nothing is drawn at all.
//
// # Rendering
//
// Frame collects lines that may carry style markers such as {dim} and
// {highlight}. On a terminal only rows that changed since the previous flush
// are rewritten; elsewhere the frame is written as plain text with the
// markers removed.
package tui
