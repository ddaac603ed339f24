// Package app provides the application context for toolkami.
//
// This package manages application-wide dependencies using the functional
// options pattern, enabling easy testing through dependency injection.
//
// # App Context
//
// The App struct holds core dependencies:
//
//	type App struct {
//	    Paths    *config.Paths          // Base and configs directories
//	    Settings *config.Settings       // Settings file
//	    Executor system.CommandExecutor // git and docker
//	    FS       system.FileSystem      // Directory listing and scaffolding
//	    Prompter Prompter               // Interactive pickers
//	    Now      func() time.Time       // Date prefix of new directories
//	}
//
// # Creating an App
//
//	// Production usage, reads the settings file
//	a, err := app.Load(flagPath)
//
//	// Testing with custom dependencies
//	a := app.New(
//	    app.WithPaths(config.NewPaths(t.TempDir())),
//	    app.WithFS(system.NewMockFS()),
//	    app.WithPrompter(fakePrompter),
//	)
package app
