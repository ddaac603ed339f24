package app

import (
	"fmt"
	"time"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/config"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/errors"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/logging"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/system"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/tui"
	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/workspace"
)

// Prompter runs the interactive selections.
type Prompter interface {
	// PickDirectory runs the directory picker.
	PickDirectory(opts tui.PickerOptions) (tui.PickerResult, error)

	// ChooseConfig offers options below a skip row. ok is false on skip.
	ChooseConfig(title string, options []string) (choice string, ok bool, err error)
}

type terminalPrompter struct{}

func (terminalPrompter) PickDirectory(opts tui.PickerOptions) (tui.PickerResult, error) {
	return tui.RunPicker(opts)
}

func (terminalPrompter) ChooseConfig(title string, options []string) (string, bool, error) {
	return tui.RunChoice(title, options)
}

// TerminalPrompter returns the Prompter that draws on the controlling terminal.
func TerminalPrompter() Prompter {
	return terminalPrompter{}
}

// App holds the application dependencies
type App struct {
	// Paths holds the configured paths
	Paths *config.Paths

	// Settings is the loaded settings file
	Settings *config.Settings

	// Executor runs external commands
	Executor system.CommandExecutor

	// FS is the file system
	FS system.FileSystem

	// Prompter runs the pickers
	Prompter Prompter

	// Now is the clock used for dated directory names
	Now func() time.Time
}

// Option is a function that configures the App
type Option func(*App)

// WithPaths sets custom paths
func WithPaths(paths *config.Paths) Option {
	return func(a *App) {
		a.Paths = paths
	}
}

// WithSettings sets custom settings
func WithSettings(s *config.Settings) Option {
	return func(a *App) {
		a.Settings = s
	}
}

// WithExecutor sets a custom command executor
func WithExecutor(e system.CommandExecutor) Option {
	return func(a *App) {
		a.Executor = e
	}
}

// WithFS sets a custom file system
func WithFS(fs system.FileSystem) Option {
	return func(a *App) {
		a.FS = fs
	}
}

// WithPrompter sets a custom prompter
func WithPrompter(p Prompter) Option {
	return func(a *App) {
		a.Prompter = p
	}
}

// WithClock sets a custom clock
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		a.Now = now
	}
}

// New creates a new App with the given options.
// Anything not set falls back to the OS implementations and defaults.
func New(opts ...Option) *App {
	app := &App{}

	for _, opt := range opts {
		opt(app)
	}

	if app.Settings == nil {
		app.Settings = config.DefaultSettings()
	}
	if app.Paths == nil {
		app.Paths = config.DefaultPaths()
	}
	if app.Executor == nil {
		app.Executor = system.DefaultExecutor()
	}
	if app.FS == nil {
		app.FS = system.DefaultFS()
	}
	if app.Prompter == nil {
		app.Prompter = TerminalPrompter()
	}
	if app.Now == nil {
		app.Now = time.Now
	}

	return app
}

// Load creates an App from the settings file, with basePath overriding the
// configured base path when set.
func Load(basePath string, opts ...Option) (*App, error) {
	a := New(opts...)

	path, err := config.SettingsPath()
	if err != nil {
		return nil, errors.ConfigError("failed to locate settings", err)
	}
	settings, err := config.LoadSettings(a.FS, path)
	if err != nil {
		return nil, errors.ConfigError(err.Error(), nil)
	}
	logging.Debug("settings loaded", "path", path, "base", settings.Path)

	base, err := config.ResolveBase(basePath, settings)
	if err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("invalid base path %q", basePath), err)
	}

	a.Settings = settings
	a.Paths = config.NewPaths(base)
	return a, nil
}

// Git returns a git inspector bound to the app's executor and file system.
func (a *App) Git() *workspace.Git {
	return workspace.NewGit(a.Executor, a.FS)
}

// Kamis lists the directories under the base path as picker items.
func (a *App) Kamis() ([]tui.Item, error) {
	entries, err := config.ListKamis(a.FS, a.Paths.Base)
	if err != nil {
		return nil, err
	}
	items := make([]tui.Item, len(entries))
	for i, e := range entries {
		items[i] = tui.Item{Name: e.Name, Path: e.Path}
	}
	return items, nil
}

// Configs lists the sandbox configs under the configs directory.
func (a *App) Configs() ([]string, error) {
	return config.ListConfigs(a.FS, a.Paths.ConfigsDir, a.Settings.Marker)
}

// Default is the default application instance
var Default = New()

// SetDefault sets the default application instance (used for testing)
func SetDefault(app *App) {
	Default = app
}

// ResetDefault resets to the default application instance
func ResetDefault() {
	Default = New()
}
