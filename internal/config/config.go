package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/system"
)

const (
	DefaultDirName      = "kamis"
	ConfigsDirName      = ".configs"
	DefaultBranchPrefix = "feature/"
	DefaultMarker       = "Dockerfile"

	EnvPath   = "TOOLKAMI_PATH"
	EnvConfig = "TOOLKAMI_CONFIG"
)

// Paths holds the configured paths
type Paths struct {
	Base       string
	ConfigsDir string
}

// NewPaths returns the layout rooted at base.
func NewPaths(base string) *Paths {
	return &Paths{
		Base:       base,
		ConfigsDir: filepath.Join(base, ConfigsDirName),
	}
}

// DefaultPaths returns the layout rooted at TOOLKAMI_PATH or ~/kamis.
func DefaultPaths() *Paths {
	base, err := ResolveBase("", DefaultSettings())
	if err != nil {
		base = DefaultDirName
	}
	return NewPaths(base)
}

// Settings is the optional user settings file.
type Settings struct {
	Path         string   `toml:"path"`
	Hosts        []string `toml:"hosts"`
	BranchPrefix string   `toml:"branch_prefix"`
	Marker       string   `toml:"marker"`
}

// DefaultSettings returns the settings used when no file exists.
func DefaultSettings() *Settings {
	return &Settings{
		BranchPrefix: DefaultBranchPrefix,
		Marker:       DefaultMarker,
	}
}

// SettingsPath returns where the settings file is looked up.
func SettingsPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return ExpandHome(p)
	}
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "toolkami", "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, ".config", "toolkami", "config.toml"), nil
}

// LoadSettings reads the settings file at path. A missing file yields the
// defaults.
func LoadSettings(fsys system.FileSystem, path string) (*Settings, error) {
	settings := DefaultSettings()

	if !fsys.Exists(path) {
		return settings, nil
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	md, err := toml.Decode(string(data), settings)
	if err != nil {
		return nil, fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("unknown settings in %s: %s", path, strings.Join(keys, ", "))
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings %s: %w", path, err)
	}
	return settings, nil
}

// Validate checks that the Settings are usable.
func (s *Settings) Validate() error {
	if s.BranchPrefix == "" {
		return fmt.Errorf("branch_prefix must not be empty")
	}
	if strings.ContainsAny(s.BranchPrefix, " \t~^:?*[\\") {
		return fmt.Errorf("branch_prefix %q is not a valid git ref prefix", s.BranchPrefix)
	}
	if s.Marker == "" || filepath.Base(s.Marker) != s.Marker {
		return fmt.Errorf("marker must be a plain file name (got %q)", s.Marker)
	}
	for _, h := range s.Hosts {
		if strings.TrimSpace(h) == "" {
			return fmt.Errorf("hosts must not contain empty entries")
		}
	}
	return nil
}

// ResolveBase picks the base path from flag, TOOLKAMI_PATH, the settings
// and finally ~/kamis, expanding a leading ~.
func ResolveBase(flag string, settings *Settings) (string, error) {
	candidates := []string{flag, os.Getenv(EnvPath)}
	if settings != nil {
		candidates = append(candidates, settings.Path)
	}
	for _, c := range candidates {
		if c != "" {
			return ExpandHome(c)
		}
	}
	return ExpandHome(filepath.Join("~", DefaultDirName))
}

// ExpandHome replaces a leading ~ with the user's home directory and
// returns an absolute, clean path.
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", path, err)
	}
	return abs, nil
}
