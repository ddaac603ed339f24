package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/system"
)

// Entry is one directory under the base path.
type Entry struct {
	Name string
	Path string
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ListKamis returns the immediate, non-hidden subdirectories of base in name
// order. A missing base yields no entries.
func ListKamis(fsys system.FileSystem, base string) ([]Entry, error) {
	entries, err := fsys.ReadDir(base)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", base, err)
	}

	var kamis []Entry
	for _, entry := range entries {
		if hidden(entry.Name()) {
			continue
		}
		path := filepath.Join(base, entry.Name())
		if !fsys.IsDir(path) {
			continue
		}
		kamis = append(kamis, Entry{Name: entry.Name(), Path: path})
	}
	return kamis, nil
}

// ListConfigs returns the sorted names of the config directories that hold
// marker. A missing configs directory yields no names.
func ListConfigs(fsys system.FileSystem, configsDir, marker string) ([]string, error) {
	entries, err := fsys.ReadDir(configsDir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read configs directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if hidden(entry.Name()) {
			continue
		}
		dir := filepath.Join(configsDir, entry.Name())
		if fsys.IsDir(dir) && fsys.Exists(filepath.Join(dir, marker)) {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ConfigDir returns the directory of the named config, kept inside the
// configs directory whatever the name contains.
func (p *Paths) ConfigDir(name string) (string, error) {
	if name == "" || hidden(name) {
		return "", fmt.Errorf("invalid config name %q", name)
	}
	dir, err := securejoin.SecureJoin(p.ConfigsDir, name)
	if err != nil {
		return "", fmt.Errorf("invalid config name %q: %w", name, err)
	}
	return dir, nil
}
