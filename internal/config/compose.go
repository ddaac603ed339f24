package config

import (
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/system"
)

// composeServices decodes only the service names. Service bodies vary too
// much between compose files to decode into ComposeServiceSpec.
type composeServices struct {
	Services map[string]yaml.Node `yaml:"services"`
}

// SandboxService returns the service sandbox runs from the compose file at
// path: ComposeService when defined, otherwise the first name in order.
func SandboxService(fsys system.FileSystem, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var compose composeServices
	if err := yaml.Unmarshal(data, &compose); err != nil {
		return "", fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(compose.Services) == 0 {
		return "", fmt.Errorf("%s defines no services", path)
	}
	if _, ok := compose.Services[ComposeService]; ok {
		return ComposeService, nil
	}

	names := make([]string, 0, len(compose.Services))
	for name := range compose.Services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0], nil
}
