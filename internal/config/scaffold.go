package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/firefly-engineering/firefly-forage/packages/toolkami/internal/system"
)

// ExampleConfig is the config init creates when it is missing.
const ExampleConfig = "codex"

// ComposeFile is the compose file name inside a config directory.
const ComposeFile = "docker-compose.yml"

// ComposeService is the service name init writes and sandbox prefers.
const ComposeService = "toolkami"

const exampleDockerfile = `FROM node:22
WORKDIR /workspace

RUN npm install -g @openai/codex

CMD ["/bin/bash"]
`

type codexConfig struct {
	Model                  string                  `toml:"model"`
	ApprovalPolicy         string                  `toml:"approval_policy"`
	SandboxMode            string                  `toml:"sandbox_mode"`
	SandboxWorkspaceWrite  codexWorkspaceWrite     `toml:"sandbox_workspace_write"`
	ShellEnvironmentPolicy codexShellPolicy        `toml:"shell_environment_policy"`
	Tools                  codexTools              `toml:"tools"`
	Projects               map[string]codexProject `toml:"projects"`
}

type codexWorkspaceWrite struct {
	NetworkAccess bool `toml:"network_access"`
}

type codexShellPolicy struct {
	IgnoreDefaultExcludes bool `toml:"ignore_default_excludes"`
}

type codexTools struct {
	WebSearch bool `toml:"web_search"`
}

type codexProject struct {
	TrustLevel string `toml:"trust_level"`
}

// Compose is the subset of a compose file toolkami writes.
type Compose struct {
	Services map[string]ComposeServiceSpec `yaml:"services"`
}

// ComposeServiceSpec is one service of a Compose file.
type ComposeServiceSpec struct {
	Build       *ComposeBuild `yaml:"build,omitempty"`
	Volumes     []string      `yaml:"volumes,omitempty"`
	NetworkMode string        `yaml:"network_mode,omitempty"`
	WorkingDir  string        `yaml:"working_dir,omitempty"`
	StdinOpen   bool          `yaml:"stdin_open,omitempty"`
	TTY         bool          `yaml:"tty,omitempty"`
	Command     []string      `yaml:"command,omitempty"`
}

// ComposeBuild is the build section of a service.
type ComposeBuild struct {
	Context    string `yaml:"context"`
	Dockerfile string `yaml:"dockerfile"`
}

func exampleCompose() *Compose {
	return &Compose{
		Services: map[string]ComposeServiceSpec{
			ComposeService: {
				Build:       &ComposeBuild{Context: ".", Dockerfile: "Dockerfile"},
				Volumes:     []string{"..:/workspace", "./config.toml:/root/.codex/config.toml:ro"},
				NetworkMode: "host",
				WorkingDir:  "/workspace",
				StdinOpen:   true,
				TTY:         true,
				Command:     []string{"/bin/bash"},
			},
		},
	}
}

func exampleCodexConfig() *codexConfig {
	return &codexConfig{
		Model:                  "gpt-5-codex",
		ApprovalPolicy:         "never",
		SandboxMode:            "danger-full-access",
		SandboxWorkspaceWrite:  codexWorkspaceWrite{NetworkAccess: true},
		ShellEnvironmentPolicy: codexShellPolicy{IgnoreDefaultExcludes: true},
		Tools:                  codexTools{WebSearch: true},
		Projects:               map[string]codexProject{"/workspace": {TrustLevel: "trusted"}},
	}
}

// ScaffoldResult reports what Scaffold did.
type ScaffoldResult struct {
	// ExampleDir is the example config directory, set only when it was created.
	ExampleDir string
}

// Scaffold creates the base and configs directories and, when missing, an
// example config with a Dockerfile, config.toml and docker-compose.yml.
func Scaffold(fsys system.FileSystem, paths *Paths) (*ScaffoldResult, error) {
	for _, dir := range []string{paths.Base, paths.ConfigsDir} {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}

	dir := filepath.Join(paths.ConfigsDir, ExampleConfig)
	if fsys.Exists(dir) {
		return &ScaffoldResult{}, nil
	}
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}

	codex, err := encodeTOML(exampleCodexConfig())
	if err != nil {
		return nil, err
	}
	compose, err := encodeYAML(exampleCompose())
	if err != nil {
		return nil, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{DefaultMarker, []byte(exampleDockerfile)},
		{"config.toml", codex},
		{ComposeFile, compose},
	}
	for _, f := range files {
		if err := fsys.WriteFile(filepath.Join(dir, f.name), f.data, 0644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", f.name, err)
		}
	}

	return &ScaffoldResult{ExampleDir: dir}, nil
}

func encodeTOML(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode config.toml: %w", err)
	}
	return buf.Bytes(), nil
}

func encodeYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", ComposeFile, err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", ComposeFile, err)
	}
	return buf.Bytes(), nil
}
