// Package config provides project configuration management.
//
// This package handles reading and writing .agentrig/config.yaml files,
// which carry guard, formatter, and hook settings for a repository.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// WorkspaceDirName is the per-repository workspace directory.
	WorkspaceDirName = ".agentrig"

	// ConfigFileName is the config file inside the workspace directory.
	ConfigFileName = "config.yaml"
)

// ProjectConfig represents the .agentrig/config.yaml file.
type ProjectConfig struct {
	// Project contains project identification.
	Project Project `yaml:"project"`

	// Guard contains protected-file and secret scanning settings.
	Guard GuardConfig `yaml:"guard,omitempty"`

	// Format contains formatter dispatch settings.
	Format FormatConfig `yaml:"format,omitempty"`

	// Hook contains git hook pipeline settings.
	Hook HookConfig `yaml:"hook,omitempty"`
}

// Project contains project identification.
type Project struct {
	// Name is a short identifier for the project.
	Name string `yaml:"name"`
}

// GuardConfig tunes the protected-file and secret content scan.
type GuardConfig struct {
	// ProtectedPatterns are additional filename patterns (doublestar
	// globs) treated as protected, on top of the built-in set.
	ProtectedPatterns []string `yaml:"protected_patterns,omitempty"`

	// Allow lists path patterns exempt from the protected-file check,
	// e.g. ".env.example" committed intentionally.
	Allow []string `yaml:"allow,omitempty"`

	// MaxContentScanBytes caps the file size for the content scan.
	// Files larger than this are skipped. Zero means the default (1 MiB).
	MaxContentScanBytes int64 `yaml:"max_content_scan_bytes,omitempty"`

	// NonInteractive forces block-on-violation even when stdin is a TTY.
	NonInteractive bool `yaml:"non_interactive,omitempty"`
}

// FormatConfig tunes formatter dispatch.
type FormatConfig struct {
	// Disabled lists formatter names that must not run even when their
	// binary is present (e.g. "prettier").
	Disabled []string `yaml:"disabled,omitempty"`

	// Extensions overrides the extension-to-formatter mapping,
	// e.g. {".mjs": "prettier"}.
	Extensions map[string]string `yaml:"extensions,omitempty"`
}

// HookConfig controls which stages the pre-commit pipeline runs.
type HookConfig struct {
	// PreCommit lists stage names to run on pre-commit, in order.
	// Valid stages: "scan", "fmt". Empty means both.
	PreCommit []string `yaml:"pre_commit,omitempty"`
}

// PreCommitStages returns the configured pre-commit stages, defaulting
// to scan followed by fmt when none are configured.
func (c *HookConfig) PreCommitStages() []string {
	if len(c.PreCommit) == 0 {
		return []string{"scan", "fmt"}
	}
	return c.PreCommit
}

// MaxContentScanBytesOrDefault returns the configured content-scan cap,
// falling back to 1 MiB.
func (c *GuardConfig) MaxContentScanBytesOrDefault() int64 {
	if c.MaxContentScanBytes > 0 {
		return c.MaxContentScanBytes
	}
	return 1 << 20
}

// DefaultProjectConfig returns the config written by `agentrig init`.
//
// Parameters:
//   - name: The project name
//
// Returns:
//   - *ProjectConfig: A config with empty overrides and default stages
func DefaultProjectConfig(name string) *ProjectConfig {
	return &ProjectConfig{
		Project: Project{Name: name},
	}
}

// ConfigPath returns the config file path for a repository root.
func ConfigPath(root string) string {
	return filepath.Join(root, WorkspaceDirName, ConfigFileName)
}

// LoadProjectConfig reads and parses a config.yaml file.
//
// Parameters:
//   - path: Path to the config.yaml file
//
// Returns:
//   - *ProjectConfig: The parsed configuration
//   - error: Any error that occurred during reading or parsing
func LoadProjectConfig(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Guarantee the extension map is never nil so callers don't need
	// defensive checks.
	if cfg.Format.Extensions == nil {
		cfg.Format.Extensions = make(map[string]string)
	}

	return &cfg, nil
}

// LoadProjectConfigOrDefault loads the repository config when present and
// returns a default config when the file does not exist. Parse errors are
// still reported.
func LoadProjectConfigOrDefault(root string) (*ProjectConfig, error) {
	path := ConfigPath(root)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := DefaultProjectConfig(filepath.Base(root))
		cfg.Format.Extensions = make(map[string]string)
		return cfg, nil
	}
	return LoadProjectConfig(path)
}

// WriteProjectConfig writes a project configuration to a file.
//
// Parameters:
//   - path: Path to write the config.yaml file
//   - cfg: The configuration to write
//
// Returns:
//   - error: Any error that occurred during writing
func WriteProjectConfig(path string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Add header comment
	header := "# agentrig configuration\n# Generated by: agentrig init\n\n"
	content := header + string(data)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// UserDir returns the user-level workspace directory (~/.agentrig).
//
// Returns:
//   - string: The expanded directory path
//   - error: If the home directory cannot be determined
func UserDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}
	return filepath.Join(home, WorkspaceDirName), nil
}
