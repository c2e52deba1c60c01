package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestWriteLoadRoundtrip verifies that a config survives write and reload.
func TestWriteLoadRoundtrip(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)

	cfg := &ProjectConfig{
		Project: Project{Name: "demo"},
		Guard: GuardConfig{
			ProtectedPatterns:   []string{"**/*.license"},
			Allow:               []string{"vendor/**"},
			MaxContentScanBytes: 2048,
			NonInteractive:      true,
		},
		Format: FormatConfig{
			Disabled:   []string{"prettier"},
			Extensions: map[string]string{".qs": "prettier"},
		},
		Hook: HookConfig{
			PreCommit: []string{"scan"},
		},
	}

	if err := WriteProjectConfig(path, cfg); err != nil {
		t.Fatalf("WriteProjectConfig() error = %v", err)
	}

	loaded, err := LoadProjectConfig(path)
	if err != nil {
		t.Fatalf("LoadProjectConfig() error = %v", err)
	}

	if loaded.Project.Name != "demo" {
		t.Errorf("Project.Name = %q, want demo", loaded.Project.Name)
	}
	if len(loaded.Guard.ProtectedPatterns) != 1 || loaded.Guard.ProtectedPatterns[0] != "**/*.license" {
		t.Errorf("Guard.ProtectedPatterns = %v", loaded.Guard.ProtectedPatterns)
	}
	if loaded.Guard.MaxContentScanBytes != 2048 {
		t.Errorf("Guard.MaxContentScanBytes = %d, want 2048", loaded.Guard.MaxContentScanBytes)
	}
	if !loaded.Guard.NonInteractive {
		t.Error("Guard.NonInteractive = false, want true")
	}
	if len(loaded.Format.Disabled) != 1 || loaded.Format.Disabled[0] != "prettier" {
		t.Errorf("Format.Disabled = %v", loaded.Format.Disabled)
	}
	if loaded.Format.Extensions[".qs"] != "prettier" {
		t.Errorf("Format.Extensions = %v", loaded.Format.Extensions)
	}
	if got := loaded.Hook.PreCommitStages(); len(got) != 1 || got[0] != "scan" {
		t.Errorf("PreCommitStages() = %v, want [scan]", got)
	}
}

// TestWriteProjectConfigHeader verifies the generated file carries the
// identifying header comment.
func TestWriteProjectConfigHeader(t *testing.T) {
	path := ConfigPath(t.TempDir())

	if err := WriteProjectConfig(path, DefaultProjectConfig("demo")); err != nil {
		t.Fatalf("WriteProjectConfig() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# agentrig configuration") {
		t.Errorf("config file missing header:\n%s", data)
	}
}

// TestLoadProjectConfigMissing verifies the error on a missing file.
func TestLoadProjectConfigMissing(t *testing.T) {
	if _, err := LoadProjectConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("LoadProjectConfig() succeeded on a missing file")
	}
}

// TestLoadProjectConfigInvalid verifies the error on malformed YAML.
func TestLoadProjectConfigInvalid(t *testing.T) {
	root := t.TempDir()
	path := ConfigPath(root)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("project: [broken\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadProjectConfig(path); err == nil {
		t.Fatal("LoadProjectConfig() accepted malformed YAML")
	}
}

// TestLoadProjectConfigOrDefault verifies the fallback for uninitialized
// repositories.
func TestLoadProjectConfigOrDefault(t *testing.T) {
	root := t.TempDir()

	cfg, err := LoadProjectConfigOrDefault(root)
	if err != nil {
		t.Fatalf("LoadProjectConfigOrDefault() error = %v", err)
	}
	if cfg.Project.Name != filepath.Base(root) {
		t.Errorf("Project.Name = %q, want %q", cfg.Project.Name, filepath.Base(root))
	}
	if cfg.Format.Extensions == nil {
		t.Error("Format.Extensions is nil, want initialized map")
	}
}

// TestDefaults verifies the accessor fallbacks on a zero config.
func TestDefaults(t *testing.T) {
	var hook HookConfig
	stages := hook.PreCommitStages()
	if len(stages) != 2 || stages[0] != "scan" || stages[1] != "fmt" {
		t.Errorf("PreCommitStages() = %v, want [scan fmt]", stages)
	}

	var guard GuardConfig
	if got := guard.MaxContentScanBytesOrDefault(); got != 1<<20 {
		t.Errorf("MaxContentScanBytesOrDefault() = %d, want %d", got, 1<<20)
	}
	guard.MaxContentScanBytes = 64
	if got := guard.MaxContentScanBytesOrDefault(); got != 64 {
		t.Errorf("MaxContentScanBytesOrDefault() = %d, want 64", got)
	}
}
