package format

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/agentrig/cli/internal/config"
)

// TestPartition verifies that files are grouped by the formatter owning
// their extension, honoring overrides and disabled formatters.
func TestPartition(t *testing.T) {
	tests := []struct {
		name  string
		cfg   config.FormatConfig
		paths []string
		want  map[string][]string
	}{
		{
			name:  "extensions map to built-in formatters",
			paths: []string{"main.go", "app.ts", "style.css", "query.sql", "infra/main.tf"},
			want: map[string][]string{
				"gofmt":         {"main.go"},
				"prettier":      {"app.ts", "style.css"},
				"sql-formatter": {"query.sql"},
				"terraform":     {"infra/main.tf"},
			},
		},
		{
			name:  "unknown and missing extensions are ignored",
			paths: []string{"Makefile", "bin/tool", "notes.xyz"},
			want:  map[string][]string{},
		},
		{
			name:  "case-insensitive extension match",
			paths: []string{"Main.GO", "README.MD"},
			want: map[string][]string{
				"gofmt":    {"Main.GO"},
				"prettier": {"README.MD"},
			},
		},
		{
			name:  "disabled formatter drops its group",
			cfg:   config.FormatConfig{Disabled: []string{"prettier"}},
			paths: []string{"main.go", "app.js"},
			want: map[string][]string{
				"gofmt": {"main.go"},
			},
		},
		{
			name:  "extension override rebinds a formatter",
			cfg:   config.FormatConfig{Extensions: map[string]string{".qs": "prettier"}},
			paths: []string{"script.qs"},
			want: map[string][]string{
				"prettier": {"script.qs"},
			},
		},
		{
			name:  "override to unknown formatter is ignored",
			cfg:   config.FormatConfig{Extensions: map[string]string{".go": "clang-format"}},
			paths: []string{"main.go"},
			want:  map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRunner(t.TempDir(), tt.cfg)
			got := r.partition(tt.paths)

			if len(got) != len(tt.want) {
				t.Fatalf("partition() groups = %v, want %v", got, tt.want)
			}
			for name, files := range tt.want {
				if len(got[name]) != len(files) {
					t.Errorf("group %q = %v, want %v", name, got[name], files)
					continue
				}
				for i := range files {
					if got[name][i] != files[i] {
						t.Errorf("group %q = %v, want %v", name, got[name], files)
						break
					}
				}
			}
		})
	}
}

// TestRunSkipsMissingTools verifies that absent binaries are skipped
// silently and recorded, and that a skipped tool is not a failure.
func TestRunSkipsMissingTools(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r := NewRunner(root, config.FormatConfig{})
	r.lookPath = func(string) (string, error) {
		return "", errors.New("not found")
	}

	result, err := r.Run(context.Background(), []string{"main.go", "app.py"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.OK() {
		t.Errorf("OK() = false, failures = %+v", result.Failures)
	}
	if len(result.Formatted) != 0 {
		t.Errorf("Formatted = %v, want none", result.Formatted)
	}
	if len(result.SkippedTools) != 2 {
		t.Errorf("SkippedTools = %v, want [gofmt ruff]", result.SkippedTools)
	}
}

// TestRunDetectsModifiedFiles verifies the before/after hash comparison by
// registering a formatter that appends to its files.
func TestRunDetectsModifiedFiles(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.apx"), []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.apx"), []byte("two\n"), 0644); err != nil {
		t.Fatal(err)
	}

	restore := registry
	registry = append(registry, Formatter{
		Name:       "appender",
		Binary:     "sh",
		Args:       []string{"-c", `printf x >> "$1"`, "appender"},
		Extensions: []string{".apx"},
	})
	defer func() { registry = restore }()

	r := NewRunner(root, config.FormatConfig{})

	result, err := r.Run(context.Background(), []string{"a.apx", "b.apx"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.OK() {
		t.Fatalf("OK() = false, failures = %+v", result.Failures)
	}
	// The script only rewrites its first file argument, so exactly one of
	// the two should be reported as formatted.
	if len(result.Formatted) != 1 || result.Formatted[0] != "a.apx" {
		t.Errorf("Formatted = %v, want [a.apx]", result.Formatted)
	}
}

// TestRunPerFileFormatterOnePathPerInvocation verifies that a formatter
// marked PerFile gets exactly one file argument per run, so CLIs with a
// single positional FILE still format every file in the group.
func TestRunPerFileFormatterOnePathPerInvocation(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.sgl"), []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "b.sgl"), []byte("two\n"), 0644); err != nil {
		t.Fatal(err)
	}

	restore := registry
	// The script exits 9 when handed more than one file, the way a
	// single-FILE CLI would reject extra positionals.
	registry = append(registry, Formatter{
		Name:       "single",
		Binary:     "sh",
		Args:       []string{"-c", `[ "$#" -eq 1 ] || exit 9; printf x >> "$1"`, "single"},
		Extensions: []string{".sgl"},
		PerFile:    true,
	})
	defer func() { registry = restore }()

	r := NewRunner(root, config.FormatConfig{})

	result, err := r.Run(context.Background(), []string{"a.sgl", "b.sgl"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if !result.OK() {
		t.Fatalf("OK() = false, failures = %+v", result.Failures)
	}
	if len(result.Formatted) != 2 {
		t.Errorf("Formatted = %v, want both files", result.Formatted)
	}
}

// TestRunRecordsFailures verifies that a non-zero formatter exit is recorded
// without aborting the run.
func TestRunRecordsFailures(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "a.flx"), []byte("x\n"), 0644); err != nil {
		t.Fatal(err)
	}

	restore := registry
	registry = append(registry, Formatter{
		Name:       "flaky",
		Binary:     "sh",
		Args:       []string{"-c", "echo broken >&2; exit 3", "flaky"},
		Extensions: []string{".flx"},
	})
	defer func() { registry = restore }()

	r := NewRunner(root, config.FormatConfig{})

	result, err := r.Run(context.Background(), []string{"a.flx"})
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if result.OK() {
		t.Fatal("OK() = true, want failure recorded")
	}
	if len(result.Failures) != 1 || result.Failures[0].Formatter != "flaky" {
		t.Errorf("Failures = %+v, want one for flaky", result.Failures)
	}
}

// TestRegistryLookups verifies the registry accessors.
func TestRegistryLookups(t *testing.T) {
	if _, ok := ByName("gofmt"); !ok {
		t.Error("ByName(gofmt) not found")
	}
	if _, ok := ByName("no-such-tool"); ok {
		t.Error("ByName(no-such-tool) unexpectedly found")
	}

	names := Names()
	if len(names) != len(Registry()) {
		t.Errorf("Names() length = %d, want %d", len(names), len(Registry()))
	}

	sqlFmt, ok := ByName("sql-formatter")
	if !ok {
		t.Fatal("ByName(sql-formatter) not found")
	}
	if !sqlFmt.PerFile {
		t.Error("sql-formatter should run once per file")
	}
}
