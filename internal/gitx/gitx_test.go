package gitx

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"testing"
)

// initTestRepo creates a throwaway git repository and returns its root.
func initTestRepo(t *testing.T) string {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not available")
	}

	root := t.TempDir()
	run := func(args ...string) {
		t.Helper()
		cmd := exec.Command("git", args...)
		cmd.Dir = root
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=test", "GIT_COMMITTER_EMAIL=test@example.com",
		)
		if out, err := cmd.CombinedOutput(); err != nil {
			t.Fatalf("git %v: %v\n%s", args, err, out)
		}
	}

	run("init")
	return root
}

// TestRepoRootAndIsWorkTree verifies work tree detection and root resolution.
func TestRepoRootAndIsWorkTree(t *testing.T) {
	ctx := context.Background()
	root := initTestRepo(t)

	if !IsWorkTree(ctx, root) {
		t.Error("IsWorkTree() = false inside a repository")
	}

	sub := filepath.Join(root, "pkg", "deep")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := RepoRoot(ctx, sub)
	if err != nil {
		t.Fatalf("RepoRoot() error = %v", err)
	}
	// Resolve symlinks on both sides; macOS tempdirs live under /private.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Errorf("RepoRoot() = %q, want %q", got, root)
	}

	if IsWorkTree(ctx, t.TempDir()) {
		t.Error("IsWorkTree() = true outside a repository")
	}
}

// TestStagedFiles verifies that only staged paths are listed, including
// names with spaces.
func TestStagedFiles(t *testing.T) {
	ctx := context.Background()
	root := initTestRepo(t)

	write := func(rel, content string) {
		t.Helper()
		full := filepath.Join(root, rel)
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	write("main.go", "package main\n")
	write("docs/with space.md", "# doc\n")
	write("unstaged.txt", "not staged\n")

	if err := Add(ctx, root, "main.go", "docs/with space.md"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}

	staged, err := StagedFiles(ctx, root)
	if err != nil {
		t.Fatalf("StagedFiles() error = %v", err)
	}
	sort.Strings(staged)

	want := []string{"docs/with space.md", "main.go"}
	if len(staged) != len(want) {
		t.Fatalf("StagedFiles() = %v, want %v", staged, want)
	}
	for i := range want {
		if staged[i] != want[i] {
			t.Errorf("StagedFiles()[%d] = %q, want %q", i, staged[i], want[i])
		}
	}
}

// TestStagedFilesEmpty verifies an empty index yields no paths.
func TestStagedFilesEmpty(t *testing.T) {
	ctx := context.Background()
	root := initTestRepo(t)

	staged, err := StagedFiles(ctx, root)
	if err != nil {
		t.Fatalf("StagedFiles() error = %v", err)
	}
	if len(staged) != 0 {
		t.Errorf("StagedFiles() = %v, want none", staged)
	}
}

// TestHooksDir verifies the hooks directory resolves under the repository.
func TestHooksDir(t *testing.T) {
	ctx := context.Background()
	root := initTestRepo(t)

	dir, err := HooksDir(ctx, root)
	if err != nil {
		t.Fatalf("HooksDir() error = %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("HooksDir() = %q, want absolute path", dir)
	}
	if filepath.Base(dir) != "hooks" {
		t.Errorf("HooksDir() = %q, want a .../hooks directory", dir)
	}
}
