// Package gitx wraps the git plumbing commands agentrig depends on.
//
// Everything here shells out to the git binary; agentrig does not parse
// repository internals itself. All functions accept a context so hook runs
// can be cancelled cleanly.
package gitx

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// run executes a git command in dir and returns trimmed stdout.
func run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	log.Debug("running git", "args", args, "dir", dir)

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}

	return strings.TrimSpace(stdout.String()), nil
}

// RepoRoot returns the top-level directory of the work tree containing dir.
//
// Parameters:
//   - ctx: Context for cancellation
//   - dir: Any directory inside the repository
//
// Returns:
//   - string: Absolute path of the work tree root
//   - error: If dir is not inside a git work tree
func RepoRoot(ctx context.Context, dir string) (string, error) {
	out, err := run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", fmt.Errorf("not inside a git work tree: %w", err)
	}
	return out, nil
}

// IsWorkTree reports whether dir is inside a git work tree.
func IsWorkTree(ctx context.Context, dir string) bool {
	out, err := run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// StagedFiles returns the paths staged for the next commit, relative to the
// repository root. Deleted files are excluded since there is nothing to
// scan or format.
//
// Parameters:
//   - ctx: Context for cancellation
//   - root: Repository root directory
//
// Returns:
//   - []string: Staged paths in git's output order
//   - error: If the diff command fails
func StagedFiles(ctx context.Context, root string) ([]string, error) {
	// -z gives NUL-separated output so paths with spaces survive.
	out, err := run(ctx, root, "diff", "--cached", "--name-only", "-z", "--diff-filter=ACMR")
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}

	var files []string
	for _, p := range strings.Split(out, "\x00") {
		if p != "" {
			files = append(files, p)
		}
	}
	return files, nil
}

// HooksDir returns the directory where git hooks live for the repository,
// honoring core.hooksPath when set.
func HooksDir(ctx context.Context, root string) (string, error) {
	out, err := run(ctx, root, "rev-parse", "--git-path", "hooks")
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(out) {
		return out, nil
	}
	return filepath.Join(root, out), nil
}

// Add re-stages the given paths. Used after a formatter rewrites staged
// files so the formatted content is what gets committed.
//
// Parameters:
//   - ctx: Context for cancellation
//   - root: Repository root directory
//   - paths: Paths relative to root
//
// Returns:
//   - error: If git add fails
func Add(ctx context.Context, root string, paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append([]string{"add", "--"}, paths...)
	if _, err := run(ctx, root, args...); err != nil {
		return fmt.Errorf("failed to re-stage files: %w", err)
	}
	return nil
}
