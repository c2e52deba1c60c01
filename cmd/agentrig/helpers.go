// Package main provides shared helper functions for CLI commands.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/agentrig/cli/internal/config"
	"github.com/agentrig/cli/internal/gitx"
)

// repoContext is what most commands need before doing anything: the
// repository root and the project config (defaults when absent).
type repoContext struct {
	Root string
	Cfg  *config.ProjectConfig
}

// loadRepoContext resolves the repository root from the working directory
// and loads .agentrig/config.yaml.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - *repoContext: Root and config
//   - error: If not inside a git work tree or the config is malformed
func loadRepoContext(ctx context.Context) (*repoContext, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}

	root, err := gitx.RepoRoot(ctx, cwd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadProjectConfigOrDefault(root)
	if err != nil {
		return nil, err
	}

	return &repoContext{Root: root, Cfg: cfg}, nil
}

// resolveTargets returns the repo-relative paths a scan or format run
// operates on: the staged set when staged is true, otherwise the explicit
// path arguments converted to be relative to root. A directory argument is
// expanded to every file under it.
//
// Parameters:
//   - ctx: Context for cancellation
//   - root: Repository root directory
//   - staged: Use the staged file list
//   - args: Explicit paths (ignored when staged is true)
//
// Returns:
//   - []string: Repo-relative file paths
//   - error: If the staged list cannot be read or a path escapes the root
func resolveTargets(ctx context.Context, root string, staged bool, args []string) ([]string, error) {
	if staged {
		return gitx.StagedFiles(ctx, root)
	}

	var targets []string
	for _, arg := range args {
		abs, err := filepath.Abs(arg)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve path %s: %w", arg, err)
		}
		rel, err := filepath.Rel(root, abs)
		if err != nil || strings.HasPrefix(rel, "..") {
			return nil, fmt.Errorf("path %s is outside the repository", arg)
		}

		if info, statErr := os.Stat(abs); statErr == nil && info.IsDir() {
			expanded, err := expandDirTarget(root, abs)
			if err != nil {
				return nil, err
			}
			targets = append(targets, expanded...)
			continue
		}
		targets = append(targets, rel)
	}
	return targets, nil
}

// expandDirTarget walks a directory argument into the repo-relative files
// under it, skipping the .git directory.
func expandDirTarget(root, dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		files = append(files, rel)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", dir, err)
	}
	return files, nil
}
