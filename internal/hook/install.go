// Package hook installs and removes the git pre-commit hook that drives
// the agentrig pipeline.
//
// The installed script is a thin shim that execs `agentrig hook run
// pre-commit`; all scanning and formatting logic stays in the binary. The
// git contract is preserved: the hook receives no arguments, reads the
// staged list itself, and a non-zero exit blocks the commit.
package hook

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// marker identifies hooks written by agentrig so uninstall never deletes a
// hook the user wrote themselves.
const marker = "# installed by agentrig"

// script is the pre-commit shim. The PATH lookup at run time keeps the
// hook valid across agentrig upgrades and reinstalls.
const script = `#!/bin/sh
` + marker + `
exec agentrig hook run pre-commit
`

// PreCommitPath returns the pre-commit hook path under hooksDir.
func PreCommitPath(hooksDir string) string {
	return filepath.Join(hooksDir, "pre-commit")
}

// Installed reports whether an agentrig pre-commit hook is present,
// distinguishing "ours" from a foreign hook at the same path.
//
// Parameters:
//   - hooksDir: The repository hooks directory
//
// Returns:
//   - bool: True if a pre-commit hook exists
//   - bool: True if the existing hook was installed by agentrig
func Installed(hooksDir string) (bool, bool) {
	data, err := os.ReadFile(PreCommitPath(hooksDir))
	if err != nil {
		return false, false
	}
	return true, strings.Contains(string(data), marker)
}

// Install writes the pre-commit shim.
//
// An existing foreign hook is never overwritten unless force is set; an
// existing agentrig hook is rewritten in place so upgrades pick up script
// changes.
//
// Parameters:
//   - hooksDir: The repository hooks directory
//   - force: Overwrite a foreign pre-commit hook
//
// Returns:
//   - string: The path the hook was written to
//   - error: If a foreign hook blocks installation or the write fails
func Install(hooksDir string, force bool) (string, error) {
	path := PreCommitPath(hooksDir)

	exists, ours := Installed(hooksDir)
	if exists && !ours && !force {
		return "", fmt.Errorf("a pre-commit hook not installed by agentrig already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(hooksDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create hooks directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		return "", fmt.Errorf("failed to write pre-commit hook: %w", err)
	}

	return path, nil
}

// Uninstall removes the pre-commit hook if and only if agentrig installed
// it.
//
// Parameters:
//   - hooksDir: The repository hooks directory
//
// Returns:
//   - error: If a foreign hook is present or removal fails
func Uninstall(hooksDir string) error {
	path := PreCommitPath(hooksDir)

	exists, ours := Installed(hooksDir)
	if !exists {
		return nil
	}
	if !ours {
		return fmt.Errorf("pre-commit hook at %s was not installed by agentrig, refusing to remove it", path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to remove pre-commit hook: %w", err)
	}
	return nil
}
