// Package main provides the init command that scaffolds a workspace.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentrig/cli/assets"
	"github.com/agentrig/cli/internal/config"
	"github.com/agentrig/cli/internal/gitx"
	"github.com/agentrig/cli/internal/hook"
	"github.com/agentrig/cli/internal/ui"
	"github.com/agentrig/cli/internal/util"
)

// initCmd scaffolds an agentrig workspace in the current repository.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize an agentrig workspace",
	Long: `Initialize an agentrig workspace in the current directory.

Creates the .agentrig/ directory with a config.yaml and one directory
per definition kind (agents, commands, rules, skills), seeded with the
starter definitions embedded in the binary. When run inside a git
repository, offers to install the pre-commit hook.

Examples:
  agentrig init                 # Scaffold workspace, prompt for hook
  agentrig init --hook          # Scaffold and install the hook
  agentrig init --bare          # Scaffold without starter definitions
  agentrig init --force         # Overwrite existing configuration`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var (
	initForce bool
	initBare  bool
	initHook  bool
)

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite existing configuration")
	initCmd.Flags().BoolVar(&initBare, "bare", false, "Skip the starter definitions")
	initCmd.Flags().BoolVar(&initHook, "hook", false, "Install the pre-commit hook without prompting")
}

// runInit scaffolds the workspace directory, writes the config, seeds the
// starter definitions, and optionally installs the pre-commit hook.
func runInit(cmd *cobra.Command, args []string) error {
	ui.PrintBanner(version)

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	workspaceDir := filepath.Join(cwd, config.WorkspaceDirName)
	configPath := filepath.Join(workspaceDir, config.ConfigFileName)

	// Check if already initialized
	if _, err := os.Stat(configPath); err == nil && !initForce {
		ui.PrintWarning("Workspace already initialized")
		ui.PrintInfo("Use --force to overwrite")
		return nil
	}

	projectName := util.SanitizeName(filepath.Base(cwd))
	if projectName == "" {
		projectName = "my-project"
	}

	cfg := config.DefaultProjectConfig(projectName)

	if err := os.MkdirAll(workspaceDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s directory: %w", config.WorkspaceDirName, err)
	}

	if err := config.WriteProjectConfig(configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	seeded, err := seedDefinitions(workspaceDir, initBare)
	if err != nil {
		return err
	}

	ui.PrintSuccess("Workspace initialized!")
	ui.Println()
	ui.PrintInfo("Created:")
	ui.PrintInfo("  %s/%s    - Project configuration", config.WorkspaceDirName, config.ConfigFileName)
	if seeded > 0 {
		ui.PrintInfo("  %s/<kind>/        - %d starter definitions", config.WorkspaceDirName, seeded)
	}
	ui.Println()

	installHookMaybe(cmd, cwd)

	ui.PrintInfo("Next steps:")
	ui.PrintInfo("  1. Review the config:        %s/%s", config.WorkspaceDirName, config.ConfigFileName)
	ui.PrintInfo("  2. Validate definitions:     agentrig validate")
	ui.PrintInfo("  3. Check your setup:         agentrig doctor")

	return nil
}

// seedDefinitions writes the embedded starter definitions into the kind
// directories under the workspace. Returns the number of files written.
func seedDefinitions(workspaceDir string, bare bool) (int, error) {
	seeded := 0
	for _, a := range assets.All() {
		kindDir := filepath.Join(workspaceDir, a.Kind.DirName())
		if err := os.MkdirAll(kindDir, 0755); err != nil {
			return seeded, fmt.Errorf("failed to create %s directory: %w", a.Kind.DirName(), err)
		}
		if bare {
			continue
		}

		path := filepath.Join(kindDir, a.Name+".md")
		if _, err := os.Stat(path); err == nil && !initForce {
			continue
		}
		if err := os.WriteFile(path, []byte(a.Content), 0644); err != nil {
			return seeded, fmt.Errorf("failed to write %s: %w", path, err)
		}
		seeded++
	}
	return seeded, nil
}

// installHookMaybe installs the pre-commit hook when --hook is set, or
// offers to when running interactively inside a git work tree. Failures
// are non-fatal; the hook can always be installed later.
func installHookMaybe(cmd *cobra.Command, cwd string) {
	ctx := cmd.Context()
	if !gitx.IsWorkTree(ctx, cwd) {
		ui.PrintDim("Not a git repository, skipping hook install")
		ui.PrintDim("Run 'agentrig hook install' after 'git init'")
		ui.Println()
		return
	}

	install := initHook
	if !install {
		proceed, err := ui.PromptConfirm("Install the pre-commit hook?", true)
		if err != nil || !proceed {
			ui.PrintDim("Skipped hook install (run 'agentrig hook install' later)")
			ui.Println()
			return
		}
		install = true
	}

	root, err := gitx.RepoRoot(ctx, cwd)
	if err != nil {
		ui.PrintWarning("Could not resolve repository root: %v", err)
		return
	}
	hooksDir, err := gitx.HooksDir(ctx, root)
	if err != nil {
		ui.PrintWarning("Could not resolve hooks directory: %v", err)
		return
	}

	path, err := hook.Install(hooksDir, initForce)
	if err != nil {
		ui.PrintWarning("Hook install failed: %v", err)
		ui.PrintDim("Retry with: agentrig hook install --force")
		ui.Println()
		return
	}

	ui.PrintSuccess("Pre-commit hook installed at %s", path)
	ui.Println()
}
