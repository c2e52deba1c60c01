// Package main provides the hook command for managing the git pre-commit
// pipeline.
package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentrig/cli/internal/format"
	"github.com/agentrig/cli/internal/gitx"
	"github.com/agentrig/cli/internal/hook"
	"github.com/agentrig/cli/internal/ui"
)

// hookCmd is the parent command for git hook management.
var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the git pre-commit hook",
	Long: `Manage the git pre-commit hook that runs the agentrig pipeline.

The installed hook is a thin shim that execs "agentrig hook run
pre-commit". The pipeline runs the guard scan and then the formatter
pass over staged files; a non-zero exit blocks the commit.

EXAMPLES:
  agentrig hook install             # Install .git/hooks/pre-commit
  agentrig hook install --claude    # Also register in .claude/settings.json
  agentrig hook uninstall           # Remove the hook (only if ours)
  agentrig hook run pre-commit      # What git invokes on commit`,
}

var (
	hookInstallForce  bool
	hookInstallClaude bool
)

// hookInstallCmd installs the pre-commit shim.
var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the pre-commit hook",
	Args:  cobra.NoArgs,
	RunE:  runHookInstall,
}

// hookUninstallCmd removes the pre-commit shim.
var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the pre-commit hook installed by agentrig",
	Args:  cobra.NoArgs,
	RunE:  runHookUninstall,
}

// hookRunCmd executes a hook stage pipeline. Git invokes this through the
// installed shim.
var hookRunCmd = &cobra.Command{
	Use:       "run <hook>",
	Short:     "Run a hook pipeline (invoked by git)",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"pre-commit"},
	RunE:      runHookRun,
}

func init() {
	hookInstallCmd.Flags().BoolVar(&hookInstallForce, "force", false, "Overwrite a pre-commit hook not installed by agentrig")
	hookInstallCmd.Flags().BoolVar(&hookInstallClaude, "claude", false, "Also register the pipeline in .claude/settings.json")

	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
	hookCmd.AddCommand(hookRunCmd)
}

// runHookInstall writes the pre-commit shim and optionally registers the
// pipeline with Claude Code.
func runHookInstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	hooksDir, err := gitx.HooksDir(ctx, rc.Root)
	if err != nil {
		return err
	}

	path, err := hook.Install(hooksDir, hookInstallForce)
	if err != nil {
		return err
	}
	ui.PrintSuccess("Installed pre-commit hook at %s", path)

	if hookInstallClaude {
		settingsPath, err := hook.RegisterClaudeHook(rc.Root)
		if err != nil {
			return err
		}
		ui.PrintSuccess("Registered pipeline in %s", settingsPath)
	}

	return nil
}

// runHookUninstall removes the shim if agentrig installed it.
func runHookUninstall(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	hooksDir, err := gitx.HooksDir(ctx, rc.Root)
	if err != nil {
		return err
	}

	if err := hook.Uninstall(hooksDir); err != nil {
		return err
	}

	ui.PrintSuccess("Removed pre-commit hook")
	return nil
}

// runHookRun executes the configured stages for one hook. Only pre-commit
// exists today.
//
// Contract: no arguments from git, staged list read via git itself,
// exit 0 allows the commit, non-zero blocks it.
func runHookRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if args[0] != "pre-commit" {
		return fmt.Errorf("unknown hook %q", args[0])
	}

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	staged, err := gitx.StagedFiles(ctx, rc.Root)
	if err != nil {
		return err
	}
	if len(staged) == 0 {
		return nil
	}

	for _, stage := range rc.Cfg.Hook.PreCommitStages() {
		switch stage {
		case "scan":
			if err := runScanStage(ctx, rc, staged); err != nil {
				return err
			}
		case "fmt":
			if err := runFmtStage(ctx, rc, staged); err != nil {
				return err
			}
		default:
			return fmt.Errorf("unknown pre-commit stage %q in config", stage)
		}
	}

	return nil
}

// runScanStage runs the guard scan in hook mode: violations always block,
// no prompting, since git hooks don't own the terminal.
func runScanStage(ctx context.Context, rc *repoContext, staged []string) error {
	report, err := runGuardScan(ctx, rc, staged)
	if err != nil {
		return err
	}
	if report.Clean() {
		return nil
	}

	printScanReport(report)
	ui.Println()
	ui.PrintDim("Bypass once with: git commit --no-verify")
	return fmt.Errorf("commit blocked: %d violation(s)", len(report.Violations))
}

// runFmtStage formats the staged files and re-stages whatever changed.
func runFmtStage(ctx context.Context, rc *repoContext, staged []string) error {
	runner := format.NewRunner(rc.Root, rc.Cfg.Format)
	result, err := runner.Run(ctx, staged)
	if err != nil {
		return err
	}

	if len(result.Formatted) > 0 {
		if err := gitx.Add(ctx, rc.Root, result.Formatted...); err != nil {
			return err
		}
		ui.PrintSuccess("Formatted and re-staged %d file(s)", len(result.Formatted))
	}

	for _, failure := range result.Failures {
		ui.PrintError("%s: %s", failure.Formatter, failure.Output)
	}
	if !result.OK() {
		return fmt.Errorf("commit blocked: %d formatter(s) failed", len(result.Failures))
	}
	return nil
}
