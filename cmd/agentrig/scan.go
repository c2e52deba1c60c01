// Package main provides the scan command: protected-file and secret
// content scanning over staged files.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agentrig/cli/internal/guard"
	"github.com/agentrig/cli/internal/ui"
)

var (
	scanStaged     bool
	scanOutputJSON bool
	scanNoPrompt   bool
)

// scanCmd scans files for protected names and secret-shaped content.
var scanCmd = &cobra.Command{
	Use:   "scan [paths...]",
	Short: "Scan files for protected names and secrets",
	Long: `Scan files for protected filename patterns and secret-shaped content.

Two static rule sets drive the scan:
  - protected filename patterns (.env, *.pem, secrets/, key material, ...)
  - secret content patterns (AWS access keys, private key blocks, tokens,
    password assignments)

With --staged, the staged file list is read from git; otherwise the given
paths are scanned. On a violation the scan prompts for confirmation when
run interactively and exits non-zero otherwise, blocking the commit.

EXAMPLES:
  agentrig scan --staged        # What the pre-commit hook runs
  agentrig scan config/ .env    # Scan explicit paths
  agentrig scan --staged --json # Machine-readable report`,
	RunE: runScan,
}

func init() {
	scanCmd.Flags().BoolVar(&scanStaged, "staged", false, "Scan the files staged for commit")
	scanCmd.Flags().BoolVar(&scanOutputJSON, "json", false, "Output the report as JSON")
	scanCmd.Flags().BoolVar(&scanNoPrompt, "no-prompt", false, "Never prompt; exit non-zero on any violation")
}

// runScan executes the guard scan and applies the prompt-or-block policy.
func runScan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if !scanStaged && len(args) == 0 {
		return fmt.Errorf("nothing to scan: pass paths or use --staged")
	}

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	targets, err := resolveTargets(ctx, rc.Root, scanStaged, args)
	if err != nil {
		return err
	}

	report, err := runGuardScan(ctx, rc, targets)
	if err != nil {
		return err
	}

	jsonOutput := scanOutputJSON
	if globalJSON, _ := cmd.Root().PersistentFlags().GetBool("json"); globalJSON {
		jsonOutput = true
	}
	if jsonOutput {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		fmt.Println(string(data))
		if !report.Clean() {
			return fmt.Errorf("scan found %d violation(s)", len(report.Violations))
		}
		return nil
	}

	if report.Clean() {
		ui.PrintSuccess("Scanned %d file(s), no violations", report.Files)
		return nil
	}

	printScanReport(report)
	return resolveScanOutcome(rc, report)
}

// runGuardScan builds a scanner from project config and runs it.
func runGuardScan(ctx context.Context, rc *repoContext, targets []string) (*guard.Report, error) {
	scanner, err := guard.NewScanner(rc.Root, rc.Cfg.Guard)
	if err != nil {
		return nil, err
	}
	return scanner.Scan(ctx, targets)
}

// printScanReport prints every finding, path violations first.
func printScanReport(report *guard.Report) {
	if paths := report.PathViolations(); len(paths) > 0 {
		ui.PrintWarning("Protected files staged for commit:")
		for _, v := range paths {
			ui.PrintDim("  %s  (%s)", v.Path, v.Rule)
		}
	}

	if contents := report.ContentViolations(); len(contents) > 0 {
		ui.PrintWarning("Secret-shaped content found:")
		for _, v := range contents {
			ui.PrintDim("  %s:%d  (%s)  %s", v.Path, v.Line, v.Rule, v.Excerpt)
		}
	}
}

// resolveScanOutcome decides between prompting and blocking.
//
// Interactive runs (stdin is a TTY, prompting not disabled) ask the user
// whether to proceed; everything else (hooks, CI) blocks outright.
func resolveScanOutcome(rc *repoContext, report *guard.Report) error {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) &&
		!scanNoPrompt &&
		!rc.Cfg.Guard.NonInteractive

	if !interactive {
		return fmt.Errorf("scan found %d violation(s)", len(report.Violations))
	}

	ui.Println()
	confirmed, err := ui.PromptConfirm("Proceed despite the violations above?", false)
	if err != nil {
		return fmt.Errorf("scan found %d violation(s)", len(report.Violations))
	}
	if !confirmed {
		return fmt.Errorf("aborted: %d violation(s)", len(report.Violations))
	}

	ui.PrintWarning("Proceeding with violations acknowledged")
	return nil
}
