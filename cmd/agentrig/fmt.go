// Package main provides the fmt command: formatter dispatch over staged
// files.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentrig/cli/internal/format"
	"github.com/agentrig/cli/internal/gitx"
	"github.com/agentrig/cli/internal/ui"
)

var (
	fmtStaged     bool
	fmtNoRestage  bool
	fmtOutputJSON bool
)

// fmtCmd formats files by delegating to external formatter binaries.
var fmtCmd = &cobra.Command{
	Use:   "fmt [paths...]",
	Short: "Format files with the matching external formatters",
	Long: `Partition files by extension and run the matching formatter.

Formatters are external binaries (gofmt, prettier, ruff, rustfmt,
terraform, sql-formatter); a formatter whose binary is not on PATH
silently skips its file type. With --staged, files a formatter modified
are re-staged so the formatted content is what gets committed.

EXAMPLES:
  agentrig fmt --staged         # What the pre-commit hook runs
  agentrig fmt main.go web/     # Format explicit paths
  agentrig fmt --staged --json  # Machine-readable result`,
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVar(&fmtStaged, "staged", false, "Format the files staged for commit and re-stage changes")
	fmtCmd.Flags().BoolVar(&fmtNoRestage, "no-restage", false, "Do not re-stage files the formatters modified")
	fmtCmd.Flags().BoolVar(&fmtOutputJSON, "json", false, "Output the result as JSON")
}

// runFmt executes one formatting pass.
func runFmt(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	if !fmtStaged && len(args) == 0 {
		return fmt.Errorf("nothing to format: pass paths or use --staged")
	}

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	targets, err := resolveTargets(ctx, rc.Root, fmtStaged, args)
	if err != nil {
		return err
	}

	runner := format.NewRunner(rc.Root, rc.Cfg.Format)
	result, err := runner.Run(ctx, targets)
	if err != nil {
		return err
	}

	// Formatted staged files must be re-staged or the commit would carry
	// the unformatted content.
	if fmtStaged && !fmtNoRestage && len(result.Formatted) > 0 {
		if err := gitx.Add(ctx, rc.Root, result.Formatted...); err != nil {
			return err
		}
	}

	jsonOutput := fmtOutputJSON
	if globalJSON, _ := cmd.Root().PersistentFlags().GetBool("json"); globalJSON {
		jsonOutput = true
	}
	if jsonOutput {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printFmtResult(result)
	}

	if !result.OK() {
		return fmt.Errorf("%d formatter(s) failed", len(result.Failures))
	}
	return nil
}

// printFmtResult prints a human-readable formatting summary.
func printFmtResult(result *format.Result) {
	if len(result.Formatted) == 0 && result.OK() {
		ui.PrintSuccess("Nothing to format")
	}

	if len(result.Formatted) > 0 {
		ui.PrintSuccess("Formatted %d file(s):", len(result.Formatted))
		for _, f := range result.Formatted {
			ui.PrintDim("  %s", f)
		}
	}

	for _, name := range result.SkippedTools {
		ui.PrintDim("  %s not installed, skipped", name)
	}

	for _, failure := range result.Failures {
		ui.PrintError("%s: %s", failure.Formatter, failure.Output)
	}
}
