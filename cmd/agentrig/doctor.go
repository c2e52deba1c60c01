// Package main provides the doctor command for workspace diagnostics.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentrig/cli/internal/config"
	"github.com/agentrig/cli/internal/definition"
	"github.com/agentrig/cli/internal/format"
	"github.com/agentrig/cli/internal/gitx"
	"github.com/agentrig/cli/internal/hook"
	"github.com/agentrig/cli/internal/ui"
)

// DoctorCheck represents a single diagnostic check result.
type DoctorCheck struct {
	// Name is the check name (e.g., "Git Repository", "Pre-commit Hook").
	Name string `json:"name"`

	// Status is the check status: "ok", "warning", "error".
	Status string `json:"status"`

	// Message is the human-readable result message.
	Message string `json:"message"`

	// Details contains additional information (optional).
	Details string `json:"details,omitempty"`
}

// DoctorResult contains all diagnostic check results.
type DoctorResult struct {
	// Checks contains all individual check results.
	Checks []DoctorCheck `json:"checks"`

	// Issues is the count of checks with status "error" or "warning".
	Issues int `json:"issues"`

	// Healthy is true if no errors were found.
	Healthy bool `json:"healthy"`
}

var doctorOutputJSON bool

// doctorCmd runs diagnostic checks on the workspace.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check workspace and hook health",
	Long: `Run diagnostic checks on the agentrig setup in the current repository.

CHECKS PERFORMED:
  - Version (released build vs development build)
  - Git repository (inside a work tree?)
  - Project configuration (.agentrig/config.yaml exists and valid?)
  - Pre-commit hook (installed and managed by agentrig?)
  - Claude Code hook registration (.claude/settings.json)
  - Formatters (which formatter binaries are on PATH?)
  - Definitions (do all agent/command/rule/skill files validate?)

OUTPUT:
  Human-readable by default, JSON with --json flag.

EXAMPLES:
  agentrig doctor              # Run all checks
  agentrig doctor --json       # Output as JSON for scripting`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorOutputJSON, "json", false, "Output results as JSON")
}

// runDoctor executes all diagnostic checks.
func runDoctor(cmd *cobra.Command, args []string) error {
	jsonOutput := doctorOutputJSON
	if globalJSON, _ := cmd.Root().PersistentFlags().GetBool("json"); globalJSON {
		jsonOutput = true
	}

	result := DoctorResult{
		Checks:  make([]DoctorCheck, 0),
		Healthy: true,
	}

	if !jsonOutput {
		ui.PrintBanner(version)
		ui.PrintInfo("Running diagnostic checks...")
		ui.Println()
	}

	ctx := cmd.Context()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	// Check 1: Version
	result.add(checkVersion())

	// Check 2: Git repository
	gitCheck, root := checkGitRepository(cmd, cwd)
	result.add(gitCheck)
	if root == "" {
		root = cwd
	}

	// Check 3: Project configuration
	configCheck, cfg := checkProjectConfig(root)
	result.add(configCheck)

	// Check 4: Pre-commit hook (only meaningful inside a work tree)
	if gitCheck.Status == "ok" {
		hooksDir, hooksErr := gitx.HooksDir(ctx, root)
		if hooksErr == nil {
			result.add(checkPreCommitHook(hooksDir))
		}
	}

	// Check 5: Claude Code registration
	result.add(checkClaudeHook(root))

	// Check 6: Formatter binaries
	result.add(checkFormatters(cfg))

	// Check 7: Definitions
	result.add(checkDefinitions(root))

	if jsonOutput {
		data, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(data))
	} else {
		printDoctorResults(result)
	}

	if !result.Healthy {
		return fmt.Errorf("health check failed")
	}

	return nil
}

// add appends a check and updates the issue and health counters. Warnings
// count as issues but do not mark the setup unhealthy.
func (r *DoctorResult) add(check DoctorCheck) {
	r.Checks = append(r.Checks, check)
	switch check.Status {
	case "error":
		r.Healthy = false
		r.Issues++
	case "warning":
		r.Issues++
	}
}

// checkVersion reports whether this is a released build.
func checkVersion() DoctorCheck {
	check := DoctorCheck{
		Name:   "Version",
		Status: "ok",
	}

	if version == "dev" {
		check.Status = "warning"
		check.Message = "Development build"
		check.Details = "Running a development build, not a released version"
	} else {
		check.Message = fmt.Sprintf("v%s", version)
		check.Details = fmt.Sprintf("Commit: %s, Built: %s", commit, date)
	}

	return check
}

// checkGitRepository verifies we are inside a git work tree and returns
// the resolved repository root (empty when outside a repository).
func checkGitRepository(cmd *cobra.Command, cwd string) (DoctorCheck, string) {
	check := DoctorCheck{
		Name:   "Git Repository",
		Status: "ok",
	}

	ctx := cmd.Context()
	if !gitx.IsWorkTree(ctx, cwd) {
		check.Status = "warning"
		check.Message = "Not inside a git work tree"
		check.Details = "The pre-commit hook only runs inside a git repository"
		return check, ""
	}

	root, err := gitx.RepoRoot(ctx, cwd)
	if err != nil {
		check.Status = "warning"
		check.Message = "Could not resolve repository root"
		check.Details = err.Error()
		return check, ""
	}

	check.Message = fmt.Sprintf("Work tree at %s", root)
	return check, root
}

// checkProjectConfig checks whether a valid workspace configuration exists
// and returns it (the defaults when missing).
func checkProjectConfig(root string) (DoctorCheck, *config.ProjectConfig) {
	check := DoctorCheck{
		Name:   "Project Config",
		Status: "ok",
	}

	configPath := config.ConfigPath(root)
	cfg, err := config.LoadProjectConfig(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			check.Status = "warning"
			check.Message = "No workspace configuration"
			check.Details = "Run 'agentrig init' to initialize a workspace"
		} else {
			check.Status = "error"
			check.Message = "Configuration is invalid"
			check.Details = err.Error()
		}
		return check, config.DefaultProjectConfig("")
	}

	check.Message = fmt.Sprintf("Found at %s", configPath)

	var details []string
	if cfg.Project.Name != "" {
		details = append(details, fmt.Sprintf("Project: %s", cfg.Project.Name))
	}
	if len(cfg.Guard.ProtectedPatterns) > 0 {
		details = append(details, fmt.Sprintf("%d custom protected pattern(s)", len(cfg.Guard.ProtectedPatterns)))
	}
	if len(cfg.Format.Disabled) > 0 {
		details = append(details, fmt.Sprintf("%d formatter(s) disabled", len(cfg.Format.Disabled)))
	}
	if len(details) > 0 {
		check.Details = strings.Join(details, ", ")
	}

	return check, cfg
}

// checkPreCommitHook checks whether the pre-commit hook is installed and
// managed by agentrig.
func checkPreCommitHook(hooksDir string) DoctorCheck {
	check := DoctorCheck{
		Name:   "Pre-commit Hook",
		Status: "ok",
	}

	exists, ours := hook.Installed(hooksDir)
	switch {
	case !exists:
		check.Status = "warning"
		check.Message = "Not installed"
		check.Details = "Run 'agentrig hook install' to enable pre-commit checks"
	case !ours:
		check.Status = "warning"
		check.Message = "A foreign pre-commit hook is installed"
		check.Details = fmt.Sprintf("Found at %s; use 'agentrig hook install --force' to replace it", hook.PreCommitPath(hooksDir))
	default:
		check.Message = fmt.Sprintf("Installed at %s", hook.PreCommitPath(hooksDir))
	}

	return check
}

// checkClaudeHook checks whether the hook is registered in the repository's
// .claude/settings.json. Informational only.
func checkClaudeHook(root string) DoctorCheck {
	check := DoctorCheck{
		Name:   "Claude Code Hook",
		Status: "ok",
	}

	if hook.ClaudeHookRegistered(root) {
		check.Message = "Registered in .claude/settings.json"
	} else {
		check.Message = "Not registered"
		check.Details = "Run 'agentrig hook install --claude' to run checks when Claude Code commits"
	}

	return check
}

// checkFormatters reports which formatter binaries are available on PATH.
func checkFormatters(cfg *config.ProjectConfig) DoctorCheck {
	check := DoctorCheck{
		Name:   "Formatters",
		Status: "ok",
	}

	disabled := make(map[string]bool, len(cfg.Format.Disabled))
	for _, name := range cfg.Format.Disabled {
		disabled[name] = true
	}

	var available, missing []string
	for _, f := range format.Registry() {
		if disabled[f.Name] {
			continue
		}
		if _, err := exec.LookPath(f.Binary); err == nil {
			available = append(available, f.Name)
		} else {
			missing = append(missing, f.Name)
		}
	}

	if len(available) == 0 {
		check.Status = "warning"
		check.Message = "No formatter binaries found on PATH"
		check.Details = "Staged files will pass through unformatted"
		return check
	}

	check.Message = fmt.Sprintf("%d of %d available", len(available), len(available)+len(missing))
	check.Details = fmt.Sprintf("Available: %s", strings.Join(available, ", "))
	if len(missing) > 0 {
		check.Details += fmt.Sprintf("; missing: %s", strings.Join(missing, ", "))
	}

	return check
}

// checkDefinitions loads and validates every workspace definition.
func checkDefinitions(root string) DoctorCheck {
	check := DoctorCheck{
		Name:   "Definitions",
		Status: "ok",
	}

	ws, loadErrs := definition.Load(root)
	if len(loadErrs) > 0 {
		check.Status = "error"
		check.Message = fmt.Sprintf("%d definition(s) failed to load", len(loadErrs))
		check.Details = loadErrs[0].Error()
		return check
	}

	if ws.Len() == 0 {
		check.Message = "No definitions found"
		check.Details = "Run 'agentrig init' to seed starter definitions"
		return check
	}

	invalid := 0
	for _, result := range definition.ValidateWorkspace(ws) {
		if !result.Valid {
			invalid++
		}
	}

	if invalid > 0 {
		check.Status = "error"
		check.Message = fmt.Sprintf("%d of %d definition(s) invalid", invalid, ws.Len())
		check.Details = "Run 'agentrig validate' for details"
		return check
	}

	check.Message = fmt.Sprintf("%d definition(s) valid", ws.Len())
	return check
}

// printDoctorResults prints the doctor results in human-readable format.
func printDoctorResults(result DoctorResult) {
	for _, check := range result.Checks {
		var icon string
		switch check.Status {
		case "ok":
			icon = ui.SuccessStyle.Render("✓")
		case "warning":
			icon = ui.WarningStyle.Render("⚠")
		case "error":
			icon = ui.ErrorStyle.Render("✗")
		}

		fmt.Printf("  %s %-18s %s\n", icon, check.Name+":", check.Message)

		if check.Details != "" {
			fmt.Printf("    %s\n", ui.DimStyle.Render(check.Details))
		}
	}

	ui.Println()

	if result.Issues > 0 {
		ui.PrintWarning("%d issue(s) found", result.Issues)
	} else {
		ui.PrintSuccess("All checks passed")
	}
}
