// Package main provides the skill command for managing embedded agent
// skills.
//
// The starter skills teach AI assistants (Cursor, Claude Code, Codex)
// workflows that pair with the agentrig pipeline. They are embedded in the
// binary at compile time and can be installed to any supported skill
// directory.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/agentrig/cli/assets"
	"github.com/agentrig/cli/internal/definition"
	"github.com/agentrig/cli/internal/ui"
	"github.com/agentrig/cli/internal/util"
)

// skillDirectories lists the supported skill directory locations for each
// tool, ordered by preference: project-level first, user-level (global)
// second.
var skillDirectories = map[string][]string{
	"cursor": {".cursor/skills", "~/.cursor/skills"},
	"claude": {".claude/skills", "~/.claude/skills"},
	"codex":  {".codex/skills", "~/.codex/skills"},
}

// skillCmd is the parent command for agent skill management.
var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the embedded agent skills",
	Long: `Manage the agent skills embedded in the agentrig binary.

The skills teach AI assistants (Cursor, Claude Code, Codex) git and
review workflows that pair with the agentrig pre-commit pipeline. They
can be installed to any supported tool with a single command.

EXAMPLES:
  agentrig skill list              # List embedded skills
  agentrig skill show git-workflow # Print one skill to stdout
  agentrig skill export git-workflow -o SKILL.md
  agentrig skill install           # Auto-detect tools and install all
  agentrig skill install --claude  # Install for Claude Code
  agentrig skill install --global  # Install to user-level directories`,
}

// skillListCmd lists the embedded skills.
var skillListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the embedded agent skills",
	Args:  cobra.NoArgs,
	RunE:  runSkillList,
}

// skillShowCmd prints one embedded skill to stdout.
var skillShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print an embedded skill to stdout",
	Long: `Print an embedded skill's content to stdout.

Useful for piping into other tools or inspecting the skill content
without installing it.

EXAMPLES:
  agentrig skill show git-workflow            # Print to terminal
  agentrig skill show git-workflow --copy     # Copy to clipboard`,
	Args: cobra.ExactArgs(1),
	RunE: runSkillShow,
}

// skillExportCmd writes one embedded skill to a file.
var skillExportCmd = &cobra.Command{
	Use:   "export <name>",
	Short: "Export an embedded skill to a file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSkillExport,
}

var (
	skillShowCopy      bool
	skillExportOutput  string
	skillInstallCursor bool
	skillInstallClaude bool
	skillInstallCodex  bool
	skillInstallGlobal bool
	skillInstallForce  bool
	skillInstallNames  []string
)

// skillInstallCmd installs embedded skills to the appropriate directories.
var skillInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the embedded skills for your AI coding tool",
	Long: `Install the embedded agent skills to the appropriate directory
for your AI coding tool.

Without flags, auto-detects which tools are present by checking for
their configuration directories. With a tool flag, installs to that
specific tool's skill directory. By default installs to the
project-level directory (e.g. .cursor/skills/); use --global for the
user-level directory instead.

EXAMPLES:
  agentrig skill install                  # Auto-detect and install all
  agentrig skill install --claude         # Install for Claude Code
  agentrig skill install --name git-workflow
  agentrig skill install --global --force`,
	Args: cobra.NoArgs,
	RunE: runSkillInstall,
}

func init() {
	skillShowCmd.Flags().BoolVar(&skillShowCopy, "copy", false, "Copy the skill content to the clipboard")

	skillExportCmd.Flags().StringVarP(&skillExportOutput, "output", "o", "", "Output file path (default <name>.md)")

	skillInstallCmd.Flags().BoolVar(&skillInstallCursor, "cursor", false, "Install for Cursor")
	skillInstallCmd.Flags().BoolVar(&skillInstallClaude, "claude", false, "Install for Claude Code")
	skillInstallCmd.Flags().BoolVar(&skillInstallCodex, "codex", false, "Install for Codex")
	skillInstallCmd.Flags().BoolVar(&skillInstallGlobal, "global", false, "Install to user-level (global) directory instead of project-level")
	skillInstallCmd.Flags().BoolVar(&skillInstallForce, "force", false, "Overwrite existing skill installations")
	skillInstallCmd.Flags().StringSliceVar(&skillInstallNames, "name", nil, "Install only the named skill(s)")

	skillCmd.AddCommand(skillListCmd)
	skillCmd.AddCommand(skillShowCmd)
	skillCmd.AddCommand(skillExportCmd)
	skillCmd.AddCommand(skillInstallCmd)
}

// runSkillList prints the embedded skill catalog.
func runSkillList(cmd *cobra.Command, args []string) error {
	ui.PrintTableHeader("NAME", "DESCRIPTION")
	for _, a := range assets.ByKind(definition.KindSkill) {
		ui.PrintTableRow(a.Name, a.Description)
	}
	return nil
}

// runSkillShow prints one embedded skill to stdout.
func runSkillShow(cmd *cobra.Command, args []string) error {
	a, ok := assets.Get(definition.KindSkill, args[0])
	if !ok {
		return fmt.Errorf("unknown skill %q (valid: %v)", args[0], assets.Names(definition.KindSkill))
	}

	if skillShowCopy {
		if err := clipboard.WriteAll(a.Content); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		ui.PrintSuccess("Copied %s to clipboard", a.Name)
		return nil
	}

	fmt.Print(a.Content)
	return nil
}

// runSkillExport writes one embedded skill to a file on disk.
func runSkillExport(cmd *cobra.Command, args []string) error {
	a, ok := assets.Get(definition.KindSkill, args[0])
	if !ok {
		return fmt.Errorf("unknown skill %q (valid: %v)", args[0], assets.Names(definition.KindSkill))
	}

	outputPath := skillExportOutput
	if outputPath == "" {
		outputPath = util.SanitizeName(a.Name) + ".md"
	}

	dir := filepath.Dir(outputPath)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(outputPath, []byte(a.Content), 0644); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	ui.PrintSuccess("Exported skill to %s", outputPath)
	return nil
}

// runSkillInstall installs embedded skills to the resolved directories.
func runSkillInstall(cmd *cobra.Command, args []string) error {
	selected, err := resolveInstallSkills(skillInstallNames)
	if err != nil {
		return err
	}

	targets := resolveInstallTargets()
	if len(targets) == 0 {
		ui.PrintError("No supported AI tools detected.")
		ui.Println()
		ui.PrintInfo("Specify a tool explicitly:")
		ui.PrintDim("  agentrig skill install --cursor")
		ui.PrintDim("  agentrig skill install --claude")
		ui.PrintDim("  agentrig skill install --codex")
		return fmt.Errorf("no install target found")
	}

	var installed []string
	var errors []string

	for _, target := range targets {
		for _, a := range selected {
			if err := installSkillTo(target, a); err != nil {
				errors = append(errors, fmt.Sprintf("%s/%s: %v", target, a.Name, err))
			}
		}
		installed = append(installed, target)
	}

	if len(installed) > 0 {
		ui.Println()
		ui.PrintSuccess("Installed %d skill(s) to:", len(selected))
		for _, path := range installed {
			ui.PrintDim("  %s", path)
		}
		ui.Println()
		ui.PrintInfo("The skills will be discovered automatically by your AI agent.")
		ui.PrintInfo("Restart your IDE if it was already running.")
	}

	if len(errors) > 0 {
		ui.Println()
		ui.PrintWarning("Some installations failed:")
		for _, e := range errors {
			ui.PrintDim("  %s", e)
		}
		return fmt.Errorf("%d installation(s) failed", len(errors))
	}

	return nil
}

// resolveInstallSkills picks the embedded skills to install: all of them
// by default, or the --name selections, deduplicated.
func resolveInstallSkills(names []string) ([]assets.Asset, error) {
	if len(names) == 0 {
		return assets.ByKind(definition.KindSkill), nil
	}

	seen := make(map[string]bool)
	var selected []assets.Asset
	for _, name := range names {
		if seen[name] {
			continue
		}
		seen[name] = true
		a, ok := assets.Get(definition.KindSkill, name)
		if !ok {
			return nil, fmt.Errorf("unknown skill %q (valid: %v)", name, assets.Names(definition.KindSkill))
		}
		selected = append(selected, a)
	}
	return selected, nil
}

// resolveInstallTargets determines which directories to install skills to
// based on the provided flags and auto-detection.
func resolveInstallTargets() []string {
	// If explicit tool flags are set, use those
	explicitTools := make([]string, 0)
	if skillInstallCursor {
		explicitTools = append(explicitTools, "cursor")
	}
	if skillInstallClaude {
		explicitTools = append(explicitTools, "claude")
	}
	if skillInstallCodex {
		explicitTools = append(explicitTools, "codex")
	}

	if len(explicitTools) > 0 {
		return resolveDirectories(explicitTools)
	}

	// Auto-detect: check which tool directories exist
	detected := make([]string, 0)
	for toolName, dirs := range skillDirectories {
		for _, dir := range dirs {
			expanded := util.ExpandHome(dir)
			if _, err := os.Stat(expanded); err == nil {
				detected = append(detected, toolName)
				break
			}
		}
	}

	if len(detected) == 0 {
		return nil
	}

	return resolveDirectories(detected)
}

// resolveDirectories maps tool names to their target install directories,
// respecting the --global flag.
func resolveDirectories(tools []string) []string {
	paths := make([]string, 0, len(tools))

	for _, toolName := range tools {
		dirs, ok := skillDirectories[toolName]
		if !ok {
			continue
		}

		// dirs[0] = project-level, dirs[1] = user-level (global)
		idx := 0
		if skillInstallGlobal {
			idx = 1
		}

		if idx < len(dirs) {
			paths = append(paths, util.ExpandHome(dirs[idx]))
		}
	}

	return paths
}

// installSkillTo writes one skill under the given base skill directory,
// creating <baseDir>/<name>/SKILL.md.
func installSkillTo(baseDir string, a assets.Asset) error {
	skillDir := filepath.Join(baseDir, a.Name)
	skillPath := filepath.Join(skillDir, assets.SkillFileName)

	// Check if already installed
	if !skillInstallForce {
		if _, err := os.Stat(skillPath); err == nil {
			ui.PrintDim("  Already installed at %s (use --force to overwrite)", skillPath)
			return nil
		}
	}

	if err := os.MkdirAll(skillDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", skillDir, err)
	}

	if err := os.WriteFile(skillPath, []byte(a.Content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", skillPath, err)
	}

	return nil
}
