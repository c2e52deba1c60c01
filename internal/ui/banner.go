// Package ui provides the ASCII banner and help text for the agentrig CLI.
package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// banner is the ASCII art logo for agentrig.
const banner = `
   █████╗  ██████╗ ███████╗███╗   ██╗████████╗██████╗ ██╗ ██████╗
  ██╔══██╗██╔════╝ ██╔════╝████╗  ██║╚══██╔══╝██╔══██╗██║██╔════╝
  ███████║██║  ███╗█████╗  ██╔██╗ ██║   ██║   ██████╔╝██║██║  ███╗
  ██╔══██║██║   ██║██╔══╝  ██║╚██╗██║   ██║   ██╔══██╗██║██║   ██║
  ██║  ██║╚██████╔╝███████╗██║ ╚████║   ██║   ██║  ██║██║╚██████╔╝
  ╚═╝  ╚═╝ ╚═════╝ ╚══════╝╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝╚═╝ ╚═════╝`

// tagline is the product tagline.
const tagline = "Guardrails and skills for AI coding agents"

// PrintBanner prints the agentrig banner with version info.
//
// Parameters:
//   - version: The CLI version string to display
func PrintBanner(version string) {
	if quietMode {
		return
	}

	styledBanner := lipgloss.NewStyle().
		Foreground(Indigo).
		Bold(true).
		Render(banner)

	fmt.Println(styledBanner)
	fmt.Println()

	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		Italic(true).
		PaddingLeft(2)
	fmt.Println(taglineStyle.Render(tagline))
	fmt.Println()

	infoStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("245")).
		PaddingLeft(2)

	fmt.Println(infoStyle.Render(fmt.Sprintf("Version: %s", version)))
	fmt.Println()
}

// GetHelpText returns the long help shown for the bare `agentrig` command.
func GetHelpText() string {
	return `agentrig manages AI coding assistant workspaces and git commit guardrails.

It keeps agent, command, rule, and skill definitions (Markdown documents
with YAML frontmatter) validated and installable, and provides a native
pre-commit pipeline: protected-file and secret scanning plus formatter
dispatch over staged files.

GETTING STARTED:
  agentrig init                 # Scaffold .agentrig/ and install the hook
  agentrig validate             # Validate all workspace definitions
  agentrig scan --staged        # Scan staged files for secrets
  agentrig fmt --staged         # Format staged files and re-stage
  agentrig doctor               # Check hook, formatters, and workspace`
}
