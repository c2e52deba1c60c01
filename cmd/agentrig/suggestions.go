// Package main provides command suggestion functionality for the CLI.
//
// This file implements "did you mean" suggestions when users type commands
// in the wrong order (e.g., "agentrig install hook" instead of
// "agentrig hook install").
package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentrig/cli/internal/ui"
)

// subcommandMap maps subcommand names to their parent commands.
// This is used to suggest the correct command when users type commands
// in the wrong order.
//
// Example: "install" -> ["hook", "skill"] means "install" is a subcommand
// of both "hook" and "skill".
var subcommandMap = map[string][]string{
	"install":   {"hook", "skill"},
	"uninstall": {"hook"},
	"run":       {"hook"},
	"show":      {"skill"},
	"export":    {"skill"},
}

// suggestCorrectCommand checks if the user typed a subcommand at the wrong level
// and returns a suggestion if found.
//
// Parameters:
//   - unknownCmd: The command that was not recognized by Cobra
//   - allArgs: All command line arguments (excluding program name)
//   - rootCmd: The root command to search for valid parent commands
//
// Returns:
//   - string: A suggested command string with correct order, or empty if no suggestion found
//   - bool: True if a valid suggestion was found
//
// Example:
//
//	unknownCmd: "install"
//	allArgs: ["--debug", "install", "hook", "--force"]
//	Returns: "agentrig --debug hook install --force", true
func suggestCorrectCommand(unknownCmd string, allArgs []string, rootCmd *cobra.Command) (string, bool) {
	// Check if the unknown command is a known subcommand
	parentCmds, isSubcommand := subcommandMap[unknownCmd]
	if !isSubcommand {
		return "", false
	}

	// Find the position of the unknown command in args
	unknownCmdIdx := -1
	for i, arg := range allArgs {
		if arg == unknownCmd {
			unknownCmdIdx = i
			break
		}
	}

	if unknownCmdIdx == -1 {
		return "", false
	}

	// Check if any of the args after the unknown command is a valid parent command
	for i := unknownCmdIdx + 1; i < len(allArgs); i++ {
		arg := allArgs[i]

		// Skip flags and their values
		if strings.HasPrefix(arg, "-") {
			continue
		}

		for _, parentCmd := range parentCmds {
			if arg != parentCmd {
				continue
			}
			// Verify the parent command exists
			for _, cmd := range rootCmd.Commands() {
				if cmd.Name() != parentCmd {
					continue
				}
				// Build the suggested command: flags before the unknown
				// command stay in place, then parent, then subcommand,
				// then everything else in original order.
				var parts []string
				parts = append(parts, "agentrig")

				for j := 0; j < unknownCmdIdx; j++ {
					parts = append(parts, allArgs[j])
				}

				parts = append(parts, parentCmd, unknownCmd)

				for j := unknownCmdIdx + 1; j < i; j++ {
					parts = append(parts, allArgs[j])
				}

				for j := i + 1; j < len(allArgs); j++ {
					parts = append(parts, allArgs[j])
				}

				return strings.Join(parts, " "), true
			}
		}
	}

	return "", false
}

// printCommandSuggestion prints a "did you mean" suggestion to the user.
//
// Parameters:
//   - suggestion: The suggested command string to display
func printCommandSuggestion(suggestion string) {
	ui.Println()
	ui.PrintInfo("Did you mean:")
	ui.PrintDim("  %s", suggestion)
	ui.Println()
}
