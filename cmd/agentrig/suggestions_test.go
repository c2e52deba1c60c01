// Package main provides tests for command suggestion functionality.
package main

import (
	"testing"

	"github.com/spf13/cobra"
)

// createTestRootCmd creates a mock root command for testing.
func createTestRootCmd() *cobra.Command {
	root := &cobra.Command{Use: "agentrig"}

	hookCmd := &cobra.Command{Use: "hook"}
	hookCmd.AddCommand(&cobra.Command{Use: "install"})
	hookCmd.AddCommand(&cobra.Command{Use: "uninstall"})
	hookCmd.AddCommand(&cobra.Command{Use: "run"})

	skillCmd := &cobra.Command{Use: "skill"}
	skillCmd.AddCommand(&cobra.Command{Use: "install"})
	skillCmd.AddCommand(&cobra.Command{Use: "show"})
	skillCmd.AddCommand(&cobra.Command{Use: "export"})

	root.AddCommand(hookCmd)
	root.AddCommand(skillCmd)

	return root
}

func TestSuggestCorrectCommand(t *testing.T) {
	rootCmd := createTestRootCmd()

	tests := []struct {
		name           string
		unknownCmd     string
		allArgs        []string
		wantSuggestion string
		wantFound      bool
	}{
		{
			name:           "install hook with flags",
			unknownCmd:     "install",
			allArgs:        []string{"--debug", "install", "hook", "--force"},
			wantSuggestion: "agentrig --debug hook install --force",
			wantFound:      true,
		},
		{
			name:           "install hook simple",
			unknownCmd:     "install",
			allArgs:        []string{"install", "hook"},
			wantSuggestion: "agentrig hook install",
			wantFound:      true,
		},
		{
			name:           "install skill",
			unknownCmd:     "install",
			allArgs:        []string{"install", "skill", "--claude"},
			wantSuggestion: "agentrig skill install --claude",
			wantFound:      true,
		},
		{
			name:           "run hook with argument",
			unknownCmd:     "run",
			allArgs:        []string{"run", "hook", "pre-commit"},
			wantSuggestion: "agentrig hook run pre-commit",
			wantFound:      true,
		},
		{
			name:           "show skill",
			unknownCmd:     "show",
			allArgs:        []string{"show", "skill", "git-workflow"},
			wantSuggestion: "agentrig skill show git-workflow",
			wantFound:      true,
		},
		{
			name:           "unknown command - no suggestion",
			unknownCmd:     "frobnicate",
			allArgs:        []string{"frobnicate", "hook"},
			wantSuggestion: "",
			wantFound:      false,
		},
		{
			name:           "subcommand without parent - no suggestion",
			unknownCmd:     "install",
			allArgs:        []string{"install", "everything"},
			wantSuggestion: "",
			wantFound:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSuggestion, gotFound := suggestCorrectCommand(tt.unknownCmd, tt.allArgs, rootCmd)

			if gotFound != tt.wantFound {
				t.Errorf("suggestCorrectCommand() found = %v, want %v", gotFound, tt.wantFound)
			}

			if gotSuggestion != tt.wantSuggestion {
				t.Errorf("suggestCorrectCommand() suggestion = %q, want %q", gotSuggestion, tt.wantSuggestion)
			}
		})
	}
}

func TestSuggestCorrectCommand_EdgeCases(t *testing.T) {
	rootCmd := createTestRootCmd()

	tests := []struct {
		name           string
		unknownCmd     string
		allArgs        []string
		wantSuggestion string
		wantFound      bool
	}{
		{
			name:           "empty args",
			unknownCmd:     "install",
			allArgs:        []string{},
			wantSuggestion: "",
			wantFound:      false,
		},
		{
			name:           "unknown cmd not in args",
			unknownCmd:     "install",
			allArgs:        []string{"hook", "pre-commit"},
			wantSuggestion: "",
			wantFound:      false,
		},
		{
			name:           "parent command before subcommand (correct order)",
			unknownCmd:     "hook",
			allArgs:        []string{"hook", "install"},
			wantSuggestion: "",
			wantFound:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSuggestion, gotFound := suggestCorrectCommand(tt.unknownCmd, tt.allArgs, rootCmd)

			if gotFound != tt.wantFound {
				t.Errorf("suggestCorrectCommand() found = %v, want %v", gotFound, tt.wantFound)
			}

			if gotSuggestion != tt.wantSuggestion {
				t.Errorf("suggestCorrectCommand() suggestion = %q, want %q", gotSuggestion, tt.wantSuggestion)
			}
		})
	}
}
