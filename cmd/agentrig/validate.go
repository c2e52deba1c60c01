// Package main provides the validate command for workspace definitions.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/agentrig/cli/internal/config"
	"github.com/agentrig/cli/internal/definition"
	"github.com/agentrig/cli/internal/ui"
)

var (
	validateOutputJSON bool
	validateWatch      bool
)

// validateCmd validates every definition visible to the repository.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate agent, command, rule, and skill definitions",
	Long: `Validate every definition in the project and user workspaces.

Each document's frontmatter must parse as YAML and satisfy the per-kind
requirements (kebab-case name, agent role, command trigger, rule
enforcement level, skill description). Cross-definition checks cover
handoff targets and duplicate slash triggers.

EXAMPLES:
  agentrig validate             # Validate once
  agentrig validate --watch     # Re-validate on file changes
  agentrig validate --json      # Machine-readable results`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateOutputJSON, "json", false, "Output results as JSON")
	validateCmd.Flags().BoolVar(&validateWatch, "watch", false, "Watch the workspace and re-validate on changes")
}

// runValidate validates once, or loops under --watch.
func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	rc, err := loadRepoContext(ctx)
	if err != nil {
		return err
	}

	jsonOutput := validateOutputJSON
	if globalJSON, _ := cmd.Root().PersistentFlags().GetBool("json"); globalJSON {
		jsonOutput = true
	}

	if !validateWatch {
		return validateOnce(rc.Root, jsonOutput)
	}

	return watchAndValidate(ctx, rc.Root, jsonOutput)
}

// validateOnce loads the workspace, validates it, and prints the results.
// Returns an error when any definition is invalid so the exit code is
// usable in CI.
func validateOnce(root string, jsonOutput bool) error {
	ws, loadErrs := definition.Load(root)
	results := definition.ValidateWorkspace(ws)

	invalid := len(loadErrs)
	warnings := 0
	for _, r := range results {
		if !r.Valid {
			invalid++
		}
		warnings += len(r.Warnings)
	}

	if jsonOutput {
		out := struct {
			Definitions int                                     `json:"definitions"`
			Invalid     int                                     `json:"invalid"`
			LoadErrors  []string                                `json:"load_errors,omitempty"`
			Results     map[string]*definition.ValidationResult `json:"results"`
		}{
			Definitions: ws.Len(),
			Invalid:     invalid,
			Results:     results,
		}
		for _, e := range loadErrs {
			out.LoadErrors = append(out.LoadErrors, e.Error())
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Println(string(data))
	} else {
		printValidationResults(ws, results, loadErrs)
	}

	if invalid > 0 {
		return fmt.Errorf("%d definition(s) failed validation", invalid)
	}
	return nil
}

// printValidationResults renders the human-readable validation table.
func printValidationResults(ws *definition.Workspace, results map[string]*definition.ValidationResult, loadErrs []error) {
	for _, e := range loadErrs {
		ui.PrintError("%v", e)
	}

	keys := make([]string, 0, len(results))
	for k := range results {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		r := results[key]
		switch {
		case !r.Valid:
			ui.PrintError("%s", key)
			for _, e := range r.Errors {
				ui.PrintDim("    %s", e)
			}
		case len(r.Warnings) > 0:
			ui.PrintWarning("%s", key)
		default:
			ui.PrintSuccess("%s", key)
		}
		for _, w := range r.Warnings {
			ui.PrintDim("    warning: %s", w)
		}
	}

	ui.Println()
	ui.PrintInfo("%d definition(s) checked", ws.Len())
}

// watchAndValidate re-runs validation whenever a workspace file changes.
// Events are debounced briefly because editors fire several per save.
func watchAndValidate(ctx context.Context, root string, jsonOutput bool) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	addDir := func(base string) {
		for _, kind := range definition.Kinds() {
			dir := filepath.Join(base, kind.DirName())
			if _, err := os.Stat(dir); err == nil {
				if err := watcher.Add(dir); err == nil {
					watched++
				}
			}
		}
	}
	addDir(filepath.Join(root, config.WorkspaceDirName))
	if userDir, err := config.UserDir(); err == nil {
		addDir(userDir)
	}

	if watched == 0 {
		return fmt.Errorf("no workspace directories to watch (run `agentrig init` first)")
	}

	// Initial pass. An invalid workspace shouldn't stop the watch loop.
	if err := validateOnce(root, jsonOutput); err != nil {
		ui.PrintError("%v", err)
	}
	ui.PrintDim("Watching %d directories, Ctrl-C to stop", watched)

	var debounce *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(250*time.Millisecond, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			ui.PrintError("watch error: %v", err)

		case <-fire:
			ui.Println()
			if err := validateOnce(root, jsonOutput); err != nil {
				ui.PrintError("%v", err)
			}
		}
	}
}
