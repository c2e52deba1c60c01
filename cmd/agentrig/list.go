// Package main provides the list command for workspace definitions.
package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agentrig/cli/internal/definition"
	"github.com/agentrig/cli/internal/ui"
)

var (
	listKind       string
	listOutputJSON bool
)

// listCmd lists the definitions visible to the repository.
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List agent, command, rule, and skill definitions",
	Long: `List every definition visible to this repository, merged from the
project workspace (.agentrig/) and the user workspace (~/.agentrig/).
Project definitions shadow user definitions with the same name.

EXAMPLES:
  agentrig list                 # All definitions
  agentrig list --kind agent    # Agents only
  agentrig list --json          # Machine-readable listing`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&listKind, "kind", "", "Filter by kind (agent, command, rule, skill)")
	listCmd.Flags().BoolVar(&listOutputJSON, "json", false, "Output the listing as JSON")
}

// listEntry is the JSON shape for one definition.
type listEntry struct {
	Kind        string `json:"kind"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Trigger     string `json:"trigger,omitempty"`
	Source      string `json:"source"`
	Path        string `json:"path"`
}

// runList prints the merged workspace contents.
func runList(cmd *cobra.Command, args []string) error {
	rc, err := loadRepoContext(cmd.Context())
	if err != nil {
		return err
	}

	ws, loadErrs := definition.Load(rc.Root)
	for _, e := range loadErrs {
		ui.PrintWarning("%v", e)
	}

	defs := ws.All()
	if listKind != "" {
		kind := definition.Kind(listKind)
		valid := false
		for _, k := range definition.Kinds() {
			if k == kind {
				valid = true
			}
		}
		if !valid {
			return fmt.Errorf("unknown kind %q: must be agent, command, rule, or skill", listKind)
		}
		defs = ws.ByKind(kind)
	}

	jsonOutput := listOutputJSON
	if globalJSON, _ := cmd.Root().PersistentFlags().GetBool("json"); globalJSON {
		jsonOutput = true
	}
	if jsonOutput {
		entries := make([]listEntry, 0, len(defs))
		for _, d := range defs {
			entries = append(entries, listEntry{
				Kind:        string(d.Kind),
				Name:        d.Meta.Name,
				Description: d.Meta.Description,
				Trigger:     d.Meta.Trigger,
				Source:      string(d.Source),
				Path:        d.FilePath,
			})
		}
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal listing: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(defs) == 0 {
		ui.PrintInfo("No definitions found. Run `agentrig init` to scaffold a workspace.")
		return nil
	}

	ui.PrintTableHeader("KIND", "NAME", "SOURCE", "DESCRIPTION")
	for _, d := range defs {
		desc := d.Meta.Description
		if len(desc) > 60 {
			desc = desc[:57] + "..."
		}
		ui.PrintTableRow(string(d.Kind), d.Meta.Name, string(d.Source), desc)
	}
	return nil
}
