package definition

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/agentrig/cli/internal/config"
)

// Workspace is the merged set of definitions visible to a repository.
type Workspace struct {
	defs []Definition
}

// Load discovers definitions from the project workspace and the user
// workspace, with project definitions shadowing user definitions of the
// same kind and name.
//
// A missing workspace directory is not an error; it simply contributes no
// definitions. Documents whose frontmatter fails to parse as YAML are
// returned as errors so validate can surface them.
//
// Parameters:
//   - root: Repository root directory
//
// Returns:
//   - *Workspace: The merged workspace
//   - []error: Per-file parse errors (the workspace still loads)
func Load(root string) (*Workspace, []error) {
	ws := &Workspace{}
	var errs []error
	seen := make(map[string]bool)

	add := func(dir string, source Source) {
		defs, loadErrs := loadDir(dir, source)
		errs = append(errs, loadErrs...)
		for _, d := range defs {
			key := string(d.Kind) + "/" + d.Meta.Name
			if seen[key] {
				log.Debug("definition shadowed", "kind", d.Kind, "name", d.Meta.Name, "path", d.FilePath)
				continue
			}
			seen[key] = true
			ws.defs = append(ws.defs, d)
		}
	}

	// Project-level first (higher priority).
	add(filepath.Join(root, config.WorkspaceDirName), SourceProject)

	if userDir, err := config.UserDir(); err == nil {
		add(userDir, SourceUser)
	}

	sort.Slice(ws.defs, func(i, j int) bool {
		if ws.defs[i].Kind != ws.defs[j].Kind {
			return ws.defs[i].Kind < ws.defs[j].Kind
		}
		return ws.defs[i].Meta.Name < ws.defs[j].Meta.Name
	})

	return ws, errs
}

// loadDir reads every kind subdirectory under one workspace directory.
func loadDir(base string, source Source) ([]Definition, []error) {
	var defs []Definition
	var errs []error

	for _, kind := range Kinds() {
		dir := filepath.Join(base, kind.DirName())
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue // directory absent: nothing to load
		}

		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
				continue
			}

			path := filepath.Join(dir, entry.Name())
			data, err := os.ReadFile(path)
			if err != nil {
				errs = append(errs, fmt.Errorf("failed to read %s: %w", path, err))
				continue
			}

			def, err := Parse(kind, string(data), path)
			if err != nil {
				errs = append(errs, err)
				continue
			}

			if def.Meta.Name == "" {
				def.Meta.Name = strings.TrimSuffix(entry.Name(), ".md")
			}
			def.Source = source
			defs = append(defs, *def)
		}
	}

	return defs, errs
}

// All returns every definition, sorted by kind then name.
func (w *Workspace) All() []Definition {
	out := make([]Definition, len(w.defs))
	copy(out, w.defs)
	return out
}

// ByKind returns the definitions of one kind, sorted by name.
func (w *Workspace) ByKind(kind Kind) []Definition {
	var out []Definition
	for _, d := range w.defs {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}

// Get returns one definition by kind and name.
func (w *Workspace) Get(kind Kind, name string) (Definition, bool) {
	for _, d := range w.defs {
		if d.Kind == kind && d.Meta.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// Len returns the number of visible definitions.
func (w *Workspace) Len() int {
	return len(w.defs)
}
