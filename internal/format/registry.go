// Package format dispatches staged files to external code formatters.
//
// agentrig implements no formatting itself. Each staged file is grouped by
// extension and handed to the matching formatter binary when it is present
// on PATH; a missing binary silently skips that file type.
package format

import "sort"

// Formatter describes one external formatter invocation.
type Formatter struct {
	// Name is the formatter identifier used in config and reports.
	Name string

	// Binary is the executable looked up on PATH.
	Binary string

	// Args are the fixed arguments placed before the file list.
	Args []string

	// Extensions lists the file extensions (with dot) this formatter owns.
	Extensions []string

	// PerFile restricts the formatter to one file per invocation, for
	// CLIs that take a single positional FILE argument.
	PerFile bool
}

// registry holds the built-in formatters, checked in order so that the
// first formatter claiming an extension wins.
var registry = []Formatter{
	{
		Name:       "gofmt",
		Binary:     "gofmt",
		Args:       []string{"-w"},
		Extensions: []string{".go"},
	},
	{
		Name:       "prettier",
		Binary:     "prettier",
		Args:       []string{"--write", "--log-level", "warn"},
		Extensions: []string{".js", ".jsx", ".ts", ".tsx", ".json", ".css", ".scss", ".md", ".yaml", ".yml", ".html"},
	},
	{
		Name:       "ruff",
		Binary:     "ruff",
		Args:       []string{"format", "--quiet"},
		Extensions: []string{".py"},
	},
	{
		Name:       "rustfmt",
		Binary:     "rustfmt",
		Args:       []string{"--edition", "2021"},
		Extensions: []string{".rs"},
	},
	{
		Name:       "terraform",
		Binary:     "terraform",
		Args:       []string{"fmt"},
		Extensions: []string{".tf"},
	},
	{
		Name:       "sql-formatter",
		Binary:     "sql-formatter",
		Args:       []string{"--fix"},
		Extensions: []string{".sql"},
		// sql-formatter accepts at most one positional FILE.
		PerFile: true,
	},
}

// Registry returns a copy of the built-in formatters.
func Registry() []Formatter {
	out := make([]Formatter, len(registry))
	copy(out, registry)
	return out
}

// Names returns all formatter names in deterministic order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for _, f := range registry {
		names = append(names, f.Name)
	}
	sort.Strings(names)
	return names
}

// ByName returns the built-in formatter with the given name.
func ByName(name string) (Formatter, bool) {
	for _, f := range registry {
		if f.Name == name {
			return f, true
		}
	}
	return Formatter{}, false
}
