package format

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/agentrig/cli/internal/config"
)

// Failure records one formatter invocation that exited non-zero.
type Failure struct {
	// Formatter is the formatter name.
	Formatter string `json:"formatter"`

	// Output is the trimmed stderr (or error string) of the run.
	Output string `json:"output"`
}

// Result summarizes one formatting pass.
type Result struct {
	// Formatted lists the repo-relative paths a formatter rewrote.
	Formatted []string `json:"formatted,omitempty"`

	// SkippedTools lists formatters whose binary was absent from PATH.
	SkippedTools []string `json:"skipped_tools,omitempty"`

	// Failures lists formatter runs that exited non-zero.
	Failures []Failure `json:"failures,omitempty"`
}

// OK reports whether every formatter that ran succeeded.
func (r *Result) OK() bool {
	return len(r.Failures) == 0
}

// Runner partitions files by extension and runs the matching formatter.
type Runner struct {
	root     string
	disabled map[string]bool
	override map[string]string // extension -> formatter name
	lookPath func(string) (string, error)
}

// NewRunner builds a formatting runner for the repository at root.
//
// Parameters:
//   - root: Repository root directory
//   - cfg: Format settings from .agentrig/config.yaml
//
// Returns:
//   - *Runner: The configured runner
func NewRunner(root string, cfg config.FormatConfig) *Runner {
	disabled := make(map[string]bool, len(cfg.Disabled))
	for _, name := range cfg.Disabled {
		disabled[name] = true
	}
	return &Runner{
		root:     root,
		disabled: disabled,
		override: cfg.Extensions,
		lookPath: exec.LookPath,
	}
}

// Run formats the given repo-relative paths and reports which files were
// modified, comparing content hashes before and after each invocation.
//
// Missing formatter binaries are skipped silently (recorded in the result
// for doctor/report purposes only). A formatter failure does not stop the
// remaining groups.
//
// Parameters:
//   - ctx: Context for cancellation
//   - paths: Repo-relative paths to format
//
// Returns:
//   - *Result: Formatted files, skipped tools, and failures
//   - error: Only on context cancellation
func (r *Runner) Run(ctx context.Context, paths []string) (*Result, error) {
	result := &Result{}

	groups := r.partition(paths)

	// Deterministic order across runs.
	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	skipped := make(map[string]bool)

	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		formatter, ok := ByName(name)
		if !ok {
			continue
		}

		if _, err := r.lookPath(formatter.Binary); err != nil {
			if !skipped[name] {
				skipped[name] = true
				result.SkippedTools = append(result.SkippedTools, name)
				log.Debug("formatter not installed, skipping", "formatter", name)
			}
			continue
		}

		files := groups[name]
		before, statErr := r.hashFiles(files)
		if statErr != nil {
			result.Failures = append(result.Failures, Failure{Formatter: name, Output: statErr.Error()})
			continue
		}

		if err := r.invoke(ctx, formatter, files); err != nil {
			result.Failures = append(result.Failures, Failure{Formatter: name, Output: err.Error()})
			continue
		}

		after, statErr := r.hashFiles(files)
		if statErr != nil {
			result.Failures = append(result.Failures, Failure{Formatter: name, Output: statErr.Error()})
			continue
		}

		for _, f := range files {
			if before[f] != after[f] {
				result.Formatted = append(result.Formatted, f)
			}
		}
	}

	sort.Strings(result.Formatted)
	return result, nil
}

// partition groups paths by the formatter that owns their extension,
// honoring config extension overrides and disabled formatters. Files with
// no owning formatter are ignored.
func (r *Runner) partition(paths []string) map[string][]string {
	groups := make(map[string][]string)
	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		if ext == "" {
			continue
		}

		name, ok := r.formatterFor(ext)
		if !ok || r.disabled[name] {
			continue
		}
		groups[name] = append(groups[name], path)
	}
	return groups
}

// formatterFor resolves an extension to a formatter name, config overrides
// first.
func (r *Runner) formatterFor(ext string) (string, bool) {
	if name, ok := r.override[ext]; ok {
		_, known := ByName(name)
		return name, known
	}
	for _, f := range registry {
		for _, e := range f.Extensions {
			if e == ext {
				return f.Name, true
			}
		}
	}
	return "", false
}

// invoke runs one formatter over its file group. Formatters whose CLI
// takes a single FILE argument run once per file, the rest get the whole
// group in one invocation.
func (r *Runner) invoke(ctx context.Context, f Formatter, files []string) error {
	if f.PerFile {
		for _, file := range files {
			if err := r.invokeOnce(ctx, f, []string{file}); err != nil {
				return err
			}
		}
		return nil
	}
	return r.invokeOnce(ctx, f, files)
}

func (r *Runner) invokeOnce(ctx context.Context, f Formatter, files []string) error {
	args := append(append([]string(nil), f.Args...), files...)

	cmd := exec.CommandContext(ctx, f.Binary, args...)
	cmd.Dir = r.root

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	log.Debug("running formatter", "formatter", f.Name, "files", len(files))

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return fmt.Errorf("%s: %s", f.Name, msg)
	}
	return nil
}

// hashFiles returns a content hash per path so modified files can be
// detected after the formatter runs.
func (r *Runner) hashFiles(files []string) (map[string]string, error) {
	hashes := make(map[string]string, len(files))
	for _, f := range files {
		data, err := os.ReadFile(filepath.Join(r.root, f))
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", f, err)
		}
		sum := sha256.Sum256(data)
		hashes[f] = fmt.Sprintf("%x", sum)
	}
	return hashes, nil
}
