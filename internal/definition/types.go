// Package definition loads and validates agent, command, rule, and skill
// definitions: Markdown documents with YAML frontmatter consumed by AI
// coding assistants.
//
// Definitions live in:
//   - .agentrig/<kind>s/  (project-level)
//   - ~/.agentrig/<kind>s/ (user-level, all projects)
//
// Project-level definitions take precedence over user-level definitions
// with the same name.
package definition

// Kind identifies the definition document type.
type Kind string

const (
	// KindAgent is a role/persona definition with an allowed tool list
	// and handoff targets.
	KindAgent Kind = "agent"

	// KindCommand is a slash-command definition.
	KindCommand Kind = "command"

	// KindRule is a style/architecture guidance document scoped to paths.
	KindRule Kind = "rule"

	// KindSkill is a reference document for a technology area.
	KindSkill Kind = "skill"
)

// Kinds returns all definition kinds in deterministic order.
func Kinds() []Kind {
	return []Kind{KindAgent, KindCommand, KindRule, KindSkill}
}

// DirName returns the workspace subdirectory holding this kind.
func (k Kind) DirName() string {
	return string(k) + "s"
}

// Source identifies where a definition was loaded from.
type Source string

const (
	// SourceProject marks definitions from .agentrig/ in the repository.
	SourceProject Source = "project"

	// SourceUser marks definitions from ~/.agentrig/.
	SourceUser Source = "user"
)

// Frontmatter holds the YAML frontmatter fields across all kinds. Fields
// that don't apply to a kind are simply left empty; the validator enforces
// per-kind requirements.
type Frontmatter struct {
	// Name is the kebab-case identifier, required for every kind.
	Name string `yaml:"name"`

	// Description is a one-line summary.
	Description string `yaml:"description,omitempty"`

	// Role describes the agent's persona (agents only).
	Role string `yaml:"role,omitempty"`

	// Tools lists the tool names the agent may use (agents only).
	Tools []string `yaml:"tools,omitempty"`

	// HandoffTo lists agent names this agent may hand work to (agents only).
	HandoffTo []string `yaml:"handoff_to,omitempty"`

	// Trigger is the slash trigger, e.g. "/commit" (commands and skills).
	Trigger string `yaml:"trigger,omitempty"`

	// ArgumentHint describes expected arguments (commands only).
	ArgumentHint string `yaml:"argument_hint,omitempty"`

	// Paths scopes a rule to matching files (rules only).
	Paths []string `yaml:"paths,omitempty"`

	// Enforcement is "require" or "suggest" (rules only).
	Enforcement string `yaml:"enforcement,omitempty"`
}

// Definition is one loaded document.
type Definition struct {
	// Kind is the document type.
	Kind Kind

	// Meta is the parsed frontmatter.
	Meta Frontmatter

	// Body is the Markdown body below the frontmatter, passed through
	// untouched.
	Body string

	// FilePath is the source file, for error messages.
	FilePath string

	// Source is where the definition was loaded from.
	Source Source
}

// knownTools is the set of tool names accepted in an agent's tool list.
var knownTools = map[string]bool{
	"read":       true,
	"write":      true,
	"edit":       true,
	"bash":       true,
	"grep":       true,
	"glob":       true,
	"web_fetch":  true,
	"web_search": true,
	"task":       true,
}

// IsKnownTool reports whether name is an accepted agent tool name.
func IsKnownTool(name string) bool {
	return knownTools[name]
}
