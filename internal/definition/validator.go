package definition

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ValidationResult contains the result of definition validation.
//
// Fields:
//   - Valid: Whether the definition is valid
//   - Errors: List of validation errors
//   - Warnings: List of validation warnings (non-fatal issues)
type ValidationResult struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// addError records an error and marks the result invalid.
func (r *ValidationResult) addError(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// addWarning records a non-fatal issue.
func (r *ValidationResult) addWarning(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// validEnforcement contains accepted rule enforcement levels.
var validEnforcement = map[string]bool{
	"require": true,
	"suggest": true,
}

// Validate checks one definition against the per-kind requirements.
//
// Checks performed:
//   - name present and kebab-case
//   - agent: role present, tools from the known set, no self-handoff
//   - command: trigger present, starts with "/", single token
//   - rule: paths are valid globs, enforcement is require/suggest
//   - skill: description present
//   - warnings for empty body and missing description
//
// Parameters:
//   - def: The definition to validate
//
// Returns:
//   - *ValidationResult: Validation result with errors/warnings
func Validate(def *Definition) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if def.Meta.Name == "" {
		result.addError("missing required field: name")
	} else if !isKebabCase(def.Meta.Name) {
		result.addError("invalid name %q: must be kebab-case (lowercase letters, numbers, hyphens)", def.Meta.Name)
	}

	if def.Body == "" {
		result.addWarning("definition body is empty")
	}

	if def.Meta.Description == "" {
		result.addWarning("missing description")
	}

	switch def.Kind {
	case KindAgent:
		validateAgent(def, result)
	case KindCommand:
		validateCommand(def, result)
	case KindRule:
		validateRule(def, result)
	case KindSkill:
		validateSkill(def, result)
	default:
		result.addError("unknown definition kind %q", def.Kind)
	}

	return result
}

func validateAgent(def *Definition, result *ValidationResult) {
	if def.Meta.Role == "" {
		result.addError("agent: missing required field: role")
	}

	for _, tool := range def.Meta.Tools {
		if !IsKnownTool(tool) {
			result.addError("agent: unknown tool %q", tool)
		}
	}

	for _, target := range def.Meta.HandoffTo {
		if target == def.Meta.Name {
			result.addError("agent: handoff_to references itself")
		}
		if !isKebabCase(target) {
			result.addError("agent: invalid handoff target %q: must be kebab-case", target)
		}
	}
}

func validateCommand(def *Definition, result *ValidationResult) {
	trigger := def.Meta.Trigger
	if trigger == "" {
		result.addError("command: missing required field: trigger")
		return
	}
	if !strings.HasPrefix(trigger, "/") {
		result.addError("command: trigger %q must start with '/'", trigger)
	}
	if strings.ContainsAny(trigger, " \t") {
		result.addError("command: trigger %q must be a single token", trigger)
	}
}

func validateRule(def *Definition, result *ValidationResult) {
	for _, p := range def.Meta.Paths {
		if !doublestar.ValidatePattern(p) {
			result.addError("rule: invalid path pattern %q", p)
		}
	}

	if def.Meta.Enforcement == "" {
		result.addWarning("rule: no enforcement level set, treated as 'suggest'")
	} else if !validEnforcement[def.Meta.Enforcement] {
		result.addError("rule: invalid enforcement %q: must be 'require' or 'suggest'", def.Meta.Enforcement)
	}
}

func validateSkill(def *Definition, result *ValidationResult) {
	if def.Meta.Description == "" {
		// Skill discovery keys off the description, so a skill without
		// one is never surfaced.
		result.addError("skill: missing required field: description")
	}

	if def.Meta.Trigger != "" && !strings.HasPrefix(def.Meta.Trigger, "/") {
		result.addError("skill: trigger %q must start with '/'", def.Meta.Trigger)
	}
}

// ValidateWorkspace validates every definition and adds cross-definition
// checks: handoff targets must resolve to an agent, and slash triggers must
// be unique across commands and skills.
//
// Parameters:
//   - ws: The loaded workspace
//
// Returns:
//   - map[string]*ValidationResult: Results keyed by "<kind>/<name>"
func ValidateWorkspace(ws *Workspace) map[string]*ValidationResult {
	results := make(map[string]*ValidationResult)

	agents := make(map[string]bool)
	for _, d := range ws.ByKind(KindAgent) {
		agents[d.Meta.Name] = true
	}

	triggers := make(map[string]string) // trigger -> first owner key

	for _, def := range ws.All() {
		def := def
		key := string(def.Kind) + "/" + def.Meta.Name
		result := Validate(&def)

		if def.Kind == KindAgent {
			for _, target := range def.Meta.HandoffTo {
				if !agents[target] {
					result.addError("agent: handoff target %q is not a defined agent", target)
				}
			}
		}

		if def.Meta.Trigger != "" {
			if owner, dup := triggers[def.Meta.Trigger]; dup {
				result.addError("trigger %q already used by %s", def.Meta.Trigger, owner)
			} else {
				triggers[def.Meta.Trigger] = key
			}
		}

		results[key] = result
	}

	return results
}

// isKebabCase checks if a name follows kebab-case convention: lowercase
// letters, numbers, and hyphens, with no leading/trailing/consecutive
// hyphens.
func isKebabCase(name string) bool {
	if name == "" {
		return false
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") {
		return false
	}
	if strings.Contains(name, "--") {
		return false
	}
	for _, c := range name {
		if !((c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-') {
			return false
		}
	}
	return true
}
