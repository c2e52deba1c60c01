package assets

import (
	"fmt"
	"strings"

	"github.com/agentrig/cli/internal/definition"
)

// SkillFileName is the file name used when installing a skill into an
// assistant's skill directory.
const SkillFileName = "SKILL.md"

// Asset describes one embedded starter definition.
type Asset struct {
	Kind        definition.Kind
	Name        string
	Description string
	Content     string
}

var catalog = []Asset{
	{Kind: definition.KindAgent, Name: "plan", Content: agentPlan},
	{Kind: definition.KindAgent, Name: "edit", Content: agentEdit},
	{Kind: definition.KindAgent, Name: "test", Content: agentTest},
	{Kind: definition.KindAgent, Name: "review", Content: agentReview},
	{Kind: definition.KindCommand, Name: "commit", Content: commandCommit},
	{Kind: definition.KindCommand, Name: "review", Content: commandReview},
	{Kind: definition.KindRule, Name: "go-style", Content: ruleGoStyle},
	{Kind: definition.KindRule, Name: "security", Content: ruleSecurity},
	{Kind: definition.KindSkill, Name: "git-workflow", Content: skillGitWorkflow},
	{Kind: definition.KindSkill, Name: "code-review", Content: skillCodeReview},
}

// Descriptions come from each asset's own frontmatter so the catalog can
// never disagree with the content it ships.
func init() {
	for i := range catalog {
		a := &catalog[i]
		def, err := definition.Parse(a.Kind, a.Content, a.Name+".md")
		if err != nil {
			panic(fmt.Sprintf("embedded %s %q: %v", a.Kind, a.Name, err))
		}
		a.Description = def.Meta.Description
	}
}

// All returns a copy of all embedded assets in deterministic order.
func All() []Asset {
	out := make([]Asset, len(catalog))
	copy(out, catalog)
	return out
}

// ByKind returns the embedded assets of one kind.
func ByKind(kind definition.Kind) []Asset {
	var out []Asset
	for _, a := range catalog {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// Names returns all valid asset names of one kind in deterministic order.
func Names(kind definition.Kind) []string {
	names := make([]string, 0)
	for _, a := range catalog {
		if a.Kind == kind {
			names = append(names, a.Name)
		}
	}
	return names
}

// Get returns one asset by kind and exact name.
func Get(kind definition.Kind, name string) (Asset, bool) {
	name = strings.TrimSpace(name)
	for _, a := range catalog {
		if a.Kind == kind && a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}
