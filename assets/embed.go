// Package assets holds the starter definitions embedded in the agentrig
// binary.
//
// The documents are embedded at compile time via go:embed so that every
// distribution channel can scaffold a workspace or install a skill without
// network access or extra files. The files under assets/ in the source
// tree are the canonical copies.
package assets

import (
	_ "embed"
)

//go:embed agents/plan.md
var agentPlan string

//go:embed agents/edit.md
var agentEdit string

//go:embed agents/test.md
var agentTest string

//go:embed agents/review.md
var agentReview string

//go:embed commands/commit.md
var commandCommit string

//go:embed commands/review.md
var commandReview string

//go:embed rules/go-style.md
var ruleGoStyle string

//go:embed rules/security.md
var ruleSecurity string

//go:embed skills/git-workflow.md
var skillGitWorkflow string

//go:embed skills/code-review.md
var skillCodeReview string
