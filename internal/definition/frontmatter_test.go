package definition

import (
	"strings"
	"testing"
)

// TestSplitFrontmatter verifies delimiter handling for the frontmatter block.
func TestSplitFrontmatter(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantFM   string
		wantBody string
		wantOK   bool
	}{
		{
			name:     "standard document",
			content:  "---\nname: plan\n---\n# Plan\n\nBody here.\n",
			wantFM:   "name: plan",
			wantBody: "# Plan\n\nBody here.\n",
			wantOK:   true,
		},
		{
			name:     "no frontmatter",
			content:  "# Just Markdown\n",
			wantBody: "# Just Markdown\n",
			wantOK:   false,
		},
		{
			name:     "unterminated frontmatter",
			content:  "---\nname: plan\n# never closed\n",
			wantBody: "---\nname: plan\n# never closed\n",
			wantOK:   false,
		},
		{
			name:     "empty body",
			content:  "---\nname: plan\n---\n",
			wantFM:   "name: plan",
			wantBody: "",
			wantOK:   true,
		},
		{
			name:     "delimiter not on first line",
			content:  "\n---\nname: plan\n---\nbody\n",
			wantBody: "\n---\nname: plan\n---\nbody\n",
			wantOK:   false,
		},
		{
			name:     "multiline frontmatter",
			content:  "---\nname: edit\ntools:\n  - read\n  - write\n---\nbody\n",
			wantFM:   "name: edit\ntools:\n  - read\n  - write",
			wantBody: "body\n",
			wantOK:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fm, body, ok := SplitFrontmatter(tt.content)
			if ok != tt.wantOK {
				t.Fatalf("SplitFrontmatter() ok = %v, want %v", ok, tt.wantOK)
			}
			if fm != tt.wantFM {
				t.Errorf("frontmatter = %q, want %q", fm, tt.wantFM)
			}
			if body != tt.wantBody {
				t.Errorf("body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

// TestParse verifies frontmatter decoding into definition metadata.
func TestParse(t *testing.T) {
	t.Run("agent with full metadata", func(t *testing.T) {
		content := `---
name: plan
description: Break work into steps
role: planner
tools:
  - read
  - grep
handoff_to:
  - edit
---
# Planning

Think first.
`
		def, err := Parse(KindAgent, content, "agents/plan.md")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if def.Meta.Name != "plan" {
			t.Errorf("Name = %q, want plan", def.Meta.Name)
		}
		if def.Meta.Role != "planner" {
			t.Errorf("Role = %q, want planner", def.Meta.Role)
		}
		if len(def.Meta.Tools) != 2 || def.Meta.Tools[0] != "read" {
			t.Errorf("Tools = %v, want [read grep]", def.Meta.Tools)
		}
		if len(def.Meta.HandoffTo) != 1 || def.Meta.HandoffTo[0] != "edit" {
			t.Errorf("HandoffTo = %v, want [edit]", def.Meta.HandoffTo)
		}
		if !strings.HasPrefix(def.Body, "# Planning") {
			t.Errorf("Body = %q, want to start with # Planning", def.Body)
		}
	})

	t.Run("missing frontmatter is not a parse error", func(t *testing.T) {
		def, err := Parse(KindRule, "Just a body.\n", "rules/x.md")
		if err != nil {
			t.Fatalf("Parse() error = %v", err)
		}
		if def.Meta.Name != "" {
			t.Errorf("Name = %q, want empty", def.Meta.Name)
		}
		if def.Body != "Just a body." {
			t.Errorf("Body = %q", def.Body)
		}
	})

	t.Run("invalid yaml reports the file path", func(t *testing.T) {
		_, err := Parse(KindCommand, "---\nname: [unclosed\n---\nbody\n", "commands/bad.md")
		if err == nil {
			t.Fatal("Parse() accepted invalid YAML")
		}
		if !strings.Contains(err.Error(), "commands/bad.md") {
			t.Errorf("error %q does not name the file", err)
		}
	})
}
