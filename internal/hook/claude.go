package hook

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// claudeHookCommand is the command recorded in .claude/settings.json so
// Claude Code runs the guard scan before any `git commit` it issues.
const claudeHookCommand = "agentrig hook run pre-commit"

// claudeHookMatcher scopes the hook to Bash tool calls that commit.
const claudeHookMatcher = "Bash(git commit*)"

// RegisterClaudeHook records the agentrig pipeline as a PreToolUse hook in
// the project's .claude/settings.json.
//
// The file is edited surgically with gjson/sjson so every key the user has
// set (model, permissions, env, anything agentrig doesn't know about)
// survives untouched. Registration is idempotent.
//
// Parameters:
//   - root: Repository root directory
//
// Returns:
//   - string: The settings file path that was written
//   - error: If the file cannot be read, edited, or written
func RegisterClaudeHook(root string) (string, error) {
	path := filepath.Join(root, ".claude", "settings.json")

	doc := "{}"
	if data, err := os.ReadFile(path); err == nil {
		if !gjson.ValidBytes(data) {
			return "", fmt.Errorf("%s is not valid JSON", path)
		}
		doc = string(data)
	}

	// Already registered?
	for _, entry := range gjson.Get(doc, "hooks.PreToolUse").Array() {
		if entry.Get("matcher").String() != claudeHookMatcher {
			continue
		}
		for _, h := range entry.Get("hooks").Array() {
			if h.Get("command").String() == claudeHookCommand {
				return path, nil
			}
		}
	}

	entry := map[string]interface{}{
		"matcher": claudeHookMatcher,
		"hooks": []map[string]string{
			{"type": "command", "command": claudeHookCommand},
		},
	}

	doc, err := sjson.Set(doc, "hooks.PreToolUse.-1", entry)
	if err != nil {
		return "", fmt.Errorf("failed to update settings document: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create .claude directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	return path, nil
}

// ClaudeHookRegistered reports whether the agentrig hook is present in the
// project's .claude/settings.json.
func ClaudeHookRegistered(root string) bool {
	data, err := os.ReadFile(filepath.Join(root, ".claude", "settings.json"))
	if err != nil {
		return false
	}
	for _, entry := range gjson.GetBytes(data, "hooks.PreToolUse").Array() {
		for _, h := range entry.Get("hooks").Array() {
			if h.Get("command").String() == claudeHookCommand {
				return true
			}
		}
	}
	return false
}
