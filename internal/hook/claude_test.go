package hook

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

// settingsPath returns the .claude/settings.json path under root.
func settingsPath(root string) string {
	return filepath.Join(root, ".claude", "settings.json")
}

// TestRegisterClaudeHookCreatesSettings verifies registration into a
// repository with no settings file.
func TestRegisterClaudeHookCreatesSettings(t *testing.T) {
	root := t.TempDir()

	path, err := RegisterClaudeHook(root)
	if err != nil {
		t.Fatalf("RegisterClaudeHook() error = %v", err)
	}
	if path != settingsPath(root) {
		t.Errorf("path = %q, want %q", path, settingsPath(root))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !gjson.ValidBytes(data) {
		t.Fatalf("settings file is not valid JSON: %s", data)
	}

	entries := gjson.GetBytes(data, "hooks.PreToolUse").Array()
	if len(entries) != 1 {
		t.Fatalf("PreToolUse entries = %d, want 1", len(entries))
	}
	if got := entries[0].Get("matcher").String(); got != claudeHookMatcher {
		t.Errorf("matcher = %q, want %q", got, claudeHookMatcher)
	}
	if got := entries[0].Get("hooks.0.command").String(); got != claudeHookCommand {
		t.Errorf("command = %q, want %q", got, claudeHookCommand)
	}

	if !ClaudeHookRegistered(root) {
		t.Error("ClaudeHookRegistered() = false after registration")
	}
}

// TestRegisterClaudeHookPreservesUserSettings verifies that keys agentrig
// does not know about survive the edit.
func TestRegisterClaudeHookPreservesUserSettings(t *testing.T) {
	root := t.TempDir()
	existing := `{
  "model": "opus",
  "permissions": {"allow": ["Bash(npm run *)"]},
  "hooks": {
    "PostToolUse": [{"matcher": "Write", "hooks": [{"type": "command", "command": "lint"}]}]
  }
}`
	if err := os.MkdirAll(filepath.Dir(settingsPath(root)), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settingsPath(root), []byte(existing), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := RegisterClaudeHook(root); err != nil {
		t.Fatalf("RegisterClaudeHook() error = %v", err)
	}

	data, err := os.ReadFile(settingsPath(root))
	if err != nil {
		t.Fatal(err)
	}

	if got := gjson.GetBytes(data, "model").String(); got != "opus" {
		t.Errorf("model = %q, user setting was clobbered", got)
	}
	if got := gjson.GetBytes(data, "permissions.allow.0").String(); got != "Bash(npm run *)" {
		t.Errorf("permissions.allow = %q, user setting was clobbered", got)
	}
	if n := len(gjson.GetBytes(data, "hooks.PostToolUse").Array()); n != 1 {
		t.Errorf("PostToolUse entries = %d, user hook was clobbered", n)
	}
	if n := len(gjson.GetBytes(data, "hooks.PreToolUse").Array()); n != 1 {
		t.Errorf("PreToolUse entries = %d, want 1", n)
	}
}

// TestRegisterClaudeHookIdempotent verifies that repeated registration does
// not duplicate the entry.
func TestRegisterClaudeHookIdempotent(t *testing.T) {
	root := t.TempDir()

	for i := 0; i < 3; i++ {
		if _, err := RegisterClaudeHook(root); err != nil {
			t.Fatalf("RegisterClaudeHook() #%d error = %v", i+1, err)
		}
	}

	data, err := os.ReadFile(settingsPath(root))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(gjson.GetBytes(data, "hooks.PreToolUse").Array()); n != 1 {
		t.Errorf("PreToolUse entries = %d after repeated registration, want 1", n)
	}
}

// TestRegisterClaudeHookRejectsInvalidJSON verifies that a corrupt settings
// file is reported rather than overwritten.
func TestRegisterClaudeHookRejectsInvalidJSON(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Dir(settingsPath(root)), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settingsPath(root), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := RegisterClaudeHook(root); err == nil {
		t.Fatal("RegisterClaudeHook() accepted a corrupt settings file")
	}

	data, _ := os.ReadFile(settingsPath(root))
	if string(data) != "{not json" {
		t.Error("corrupt settings file was modified")
	}
}

// TestClaudeHookRegisteredAbsent verifies the negative cases.
func TestClaudeHookRegisteredAbsent(t *testing.T) {
	root := t.TempDir()
	if ClaudeHookRegistered(root) {
		t.Error("ClaudeHookRegistered() = true with no settings file")
	}

	if err := os.MkdirAll(filepath.Dir(settingsPath(root)), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(settingsPath(root), []byte(`{"hooks":{}}`), 0644); err != nil {
		t.Fatal(err)
	}
	if ClaudeHookRegistered(root) {
		t.Error("ClaudeHookRegistered() = true with empty hooks")
	}
}
