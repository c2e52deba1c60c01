package util

import (
	"path/filepath"
	"testing"
)

// TestSanitizeName verifies kebab-case filesystem-safe conversion.
func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "simple", in: "plan", want: "plan"},
		{name: "spaces to hyphens", in: "My Service", want: "my-service"},
		{name: "strips punctuation", in: "My Service (v2)", want: "my-service-v2"},
		{name: "collapses hyphens", in: "a -- b", want: "a-b"},
		{name: "trims hyphens", in: "-edge-", want: "edge"},
		{name: "keeps underscores", in: "snake_case", want: "snake_case"},
		{name: "all stripped", in: "!!!", want: ""},
		{name: "unicode stripped", in: "café", want: "caf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeName(tt.in); got != tt.want {
				t.Errorf("SanitizeName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestExpandHome verifies tilde expansion.
func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "tilde root", in: "~/.cursor/skills", want: filepath.Join(home, ".cursor/skills")},
		{name: "bare tilde", in: "~", want: home},
		{name: "absolute untouched", in: "/etc/hosts", want: "/etc/hosts"},
		{name: "relative untouched", in: ".claude/skills", want: ".claude/skills"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandHome(tt.in); got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
