// Package guard implements the protected-file and secret content scan that
// backs the pre-commit pipeline.
//
// Two static rule sets drive the scan: filename patterns for files that
// should never be committed (key material, env files, credential stores),
// and content patterns for secret-shaped strings inside otherwise ordinary
// files (cloud access keys, tokens, password assignments).
package guard

import "regexp"

// PathRule is a protected-filename rule. Pattern is a doublestar glob
// matched against the repo-relative path.
type PathRule struct {
	// Name identifies the rule in reports.
	Name string

	// Pattern is the doublestar glob, e.g. "**/*.pem".
	Pattern string
}

// ContentRule is a secret content rule applied line by line.
type ContentRule struct {
	// Name identifies the rule in reports.
	Name string

	// Regex matches a secret-shaped string within a single line.
	Regex *regexp.Regexp
}

// builtinPathRules are the filename patterns flagged regardless of content.
var builtinPathRules = []PathRule{
	{Name: "env-file", Pattern: "**/.env"},
	{Name: "env-file", Pattern: "**/.env.*"},
	{Name: "private-key", Pattern: "**/*.pem"},
	{Name: "private-key", Pattern: "**/*.key"},
	{Name: "keystore", Pattern: "**/*.p12"},
	{Name: "keystore", Pattern: "**/*.pfx"},
	{Name: "keystore", Pattern: "**/*.jks"},
	{Name: "keystore", Pattern: "**/*.keystore"},
	{Name: "ssh-key", Pattern: "**/id_rsa*"},
	{Name: "ssh-key", Pattern: "**/id_ecdsa*"},
	{Name: "ssh-key", Pattern: "**/id_ed25519*"},
	{Name: "secrets-dir", Pattern: "**/secrets/**"},
	{Name: "credentials", Pattern: "**/credentials*"},
	{Name: "credentials", Pattern: "**/.netrc"},
	{Name: "credentials", Pattern: "**/.npmrc"},
	{Name: "credentials", Pattern: "**/.pypirc"},
	{Name: "credentials", Pattern: "**/.pgpass"},
	{Name: "credentials", Pattern: "**/.htpasswd"},
	{Name: "terraform-state", Pattern: "**/*.tfstate"},
	{Name: "terraform-state", Pattern: "**/*.tfstate.backup"},
	{Name: "terraform-vars", Pattern: "**/*.tfvars"},
	{Name: "service-account", Pattern: "**/service-account*.json"},
	{Name: "service-account", Pattern: "**/serviceaccount*.json"},
}

// builtinAllowPatterns exempt well-known sample files from the path rules.
// Project config can extend this list.
var builtinAllowPatterns = []string{
	"**/.env.example",
	"**/.env.sample",
	"**/.env.template",
	"**/credentials.example*",
}

// builtinContentRules are the secret-shaped content patterns.
var builtinContentRules = []ContentRule{
	{
		Name:  "aws-access-key-id",
		Regex: regexp.MustCompile(`\bAKIA[0-9A-Z]{16}\b`),
	},
	{
		Name:  "aws-secret-access-key",
		Regex: regexp.MustCompile(`(?i)\baws_secret_access_key\b\s*[:=]\s*\S+`),
	},
	{
		Name:  "private-key-block",
		Regex: regexp.MustCompile(`-----BEGIN (RSA |EC |DSA |OPENSSH |PGP )?PRIVATE KEY( BLOCK)?-----`),
	},
	{
		Name:  "github-token",
		Regex: regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9]{36,}\b`),
	},
	{
		Name:  "slack-token",
		Regex: regexp.MustCompile(`\bxox[baprs]-[0-9A-Za-z-]{10,}\b`),
	},
	{
		Name:  "password-assignment",
		Regex: regexp.MustCompile(`(?i)\b(password|passwd|pwd)\s*[:=]\s*["'][^"']{4,}["']`),
	},
	{
		Name:  "api-key-assignment",
		Regex: regexp.MustCompile(`(?i)\b(api[_-]?key|secret[_-]?key|access[_-]?token|auth[_-]?token)\s*[:=]\s*["'][A-Za-z0-9_\-]{16,}["']`),
	},
}

// PathRules returns a copy of the built-in protected filename rules.
func PathRules() []PathRule {
	out := make([]PathRule, len(builtinPathRules))
	copy(out, builtinPathRules)
	return out
}

// ContentRules returns a copy of the built-in secret content rules.
func ContentRules() []ContentRule {
	out := make([]ContentRule, len(builtinContentRules))
	copy(out, builtinContentRules)
	return out
}
