package guard

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/charmbracelet/log"

	"github.com/agentrig/cli/internal/config"
)

// binarySniffLen is how many leading bytes are inspected for a NUL byte
// when deciding whether a file is binary.
const binarySniffLen = 8000

// excerptLen caps the redacted fragment included in a content finding.
const excerptLen = 40

// Scanner runs the protected-file and secret content scan over a set of
// repo-relative paths.
type Scanner struct {
	root         string
	pathRules    []PathRule
	allow        []string
	contentRules []ContentRule
	maxBytes     int64
}

// NewScanner builds a scanner for the repository at root, layering any
// project-config patterns on top of the built-in rule sets.
//
// Parameters:
//   - root: Repository root directory
//   - cfg: Guard settings from .agentrig/config.yaml
//
// Returns:
//   - *Scanner: The configured scanner
//   - error: If a configured pattern is not a valid glob
func NewScanner(root string, cfg config.GuardConfig) (*Scanner, error) {
	s := &Scanner{
		root:         root,
		pathRules:    PathRules(),
		allow:        append([]string(nil), builtinAllowPatterns...),
		contentRules: ContentRules(),
		maxBytes:     cfg.MaxContentScanBytesOrDefault(),
	}

	for _, p := range cfg.ProtectedPatterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid protected pattern %q", p)
		}
		s.pathRules = append(s.pathRules, PathRule{Name: "project-config", Pattern: p})
	}
	for _, p := range cfg.Allow {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid allow pattern %q", p)
		}
		s.allow = append(s.allow, p)
	}

	return s, nil
}

// Scan checks every path against the protected filename rules and scans
// readable text files for secret-shaped content.
//
// Paths are expected relative to the repository root (as produced by
// gitx.StagedFiles). Missing files are tolerated: the path check still
// applies, the content scan is skipped.
//
// Parameters:
//   - ctx: Context for cancellation
//   - paths: Repo-relative paths to scan
//
// Returns:
//   - *Report: Findings for all paths
//   - error: Only on context cancellation
func (s *Scanner) Scan(ctx context.Context, paths []string) (*Report, error) {
	report := newReport()
	report.Files = len(paths)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		norm := filepath.ToSlash(path)

		if rule, ok := s.matchProtected(norm); ok {
			report.Violations = append(report.Violations, Violation{
				Path: path,
				Kind: KindProtectedPath,
				Rule: rule,
			})
			// A protected file is blocked outright; its content is
			// not worth scanning on top.
			continue
		}

		found, skipped := s.scanContent(path)
		if skipped {
			report.Skipped++
		}
		report.Violations = append(report.Violations, found...)
	}

	log.Debug("scan complete", "id", report.ID, "files", report.Files, "violations", len(report.Violations))
	return report, nil
}

// matchProtected returns the first protected rule matching the path,
// unless an allow pattern exempts it.
func (s *Scanner) matchProtected(path string) (string, bool) {
	for _, allow := range s.allow {
		if ok, _ := doublestar.Match(allow, path); ok {
			return "", false
		}
	}
	for _, rule := range s.pathRules {
		if ok, _ := doublestar.Match(rule.Pattern, path); ok {
			return rule.Name, true
		}
	}
	return "", false
}

// scanContent applies the content rules line by line. The second return
// value reports whether the file was skipped (binary, oversized, missing).
func (s *Scanner) scanContent(path string) ([]Violation, bool) {
	full := filepath.Join(s.root, path)

	info, err := os.Stat(full)
	if err != nil || info.IsDir() {
		return nil, err != nil
	}
	if info.Size() > s.maxBytes {
		log.Debug("skipping oversized file", "path", path, "size", info.Size())
		return nil, true
	}

	data, err := os.ReadFile(full)
	if err != nil {
		log.Debug("skipping unreadable file", "path", path, "err", err)
		return nil, true
	}

	if isBinary(data) {
		return nil, true
	}

	var found []Violation
	lineNo := 0
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), int(s.maxBytes))
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		for _, rule := range s.contentRules {
			match := rule.Regex.FindString(line)
			if match == "" {
				continue
			}
			found = append(found, Violation{
				Path:    path,
				Kind:    KindSecretContent,
				Rule:    rule.Name,
				Line:    lineNo,
				Excerpt: redact(match),
			})
		}
	}

	return found, false
}

// isBinary reports whether data looks like binary content (NUL byte in the
// leading bytes, same heuristic git uses).
func isBinary(data []byte) bool {
	sniff := data
	if len(sniff) > binarySniffLen {
		sniff = sniff[:binarySniffLen]
	}
	return bytes.IndexByte(sniff, 0) != -1
}

// redact truncates a matched secret so reports never echo the full value.
// Slicing happens on rune boundaries so excerpts stay valid UTF-8.
func redact(match string) string {
	runes := []rune(strings.TrimSpace(match))
	if len(runes) <= excerptLen {
		half := len(runes) / 2
		return string(runes[:half]) + strings.Repeat("*", len(runes)-half)
	}
	return string(runes[:excerptLen/2]) + "…" + strings.Repeat("*", 8)
}
