package guard

import (
	"time"

	"github.com/google/uuid"
)

// ViolationKind distinguishes path findings from content findings.
type ViolationKind string

const (
	// KindProtectedPath flags a staged path matching a protected pattern.
	KindProtectedPath ViolationKind = "protected_path"

	// KindSecretContent flags a secret-shaped string inside a staged file.
	KindSecretContent ViolationKind = "secret_content"
)

// Violation is a single finding from a scan.
type Violation struct {
	// Path is the repo-relative path of the offending file.
	Path string `json:"path"`

	// Kind is the violation category.
	Kind ViolationKind `json:"kind"`

	// Rule is the name of the rule that matched.
	Rule string `json:"rule"`

	// Line is the 1-based line number for content findings, 0 otherwise.
	Line int `json:"line,omitempty"`

	// Excerpt is a redacted fragment of the matched content.
	Excerpt string `json:"excerpt,omitempty"`
}

// Report is the outcome of one scan run.
type Report struct {
	// ID uniquely identifies the scan run.
	ID string `json:"id"`

	// ScannedAt is when the scan started (UTC).
	ScannedAt time.Time `json:"scanned_at"`

	// Files is the number of paths examined.
	Files int `json:"files"`

	// Skipped counts files excluded from the content scan (binary,
	// oversized, or unreadable).
	Skipped int `json:"skipped,omitempty"`

	// Violations lists all findings in path order.
	Violations []Violation `json:"violations,omitempty"`
}

// newReport creates an empty report with a fresh ID.
func newReport() *Report {
	return &Report{
		ID:        uuid.NewString(),
		ScannedAt: time.Now().UTC(),
	}
}

// Clean reports whether the scan found no violations.
func (r *Report) Clean() bool {
	return len(r.Violations) == 0
}

// PathViolations returns only the protected-path findings.
func (r *Report) PathViolations() []Violation {
	return r.byKind(KindProtectedPath)
}

// ContentViolations returns only the secret-content findings.
func (r *Report) ContentViolations() []Violation {
	return r.byKind(KindSecretContent)
}

func (r *Report) byKind(kind ViolationKind) []Violation {
	var out []Violation
	for _, v := range r.Violations {
		if v.Kind == kind {
			out = append(out, v)
		}
	}
	return out
}
