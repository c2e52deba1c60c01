package definition

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// frontmatterDelim separates frontmatter from the Markdown body.
const frontmatterDelim = "---"

// SplitFrontmatter splits a document into its raw frontmatter and body.
// The frontmatter must start on the first line with a "---" delimiter and
// end with a matching delimiter on its own line.
//
// Parameters:
//   - content: The full document text
//
// Returns:
//   - string: Raw frontmatter YAML (empty if none)
//   - string: The Markdown body
//   - bool: Whether frontmatter was present
func SplitFrontmatter(content string) (string, string, bool) {
	if !strings.HasPrefix(content, frontmatterDelim+"\n") && content != frontmatterDelim {
		return "", content, false
	}

	rest := strings.TrimPrefix(content, frontmatterDelim+"\n")
	idx := strings.Index(rest, "\n"+frontmatterDelim)
	if idx < 0 {
		return "", content, false
	}

	fm := rest[:idx]
	body := rest[idx+len("\n"+frontmatterDelim):]
	// Drop the newline that terminated the closing delimiter line.
	body = strings.TrimPrefix(body, "\n")

	return fm, body, true
}

// Parse parses one definition document.
//
// A missing frontmatter block is not an error here; the validator reports
// it so that `agentrig validate` can list every problem in one pass. The
// name falls back to the file's base name when frontmatter omits it.
//
// Parameters:
//   - kind: The definition kind being parsed
//   - content: The full document text
//   - filePath: Source path recorded for error messages
//
// Returns:
//   - *Definition: The parsed definition
//   - error: If the frontmatter is present but not valid YAML
func Parse(kind Kind, content, filePath string) (*Definition, error) {
	def := &Definition{
		Kind:     kind,
		FilePath: filePath,
	}

	fm, body, ok := SplitFrontmatter(content)
	if !ok {
		def.Body = strings.TrimSpace(content)
		return def, nil
	}

	if err := yaml.Unmarshal([]byte(fm), &def.Meta); err != nil {
		return nil, fmt.Errorf("invalid frontmatter in %s: %w", filePath, err)
	}

	def.Body = strings.TrimSpace(body)
	return def, nil
}
