// Package linter defines the optional post-edit lint collaborator. The
// editor depends only on the Linter interface; results are informational
// and never abort an edit.
package linter

import (
	"fmt"
	"strings"
)

// Issue is one finding on the edited content.
type Issue struct {
	Line    int    `json:"line"`   // 1-based line in the new content
	Column  int    `json:"column"` // 1-based column
	Message string `json:"message"`
}

// Linter checks a before/after content pair for issues introduced by the
// change. path carries the filename for language-aware implementations.
type Linter interface {
	LintDiff(before, after, path string) ([]Issue, error)
}

// Format renders issues the way the editor appends them to a success
// message.
func Format(issues []Issue) string {
	if len(issues) == 0 {
		return "No linting issues found in the changes."
	}
	var b strings.Builder
	b.WriteString("Linting issues found in the changes:")
	for _, issue := range issues {
		b.WriteString(fmt.Sprintf("\n- Line %d, Column %d: %s", issue.Line, issue.Column, issue.Message))
	}
	return b.String()
}
