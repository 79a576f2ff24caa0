// diff.go implements the default diff-based linter. It computes the line
// ranges the edit touched and runs its checks only on those lines, so an
// edit is never blamed for pre-existing problems elsewhere in the file.

package linter

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Check inspects one changed line. It returns the 1-based column of the
// finding and a message; ok reports whether the line triggered it.
type Check func(line string) (col int, msg string, ok bool)

// DiffLinter runs line checks over the lines an edit changed.
type DiffLinter struct {
	checks []Check
}

var _ Linter = (*DiffLinter)(nil)

// New returns a DiffLinter with the default checks: merge-conflict
// markers and trailing whitespace.
func New() *DiffLinter {
	return &DiffLinter{checks: []Check{checkConflictMarker, checkTrailingWhitespace}}
}

// NewWithChecks returns a DiffLinter running only the given checks.
func NewWithChecks(checks ...Check) *DiffLinter {
	return &DiffLinter{checks: checks}
}

// LintDiff finds the lines of after that differ from before and applies
// every check to each.
func (l *DiffLinter) LintDiff(before, after, _ string) ([]Issue, error) {
	lines := strings.Split(after, "\n")

	var issues []Issue
	for _, lineNum := range changedLines(before, after) {
		if lineNum < 1 || lineNum > len(lines) {
			continue
		}
		for _, check := range l.checks {
			if col, msg, ok := check(lines[lineNum-1]); ok {
				issues = append(issues, Issue{Line: lineNum, Column: col, Message: msg})
			}
		}
	}
	return issues, nil
}

// changedLines returns the 1-based line numbers in after touched by
// inserted text, in document order without duplicates.
func changedLines(before, after string) []int {
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(before, after, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	var lines []int
	seen := make(map[int]bool)
	line := 1 // current 1-based line in after
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			line += strings.Count(d.Text, "\n")
		case diffmatchpatch.DiffInsert:
			span := strings.Count(d.Text, "\n")
			for n := line; n <= line+span; n++ {
				if !seen[n] {
					seen[n] = true
					lines = append(lines, n)
				}
			}
			line += span
		case diffmatchpatch.DiffDelete:
			// Deleted text occupies no lines in after; the surrounding
			// line is already covered when the deletion splits a line.
			if !seen[line] {
				seen[line] = true
				lines = append(lines, line)
			}
		}
	}
	return lines
}

func checkConflictMarker(line string) (int, string, bool) {
	for _, marker := range []string{"<<<<<<<", "=======", ">>>>>>>"} {
		if strings.HasPrefix(line, marker) {
			return 1, "line starts with a merge-conflict marker", true
		}
	}
	return 0, "", false
}

func checkTrailingWhitespace(line string) (int, string, bool) {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == line || trimmed == "" {
		return 0, "", false
	}
	return len(trimmed) + 1, "trailing whitespace", true
}
