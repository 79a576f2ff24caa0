// Package edit implements the two mutating algorithms: exact-match text
// replacement and line insertion. Both operate on full file content as an
// immutable value - every call returns new content rather than patching in
// place, which keeps the uniqueness check and undo snapshots simple.
package edit

import (
	"fmt"
	"strings"

	"github.com/jpl-au/scribe/internal/snippet"
)

// Occurrence records one literal match of a search string in content.
type Occurrence struct {
	Line   int    // 1-based line of the match start
	Text   string // matched text
	Offset int    // byte offset of the match start
}

// Replacement is the outcome of a successful Replace.
type Replacement struct {
	OldContent string // tab-expanded pre-edit content (what history stores)
	NewContent string // content with the single occurrence replaced
	Line       int    // 1-based line where the replacement happened
}

// Replace substitutes the single occurrence of old in content with new.
// Tabs in content, old, and new are expanded consistently before matching,
// so offsets computed here remain valid in the returned content.
//
// Zero occurrences or more than one are errors; with multiple occurrences
// the error lists the 1-based starting line of every match so the caller
// can widen old to disambiguate. path appears only in error messages.
func Replace(content, old, new, path string) (Replacement, error) {
	old = snippet.ExpandTabs(old)
	new = snippet.ExpandTabs(new)
	content = snippet.ExpandTabs(content)

	occurrences := Occurrences(content, old)
	if len(occurrences) == 0 {
		return Replacement{}, fmt.Errorf(
			"No replacement was performed, old_str `%s` did not appear verbatim in %s.", old, path)
	}
	if len(occurrences) > 1 {
		lines := make([]string, len(occurrences))
		for i, o := range occurrences {
			lines[i] = fmt.Sprintf("%d", o.Line)
		}
		return Replacement{}, fmt.Errorf(
			"No replacement was performed. Multiple occurrences of old_str `%s` in lines [%s]. Please ensure it is unique.",
			old, strings.Join(lines, ", "))
	}

	// Replace only the matched span. A blanket substitution could re-match
	// inside new when new contains old.
	o := occurrences[0]
	return Replacement{
		OldContent: content,
		NewContent: content[:o.Offset] + new + content[o.Offset+len(o.Text):],
		Line:       o.Line,
	}, nil
}

// Occurrences enumerates every literal occurrence of old in content, in
// document order. Matching is a true byte-literal substring scan, not an
// escaped-pattern engine.
func Occurrences(content, old string) []Occurrence {
	if old == "" {
		return nil
	}
	var occurrences []Occurrence
	from := 0
	for {
		i := strings.Index(content[from:], old)
		if i < 0 {
			return occurrences
		}
		offset := from + i
		occurrences = append(occurrences, Occurrence{
			Line:   strings.Count(content[:offset], "\n") + 1,
			Text:   old,
			Offset: offset,
		})
		// Advance past this match; overlapping matches would already make
		// the occurrence ambiguous, so skipping the full match is enough.
		from = offset + len(old)
	}
}

// CountLines returns the number of lines in content, counting a final
// unterminated fragment as a line. Empty content has zero lines.
func CountLines(content string) int {
	if content == "" {
		return 0
	}
	n := strings.Count(content, "\n")
	if !strings.HasSuffix(content, "\n") {
		n++
	}
	return n
}
