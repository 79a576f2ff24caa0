// insert.go implements line insertion.
//
// insertLine is 0-based and means "insert after this many existing lines":
// 0 prepends, CountLines(content) appends. The new text is tab-expanded,
// split on line breaks, and spliced into the existing line sequence.

package edit

import (
	"fmt"
	"strings"

	"github.com/jpl-au/scribe/internal/snippet"
)

// Insertion is the outcome of a successful Insert.
type Insertion struct {
	OldContent string // tab-expanded pre-edit content (what history stores)
	NewContent string // content with the new lines spliced in
	Line       int    // 0-based insertion point, as requested
	NumLines   int    // number of lines inserted
}

// Insert splices text into content after insertLine existing lines.
// Content and text are tab-expanded consistently. An out-of-range
// insertLine is an error naming the legal range [0, lineCount].
func Insert(content string, insertLine int, text string) (Insertion, error) {
	content = snippet.ExpandTabs(content)
	numLines := CountLines(content)

	if insertLine < 0 || insertLine > numLines {
		return Insertion{}, fmt.Errorf(
			"It should be within the range of lines of the file: [0, %d]", numLines)
	}

	text = snippet.ExpandTabs(text)
	newLines := strings.Split(text, "\n")

	lines := strings.Split(content, "\n")
	// A trailing newline produces an empty final element in lines; the
	// insertLine index addresses line boundaries, so splicing at the
	// element index keeps the terminator in place.
	spliced := make([]string, 0, len(lines)+len(newLines))
	spliced = append(spliced, lines[:insertLine]...)
	spliced = append(spliced, newLines...)
	spliced = append(spliced, lines[insertLine:]...)

	return Insertion{
		OldContent: content,
		NewContent: strings.Join(spliced, "\n"),
		Line:       insertLine,
		NumLines:   len(newLines),
	}, nil
}
