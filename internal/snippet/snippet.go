// Package snippet renders file content for agent consumption: 1-based
// line-numbered output in `cat -n` style, with tab expansion and a hard
// response-size cap so a huge file can never flood the caller.
package snippet

import (
	"fmt"
	"strings"
)

// MaxResponseLen is the character cap applied to rendered content before
// the truncation notice is appended.
const MaxResponseLen = 16000

// tabStop matches the column width used when expanding tabs.
const tabStop = 8

// TruncateNotice is appended when rendered content exceeds the cap. The
// hint steers the agent towards ranged reads instead of retrying blindly.
const TruncateNotice = "<response clipped><NOTE>Due to the max output limit, only part of this file has been shown to you. You should use `view` with a line range or `grep -n` to locate the lines you need.</NOTE>"

// DirTruncateNotice is appended when a directory listing exceeds the cap.
const DirTruncateNotice = "<response clipped><NOTE>Due to the max output limit, only part of this directory has been shown to you. You should use `ls -la` instead to view large directories incrementally.</NOTE>"

// Truncate caps content at maxLen characters, appending notice when it
// clips. maxLen <= 0 disables truncation.
func Truncate(content string, maxLen int, notice string) string {
	if maxLen <= 0 || len(content) <= maxLen {
		return content
	}
	return content[:maxLen] + notice
}

// ExpandTabs replaces each tab with spaces up to the next tab stop,
// column-aware per line. Matching, replacement, and rendering all expand
// tabs the same way so byte offsets computed during matching stay valid
// when the new content is written back.
func ExpandTabs(s string) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			pad := tabStop - col%tabStop
			for i := 0; i < pad; i++ {
				b.WriteByte(' ')
			}
			col += pad
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// Render produces the numbered listing for content, described as desc,
// with line numbers starting at startLine. Output mirrors `cat -n`:
// right-aligned six-column line numbers, a tab, then the line.
func Render(content, desc string, startLine int) string {
	content = Truncate(content, MaxResponseLen, TruncateNotice)
	content = ExpandTabs(content)

	lines := strings.Split(content, "\n")
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Here's the result of running `cat -n` on %s:\n", desc))
	for i, line := range lines {
		b.WriteString(fmt.Sprintf("%6d\t%s\n", i+startLine, line))
	}
	return b.String()
}
