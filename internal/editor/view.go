// view.go implements the view command for files and directories.
//
// Directory targets produce a two-level listing with hidden entries
// suppressed and counted. File targets render a line-numbered snippet of
// the whole file or a validated [start, end] range; ranged reads stream
// the file so only the requested lines are materialised.

package editor

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jpl-au/scribe/internal/ls"
	"github.com/jpl-au/scribe/internal/result"
	"github.com/jpl-au/scribe/internal/snippet"
	"github.com/jpl-au/scribe/internal/validate"
)

func (e *Editor) view(path string, viewRange []int) (result.ToolResult, error) {
	info, err := os.Stat(path)
	if err != nil {
		return result.ToolResult{}, validate.Toolf("Ran into %v while trying to view %s", err, path)
	}
	if info.IsDir() {
		if viewRange != nil {
			return result.ToolResult{}, &validate.ParamInvalidError{
				Parameter: "view_range",
				Value:     viewRange,
				Hint:      "The `view_range` parameter is not allowed when `path` points to a directory.",
			}
		}
		return e.viewDirectory(path)
	}
	return e.viewFile(path, viewRange)
}

func (e *Editor) viewDirectory(path string) (result.ToolResult, error) {
	listing, err := ls.List(path)
	if err != nil {
		return result.ToolResult{}, validate.Toolf("Ran into %v while trying to view %s", err, path)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Here's the files and directories up to 2 levels deep in %s, excluding hidden items:\n", path)
	b.WriteString(snippet.Truncate(strings.Join(listing.Paths, "\n"), snippet.MaxResponseLen, snippet.DirTruncateNotice))
	if listing.HiddenCount > 0 {
		fmt.Fprintf(&b, "\n\n%d hidden files/directories in this directory are excluded. You can use 'ls -la %s' to see them.", listing.HiddenCount, path)
	}

	return result.ToolResult{
		Output:    b.String(),
		Path:      path,
		PrevExist: true,
	}, nil
}

func (e *Editor) viewFile(path string, viewRange []int) (result.ToolResult, error) {
	if err := validate.File(path, e.maxFileSize); err != nil {
		return result.ToolResult{}, err
	}

	if viewRange == nil {
		content, err := e.readFile(path)
		if err != nil {
			return result.ToolResult{}, err
		}
		return result.ToolResult{
			Output:    snippet.Render(content, path, 1),
			Path:      path,
			PrevExist: true,
		}, nil
	}

	numLines, err := countFileLines(path)
	if err != nil {
		return result.ToolResult{}, validate.Toolf("Ran into %v while trying to read %s", err, path)
	}

	if len(viewRange) != 2 {
		return result.ToolResult{}, &validate.ParamInvalidError{
			Parameter: "view_range",
			Value:     viewRange,
			Hint:      "It should be a list of two integers.",
		}
	}
	start, end := viewRange[0], viewRange[1]
	if start < 1 || start > numLines {
		return result.ToolResult{}, &validate.ParamInvalidError{
			Parameter: "view_range",
			Value:     viewRange,
			Hint:      fmt.Sprintf("Its first element `%d` should be within the range of lines of the file: [1, %d].", start, numLines),
		}
	}
	if end > numLines {
		return result.ToolResult{}, &validate.ParamInvalidError{
			Parameter: "view_range",
			Value:     viewRange,
			Hint:      fmt.Sprintf("Its second element `%d` should be smaller than the number of lines in the file: `%d`.", end, numLines),
		}
	}
	if end != -1 && end < start {
		return result.ToolResult{}, &validate.ParamInvalidError{
			Parameter: "view_range",
			Value:     viewRange,
			Hint:      fmt.Sprintf("Its second element `%d` should be greater than or equal to the first element `%d`.", end, start),
		}
	}
	if end == -1 {
		end = numLines
	}

	content, err := readFileRange(path, start, end)
	if err != nil {
		return result.ToolResult{}, validate.Toolf("Ran into %v while trying to read %s", err, path)
	}

	return result.ToolResult{
		Output:    snippet.Render(strings.TrimSuffix(content, "\n"), path, start),
		Path:      path,
		PrevExist: true,
	}, nil
}

// countFileLines streams the file counting lines without holding content.
// A final unterminated fragment counts as a line; an empty file has none.
func countFileLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	r := bufio.NewReader(f)
	count := 0
	sawFragment := false
	for {
		line, err := r.ReadString('\n')
		if err == io.EOF {
			if line != "" {
				sawFragment = true
			}
			break
		}
		if err != nil {
			return 0, err
		}
		count++
	}
	if sawFragment {
		count++
	}
	return count, nil
}

// readFileRange returns lines start..end (1-based, inclusive), preserving
// line terminators, reading only as far as end.
func readFileRange(path string, start, end int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	var b strings.Builder
	r := bufio.NewReader(f)
	lineNum := 0
	for {
		line, err := r.ReadString('\n')
		if line != "" {
			lineNum++
			if lineNum >= start {
				b.WriteString(line)
			}
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if lineNum >= end {
			break
		}
	}
	return b.String(), nil
}
