// Package editor implements the command dispatch and validation pipeline
// for the file editing tool. An Editor owns its validators, algorithms,
// history manager, and optional linter; construct one with New and pass
// it explicitly rather than holding shared module state.
//
// Every operation composes the same pipeline: path validation, file
// validation, the command's algorithm, a pre-edit history write for
// mutating commands, then snippet rendering into a ToolResult. Mutating
// commands write the file exactly once with fully computed new content.
package editor

import (
	"fmt"
	"os"
	"strings"

	"github.com/jpl-au/scribe/internal/edit"
	"github.com/jpl-au/scribe/internal/history"
	"github.com/jpl-au/scribe/internal/linter"
	"github.com/jpl-au/scribe/internal/result"
	"github.com/jpl-au/scribe/internal/snippet"
	"github.com/jpl-au/scribe/internal/validate"
)

// Command is one of the editor's operations.
type Command string

const (
	CmdView       Command = "view"
	CmdCreate     Command = "create"
	CmdStrReplace Command = "str_replace"
	CmdInsert     Command = "insert"
	CmdUndoEdit   Command = "undo_edit"
)

// Commands lists every recognised command, in documentation order.
var Commands = []Command{CmdView, CmdCreate, CmdStrReplace, CmdInsert, CmdUndoEdit}

// snippetContextWindow is how many lines of context surround an edit in
// the verification snippet.
const snippetContextWindow = 4

// reviewNotice closes every successful edit message.
const reviewNotice = "Review the changes and make sure they are as expected. Edit the file again if necessary."

// Arguments is the keyword-argument set of the single entry point.
// Pointer fields distinguish "absent" from zero values, so a missing
// required parameter is reported as such rather than as an invalid one.
type Arguments struct {
	Command       Command
	Path          string
	FileText      *string
	ViewRange     []int
	OldStr        *string
	NewStr        *string
	InsertLine    *int
	EnableLinting bool
}

// Options configures a new Editor.
type Options struct {
	MaxFileSize int64            // per-file ceiling; <= 0 applies the default
	History     *history.Manager // required
	Linter      linter.Linter    // optional; nil disables enable_linting
}

// Editor executes editing commands against the filesystem.
type Editor struct {
	maxFileSize int64
	history     *history.Manager
	linter      linter.Linter
}

// New constructs an Editor from opts.
func New(opts Options) *Editor {
	size := opts.MaxFileSize
	if size <= 0 {
		size = validate.DefaultMaxFileSize
	}
	return &Editor{
		maxFileSize: size,
		history:     opts.History,
		linter:      opts.Linter,
	}
}

// Dispatch runs one command and always returns a structured result:
// failures surface in the Error field, never as a panic or crash.
func (e *Editor) Dispatch(args Arguments) result.ToolResult {
	res, err := e.Apply(args)
	if err != nil {
		return result.ToolResult{Error: err.Error(), Path: args.Path}
	}
	return res
}

// Apply runs one command, returning a typed error from the
// validate taxonomy on failure. Validation short-circuits before any
// filesystem mutation.
func (e *Editor) Apply(args Arguments) (result.ToolResult, error) {
	known := false
	for _, c := range Commands {
		if args.Command == c {
			known = true
			break
		}
	}
	if !known {
		names := make([]string, len(Commands))
		for i, c := range Commands {
			names[i] = string(c)
		}
		return result.ToolResult{}, validate.Toolf(
			"Unrecognized command %s. The allowed commands for the file_editor tool are: %s",
			args.Command, strings.Join(names, ", "))
	}

	if err := validate.Path(string(args.Command), args.Path); err != nil {
		return result.ToolResult{}, err
	}

	switch args.Command {
	case CmdView:
		return e.view(args.Path, args.ViewRange)
	case CmdCreate:
		if args.FileText == nil {
			return result.ToolResult{}, &validate.ParamMissingError{Command: string(args.Command), Parameter: "file_text"}
		}
		return e.create(args.Path, *args.FileText)
	case CmdStrReplace:
		if args.OldStr == nil {
			return result.ToolResult{}, &validate.ParamMissingError{Command: string(args.Command), Parameter: "old_str"}
		}
		newStr := ""
		if args.NewStr != nil {
			newStr = *args.NewStr
		}
		if newStr == *args.OldStr {
			return result.ToolResult{}, &validate.ParamInvalidError{
				Parameter: "new_str",
				Value:     newStr,
				Hint:      "No replacement was performed. `new_str` and `old_str` must be different.",
			}
		}
		return e.strReplace(args.Path, *args.OldStr, newStr, args.EnableLinting)
	case CmdInsert:
		if args.InsertLine == nil {
			return result.ToolResult{}, &validate.ParamMissingError{Command: string(args.Command), Parameter: "insert_line"}
		}
		if args.NewStr == nil {
			return result.ToolResult{}, &validate.ParamMissingError{Command: string(args.Command), Parameter: "new_str"}
		}
		return e.insert(args.Path, *args.InsertLine, *args.NewStr, args.EnableLinting)
	default: // CmdUndoEdit
		return e.undo(args.Path)
	}
}

// create writes fileText verbatim to a path already confirmed absent and
// seeds history with the initial content, so an undo straight after a
// create restores the created text rather than deleting the file.
func (e *Editor) create(path, fileText string) (result.ToolResult, error) {
	if err := e.writeFile(path, fileText); err != nil {
		return result.ToolResult{}, err
	}
	if err := e.history.Add(path, fileText); err != nil {
		return result.ToolResult{}, validate.Toolf("Ran into %v while saving history for %s", err, path)
	}
	return result.ToolResult{
		Output:     fmt.Sprintf("File created successfully at: %s", path),
		Path:       path,
		PrevExist:  false,
		NewContent: fileText,
	}, nil
}

// strReplace replaces the unique occurrence of oldStr with newStr.
func (e *Editor) strReplace(path, oldStr, newStr string, lint bool) (result.ToolResult, error) {
	if err := validate.File(path, e.maxFileSize); err != nil {
		return result.ToolResult{}, err
	}
	content, err := e.readFile(path)
	if err != nil {
		return result.ToolResult{}, err
	}

	rep, err := edit.Replace(content, oldStr, newStr, path)
	if err != nil {
		return result.ToolResult{}, &validate.ToolError{Message: err.Error()}
	}

	// Snapshot before commit: if the write fails, nothing is lost; if it
	// succeeds, undo has the pre-edit content.
	if err := e.history.Add(path, rep.OldContent); err != nil {
		return result.ToolResult{}, validate.Toolf("Ran into %v while saving history for %s", err, path)
	}
	if err := e.writeFile(path, rep.NewContent); err != nil {
		return result.ToolResult{}, err
	}

	window := e.window(rep.NewContent, rep.Line, strings.Count(snippet.ExpandTabs(newStr), "\n"))
	msg := fmt.Sprintf("The file %s has been edited. ", path)
	msg += snippet.Render(window.content, fmt.Sprintf("a snippet of %s", path), window.start)
	msg += e.lintReport(lint, rep.OldContent, rep.NewContent, path)
	msg += reviewNotice

	return result.ToolResult{
		Output:     msg,
		Path:       path,
		PrevExist:  true,
		OldContent: rep.OldContent,
		NewContent: rep.NewContent,
	}, nil
}

// insert splices newStr into the file after insertLine existing lines.
func (e *Editor) insert(path string, insertLine int, newStr string, lint bool) (result.ToolResult, error) {
	if err := validate.File(path, e.maxFileSize); err != nil {
		return result.ToolResult{}, err
	}
	content, err := e.readFile(path)
	if err != nil {
		return result.ToolResult{}, err
	}

	ins, err := edit.Insert(content, insertLine, newStr)
	if err != nil {
		return result.ToolResult{}, &validate.ParamInvalidError{
			Parameter: "insert_line",
			Value:     insertLine,
			Hint:      err.Error(),
		}
	}

	if err := e.history.Add(path, ins.OldContent); err != nil {
		return result.ToolResult{}, validate.Toolf("Ran into %v while saving history for %s", err, path)
	}
	if err := e.writeFile(path, ins.NewContent); err != nil {
		return result.ToolResult{}, err
	}

	window := e.window(ins.NewContent, insertLine+1, ins.NumLines-1)
	msg := fmt.Sprintf("The file %s has been edited. ", path)
	msg += snippet.Render(window.content, "a snippet of the edited file", window.start)
	msg += e.lintReport(lint, ins.OldContent, ins.NewContent, path)
	msg += reviewNotice

	return result.ToolResult{
		Output:     msg,
		Path:       path,
		PrevExist:  true,
		OldContent: ins.OldContent,
		NewContent: ins.NewContent,
	}, nil
}

// undo restores the most recent history snapshot for path.
func (e *Editor) undo(path string) (result.ToolResult, error) {
	current, err := e.readFile(path)
	if err != nil {
		return result.ToolResult{}, err
	}
	current = snippet.ExpandTabs(current)

	restored, ok, err := e.history.GetLast(path)
	if err != nil {
		return result.ToolResult{}, validate.Toolf("Ran into %v while reading history for %s", err, path)
	}
	if !ok {
		return result.ToolResult{}, validate.Toolf("No edit history found for %s.", path)
	}

	if err := e.writeFile(path, restored); err != nil {
		return result.ToolResult{}, err
	}

	return result.ToolResult{
		Output:     fmt.Sprintf("Last edit to %s undone successfully. %s", path, snippet.Render(restored, path, 1)),
		Path:       path,
		PrevExist:  true,
		OldContent: current,
		NewContent: restored,
	}, nil
}

// lintReport runs the optional linter on a before/after pair. Linting is
// informational only: a linter failure is reported in the message and
// never fails the edit.
func (e *Editor) lintReport(enabled bool, before, after, path string) string {
	if !enabled || e.linter == nil {
		return ""
	}
	issues, err := e.linter.LintDiff(before, after, path)
	if err != nil {
		return fmt.Sprintf("\nLinting skipped: %v\n", err)
	}
	return "\n" + linter.Format(issues) + "\n"
}

// editWindow is the slice of content shown to the caller around an edit.
type editWindow struct {
	content string
	start   int // 1-based line number of the first line in content
}

// window extracts lines around line from content, extending the bottom of
// the window by extra lines to cover multi-line replacements.
func (e *Editor) window(content string, line, extra int) editWindow {
	if extra < 0 {
		extra = 0
	}
	lines := strings.Split(content, "\n")
	start := line - snippetContextWindow
	if start < 1 {
		start = 1
	}
	end := line + snippetContextWindow + extra
	if end > len(lines) {
		end = len(lines)
	}
	return editWindow{
		content: strings.Join(lines[start-1:end], "\n"),
		start:   start,
	}
}

// readFile loads the whole file; failures wrap into the tool taxonomy.
func (e *Editor) readFile(path string) (string, error) {
	if err := validate.File(path, e.maxFileSize); err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", validate.Toolf("Ran into %v while trying to read %s", err, path)
	}
	return string(data), nil
}

// writeFile commits fully computed content in a single write.
func (e *Editor) writeFile(path, content string) error {
	if err := validate.File(path, e.maxFileSize); err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return validate.Toolf("Ran into %v while trying to write to %s", err, path)
	}
	return nil
}
