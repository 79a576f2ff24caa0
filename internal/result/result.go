// Package result defines the editor's result envelope. Every operation
// returns a ToolResult carrying success output XOR an error message, plus
// the mutation record (path, prior existence, old and new content) for
// commands that changed the file.
package result

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ToolResult is the outcome of one editor operation. Exactly one of
// Output and Error is set.
type ToolResult struct {
	Output string `json:"output,omitempty"`
	Error  string `json:"error,omitempty"`

	// Mutation record, populated for view/create/str_replace/insert/undo_edit
	// where applicable.
	Path       string `json:"path,omitempty"`
	PrevExist  bool   `json:"prev_exist"`
	OldContent string `json:"old_content,omitempty"`
	NewContent string `json:"new_content,omitempty"`
}

// Ok reports whether the operation succeeded.
func (r ToolResult) Ok() bool { return r.Error == "" }

// Text renders the result for plain display: the output on success, or
// the error prefixed with ERROR on failure.
func (r ToolResult) Text() string {
	if r.Error != "" {
		return "ERROR:\n" + r.Error
	}
	return r.Output
}

// Envelope serialises the result as JSON inside a uniquely tagged block so
// it can be located unambiguously in surrounding free text. The tag embeds
// a fresh UUID; content produced by the edited file itself can never forge
// a matching close tag.
func (r ToolResult) Envelope() (string, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return "", fmt.Errorf("marshalling result: %w", err)
	}
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return fmt.Sprintf("<scribe_output_%s>\n%s\n</scribe_output_%s>", id, data, id), nil
}

// Extract locates and decodes the first enveloped result in text.
// The bool reports whether an envelope was found.
func Extract(text string) (ToolResult, bool) {
	const open = "<scribe_output_"
	start := strings.Index(text, open)
	if start < 0 {
		return ToolResult{}, false
	}
	tagEnd := strings.Index(text[start:], ">")
	if tagEnd < 0 {
		return ToolResult{}, false
	}
	id := text[start+len(open) : start+tagEnd]
	closeTag := fmt.Sprintf("</scribe_output_%s>", id)
	end := strings.Index(text, closeTag)
	if end < 0 {
		return ToolResult{}, false
	}

	body := strings.TrimSpace(text[start+tagEnd+1 : end])
	var r ToolResult
	if err := json.Unmarshal([]byte(body), &r); err != nil {
		return ToolResult{}, false
	}
	return r, true
}
