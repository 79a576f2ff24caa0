// errors.go defines the error taxonomy for editor operations.
//
// Separated to centralise error definitions. Each failure belongs to one of
// four categories: a required parameter was missing, a parameter carried an
// invalid value, the target file failed pre-edit validation, or the tool hit
// an I/O-level failure. Categories are sentinel errors checked with
// errors.Is(); the typed structs carry the structured fields (parameter,
// value, hint) and format the user-facing message as a final step.

package validate

import (
	"errors"
	"fmt"
)

var (
	// ErrParamMissing categorises failures where a required parameter was absent.
	ErrParamMissing = errors.New("parameter missing")
	// ErrParamInvalid categorises failures where a parameter value was rejected.
	ErrParamInvalid = errors.New("parameter invalid")
	// ErrFileValidation categorises failures of the size/binary pre-edit checks.
	ErrFileValidation = errors.New("file validation failed")
	// ErrTool categorises operational failures: I/O errors, undo with no history.
	ErrTool = errors.New("tool failure")
)

// ParamMissingError reports a required parameter that was not supplied.
type ParamMissingError struct {
	Command   string // command being executed
	Parameter string // name of the missing parameter
}

func (e *ParamMissingError) Error() string {
	return fmt.Sprintf("Parameter `%s` is required for command: %s.", e.Parameter, e.Command)
}

func (e *ParamMissingError) Is(target error) bool { return target == ErrParamMissing }

// ParamInvalidError reports a parameter whose value was rejected, with an
// optional hint naming the legal form.
type ParamInvalidError struct {
	Parameter string
	Value     any
	Hint      string
}

func (e *ParamInvalidError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("Invalid `%s` parameter: %v.", e.Parameter, e.Value)
	}
	return fmt.Sprintf("Invalid `%s` parameter: %v. %s", e.Parameter, e.Value, e.Hint)
}

func (e *ParamInvalidError) Is(target error) bool { return target == ErrParamInvalid }

// FileValidationError reports a file that failed the size or content-type
// checks run before any read or write.
type FileValidationError struct {
	Path   string
	Reason string
}

func (e *FileValidationError) Error() string {
	return fmt.Sprintf("File validation failed for %s: %s", e.Path, e.Reason)
}

func (e *FileValidationError) Is(target error) bool { return target == ErrFileValidation }

// ToolError reports an operational failure with a message passed to the
// calling agent verbatim.
type ToolError struct {
	Message string
}

func (e *ToolError) Error() string { return e.Message }

func (e *ToolError) Is(target error) bool { return target == ErrTool }

// Toolf builds a ToolError with a formatted message.
func Toolf(format string, args ...any) error {
	return &ToolError{Message: fmt.Sprintf(format, args...)}
}
