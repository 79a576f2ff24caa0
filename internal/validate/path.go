// path.go implements path/command compatibility checks.
//
// Separated from file.go because path validation is purely about the
// command/path combination and does no I/O beyond an existence check,
// while file validation reads file metadata and content.

package validate

import (
	"os"
	"path/filepath"
)

// Path checks that a path is compatible with the requested command.
//
// Checks run in order:
//   - the path must be absolute (a suggested absolute form is included)
//   - `create` must not target an existing path (no overwrite)
//   - every other command must target an existing path
//   - only `view` may target a directory
func Path(command, path string) error {
	if !filepath.IsAbs(path) {
		suggested := path
		if cwd, err := os.Getwd(); err == nil {
			suggested = filepath.Join(cwd, path)
		}
		return &ParamInvalidError{
			Parameter: "path",
			Value:     path,
			Hint:      "The path should be an absolute path, starting with `/`. Maybe you meant " + suggested + "?",
		}
	}

	info, err := os.Stat(path)
	exists := err == nil

	if command == "create" && exists {
		return &ParamInvalidError{
			Parameter: "path",
			Value:     path,
			Hint:      "File already exists at: " + path + ". Cannot overwrite files using command `create`.",
		}
	}
	if command != "create" && !exists {
		return &ParamInvalidError{
			Parameter: "path",
			Value:     path,
			Hint:      "The path " + path + " does not exist. Please provide a valid path.",
		}
	}
	if command != "view" && exists && info.IsDir() {
		return &ParamInvalidError{
			Parameter: "path",
			Value:     path,
			Hint:      "The path " + path + " is a directory and only the `view` command can be used on directories.",
		}
	}
	return nil
}
