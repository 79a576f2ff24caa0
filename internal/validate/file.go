// file.go implements per-file validation run before every read or write.
//
// Two checks guard edits: a size ceiling so a misdirected edit cannot drag
// a multi-gigabyte file through memory, and a binary-content check so only
// plain text is ever rewritten. The content check resolves a MIME type from
// the filename first; when the extension is unknown it falls back to
// sniffing the first kilobyte for a NUL byte.

package validate

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// DefaultMaxFileSize is the size ceiling applied when none is configured.
const DefaultMaxFileSize = 10 * 1024 * 1024 // 10 MiB

// sniffLen is how many leading bytes are inspected for a NUL byte when the
// MIME type cannot be resolved from the filename.
const sniffLen = 1024

// File checks that path refers to an editable plain-text file no larger
// than maxSize bytes. Directories are exempt: they carry no content to
// validate. maxSize <= 0 applies DefaultMaxFileSize.
func File(path string, maxSize int64) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return nil
	}
	if maxSize <= 0 {
		maxSize = DefaultMaxFileSize
	}

	if info.Size() > maxSize {
		return &FileValidationError{
			Path: path,
			Reason: fmt.Sprintf("File is too large (%.1fMB). Maximum allowed size is %dMB.",
				float64(info.Size())/1024/1024, maxSize/1024/1024),
		}
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if mimeType == "" {
		binary, err := sniffBinary(path)
		if err != nil {
			return &FileValidationError{
				Path:   path,
				Reason: fmt.Sprintf("Error checking file type: %v", err),
			}
		}
		if binary {
			return &FileValidationError{
				Path:   path,
				Reason: "File appears to be binary. Only text files can be edited.",
			}
		}
		return nil
	}

	if !strings.HasPrefix(mimeType, "text/") {
		return &FileValidationError{
			Path:   path,
			Reason: fmt.Sprintf("File type %s is not supported. Only text files can be edited.", mimeType),
		}
	}
	return nil
}

// sniffBinary reports whether the first sniffLen bytes contain a NUL byte.
func sniffBinary(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return false, err
	}
	for _, b := range buf[:n] {
		if b == 0 {
			return true, nil
		}
	}
	return false, nil
}
