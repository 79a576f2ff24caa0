// Package ls lists directory contents for the view command: entries up to
// two levels deep, dotfiles suppressed at both levels, lexicographic
// order, directories suffixed with the path separator. Symbolic links to
// directories are followed as if they were real directories.
package ls

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Listing is the outcome of listing a directory.
type Listing struct {
	Paths       []string // absolute paths, sorted; directories end in "/"
	HiddenCount int      // suppressed hidden entries at the top level
}

// List walks dir two levels deep. Hidden entries (name starting with ".")
// are skipped at both levels and never descended into; only the top-level
// hidden entries are counted for the caller's hint.
func List(dir string) (Listing, error) {
	var l Listing

	top, err := os.ReadDir(dir)
	if err != nil {
		return l, err
	}

	l.Paths = append(l.Paths, dir+string(filepath.Separator))

	for _, entry := range top {
		if strings.HasPrefix(entry.Name(), ".") {
			l.HiddenCount++
			continue
		}
		p := filepath.Join(dir, entry.Name())
		if isDir(p, entry) {
			l.Paths = append(l.Paths, p+string(filepath.Separator))
			sub, err := os.ReadDir(p)
			if err != nil {
				// Unreadable subdirectory: list it without descending.
				continue
			}
			for _, s := range sub {
				if strings.HasPrefix(s.Name(), ".") {
					continue
				}
				sp := filepath.Join(p, s.Name())
				if isDir(sp, s) {
					l.Paths = append(l.Paths, sp+string(filepath.Separator))
				} else {
					l.Paths = append(l.Paths, sp)
				}
			}
		} else {
			l.Paths = append(l.Paths, p)
		}
	}

	sort.Strings(l.Paths)
	return l, nil
}

// isDir reports whether entry is a directory, following symlinks so a
// link to a directory lists like the directory itself.
func isDir(path string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
