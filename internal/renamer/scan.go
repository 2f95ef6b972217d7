package renamer

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/samber/lo"
)

// ignoredNames are system files and our own artifacts that are never renamed.
var ignoredNames = []string{
	"Thumbs.db",
	"$RECYCLE.BIN",
	"desktop.ini",
	"cyrillic-file-renamer-",
}

// IsIgnored reports whether a file should be left out of a run: hidden
// files, OS metadata and the renamer's own binaries.
func IsIgnored(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return true
	}
	return lo.SomeBy(ignoredNames, func(ignored string) bool {
		return strings.Contains(name, ignored)
	})
}

// Scan lists the regular files directly inside dir that are eligible for
// renaming, in name order. Subdirectories, including the output directory,
// are not descended into.
func Scan(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory %s: %w", dir, err)
	}

	return lo.FilterMap(entries, func(e fs.DirEntry, _ int) (string, bool) {
		return e.Name(), e.Type().IsRegular() && !IsIgnored(e.Name())
	}), nil
}
