// Package pathx has small file path helpers.
package pathx

import (
	"path/filepath"
	"strings"
	"unicode/utf8"
)

// FileName returns the final component of path: the file name for a file,
// the directory name for a directory. It reports false when path is empty,
// is a root, or ends in "..".
//
// Invalid UTF-8 in the name is replaced with U+FFFD.
func FileName(path string) (string, bool) {
	if path == "" {
		return "", false
	}
	trimmed := strings.TrimRight(filepath.ToSlash(path), "/")
	if trimmed == "" {
		return "", false
	}
	base := filepath.Base(filepath.FromSlash(trimmed))
	switch base {
	case "..", string(filepath.Separator):
		return "", false
	case ".":
		// "a/." names "a"
		if trimmed == "." {
			return "", false
		}
		return FileName(strings.TrimSuffix(trimmed, "."))
	}
	return strings.ToValidUTF8(base, string(utf8.RuneError)), true
}
