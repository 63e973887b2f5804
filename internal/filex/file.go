package filex

import (
	"path/filepath"
	"strings"
)

// safeRune keeps [A-Za-z0-9._-] and maps everything else to '_'.
func safeRune(r rune) rune {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return r
	case r == '.' || r == '-' || r == '_':
		return r
	default:
		return '_'
	}
}

// Sanitize reduces a client-supplied filename to a safe base name: path
// components are stripped and anything outside [A-Za-z0-9._-] is replaced
// with an underscore. Returns "" when nothing usable remains.
func Sanitize(name string) string {
	// Strip directories regardless of the client's path separator.
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(name)
	if name == "." || name == "/" {
		return ""
	}

	name = strings.Map(safeRune, name)
	name = strings.Trim(name, "._")
	if name == "" {
		return ""
	}
	return name
}

// HasExtension reports whether the filename carries the given extension,
// compared case-insensitively. ext includes the leading dot.
func HasExtension(name, ext string) bool {
	return strings.EqualFold(filepath.Ext(name), ext)
}
