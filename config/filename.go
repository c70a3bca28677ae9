package config

import (
	"strings"
	"unicode"
)

// BadFileName replaces path segment which has nothing left after cleaning.
const BadFileName = "_bad_file_name_"

// CleanFileName turns match id or panel index into a single path segment.
// Reserved and control characters are dropped and leading dots trimmed, so
// result never becomes hidden file or parent reference.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if strings.ContainsRune(reserved, r) || unicode.IsControl(r) {
			return -1
		}
		return r
	}, strings.TrimSpace(in))
	out = strings.TrimSpace(strings.TrimLeft(out, "."))
	if out == "" {
		return BadFileName
	}
	return out
}
