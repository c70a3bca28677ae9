//go:build !windows

package config

import (
	"os"

	"golang.org/x/term"
)

// reserved lists runes which never make it into output path segments.
const reserved = "\x00/:"

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
