package domain

import "strings"

const commentMarker = '#'

// StripComment removes a trailing comment and the spaces in front of it. The
// second result is false when nothing but whitespace remains and the line
// must be skipped.
func StripComment(line string) (string, bool) {
	if pos := strings.IndexByte(line, commentMarker); pos >= 0 {
		line = strings.TrimRight(line[:pos], " ")
	}

	if strings.TrimSpace(line) == "" {
		return "", false
	}

	return line, true
}
