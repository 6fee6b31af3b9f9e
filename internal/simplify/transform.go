package simplify

import (
	"strings"
	"unicode"
)

const commentSequence = "--"

// isSpace extends unicode.IsSpace with the ASCII separators 0x1c-0x1f,
// which Python's str.split also treats as whitespace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// Transform returns the simplified form of a single line without its
// terminator. The first line of a file is returned as is. Any other line
// loses everything from the first "--" on, has its whitespace runs
// collapsed to one space and gets a trailing "\n". ok is false when nothing
// but whitespace is left, in which case the line must be omitted.
//
// The comment marker is matched even inside string literals.
func Transform(text string, first bool) (result string, ok bool) {
	if first {
		return text, true
	}

	if idx := strings.Index(text, commentSequence); idx != -1 {
		text = text[:idx]
	}

	fields := strings.FieldsFunc(text, isSpace)
	if len(fields) == 0 {
		return "", false
	}

	return strings.Join(fields, " ") + "\n", true
}
