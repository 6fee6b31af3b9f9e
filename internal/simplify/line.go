package simplify

import (
	"bytes"
	"strings"
)

type line struct {
	text       string
	number     int
	terminated bool
}

// newLine drops the line terminator. "\r\n", "\n" and a lone "\r" all end a
// line.
func newLine(raw string, number int) line {
	text, terminated := strings.CutSuffix(raw, "\n")
	if terminated {
		text = strings.TrimSuffix(text, "\r")
	} else {
		text, terminated = strings.CutSuffix(text, "\r")
	}

	return line{
		text:       text,
		number:     number,
		terminated: terminated,
	}
}

// scanLines is a bufio.SplitFunc like bufio.ScanLines, except that the
// terminator stays in the token and a lone '\r' also ends a line.
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}

	idx := bytes.IndexAny(data, "\r\n")
	if idx == -1 {
		if atEOF {
			return len(data), data, nil
		}

		return 0, nil, nil
	}

	if data[idx] == '\n' {
		return idx + 1, data[:idx+1], nil
	}

	if idx+1 == len(data) && !atEOF {
		// need one more byte to tell "\r" from "\r\n"
		return 0, nil, nil
	}

	if idx+1 < len(data) && data[idx+1] == '\n' {
		return idx + 2, data[:idx+2], nil
	}

	return idx + 1, data[:idx+1], nil
}
