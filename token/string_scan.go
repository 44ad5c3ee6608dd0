package token

import (
	"strings"

	"github.com/sdl-org/sdl-go/value"
)

// UnescapeString processes double-quoted string escapes, given the raw
// text between the delimiting quotes with any multi-line continuations
// already joined by a literal '\n' at the point the continuation
// occurred.
func UnescapeString(raw string) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(raw) {
		c := raw[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		if i+1 >= len(raw) {
			return "", &value.FormatError{Text: raw, Reason: "trailing backslash"}
		}
		switch raw[i+1] {
		case '\\':
			b.WriteByte('\\')
			i += 2
			continue
		case '"':
			b.WriteByte('"')
			i += 2
			continue
		case 'n':
			b.WriteByte('\n')
			i += 2
			continue
		case 'r':
			b.WriteByte('\r')
			i += 2
			continue
		case 't':
			b.WriteByte('\t')
			i += 2
			continue
		}
		// line continuation: backslash, optional spaces/tabs, newline,
		// then discard leading whitespace on the continuation line.
		k := i + 1
		for k < len(raw) && (raw[k] == ' ' || raw[k] == '\t') {
			k++
		}
		if k < len(raw) && raw[k] == '\n' {
			k++
			for k < len(raw) && (raw[k] == ' ' || raw[k] == '\t') {
				k++
			}
			i = k
			continue
		}
		return "", &value.FormatError{Text: raw, Reason: "illegal escape \\" + string(raw[i+1])}
	}
	return b.String(), nil
}
