package token

import (
	"unicode/utf8"

	"github.com/sdl-org/sdl-go/value"
)

var charEscapeValues = map[byte]rune{
	'\\': '\\',
	'\'': '\'',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

// ScanChar scans a character literal: 'c' or '\e' with e in
// {\\, ', n, r, t}. body is the text between the delimiting quotes.
func ScanChar(body string) (value.Value, error) {
	if body == "" {
		return nil, &value.FormatError{Text: body, Reason: "empty character literal"}
	}
	if body[0] == '\\' {
		if len(body) != 2 {
			return nil, &value.FormatError{Text: body, Reason: "malformed escape"}
		}
		r, ok := charEscapeValues[body[1]]
		if !ok {
			return nil, &value.FormatError{Text: body, Reason: "illegal escape \\" + string(body[1])}
		}
		return value.Char(r), nil
	}
	r, size := utf8.DecodeRuneInString(body)
	if r == utf8.RuneError || size != len(body) {
		return nil, &value.FormatError{Text: body, Reason: "character literal must be exactly one scalar"}
	}
	return value.Char(r), nil
}
