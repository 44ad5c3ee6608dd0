package token

import (
	"encoding/base64"
	"strings"

	"github.com/sdl-org/sdl-go/value"
)

// ScanBinary scans a binary literal: body is the text between '[' and
// ']', possibly spanning several physical lines; all ASCII whitespace
// is stripped before base64 decoding.
func ScanBinary(body string) (value.Value, error) {
	var b strings.Builder
	for i := 0; i < len(body); i++ {
		c := body[i]
		switch c {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		b.WriteByte(c)
	}
	decoded, err := base64.StdEncoding.DecodeString(b.String())
	if err != nil {
		return nil, &value.FormatError{Text: body, Reason: "invalid base64: " + err.Error()}
	}
	return value.Binary(decoded), nil
}
