package value

import (
	"encoding/base64"
	"strconv"
	"strings"
)

func formatInt64(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatFloat64 renders v without exponent notation and always with a
// decimal point, so the result is unambiguous with Int32 when re-lexed
// (the number scanner has no exponent syntax).
func formatFloat64(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatFloat32(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func encodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

func decodeBase64(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

var strEscapes = map[byte]string{
	'\\': `\\`,
	'"':  `\"`,
	'\t': `\t`,
	'\r': `\r`,
	'\n': `\n`,
}

func quoteString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		if esc, ok := strEscapes[c]; ok {
			b.WriteString(esc)
			continue
		}
		b.WriteByte(c)
	}
	b.WriteByte('"')
	return b.String()
}

var charEscapes = map[rune]string{
	'\\': `\\`,
	'\'': `\'`,
	'\n': `\n`,
	'\r': `\r`,
	'\t': `\t`,
}

func quoteChar(r rune) string {
	if esc, ok := charEscapes[r]; ok {
		return "'" + esc + "'"
	}
	return "'" + string(r) + "'"
}
