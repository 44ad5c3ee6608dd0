package token

import "github.com/sdl-org/sdl-go/value"

var keywords = map[string]value.Value{
	"true":  value.Bool(true),
	"false": value.Bool(false),
	"on":    value.Bool(true),
	"off":   value.Bool(false),
	"null":  value.Null,
}

func keywordOrIdentifier(pos Pos, name string) Token {
	if v, ok := keywords[name]; ok {
		return Token{Kind: Literal, Pos: pos, Value: v}
	}
	return Token{Kind: Identifier, Pos: pos, Text: name}
}

// classifyNumberLike classifies a run of accumulated characters: '/'
// present makes it a Date, ':' present (and no '/') makes it a
// TimeOrSpan, otherwise it's a Number.
func classifyNumberLike(pos Pos, text string) (Token, error) {
	hasSlash := containsByte(text, '/')
	hasColon := containsByte(text, ':')
	switch {
	case hasSlash:
		v, err := ScanDate(text)
		if err != nil {
			return Token{}, &ParseError{Msg: err.Error(), Pos: pos, Err: ErrBadDate}
		}
		return Token{Kind: Literal, Pos: pos, Value: v}, nil
	case hasColon:
		span, err := ScanTimeOrSpan(text)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Pos = pos
				return Token{}, pe
			}
			return Token{}, &ParseError{Msg: err.Error(), Pos: pos, Err: ErrBadTimeSpan}
		}
		return Token{Kind: TimeOrSpan, Pos: pos, Span: span}, nil
	default:
		v, err := ScanNumber(text)
		if err != nil {
			return Token{}, &ParseError{Msg: err.Error(), Pos: pos, Err: ErrBadNumber}
		}
		return Token{Kind: Literal, Pos: pos, Value: v}, nil
	}
}

func containsByte(s string, b byte) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return true
		}
	}
	return false
}
