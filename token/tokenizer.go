package token

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/sdl-org/sdl-go/value"
)

// Tokenizer performs a single-pass, per-line scan, managing the
// raw-mode line continuations multi-line literals and block comments
// require.
type Tokenizer struct {
	lr   LineReader
	line string
	pos  int
}

// New returns a Tokenizer reading physical lines from lr.
func New(lr LineReader) *Tokenizer {
	return &Tokenizer{lr: lr}
}

// NextTokenLine returns the tokens of the next logical line, or a nil
// slice and nil error at end of source. Blank and comment-only lines
// never yield an empty, non-nil result: they are skipped and the next
// line is fetched.
func (t *Tokenizer) NextTokenLine() ([]Token, error) {
	for {
		line, ok := t.lr.NextCooked()
		if !ok {
			return nil, nil
		}
		t.line = line
		t.pos = 0
		toks, err := t.scanLine()
		if err != nil {
			return nil, err
		}
		if len(toks) == 0 {
			continue
		}
		return toks, nil
	}
}

func (t *Tokenizer) curPos() Pos {
	return Pos{Line: t.lr.LineNo(), Col: t.pos + 1}
}

func (t *Tokenizer) scanLine() ([]Token, error) {
	var toks []Token
	for t.pos < len(t.line) {
		r, size := utf8.DecodeRuneInString(t.line[t.pos:])
		switch {
		case r == ' ' || r == '\t':
			t.pos += size
		case r == '"':
			pos := t.curPos()
			raw, err := t.scanDoubleQuoted()
			if err != nil {
				return nil, err
			}
			s, err := UnescapeString(raw)
			if err != nil {
				return nil, &ParseError{Msg: err.Error(), Pos: pos, Err: ErrBadEscape}
			}
			toks = append(toks, literalToken(pos, value.Str(s)))
		case r == '`':
			pos := t.curPos()
			raw, err := t.scanBackQuoted()
			if err != nil {
				return nil, err
			}
			toks = append(toks, literalToken(pos, value.Str(raw)))
		case r == '\'':
			pos := t.curPos()
			body, err := t.scanCharBody()
			if err != nil {
				return nil, err
			}
			v, ferr := ScanChar(body)
			if ferr != nil {
				return nil, &ParseError{Msg: ferr.Error(), Pos: pos, Err: ErrBadEscape}
			}
			toks = append(toks, literalToken(pos, v))
		case r == '[':
			pos := t.curPos()
			body, err := t.scanBinaryBody()
			if err != nil {
				return nil, err
			}
			v, ferr := ScanBinary(body)
			if ferr != nil {
				return nil, &ParseError{Msg: ferr.Error(), Pos: pos, Err: ErrBadBinary}
			}
			toks = append(toks, literalToken(pos, v))
		case r == '{':
			toks = append(toks, Token{Kind: StartBlock, Pos: t.curPos()})
			t.pos += size
		case r == '}':
			toks = append(toks, Token{Kind: EndBlock, Pos: t.curPos()})
			t.pos += size
		case r == '=':
			toks = append(toks, Token{Kind: Equals, Pos: t.curPos()})
			t.pos += size
		case r == ':':
			toks = append(toks, Token{Kind: Colon, Pos: t.curPos()})
			t.pos += size
		case r == '#':
			t.pos = len(t.line)
		case r == '/' && t.peekAt(t.pos+1) == '/':
			t.pos = len(t.line)
		case r == '/' && t.peekAt(t.pos+1) == '*':
			if err := t.skipBlockComment(); err != nil {
				return nil, err
			}
		case r == '-' && t.peekAt(t.pos+1) == '-':
			t.pos = len(t.line)
		case r == '\\' && t.restIsBlank(t.pos+1):
			line, ok := t.lr.NextCooked()
			if !ok {
				return nil, &ParseError{Msg: "trailing line continuation at end of source", Pos: t.curPos(), Err: ErrUnexpected}
			}
			t.line = line
			t.pos = 0
		case unicode.IsDigit(r) || r == '-' || r == '.':
			pos := t.curPos()
			text := t.scanNumberLike()
			tok, err := classifyNumberLike(pos, text)
			if err != nil {
				return nil, err
			}
			toks = append(toks, tok)
		case isIdentStart(r):
			pos := t.curPos()
			name := t.scanIdentifier()
			toks = append(toks, keywordOrIdentifier(pos, name))
		default:
			return nil, &ParseError{Msg: "unexpected character " + string(r), Pos: t.curPos(), Err: ErrIllegalChar}
		}
	}
	return toks, nil
}

func literalToken(pos Pos, v value.Value) Token {
	return Token{Kind: Literal, Pos: pos, Value: v}
}

func (t *Tokenizer) peekAt(i int) byte {
	if i < 0 || i >= len(t.line) {
		return 0
	}
	return t.line[i]
}

// restIsBlank reports whether line[i:] contains only spaces and tabs.
func (t *Tokenizer) restIsBlank(i int) bool {
	for _, c := range t.line[min(i, len(t.line)):] {
		if c != ' ' && c != '\t' {
			return false
		}
	}
	return true
}

func (t *Tokenizer) scanIdentifier() string {
	start := t.pos
	for t.pos < len(t.line) {
		r, size := utf8.DecodeRuneInString(t.line[t.pos:])
		if !isIdentPart(r) {
			break
		}
		t.pos += size
	}
	return t.line[start:t.pos]
}

// scanNumberLike accumulates the run of characters that could belong
// to a number, date, or time-span-with-zone literal: letters, digits,
// '.', '-', '+', ':', '/' (with '/' not starting a block comment).
func (t *Tokenizer) scanNumberLike() string {
	start := t.pos
	for t.pos < len(t.line) {
		c := t.line[t.pos]
		if c == '/' && t.peekAt(t.pos+1) == '*' {
			break
		}
		if c == '/' && t.peekAt(t.pos+1) == '/' {
			break
		}
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c == '.' || c == '-' || c == '+' || c == ':' || c == '/':
		default:
			goto done
		}
		t.pos++
	}
done:
	return t.line[start:t.pos]
}

func (t *Tokenizer) skipBlockComment() error {
	startPos := t.curPos()
	t.pos += 2 // consume "/*"
	for {
		if idx := strings.Index(t.line[t.pos:], "*/"); idx >= 0 {
			t.pos += idx + 2
			return nil
		}
		line, ok := t.lr.NextRaw()
		if !ok {
			return &ParseError{Msg: "block comment opened here is never closed", Pos: startPos, Err: ErrUnterminatedBlock}
		}
		t.line = line
		t.pos = 0
	}
}

func (t *Tokenizer) scanDoubleQuoted() (string, error) {
	startPos := t.curPos()
	t.pos++ // consume opening quote
	var body strings.Builder
	for {
		for t.pos < len(t.line) {
			c := t.line[t.pos]
			switch {
			case c == '"':
				t.pos++
				return body.String(), nil
			case c == '\\':
				rest := t.line[t.pos+1:]
				if isAllBlank(rest) {
					body.WriteByte('\\')
					body.WriteString(rest)
					body.WriteByte('\n')
					t.pos = len(t.line)
				} else {
					body.WriteByte('\\')
					if len(rest) > 0 {
						body.WriteByte(rest[0])
					}
					t.pos += 2
				}
			default:
				body.WriteByte(c)
				t.pos++
			}
		}
		line, ok := t.lr.NextRaw()
		if !ok {
			return "", &ParseError{Msg: "string opened here is never closed", Pos: startPos, Err: ErrUnterminatedString}
		}
		t.line = line
		t.pos = 0
	}
}

func (t *Tokenizer) scanBackQuoted() (string, error) {
	startPos := t.curPos()
	t.pos++ // consume opening back-quote
	var body strings.Builder
	for {
		if idx := strings.IndexByte(t.line[t.pos:], '`'); idx >= 0 {
			body.WriteString(t.line[t.pos : t.pos+idx])
			t.pos += idx + 1
			return body.String(), nil
		}
		body.WriteString(t.line[t.pos:])
		line, ok := t.lr.NextRaw()
		if !ok {
			return "", &ParseError{Msg: "back-quoted string opened here is never closed", Pos: startPos, Err: ErrUnterminatedRaw}
		}
		body.WriteByte('\n')
		t.line = line
		t.pos = 0
	}
}

func (t *Tokenizer) scanBinaryBody() (string, error) {
	startPos := t.curPos()
	t.pos++ // consume '['
	var body strings.Builder
	for {
		if idx := strings.IndexByte(t.line[t.pos:], ']'); idx >= 0 {
			body.WriteString(t.line[t.pos : t.pos+idx])
			t.pos += idx + 1
			return body.String(), nil
		}
		body.WriteString(t.line[t.pos:])
		line, ok := t.lr.NextRaw()
		if !ok {
			return "", &ParseError{Msg: "binary literal opened here is never closed", Pos: startPos, Err: ErrUnterminatedBinary}
		}
		body.WriteByte('\n')
		t.line = line
		t.pos = 0
	}
}

func (t *Tokenizer) scanCharBody() (string, error) {
	startPos := t.curPos()
	t.pos++ // consume opening quote
	start := t.pos
	for t.pos < len(t.line) {
		c := t.line[t.pos]
		if c == '\\' {
			t.pos += 2
			continue
		}
		if c == '\'' {
			body := t.line[start:t.pos]
			t.pos++
			return body, nil
		}
		t.pos++
	}
	return "", &ParseError{Msg: "character literal opened here is never closed", Pos: startPos, Err: ErrUnterminatedString}
}

func isAllBlank(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != ' ' && s[i] != '\t' {
			return false
		}
	}
	return true
}
