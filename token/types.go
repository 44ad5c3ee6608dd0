package token

import "github.com/sdl-org/sdl-go/value"

// Kind identifies a token's syntactic role.
type Kind int

const (
	Identifier Kind = iota
	Literal         // String, Char, Number, Bool, Null, Binary, Date already resolved to a value.Value
	TimeOrSpan      // unresolved time-span-with-zone; see SpanOrZone
	Colon
	Equals
	StartBlock
	EndBlock
)

func (k Kind) String() string {
	switch k {
	case Identifier:
		return "Identifier"
	case Literal:
		return "Literal"
	case TimeOrSpan:
		return "TimeOrSpan"
	case Colon:
		return "Colon"
	case Equals:
		return "Equals"
	case StartBlock:
		return "StartBlock"
	case EndBlock:
		return "EndBlock"
	default:
		return "Unknown"
	}
}

// SpanOrZone is the intermediate "time-span-with-zone" representation:
// the tokenizer cannot locally decide whether this token is a bare
// TimeSpan or the time portion of a DateTime, so it defers the
// decision to the assembler. It never leaks into the public
// value.Value type.
type SpanOrZone struct {
	Negative                                bool
	HasDays                                 bool // a day component was present in the literal
	Days, Hours, Minutes, Seconds, Millisec int
	Zone                                    string // "" if no timezone suffix was present
}

// Token is one lexical unit of a token-line.
type Token struct {
	Kind Kind
	Pos  Pos

	// Text holds the raw identifier spelling when Kind == Identifier.
	Text string

	// Value holds the resolved literal when Kind == Literal.
	Value value.Value

	// Span holds the unresolved time-span-with-zone when Kind == TimeOrSpan.
	Span *SpanOrZone
}

// LineReader is the subset of parse.LineSource the tokenizer needs: a
// cursor over physical lines in cooked (blank/comment-skipping) or raw
// (every line) mode, sharing one 1-based line counter.
type LineReader interface {
	NextCooked() (line string, ok bool)
	NextRaw() (line string, ok bool)
	LineNo() int
}
