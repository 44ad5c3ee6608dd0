package parse

import (
	"io"

	"github.com/sdl-org/sdl-go/internal/sdllog"
	"github.com/sdl-org/sdl-go/tag"
	"github.com/sdl-org/sdl-go/token"
	"github.com/sdl-org/sdl-go/value"
)

// Document parses a full source into a forest of top-level tags. The
// line source is opened for the duration of the call and closed on
// every exit path.
func Document(r io.Reader, opts ...Option) ([]*tag.Tag, error) {
	ls := NewLineSource(r)
	defer ls.Close()
	tz := token.New(ls)
	a := NewAssembler(tz, opts...)
	tags, err := a.ParseDocument()
	if err != nil {
		sdllog.Logf("parse", "document parse failed: %v", err)
		return nil, err
	}
	sdllog.Logf("parse", "parsed %d top-level tag(s)", len(tags))
	return tags, nil
}

// Values parses text as the value list of an implicit anonymous tag
// and returns its values, in order.
func Values(text string) ([]value.Value, error) {
	toks, err := tokenizeLine(text)
	if err != nil {
		return nil, err
	}
	t := tag.NewContent()
	if _, err := consumeValues(t, toks, 0, ""); err != nil {
		return nil, err
	}
	return t.Values(), nil
}

// Attributes parses text as the attribute list of an implicit tag and
// returns a name-to-value mapping.
func Attributes(text string) (map[string]value.Value, error) {
	toks, err := tokenizeLine(text)
	if err != nil {
		return nil, err
	}
	t := tag.NewContent()
	if err := consumeAttrs(t, toks, 0, ""); err != nil {
		return nil, err
	}
	return t.AttrMap(), nil
}

// Literal parses text as a single value literal.
func Literal(text string) (value.Value, error) {
	toks, err := tokenizeLine(text)
	if err != nil {
		return nil, err
	}
	if len(toks) == 0 {
		return nil, &value.FormatError{Text: text, Reason: "empty literal"}
	}
	consumed := 1
	var v value.Value
	switch toks[0].Kind {
	case token.Literal:
		if toks[0].Value.Kind() == value.DateKind && len(toks) > 1 && toks[1].Kind == token.TimeOrSpan {
			dt, err := combineDateSpan(toks[0], toks[1], "")
			if err != nil {
				return nil, err
			}
			v, consumed = dt, 2
		} else {
			v = toks[0].Value
		}
	case token.TimeOrSpan:
		sv, err := spanToTimeSpan(toks[0])
		if err != nil {
			return nil, err
		}
		v = sv
	default:
		return nil, &value.FormatError{Text: text, Reason: "not a literal"}
	}
	if consumed < len(toks) {
		return nil, &value.FormatError{Text: text, Reason: "trailing content after literal"}
	}
	return v, nil
}

// tokenizeLine runs the tokenizer over a single logical line of text,
// used by the fragment-level entry points (Values, Attributes,
// Literal) that don't need a full document parse.
func tokenizeLine(text string) ([]token.Token, error) {
	ls := NewLineSourceString(text)
	tz := token.New(ls)
	toks, err := tz.NextTokenLine()
	if err != nil {
		return nil, err
	}
	return toks, nil
}
