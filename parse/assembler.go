package parse

import (
	"github.com/sdl-org/sdl-go/tag"
	"github.com/sdl-org/sdl-go/token"
	"github.com/sdl-org/sdl-go/value"
)

// Assembler consumes the token-lines a token.Tokenizer produces and
// builds the tag tree.
type Assembler struct {
	tz       *token.Tokenizer
	maxDepth int
	zone     string
}

// NewAssembler returns an Assembler reading token-lines from tz.
func NewAssembler(tz *token.Tokenizer, opts ...Option) *Assembler {
	a := &Assembler{tz: tz}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ParseDocument consumes tz to exhaustion and returns the document's
// top-level tags.
func (a *Assembler) ParseDocument() ([]*tag.Tag, error) {
	return a.parseChildren(nil, 0)
}

// parseChildren collects sibling tags until either end of source (only
// valid when openPos is nil, meaning we are not inside a block) or a
// balancing EndBlock line (only valid when openPos is non-nil).
func (a *Assembler) parseChildren(openPos *token.Pos, depth int) ([]*tag.Tag, error) {
	if a.maxDepth > 0 && depth > a.maxDepth {
		return nil, token.Errorf(token.ErrUnexpected, *openPos, "block nesting exceeds maximum depth %d", a.maxDepth)
	}
	var children []*tag.Tag
	for {
		toks, err := a.tz.NextTokenLine()
		if err != nil {
			return nil, err
		}
		if toks == nil {
			if openPos != nil {
				return nil, token.Errorf(token.ErrMissingEndBlock, *openPos, "block opened here is never closed")
			}
			return children, nil
		}
		if toks[0].Kind == token.EndBlock {
			if openPos == nil {
				return nil, token.Errorf(token.ErrStrayEndBlock, toks[0].Pos, "no opening block for close block")
			}
			return children, nil
		}
		last := toks[len(toks)-1]
		if last.Kind == token.StartBlock {
			t, err := a.buildTag(toks[:len(toks)-1])
			if err != nil {
				return nil, err
			}
			kids, err := a.parseChildren(&last.Pos, depth+1)
			if err != nil {
				return nil, err
			}
			for _, k := range kids {
				t.AddChild(k)
			}
			children = append(children, t)
			continue
		}
		t, err := a.buildTag(toks)
		if err != nil {
			return nil, err
		}
		children = append(children, t)
	}
}

// buildTag builds a tag from one token-line (with any trailing
// StartBlock already stripped).
func (a *Assembler) buildTag(toks []token.Token) (*tag.Tag, error) {
	idx := 0
	var t *tag.Tag

	if toks[idx].Kind == token.Identifier {
		if idx+1 < len(toks) && toks[idx+1].Kind == token.Colon {
			if idx+2 >= len(toks) || toks[idx+2].Kind != token.Identifier {
				return nil, token.Errorf(token.ErrUnexpected, toks[idx+1].Pos, "expecting identifier after ':'")
			}
			nt, err := tag.NewNS(toks[idx].Text, toks[idx+2].Text)
			if err != nil {
				return nil, token.Errorf(token.ErrBadIdentifier, toks[idx].Pos, "%s", err)
			}
			t = nt
			idx += 3
		} else {
			nt, err := tag.New(toks[idx].Text)
			if err != nil {
				return nil, token.Errorf(token.ErrBadIdentifier, toks[idx].Pos, "%s", err)
			}
			t = nt
			idx++
		}
	} else {
		t = tag.NewContent()
	}

	idx, err := consumeValues(t, toks, idx, a.zone)
	if err != nil {
		return nil, err
	}
	if err := consumeAttrs(t, toks, idx, a.zone); err != nil {
		return nil, err
	}
	return t, nil
}

// consumeValues consumes the leading value tokens of a token-line,
// returning the index of the first token that begins the attribute
// phase. defaultZone is substituted into any Date+TimeOrSpan
// combination whose span carries no explicit zone (see WithTimezone).
func consumeValues(t *tag.Tag, toks []token.Token, idx int, defaultZone string) (int, error) {
	for idx < len(toks) {
		tok := toks[idx]
		switch tok.Kind {
		case token.Literal:
			if tok.Value.Kind() == value.DateKind && idx+1 < len(toks) && toks[idx+1].Kind == token.TimeOrSpan {
				dt, err := combineDateSpan(tok, toks[idx+1], defaultZone)
				if err != nil {
					return 0, err
				}
				_ = t.AddValue(dt)
				idx += 2
				continue
			}
			_ = t.AddValue(tok.Value)
			idx++
		case token.TimeOrSpan:
			sv, err := spanToTimeSpan(tok)
			if err != nil {
				return 0, err
			}
			_ = t.AddValue(sv)
			idx++
		case token.Identifier:
			return idx, nil
		default:
			return 0, token.Errorf(token.ErrUnexpected, tok.Pos, "expecting a value but got %s", tok.Kind)
		}
	}
	return idx, nil
}

// consumeAttrs consumes the trailing name=value attribute tokens of a
// token-line. defaultZone is substituted into any Date+TimeOrSpan
// combination whose span carries no explicit zone (see WithTimezone).
func consumeAttrs(t *tag.Tag, toks []token.Token, idx int, defaultZone string) error {
	for idx < len(toks) {
		if toks[idx].Kind != token.Identifier {
			return token.Errorf(token.ErrUnexpected, toks[idx].Pos, "expecting an attribute name but got %s", toks[idx].Kind)
		}
		namePos := toks[idx].Pos
		namespace := ""
		name := toks[idx].Text
		idx++
		if idx < len(toks) && toks[idx].Kind == token.Colon {
			idx++
			if idx >= len(toks) || toks[idx].Kind != token.Identifier {
				return token.Errorf(token.ErrUnexpected, namePos, "expecting identifier after ':'")
			}
			namespace = name
			name = toks[idx].Text
			idx++
		}
		if idx >= len(toks) || toks[idx].Kind != token.Equals {
			return token.Errorf(token.ErrUnexpected, namePos, "expecting '=' after attribute name")
		}
		idx++
		if idx >= len(toks) {
			return token.Errorf(token.ErrUnexpected, namePos, "expecting a value after '='")
		}
		valTok := toks[idx]
		var v value.Value
		switch valTok.Kind {
		case token.Literal:
			if valTok.Value.Kind() == value.DateKind && idx+1 < len(toks) && toks[idx+1].Kind == token.TimeOrSpan {
				dt, err := combineDateSpan(valTok, toks[idx+1], defaultZone)
				if err != nil {
					return err
				}
				v = dt
				idx += 2
			} else {
				v = valTok.Value
				idx++
			}
		case token.TimeOrSpan:
			sv, err := spanToTimeSpan(valTok)
			if err != nil {
				return err
			}
			v = sv
			idx++
		default:
			return token.Errorf(token.ErrUnexpected, valTok.Pos, "expecting a value but got %s", valTok.Kind)
		}
		if err := t.SetAttrNS(namespace, name, v); err != nil {
			return token.Errorf(token.ErrBadIdentifier, namePos, "%s", err)
		}
	}
	return nil
}

// spanToTimeSpan resolves a stand-alone TimeOrSpan token to a TimeSpan
// value.
func spanToTimeSpan(tok token.Token) (value.Value, error) {
	s := tok.Span
	if s.Zone != "" {
		return nil, token.Errorf(token.ErrTimeSpanTimezone, tok.Pos, "TimeSpan cannot have a timezone")
	}
	days := 0
	if s.HasDays {
		days = s.Days
	}
	return value.TimeSpan(s.Negative, days, s.Hours, s.Minutes, s.Seconds, s.Millisec), nil
}

// combineDateSpan resolves a Date token immediately followed by a
// TimeOrSpan token into a DateTime value. defaultZone fills in the
// zone designator when the span
// carries none (see WithTimezone); an empty defaultZone preserves the
// prior behavior of leaving the zone for Value.Format to resolve
// against the process-local GMT offset.
func combineDateSpan(dateTok, spanTok token.Token, defaultZone string) (value.Value, error) {
	year, month, day, _ := value.DateOf(dateTok.Value)
	s := spanTok.Span
	if s.HasDays {
		return nil, token.Errorf(token.ErrDateTimeHasDays, spanTok.Pos, "DateTime time portion cannot have a day component")
	}
	zone := s.Zone
	if zone == "" {
		zone = defaultZone
	}
	return value.DateTime(year, month, day, s.Hours, s.Minutes, s.Seconds, s.Millisec, zone), nil
}
