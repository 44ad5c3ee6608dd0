package sdl

import (
	"io"

	"github.com/sdl-org/sdl-go/parse"
	"github.com/sdl-org/sdl-go/tag"
	"github.com/sdl-org/sdl-go/token"
	"github.com/sdl-org/sdl-go/value"
)

// Tag is the SDL tag record.
type Tag = tag.Tag

// Value is the closed set of SDL literal values.
type Value = value.Value

// Kind identifies which of the thirteen Value variants a Value carries.
type Kind = value.Kind

// ParseError reports a syntactic or lexical parse failure.
type ParseError = token.ParseError

// CoercionError reports a host value with no SDL variant.
type CoercionError = value.CoercionError

// FormatError reports a literal whose text could not be parsed.
type FormatError = value.FormatError

// ParseOption configures document parsing.
type ParseOption = parse.Option

// WithMaxDepth bounds block nesting depth during parsing.
func WithMaxDepth(n int) ParseOption { return parse.WithMaxDepth(n) }

// WithTimezone fixes the zone designator substituted into a DateTime
// combined from a Date and a bare time-of-day carrying none.
func WithTimezone(zone string) ParseOption { return parse.WithTimezone(zone) }

// ParseDocument parses a full source into the document's top-level
// tags.
func ParseDocument(r io.Reader, opts ...ParseOption) ([]*Tag, error) {
	return parse.Document(r, opts...)
}

// ParseValues parses text as the value list of an implicit anonymous
// tag.
func ParseValues(text string) ([]Value, error) {
	return parse.Values(text)
}

// ParseAttributes parses text as the attribute list of an implicit
// tag.
func ParseAttributes(text string) (map[string]Value, error) {
	return parse.Attributes(text)
}

// ParseLiteral parses text as a single value literal.
func ParseLiteral(text string) (Value, error) {
	return parse.Literal(text)
}

// Serialize renders a forest of top-level tags in canonical SDL form.
func Serialize(tags []*Tag) string {
	return tag.SerializeDocument(tags)
}

// NewTag constructs an unnamespaced tag.
func NewTag(name string) (*Tag, error) {
	return tag.New(name)
}

// NewNSTag constructs a namespaced tag.
func NewNSTag(namespace, name string) (*Tag, error) {
	return tag.NewNS(namespace, name)
}
