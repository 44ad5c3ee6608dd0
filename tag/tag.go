package tag

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/sdl-org/sdl-go/token"
	"github.com/sdl-org/sdl-go/value"
)

// ErrInvalidIdentifier is the sentinel wrapped by every identifier
// validation failure raised by a Tag mutator.
var ErrInvalidIdentifier = errors.New("tag: invalid identifier")

// IdentifierError reports that a mutator was asked to install a name
// or namespace that fails the identifier grammar. The tag is left
// unchanged.
type IdentifierError struct {
	Text string
}

func (e *IdentifierError) Error() string {
	return fmt.Sprintf("%s: %q", ErrInvalidIdentifier, e.Text)
}

func (e *IdentifierError) Unwrap() error { return ErrInvalidIdentifier }

// contentName is the sentinel name of the anonymous, values-only tag.
const contentName = "content"

type attribute struct {
	namespace string
	value     value.Value
}

// Tag is the SDL tag record: a namespaced name, an ordered list of
// values, an unordered set of namespaced attributes, and an ordered
// list of children.
type Tag struct {
	namespace string
	name      string
	values    []value.Value
	attrs     map[string]attribute
	children  []*Tag
}

// New constructs an unnamespaced tag named name.
func New(name string) (*Tag, error) {
	return NewNS("", name)
}

// NewNS constructs a tag with the given namespace and name. Either may
// fail identifier validation; namespace may be empty.
func NewNS(namespace, name string) (*Tag, error) {
	t := &Tag{}
	if err := t.SetNamespace(namespace); err != nil {
		return nil, err
	}
	if err := t.SetName(name); err != nil {
		return nil, err
	}
	return t, nil
}

// NewContent builds the anonymous content tag the assembler installs
// for value-only lines.
func NewContent() *Tag {
	return &Tag{name: contentName}
}

// Namespace returns the tag's namespace, or "" if unnamespaced.
func (t *Tag) Namespace() string { return t.namespace }

// Name returns the tag's name.
func (t *Tag) Name() string { return t.name }

// SetNamespace validates and installs namespace. An empty string is
// always accepted.
func (t *Tag) SetNamespace(namespace string) error {
	if namespace != "" && !token.ValidIdentifier(namespace) {
		return &IdentifierError{Text: namespace}
	}
	t.namespace = namespace
	return nil
}

// SetName validates and installs name.
func (t *Tag) SetName(name string) error {
	if !token.ValidIdentifier(name) {
		return &IdentifierError{Text: name}
	}
	t.name = name
	return nil
}

// IsContent reports whether t is the anonymous values-only tag.
func (t *Tag) IsContent() bool {
	return t.namespace == "" && t.name == contentName
}

// AddValue coerces v and appends it to the value list.
func (t *Tag) AddValue(v any) error {
	sv, err := value.CoerceOrFail(v)
	if err != nil {
		return err
	}
	t.values = append(t.values, sv)
	return nil
}

// Values returns a copy of the tag's value list, so callers can't
// mutate the tag through the returned slice.
func (t *Tag) Values() []value.Value {
	cp := make([]value.Value, len(t.values))
	copy(cp, t.values)
	return cp
}

// SetAttr installs an unnamespaced attribute, coercing v. Setting an
// existing name replaces its value and namespace.
func (t *Tag) SetAttr(name string, v any) error {
	return t.SetAttrNS("", name, v)
}

// SetAttrNS installs a namespaced attribute.
func (t *Tag) SetAttrNS(namespace, name string, v any) error {
	if !token.ValidIdentifier(name) {
		return &IdentifierError{Text: name}
	}
	if namespace != "" && !token.ValidIdentifier(namespace) {
		return &IdentifierError{Text: namespace}
	}
	sv, err := value.CoerceOrFail(v)
	if err != nil {
		return err
	}
	if t.attrs == nil {
		t.attrs = make(map[string]attribute)
	}
	t.attrs[name] = attribute{namespace: namespace, value: sv}
	return nil
}

// Attr looks up an attribute by name, ignoring namespace.
func (t *Tag) Attr(name string) (value.Value, bool) {
	a, ok := t.attrs[name]
	if !ok {
		return nil, false
	}
	return a.value, true
}

// AttrNamespace returns the namespace under which name was set, or ""
// if the attribute doesn't exist or is unnamespaced.
func (t *Tag) AttrNamespace(name string) string {
	return t.attrs[name].namespace
}

// AttrNames returns the tag's attribute names in ascending order,
// matching serialization order.
func (t *Tag) AttrNames() []string {
	names := make([]string, 0, len(t.attrs))
	for n := range t.attrs {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// AttrMap returns a copy of the tag's attributes as a plain name-to-
// value mapping, discarding namespace information.
func (t *Tag) AttrMap() map[string]value.Value {
	m := make(map[string]value.Value, len(t.attrs))
	for name, a := range t.attrs {
		m[name] = a.value
	}
	return m
}

// AddChild appends child to the tag's children.
func (t *Tag) AddChild(child *Tag) {
	t.children = append(t.children, child)
}

// Children returns a copy of the tag's child list, so callers can't
// mutate the tag through the returned slice.
func (t *Tag) Children() []*Tag {
	cp := make([]*Tag, len(t.children))
	copy(cp, t.children)
	return cp
}

// Equal reports whether t and other serialize identically.
func (t *Tag) Equal(other *Tag) bool {
	if t == nil || other == nil {
		return t == other
	}
	return t.Serialize("") == other.Serialize("")
}

// Serialize renders t in canonical SDL form, with each of its own
// and its descendants' lines prefixed by prefix (the caller
// supplies "" for a standalone tag; the assembler-produced document
// serializer supplies successive four-space indents for nesting).
func (t *Tag) Serialize(prefix string) string {
	var b strings.Builder
	t.serialize(prefix, &b)
	return b.String()
}

func (t *Tag) serialize(prefix string, b *strings.Builder) {
	b.WriteString(prefix)
	suppressed := t.IsContent()
	wrote := false
	if !suppressed {
		if t.namespace != "" {
			b.WriteString(t.namespace)
			b.WriteByte(':')
		}
		b.WriteString(t.name)
		wrote = true
	}
	for _, v := range t.values {
		if wrote {
			b.WriteByte(' ')
		}
		b.WriteString(v.Format())
		wrote = true
	}
	for _, name := range t.AttrNames() {
		a := t.attrs[name]
		if wrote {
			b.WriteByte(' ')
		}
		if a.namespace != "" {
			b.WriteString(a.namespace)
			b.WriteByte(':')
		}
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(a.value.Format())
		wrote = true
	}
	if len(t.children) > 0 {
		b.WriteString(" {\r\n")
		childPrefix := prefix + "    "
		for _, c := range t.children {
			c.serialize(childPrefix, b)
			b.WriteString("\r\n")
		}
		b.WriteString(prefix)
		b.WriteByte('}')
	}
}

// SerializeDocument renders a top-level forest of tags as a complete
// document: each tag terminated by CR-LF, at zero indent.
func SerializeDocument(tags []*Tag) string {
	var b strings.Builder
	for _, t := range tags {
		t.serialize("", &b)
		b.WriteString("\r\n")
	}
	return b.String()
}
