package encode

import (
	"strings"

	"github.com/sdl-org/sdl-go/tag"
	"github.com/sdl-org/sdl-go/value"
)

// ToColorText renders tags as a colorized SDL document for terminal
// display, using the same layout as tag.SerializeDocument (spec
// §4.5) with each syntactic role passed through colors.
func ToColorText(tags []*tag.Tag, colors *Colors) string {
	var b strings.Builder
	for _, t := range tags {
		writeColorTag(&b, t, "", colors)
		b.WriteString("\r\n")
	}
	return b.String()
}

func writeColorTag(b *strings.Builder, t *tag.Tag, prefix string, c *Colors) {
	b.WriteString(prefix)
	wrote := false
	if !t.IsContent() {
		if t.Namespace() != "" {
			b.WriteString(c.Color(NamespaceColor, value.NullKind, t.Namespace()))
			b.WriteString(c.Color(PunctColor, value.NullKind, ":"))
		}
		b.WriteString(c.Color(TagColor, value.NullKind, t.Name()))
		wrote = true
	}
	for _, v := range t.Values() {
		if wrote {
			b.WriteByte(' ')
		}
		b.WriteString(c.Color(ValueColor, v.Kind(), v.Format()))
		wrote = true
	}
	for _, name := range t.AttrNames() {
		v, _ := t.Attr(name)
		if wrote {
			b.WriteByte(' ')
		}
		if ns := t.AttrNamespace(name); ns != "" {
			b.WriteString(c.Color(NamespaceColor, value.NullKind, ns))
			b.WriteString(c.Color(PunctColor, value.NullKind, ":"))
		}
		b.WriteString(c.Color(AttrNameColor, value.NullKind, name))
		b.WriteString(c.Color(PunctColor, value.NullKind, "="))
		b.WriteString(c.Color(ValueColor, v.Kind(), v.Format()))
		wrote = true
	}
	children := t.Children()
	if len(children) > 0 {
		b.WriteString(c.Color(PunctColor, value.NullKind, " {"))
		b.WriteString("\r\n")
		childPrefix := prefix + "    "
		for _, ch := range children {
			writeColorTag(b, ch, childPrefix, c)
			b.WriteString("\r\n")
		}
		b.WriteString(prefix)
		b.WriteString(c.Color(PunctColor, value.NullKind, "}"))
	}
}
