package encode

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/sdl-org/sdl-go/value"
)

// ColorAttr identifies a syntactic role within a serialized tag line:
// its name, an attribute key, punctuation, or a value of some Kind.
type ColorAttr int

const (
	TagColor ColorAttr = iota
	NamespaceColor
	AttrNameColor
	PunctColor
	ValueColor
)

// colorable pairs a syntactic role with, for ValueColor, the specific
// value.Kind being rendered.
type colorable struct {
	Attr ColorAttr
	Kind value.Kind
}

// Colors is a palette of terminal color functions keyed by syntactic
// role.
type Colors struct {
	Default func(string, ...any) string
	Map     map[colorable]func(string, ...any) string
}

// NewColors builds the default SDL palette: one color per punctuation
// role and one per value.Kind.
func NewColors() *Colors {
	c := &Colors{
		Default: colorPassthrough,
		Map:     map[colorable]func(string, ...any) string{},
	}
	c.Map[colorable{Attr: TagColor}] = color.RGB(74, 92, 138).SprintfFunc()
	c.Map[colorable{Attr: NamespaceColor}] = color.RGB(196, 128, 128).SprintfFunc()
	c.Map[colorable{Attr: AttrNameColor}] = color.RGB(196, 96, 16).SprintfFunc()
	c.Map[colorable{Attr: PunctColor}] = color.RGB(255, 0, 196).SprintfFunc()

	for _, kind := range value.Kinds() {
		var f func(string, ...any) string
		switch kind {
		case value.NullKind:
			f = color.RGB(168, 0, 196).SprintfFunc()
		case value.BoolKind:
			f = color.CyanString
		case value.StrKind, value.CharKind:
			f = color.RGB(8, 196, 16).SprintfFunc()
		case value.Int32Kind, value.Int64Kind, value.Float32Kind, value.Float64Kind, value.DecimalKind:
			f = color.RGB(128, 216, 236).SprintfFunc()
		case value.BinaryKind:
			f = color.RGB(96, 96, 96).SprintfFunc()
		case value.DateKind, value.DateTimeKind, value.TimeSpanKind:
			f = color.RGB(198, 198, 46).SprintfFunc()
		default:
			f = colorPassthrough
		}
		c.Map[colorable{Attr: ValueColor, Kind: kind}] = f
	}
	return c
}

func colorPassthrough(format string, a ...any) string { return fmt.Sprintf(format, a...) }

// Color renders s in the color assigned to attr (and kind, when
// attr == ValueColor).
func (c *Colors) Color(attr ColorAttr, kind value.Kind, s string) string {
	f := c.Map[colorable{Attr: attr, Kind: kind}]
	if f == nil {
		f = c.Default
	}
	return f("%s", s)
}

// SupportsColor reports whether w is a terminal capable of ANSI color,
// the gate the CLI uses before requesting colorized output.
func SupportsColor(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
