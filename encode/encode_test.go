package encode

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sdl-org/sdl-go/tag"
	"github.com/sdl-org/sdl-go/value"
)

func mustTag(t *testing.T, name string) *tag.Tag {
	t.Helper()
	tg, err := tag.New(name)
	if err != nil {
		t.Fatal(err)
	}
	return tg
}

func TestToColorTextPlainMatchesSerializeWhenPassthrough(t *testing.T) {
	tg := mustTag(t, "foo")
	if err := tg.AddValue(value.Int32(1)); err != nil {
		t.Fatal(err)
	}
	colors := &Colors{Default: colorPassthrough, Map: map[colorable]func(string, ...any) string{}}
	got := ToColorText([]*tag.Tag{tg}, colors)
	want := tg.Serialize("") + "\r\n"
	if got != want {
		t.Errorf("ToColorText() = %q, want %q", got, want)
	}
}

func TestToColorTextContentTagNoLeadingSpace(t *testing.T) {
	tg := tag.NewContent()
	if err := tg.AddValue(value.Str("foo")); err != nil {
		t.Fatal(err)
	}
	colors := &Colors{Default: colorPassthrough, Map: map[colorable]func(string, ...any) string{}}
	got := ToColorText([]*tag.Tag{tg}, colors)
	want := `"foo"` + "\r\n"
	if got != want {
		t.Errorf("ToColorText() = %q, want %q", got, want)
	}
}

func TestSupportsColorNonFile(t *testing.T) {
	var buf bytes.Buffer
	if SupportsColor(&buf) {
		t.Error("SupportsColor(bytes.Buffer) should be false")
	}
}

func TestRenderFallsBackToPlainText(t *testing.T) {
	tg := mustTag(t, "foo")
	var buf bytes.Buffer
	if err := Render(&buf, []*tag.Tag{tg}); err != nil {
		t.Fatal(err)
	}
	if got, want := buf.String(), "foo\r\n"; got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRenderMaxDepthRejectsDeepNesting(t *testing.T) {
	outer := mustTag(t, "outer")
	inner := mustTag(t, "inner")
	outer.AddChild(inner)
	var buf bytes.Buffer
	if err := Render(&buf, []*tag.Tag{outer}, WithMaxDepth(1)); err == nil {
		t.Error("Render: expected error from exceeding max depth")
	}
}

func TestRenderMaxDepthAllowsShallowTree(t *testing.T) {
	tg := mustTag(t, "foo")
	var buf bytes.Buffer
	if err := Render(&buf, []*tag.Tag{tg}, WithMaxDepth(1)); err != nil {
		t.Fatalf("Render: unexpected error: %v", err)
	}
}

func TestRenderForceColorProducesEscapes(t *testing.T) {
	tg := mustTag(t, "foo")
	if err := tg.AddValue(value.Int32(1)); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := Render(&buf, []*tag.Tag{tg}, WithForceColor()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "foo") {
		t.Errorf("Render() = %q, missing tag name", buf.String())
	}
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Render() = %q, want ANSI escapes with WithForceColor", buf.String())
	}
}

func TestNewColorsCoversAllKinds(t *testing.T) {
	c := NewColors()
	for _, k := range value.Kinds() {
		if _, ok := c.Map[colorable{Attr: ValueColor, Kind: k}]; !ok {
			t.Errorf("NewColors() missing entry for kind %s", k)
		}
	}
}

func TestToYAMLRoundTripsLiteralText(t *testing.T) {
	tg := mustTag(t, "foo")
	if err := tg.AddValue(value.Int64(42)); err != nil {
		t.Fatal(err)
	}
	if err := tg.SetAttr("a", value.Str("x")); err != nil {
		t.Fatal(err)
	}
	out, err := ToYAML([]*tag.Tag{tg})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "42L") {
		t.Errorf("ToYAML() = %q, want it to preserve the Int64 L suffix", out)
	}
	if !strings.Contains(out, `foo`) {
		t.Errorf("ToYAML() = %q, missing tag name", out)
	}
}
