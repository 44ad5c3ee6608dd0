package sdl

import (
	"strings"
	"testing"

	"github.com/sdl-org/sdl-go/value"
)

func TestParseDocumentAndSerializeRoundTrip(t *testing.T) {
	src := "person \"Alice\" age=30 {\n    pet \"Rex\"\n}\n"
	tags, err := ParseDocument(strings.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}
	if len(tags) != 1 || tags[0].Name() != "person" {
		t.Fatalf("got %+v", tags)
	}
	out := Serialize(tags)
	tags2, err := ParseDocument(strings.NewReader(out))
	if err != nil {
		t.Fatalf("re-parsing serialized output: %v", err)
	}
	if !tags[0].Equal(tags2[0]) {
		t.Errorf("round trip changed the tag: %q vs %q", tags[0].Serialize(""), tags2[0].Serialize(""))
	}
}

func TestParseLiteral(t *testing.T) {
	v, err := ParseLiteral("42")
	if err != nil {
		t.Fatal(err)
	}
	if v.Kind() != value.Int32Kind {
		t.Errorf("got kind %s", v.Kind())
	}
}

func TestNewTagValidatesName(t *testing.T) {
	if _, err := NewTag("1bad"); err == nil {
		t.Error("NewTag(\"1bad\"): expected error")
	}
}

func TestWithMaxDepthRejectsDeepNesting(t *testing.T) {
	_, err := ParseDocument(strings.NewReader("a {\n  b {\n    c 1\n  }\n}\n"), WithMaxDepth(1))
	if err == nil {
		t.Error("expected an error from exceeding max depth")
	}
}
