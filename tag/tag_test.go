package tag

import (
	"testing"

	"github.com/sdl-org/sdl-go/value"
)

func TestNewValidatesIdentifier(t *testing.T) {
	if _, err := New("1bad"); err == nil {
		t.Error("New(\"1bad\"): expected error")
	}
	if _, err := New("good"); err != nil {
		t.Errorf("New(\"good\"): %v", err)
	}
}

func TestNewNSEmptyNamespaceAllowed(t *testing.T) {
	tg, err := NewNS("", "foo")
	if err != nil {
		t.Fatal(err)
	}
	if tg.Namespace() != "" {
		t.Errorf("Namespace() = %q, want empty", tg.Namespace())
	}
}

func TestContentTag(t *testing.T) {
	tg := NewContent()
	if !tg.IsContent() {
		t.Error("NewContent() should be IsContent")
	}
	if err := tg.AddValue(value.Str("foo")); err != nil {
		t.Fatal(err)
	}
}

func TestSerializeContentTagNoLeadingSpace(t *testing.T) {
	tg := NewContent()
	if err := tg.AddValue(value.Str("foo")); err != nil {
		t.Fatal(err)
	}
	if got, want := tg.Serialize(""), `"foo"`; got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeNamedTagWithValues(t *testing.T) {
	tg, err := New("foo")
	if err != nil {
		t.Fatal(err)
	}
	if err := tg.AddValue(value.Int32(1)); err != nil {
		t.Fatal(err)
	}
	if err := tg.AddValue(value.Str("bar")); err != nil {
		t.Fatal(err)
	}
	if got, want := tg.Serialize(""), `foo 1 "bar"`; got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeNamespacedTag(t *testing.T) {
	tg, err := NewNS("ns", "foo")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := tg.Serialize(""), "ns:foo"; got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeAttrsAscending(t *testing.T) {
	tg, err := New("foo")
	if err != nil {
		t.Fatal(err)
	}
	if err := tg.SetAttr("zeta", value.Int32(1)); err != nil {
		t.Fatal(err)
	}
	if err := tg.SetAttr("alpha", value.Int32(2)); err != nil {
		t.Fatal(err)
	}
	if got, want := tg.Serialize(""), "foo alpha=2 zeta=1"; got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSetAttrReplacesExisting(t *testing.T) {
	tg, err := New("foo")
	if err != nil {
		t.Fatal(err)
	}
	if err := tg.SetAttrNS("ns1", "a", value.Int32(1)); err != nil {
		t.Fatal(err)
	}
	if err := tg.SetAttrNS("ns2", "a", value.Int32(2)); err != nil {
		t.Fatal(err)
	}
	if len(tg.AttrNames()) != 1 {
		t.Fatalf("got %d attr names, want 1", len(tg.AttrNames()))
	}
	if tg.AttrNamespace("a") != "ns2" {
		t.Errorf("AttrNamespace(a) = %q, want ns2", tg.AttrNamespace("a"))
	}
}

func TestSerializeWithChildren(t *testing.T) {
	parent, err := New("parent")
	if err != nil {
		t.Fatal(err)
	}
	child, err := New("child")
	if err != nil {
		t.Fatal(err)
	}
	if err := child.AddValue(value.Str("x")); err != nil {
		t.Fatal(err)
	}
	parent.AddChild(child)
	want := "parent {\r\n    child \"x\"\r\n}"
	if got := parent.Serialize(""); got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestValuesAndChildrenAreCopies(t *testing.T) {
	tg, err := New("foo")
	if err != nil {
		t.Fatal(err)
	}
	if err := tg.AddValue(value.Int32(1)); err != nil {
		t.Fatal(err)
	}
	vs := tg.Values()
	vs[0] = nil
	if tg.Values()[0] == nil {
		t.Error("mutating the returned slice mutated the tag")
	}

	child, err := New("child")
	if err != nil {
		t.Fatal(err)
	}
	tg.AddChild(child)
	kids := tg.Children()
	kids[0] = nil
	if tg.Children()[0] == nil {
		t.Error("mutating the returned slice mutated the tag")
	}
}

func TestEqual(t *testing.T) {
	a, _ := New("foo")
	a.AddValue(value.Int32(1))
	b, _ := New("foo")
	b.AddValue(value.Int32(1))
	if !a.Equal(b) {
		t.Error("a should equal b")
	}
	c, _ := New("foo")
	c.AddValue(value.Int32(2))
	if a.Equal(c) {
		t.Error("a should not equal c")
	}
}

func TestSerializeDocument(t *testing.T) {
	a, _ := New("a")
	b, _ := New("b")
	want := "a\r\nb\r\n"
	if got := SerializeDocument([]*Tag{a, b}); got != want {
		t.Errorf("SerializeDocument() = %q, want %q", got, want)
	}
}
