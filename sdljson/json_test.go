package sdljson

import (
	"encoding/json"
	"testing"

	"github.com/sdl-org/sdl-go/tag"
	"github.com/sdl-org/sdl-go/value"
)

func TestToJSONPreservesLiteralText(t *testing.T) {
	tg, err := tag.New("foo")
	if err != nil {
		t.Fatal(err)
	}
	if err := tg.AddValue(value.Int64(42)); err != nil {
		t.Fatal(err)
	}
	if err := tg.SetAttr("a", value.Str("x")); err != nil {
		t.Fatal(err)
	}
	out, err := ToJSON([]*tag.Tag{tg})
	if err != nil {
		t.Fatal(err)
	}
	var got []jsonTag
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name != "foo" {
		t.Fatalf("got %+v", got)
	}
	if len(got[0].Values) != 1 || got[0].Values[0] != "42L" {
		t.Errorf("Values = %v, want [42L]", got[0].Values)
	}
	if got[0].Attrs["a"] != `"x"` {
		t.Errorf("Attrs[a] = %q, want %q", got[0].Attrs["a"], `"x"`)
	}
}

func TestToJSONChildren(t *testing.T) {
	parent, err := tag.New("parent")
	if err != nil {
		t.Fatal(err)
	}
	child, err := tag.New("child")
	if err != nil {
		t.Fatal(err)
	}
	parent.AddChild(child)
	out, err := ToJSON([]*tag.Tag{parent})
	if err != nil {
		t.Fatal(err)
	}
	var got []jsonTag
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if len(got[0].Children) != 1 || got[0].Children[0].Name != "child" {
		t.Fatalf("got %+v", got)
	}
}

func TestApplyPatch(t *testing.T) {
	tg, err := tag.New("foo")
	if err != nil {
		t.Fatal(err)
	}
	if err := tg.SetAttr("a", value.Str("x")); err != nil {
		t.Fatal(err)
	}
	patch := []byte(`[{"op": "replace", "path": "/0/attrs/a", "value": "\"y\""}]`)
	out, err := ApplyPatch([]*tag.Tag{tg}, patch)
	if err != nil {
		t.Fatal(err)
	}
	var got []jsonTag
	if err := json.Unmarshal(out, &got); err != nil {
		t.Fatal(err)
	}
	if got[0].Attrs["a"] != `"y"` {
		t.Errorf("Attrs[a] = %q, want %q", got[0].Attrs["a"], `"y"`)
	}
}

func TestApplyPatchBadPatch(t *testing.T) {
	tg, err := tag.New("foo")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ApplyPatch([]*tag.Tag{tg}, []byte("not json")); err == nil {
		t.Error("ApplyPatch: expected error on malformed patch")
	}
}
