package sdlquery

import (
	"testing"

	"github.com/sdl-org/sdl-go/tag"
	"github.com/sdl-org/sdl-go/value"
)

// buildTree returns two top-level tags, "root" and "child" (siblings,
// not nested), plus a grandchild nested under "child" that Select must
// never see: queries run against a document's top-level tags only.
func buildTree(t *testing.T) []*tag.Tag {
	t.Helper()
	root, err := tag.New("root")
	if err != nil {
		t.Fatal(err)
	}
	if err := root.SetAttr("env", value.Str("prod")); err != nil {
		t.Fatal(err)
	}
	child, err := tag.New("child")
	if err != nil {
		t.Fatal(err)
	}
	if err := child.SetAttr("env", value.Str("dev")); err != nil {
		t.Fatal(err)
	}
	if err := child.AddValue(value.Int32(3)); err != nil {
		t.Fatal(err)
	}
	grandchild, err := tag.New("grandchild")
	if err != nil {
		t.Fatal(err)
	}
	child.AddChild(grandchild)
	return []*tag.Tag{root, child}
}

func TestSelectByName(t *testing.T) {
	tags := buildTree(t)
	got, err := Select(tags, `Name == "child"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name() != "child" {
		t.Fatalf("got %+v", got)
	}
}

func TestSelectByAttr(t *testing.T) {
	tags := buildTree(t)
	got, err := Select(tags, `Attrs["env"] == "prod"`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name() != "root" {
		t.Fatalf("got %+v", got)
	}
}

func TestSelectOnlyTopLevel(t *testing.T) {
	tags := buildTree(t)
	got, err := Select(tags, `true`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d matches, want 2 (root and child, not grandchild)", len(got))
	}
	for _, name := range []string{"root", "child"} {
		found := false
		for _, m := range got {
			if m.Name() == name {
				found = true
			}
		}
		if !found {
			t.Errorf("missing top-level match %q", name)
		}
	}
}

func TestSelectByValue(t *testing.T) {
	tags := buildTree(t)
	got, err := Select(tags, `len(Values) > 0 && Values[0] == 3`)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Name() != "child" {
		t.Fatalf("got %+v", got)
	}
}

func TestCompileErrorOnBadExpression(t *testing.T) {
	if _, err := Compile("this is not valid expr syntax +++"); err == nil {
		t.Error("Compile: expected error on invalid expression")
	}
}

func TestMatchesNonBoolError(t *testing.T) {
	program, err := Compile("Name")
	if err != nil {
		t.Fatal(err)
	}
	root, err := tag.New("foo")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Matches(program, root); err == nil {
		t.Error("Matches: expected error for non-bool result")
	}
}
