package sdldiff

import (
	"strings"
	"testing"
)

func TestLinesEqualInput(t *testing.T) {
	a := "foo\nbar\n"
	diffs := Lines(a, a)
	for _, d := range diffs {
		if d.Op != "equal" {
			t.Errorf("got op %q on identical input, want equal", d.Op)
		}
	}
}

func TestLinesDetectsInsertAndDelete(t *testing.T) {
	a := "foo\nbar\nbaz\n"
	b := "foo\nqux\nbaz\n"
	diffs := Lines(a, b)
	var hasInsert, hasDelete bool
	for _, d := range diffs {
		if d.Op == "insert" && strings.Contains(d.Text, "qux") {
			hasInsert = true
		}
		if d.Op == "delete" && strings.Contains(d.Text, "bar") {
			hasDelete = true
		}
	}
	if !hasInsert || !hasDelete {
		t.Errorf("diffs = %+v, want an insert of qux and a delete of bar", diffs)
	}
}

func TestFormat(t *testing.T) {
	diffs := []LineDiff{
		{Op: "equal", Text: "foo\n"},
		{Op: "delete", Text: "bar\n"},
		{Op: "insert", Text: "baz\n"},
	}
	got := Format(diffs)
	want := "  foo\n- bar\n+ baz\n"
	if got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestFormatSkipsEmptyHunks(t *testing.T) {
	diffs := []LineDiff{{Op: "equal", Text: ""}}
	if got := Format(diffs); got != "" {
		t.Errorf("Format() = %q, want empty", got)
	}
}
