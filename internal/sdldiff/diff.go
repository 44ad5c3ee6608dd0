package sdldiff

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// LineDiff is one hunk of a line-level diff: a contiguous run of
// equal, inserted, or deleted lines.
type LineDiff struct {
	Op   string // "equal", "insert", "delete"
	Text string
}

// Lines diffs a and b line-by-line: lines are first collapsed to
// single runes via DiffLinesToChars so DiffMain operates at line
// granularity, then expanded back with DiffCharsToLines.
func Lines(a, b string) []LineDiff {
	dmp := diffmatchpatch.New()
	charsA, charsB, lineArray := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffMain(charsA, charsB, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	out := make([]LineDiff, len(diffs))
	for i, d := range diffs {
		out[i] = LineDiff{Op: opName(d.Type), Text: d.Text}
	}
	return out
}

func opName(t diffmatchpatch.Operation) string {
	switch t {
	case diffmatchpatch.DiffInsert:
		return "insert"
	case diffmatchpatch.DiffDelete:
		return "delete"
	default:
		return "equal"
	}
}

// Format renders diffs as a unified-style listing: "+ " for inserted
// lines, "- " for deleted, two spaces for unchanged.
func Format(diffs []LineDiff) string {
	var b strings.Builder
	for _, d := range diffs {
		prefix := "  "
		switch d.Op {
		case "insert":
			prefix = "+ "
		case "delete":
			prefix = "- "
		}
		text := strings.TrimSuffix(d.Text, "\n")
		if text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			b.WriteString(prefix)
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}
