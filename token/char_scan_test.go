package token

import (
	"testing"

	"github.com/sdl-org/sdl-go/value"
)

func TestScanChar(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"x", 'x'},
		{`\n`, '\n'},
		{`\t`, '\t'},
		{`\\`, '\\'},
		{`\'`, '\''},
		{"∞", '∞'},
	}
	for _, tt := range tests {
		v, err := ScanChar(tt.in)
		if err != nil {
			t.Errorf("ScanChar(%q): %v", tt.in, err)
			continue
		}
		r, ok := value.CharOf(v)
		_ = ok
		if r != tt.want {
			t.Errorf("ScanChar(%q) = %q, want %q", tt.in, r, tt.want)
		}
	}
}

func TestScanCharErrors(t *testing.T) {
	for _, in := range []string{"", "ab", `\x`} {
		if _, err := ScanChar(in); err == nil {
			t.Errorf("ScanChar(%q): expected error", in)
		}
	}
}
