package token

import "testing"

func TestUnescapeString(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{`abc`, "abc"},
		{`a\"b`, `a"b`},
		{`a\\b`, `a\b`},
		{`a\tb`, "a\tb"},
		{`a\nb`, "a\nb"},
		{`a\rb`, "a\rb"},
	}
	for _, tt := range tests {
		got, err := UnescapeString(tt.in)
		if err != nil {
			t.Errorf("UnescapeString(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("UnescapeString(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestUnescapeStringContinuation(t *testing.T) {
	got, err := UnescapeString("abc\\\n   def")
	if err != nil {
		t.Fatal(err)
	}
	if want := "abcdef"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestUnescapeStringErrors(t *testing.T) {
	for _, in := range []string{`a\`, `a\x`} {
		if _, err := UnescapeString(in); err == nil {
			t.Errorf("UnescapeString(%q): expected error", in)
		}
	}
}
