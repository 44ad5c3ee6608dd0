package token

import (
	"testing"

	"github.com/sdl-org/sdl-go/value"
)

func TestScanBinary(t *testing.T) {
	v, err := ScanBinary("YWJj")
	if err != nil {
		t.Fatal(err)
	}
	b, ok := value.BinaryOf(v)
	if !ok || string(b) != "abc" {
		t.Errorf("ScanBinary = %q, want %q", b, "abc")
	}
}

func TestScanBinaryWhitespace(t *testing.T) {
	v, err := ScanBinary("YW J\n j")
	if err != nil {
		t.Fatal(err)
	}
	b, _ := value.BinaryOf(v)
	if string(b) != "abc" {
		t.Errorf("ScanBinary with embedded whitespace = %q, want %q", b, "abc")
	}
}

func TestScanBinaryErrors(t *testing.T) {
	if _, err := ScanBinary("not base64!!"); err == nil {
		t.Error("ScanBinary: expected error on invalid base64")
	}
}
