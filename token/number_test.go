package token

import "testing"

func TestScanNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"42", "42"},
		{"-7", "-7"},
		{"1.5", "1.5"},
		{"1L", "1L"},
		{"1.5F", "1.5F"},
		{"1.5D", "1.5"},
		{"1.23BD", "1.23BD"},
	}
	for _, tt := range tests {
		v, err := ScanNumber(tt.in)
		if err != nil {
			t.Errorf("ScanNumber(%q): %v", tt.in, err)
			continue
		}
		if got := v.Format(); got != tt.want {
			t.Errorf("ScanNumber(%q).Format() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestScanNumberErrors(t *testing.T) {
	for _, in := range []string{"1.2.3", "1.", "-", "1L.5", "1X"} {
		if _, err := ScanNumber(in); err == nil {
			t.Errorf("ScanNumber(%q): expected error", in)
		}
	}
}
