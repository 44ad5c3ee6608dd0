package token

import "testing"

func TestScanDate(t *testing.T) {
	v, err := ScanDate("2024/01/02")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := v.Format(), "2024/01/02"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}

func TestScanDateErrors(t *testing.T) {
	for _, in := range []string{"2024/01", "2024/01/02/03", "2024//02", "abc/01/02"} {
		if _, err := ScanDate(in); err == nil {
			t.Errorf("ScanDate(%q): expected error", in)
		}
	}
}
