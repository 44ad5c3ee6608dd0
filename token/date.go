package token

import (
	"strconv"
	"strings"

	"github.com/sdl-org/sdl-go/value"
)

// ScanDate scans a date literal: YYYY/MM/DD with unconstrained
// non-negative integer components.
func ScanDate(text string) (value.Value, error) {
	parts := strings.Split(text, "/")
	if len(parts) != 3 {
		return nil, &value.FormatError{Text: text, Reason: "expected YYYY/MM/DD"}
	}
	nums := make([]int, 3)
	for i, p := range parts {
		if p == "" {
			return nil, &value.FormatError{Text: text, Reason: "empty date component"}
		}
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, &value.FormatError{Text: text, Reason: "non-numeric date component"}
		}
		nums[i] = n
	}
	return value.Date(nums[0], nums[1], nums[2]), nil
}
