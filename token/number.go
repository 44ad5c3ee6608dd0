package token

import (
	"strconv"
	"strings"

	"github.com/sdl-org/sdl-go/value"
)

// ScanNumber scans a number literal. text has already been classified
// by the tokenizer as containing no '/' or ':'.
func ScanNumber(text string) (value.Value, error) {
	i := 0
	dots := 0
	for i < len(text) {
		c := text[i]
		if c == '-' && i == 0 {
			i++
			continue
		}
		if c >= '0' && c <= '9' {
			i++
			continue
		}
		if c == '.' {
			dots++
			i++
			continue
		}
		break
	}
	core, suffix := text[:i], text[i:]
	if dots > 1 {
		return nil, &value.FormatError{Text: text, Reason: "two decimal points"}
	}
	if strings.HasSuffix(core, ".") {
		return nil, &value.FormatError{Text: text, Reason: "trailing decimal point"}
	}
	if core == "" || core == "-" {
		return nil, &value.FormatError{Text: text, Reason: "no digits"}
	}
	hasDot := strings.Contains(core, ".")

	switch strings.ToUpper(suffix) {
	case "":
		if hasDot {
			f, err := strconv.ParseFloat(core, 64)
			if err != nil {
				return nil, &value.FormatError{Text: text, Reason: err.Error()}
			}
			return value.Float64(f), nil
		}
		n, err := strconv.ParseInt(core, 10, 32)
		if err != nil {
			return nil, &value.FormatError{Text: text, Reason: err.Error()}
		}
		return value.Int32(int32(n)), nil
	case "L":
		if hasDot {
			return nil, &value.FormatError{Text: text, Reason: "Int64 suffix L on a value with a decimal point"}
		}
		n, err := strconv.ParseInt(core, 10, 64)
		if err != nil {
			return nil, &value.FormatError{Text: text, Reason: err.Error()}
		}
		return value.Int64(n), nil
	case "F":
		f, err := strconv.ParseFloat(core, 32)
		if err != nil {
			return nil, &value.FormatError{Text: text, Reason: err.Error()}
		}
		return value.Float32(float32(f)), nil
	case "D":
		f, err := strconv.ParseFloat(core, 64)
		if err != nil {
			return nil, &value.FormatError{Text: text, Reason: err.Error()}
		}
		return value.Float64(f), nil
	case "BD":
		return value.DecimalString(core)
	default:
		return nil, &value.FormatError{Text: text, Reason: "unrecognized number suffix " + suffix}
	}
}
