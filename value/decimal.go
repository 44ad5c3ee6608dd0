package value

import (
	"math/big"
	"strings"
)

// decimalValue is an arbitrary-precision decimal represented as
// unscaled * 10^-scale, following the same coefficient/scale shape as
// a fixed-width decimal but with an unbounded coefficient.
type decimalValue struct {
	unscaled *big.Int
	scale    int32
}

func (d decimalValue) Kind() Kind { return DecimalKind }

func (d decimalValue) Format() string {
	neg := d.unscaled.Sign() < 0
	digits := new(big.Int).Abs(d.unscaled).String()
	if d.scale <= 0 {
		if neg {
			return "-" + digits + strings.Repeat("0", int(-d.scale)) + "BD"
		}
		return digits + strings.Repeat("0", int(-d.scale)) + "BD"
	}
	for len(digits) <= int(d.scale) {
		digits = "0" + digits
	}
	intPart := digits[:len(digits)-int(d.scale)]
	fracPart := digits[len(digits)-int(d.scale):]
	s := intPart + "." + fracPart
	if neg {
		s = "-" + s
	}
	return s + "BD"
}

func (decimalValue) sdlValue() {}

// Decimal constructs a Decimal value from an unscaled integer
// coefficient and a base-10 scale (value == unscaled * 10^-scale).
func Decimal(unscaled *big.Int, scale int32) Value {
	return decimalValue{unscaled: new(big.Int).Set(unscaled), scale: scale}
}

// DecimalString parses a plain decimal literal (optional leading '-',
// digits, optional single '.', digits) into a Decimal value.
func DecimalString(s string) (Value, error) {
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intPart, fracPart, hasDot := strings.Cut(s, ".")
	if strings.Contains(fracPart, ".") {
		return nil, &FormatError{Text: s, Reason: "two decimal points"}
	}
	digits := intPart + fracPart
	if digits == "" {
		return nil, &FormatError{Text: s, Reason: "empty decimal"}
	}
	scale := int32(0)
	if hasDot {
		scale = int32(len(fracPart))
	}
	unscaled, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, &FormatError{Text: s, Reason: "not a decimal"}
	}
	if neg {
		unscaled.Neg(unscaled)
	}
	return decimalValue{unscaled: unscaled, scale: scale}, nil
}

// DecimalOf reports the coefficient and scale of a Decimal value.
func DecimalOf(v Value) (unscaled *big.Int, scale int32, ok bool) {
	d, ok := v.(decimalValue)
	if !ok {
		return nil, 0, false
	}
	return new(big.Int).Set(d.unscaled), d.scale, true
}
