package value

import "reflect"

// CoerceOrFail applies the insertion coercion rule to a host Go value
// being stored as a tag's value or attribute value.
// Values already implementing Value pass through unchanged; narrow
// host integers widen to Int32 (unsigned 32-bit widens to Int64); a
// type implementing DateLike becomes a Date. Anything else fails with
// a *CoercionError.
func CoerceOrFail(v any) (Value, error) {
	switch x := v.(type) {
	case Value:
		return x, nil
	case int8:
		return Int32(int32(x)), nil
	case uint8:
		return Int32(int32(x)), nil
	case int16:
		return Int32(int32(x)), nil
	case uint16:
		return Int32(int32(x)), nil
	case uint32:
		return Int64(int64(x)), nil
	case DateLike:
		y, m, d := x.DateComponents()
		return Date(y, m, d), nil
	default:
		return nil, &CoercionError{Type: reflect.TypeOf(v)}
	}
}
