package value

// Value is the closed set of SDL literal values. The interface is
// sealed: the only implementations are the unexported types in this
// package, constructed through the functions below.
type Value interface {
	Kind() Kind
	// Format renders the value in its canonical SDL literal form, the
	// same text the serializer emits.
	Format() string

	sdlValue()
}

// Equal reports whether a and b are the same SDL value. Per the
// source contract, equality is defined via canonical serialization.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind() != b.Kind() {
		return false
	}
	return a.Format() == b.Format()
}

type nullValue struct{}

func (nullValue) Kind() Kind    { return NullKind }
func (nullValue) Format() string { return "null" }
func (nullValue) sdlValue()      {}

// Null is the sole SDL null value.
var Null Value = nullValue{}

type boolValue bool

func (b boolValue) Kind() Kind { return BoolKind }
func (b boolValue) Format() string {
	if b {
		return "true"
	}
	return "false"
}
func (boolValue) sdlValue() {}

// Bool constructs a Bool value.
func Bool(v bool) Value { return boolValue(v) }

// BoolOf reports v and whether it was a Bool value.
func BoolOf(v Value) (bool, bool) {
	b, ok := v.(boolValue)
	return bool(b), ok
}

type strValue string

func (s strValue) Kind() Kind     { return StrKind }
func (s strValue) Format() string { return quoteString(string(s)) }
func (strValue) sdlValue()        {}

// Str constructs a Str value.
func Str(v string) Value { return strValue(v) }

// StrOf reports v and whether it was a Str value.
func StrOf(v Value) (string, bool) {
	s, ok := v.(strValue)
	return string(s), ok
}

type charValue rune

func (c charValue) Kind() Kind     { return CharKind }
func (c charValue) Format() string { return quoteChar(rune(c)) }
func (charValue) sdlValue()        {}

// Char constructs a Char value from a single scalar.
func Char(r rune) Value { return charValue(r) }

// CharOf reports v and whether it was a Char value.
func CharOf(v Value) (rune, bool) {
	c, ok := v.(charValue)
	return rune(c), ok
}

type int32Value int32

func (i int32Value) Kind() Kind     { return Int32Kind }
func (i int32Value) Format() string { return formatInt64(int64(i)) }
func (int32Value) sdlValue()        {}

// Int32 constructs an Int32 value.
func Int32(v int32) Value { return int32Value(v) }

// Int32Of reports v and whether it was an Int32 value.
func Int32Of(v Value) (int32, bool) {
	i, ok := v.(int32Value)
	return int32(i), ok
}

type int64Value int64

func (i int64Value) Kind() Kind     { return Int64Kind }
func (i int64Value) Format() string { return formatInt64(int64(i)) + "L" }
func (int64Value) sdlValue()        {}

// Int64 constructs an Int64 value.
func Int64(v int64) Value { return int64Value(v) }

// Int64Of reports v and whether it was an Int64 value.
func Int64Of(v Value) (int64, bool) {
	i, ok := v.(int64Value)
	return int64(i), ok
}

type float32Value float32

func (f float32Value) Kind() Kind     { return Float32Kind }
func (f float32Value) Format() string { return formatFloat32(float32(f)) + "F" }
func (float32Value) sdlValue()        {}

// Float32 constructs a Float32 value.
func Float32(v float32) Value { return float32Value(v) }

// Float32Of reports v and whether it was a Float32 value.
func Float32Of(v Value) (float32, bool) {
	f, ok := v.(float32Value)
	return float32(f), ok
}

type float64Value float64

func (f float64Value) Kind() Kind     { return Float64Kind }
func (f float64Value) Format() string { return formatFloat64(float64(f)) }
func (float64Value) sdlValue()        {}

// Float64 constructs a Float64 value.
func Float64(v float64) Value { return float64Value(v) }

// Float64Of reports v and whether it was a Float64 value.
func Float64Of(v Value) (float64, bool) {
	f, ok := v.(float64Value)
	return float64(f), ok
}

type binaryValue []byte

func (b binaryValue) Kind() Kind     { return BinaryKind }
func (b binaryValue) Format() string { return "[" + encodeBase64(b) + "]" }
func (binaryValue) sdlValue()        {}

// Binary constructs a Binary value. The byte slice is copied.
func Binary(v []byte) Value {
	cp := make([]byte, len(v))
	copy(cp, v)
	return binaryValue(cp)
}

// BinaryOf reports v and whether it was a Binary value.
func BinaryOf(v Value) ([]byte, bool) {
	b, ok := v.(binaryValue)
	if !ok {
		return nil, false
	}
	cp := make([]byte, len(b))
	copy(cp, b)
	return cp, true
}
