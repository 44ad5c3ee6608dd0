package value

import "fmt"

// Kind identifies which of the thirteen SDL value variants a Value carries.
type Kind int

const (
	NullKind Kind = iota
	BoolKind
	StrKind
	CharKind
	Int32Kind
	Int64Kind
	Float32Kind
	Float64Kind
	DecimalKind
	BinaryKind
	DateKind
	DateTimeKind
	TimeSpanKind
)

var kindNames = map[Kind]string{
	NullKind:     "Null",
	BoolKind:     "Bool",
	StrKind:      "Str",
	CharKind:     "Char",
	Int32Kind:    "Int32",
	Int64Kind:    "Int64",
	Float32Kind:  "Float32",
	Float64Kind:  "Float64",
	DecimalKind:  "Decimal",
	BinaryKind:   "Binary",
	DateKind:     "Date",
	DateTimeKind: "DateTime",
	TimeSpanKind: "TimeSpan",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("<unknown Kind %d>", int(k))
}

// Kinds returns all thirteen variants in declaration order.
func Kinds() []Kind {
	return []Kind{
		NullKind, BoolKind, StrKind, CharKind,
		Int32Kind, Int64Kind, Float32Kind, Float64Kind, DecimalKind,
		BinaryKind, DateKind, DateTimeKind, TimeSpanKind,
	}
}
