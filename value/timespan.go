package value

import "fmt"

type timeSpanValue struct {
	Negative                     bool
	Days, Hours, Minutes, Seconds, Millisec int
}

func (t timeSpanValue) Kind() Kind { return TimeSpanKind }

func (t timeSpanValue) Format() string {
	sign := ""
	if t.Negative {
		sign = "-"
	}
	msPart := ""
	if t.Millisec != 0 {
		msPart = fmt.Sprintf(".%03d", t.Millisec)
	}
	if t.Days != 0 {
		return fmt.Sprintf("%s%dd:%02d:%02d:%02d%s", sign, t.Days, t.Hours, t.Minutes, t.Seconds, msPart)
	}
	return fmt.Sprintf("%s%02d:%02d:%02d%s", sign, t.Hours, t.Minutes, t.Seconds, msPart)
}

func (timeSpanValue) sdlValue() {}

// TimeSpan constructs a TimeSpan value from its sign and non-negative
// magnitudes. Sign propagation across the constituent fields (spec
// §4.1) is the caller's (token package's) responsibility while
// scanning the literal; by the time a TimeSpan value is built, negative
// carries the whole span's sign and every other field is a magnitude.
func TimeSpan(negative bool, days, hours, minutes, seconds, millisec int) Value {
	return timeSpanValue{negative, days, hours, minutes, seconds, millisec}
}

// TimeSpanOf reports the components of a TimeSpan value.
func TimeSpanOf(v Value) (negative bool, days, hours, minutes, seconds, millisec int, ok bool) {
	t, ok := v.(timeSpanValue)
	return t.Negative, t.Days, t.Hours, t.Minutes, t.Seconds, t.Millisec, ok
}
