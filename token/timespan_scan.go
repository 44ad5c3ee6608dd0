package token

import (
	"strconv"
	"strings"
)

// ScanTimeOrSpan scans a time-span-with-zone literal, producing the
// intermediate SpanOrZone representation; the assembler decides
// whether it resolves into a DateTime's time portion or a stand-alone
// TimeSpan.
func ScanTimeOrSpan(text string) (*SpanOrZone, error) {
	s := text
	negative := false
	if strings.HasPrefix(s, "-") {
		negative = true
		s = s[1:]
	}
	timePart := s
	zone := ""
	if idx := strings.IndexByte(s, '-'); idx >= 0 {
		timePart = s[:idx]
		zone = s[idx+1:]
		if zone == "" {
			return nil, &ParseError{Msg: "empty timezone after '-'", Err: ErrBadTimeSpan}
		}
	}
	segments := strings.Split(timePart, ":")
	hasDays := false
	days := 0
	switch len(segments) {
	case 4:
		d0 := segments[0]
		if !strings.HasSuffix(d0, "d") {
			return nil, &ParseError{Msg: "four-segment time span must start with a day count ending in 'd'", Err: ErrBadTimeSpan}
		}
		hasDays = true
		n, err := strconv.Atoi(strings.TrimSuffix(d0, "d"))
		if err != nil {
			return nil, &ParseError{Msg: "malformed day count " + d0, Err: ErrBadTimeSpan}
		}
		days = n
		segments = segments[1:]
	case 2, 3:
		// hours:minutes(:seconds)
	default:
		return nil, &ParseError{Msg: "expected 2-4 colon-delimited segments, got " + strconv.Itoa(len(segments)), Err: ErrBadTimeSpan}
	}
	hours, err := strconv.Atoi(segments[0])
	if err != nil {
		return nil, &ParseError{Msg: "malformed hours " + segments[0], Err: ErrBadTimeSpan}
	}
	minutes, err := strconv.Atoi(segments[1])
	if err != nil {
		return nil, &ParseError{Msg: "malformed minutes " + segments[1], Err: ErrBadTimeSpan}
	}
	seconds, millisec := 0, 0
	if len(segments) == 3 {
		secText := segments[2]
		whole, frac, hasFrac := strings.Cut(secText, ".")
		seconds, err = strconv.Atoi(whole)
		if err != nil {
			return nil, &ParseError{Msg: "malformed seconds " + secText, Err: ErrBadTimeSpan}
		}
		if hasFrac {
			millisec, err = fracToMillis(frac)
			if err != nil {
				return nil, &ParseError{Msg: "malformed fractional seconds " + frac, Err: ErrBadTimeSpan}
			}
		}
	}
	return &SpanOrZone{
		Negative: negative,
		HasDays:  hasDays,
		Days:     days,
		Hours:    hours,
		Minutes:  minutes,
		Seconds:  seconds,
		Millisec: millisec,
		Zone:     zone,
	}, nil
}

// fracToMillis interprets a fractional-seconds digit run as
// milliseconds: one digit means tenths (x100), two means hundredths
// (x10), three means thousandths (x1).
func fracToMillis(frac string) (int, error) {
	if frac == "" || len(frac) > 3 {
		return 0, &ParseError{Msg: "fractional seconds must be 1-3 digits", Err: ErrBadTimeSpan}
	}
	for len(frac) < 3 {
		frac += "0"
	}
	n, err := strconv.Atoi(frac)
	if err != nil {
		return 0, err
	}
	return n, nil
}
