package parse

import (
	"bufio"
	"io"
	"strings"
)

// LineSource yields physical lines from an underlying io.Reader with a
// shared 1-based line counter, in either cooked mode (skipping blank
// and '#'-prefixed lines) or raw mode (every line). It implements
// token.LineReader. Line endings are normalized: both CR-LF and bare
// LF are accepted.
type LineSource struct {
	r      io.Reader
	sc     *bufio.Scanner
	lineNo int
	done   bool
}

// NewLineSource wraps r. If r also implements io.Closer, Close closes
// it; otherwise Close is a no-op.
func NewLineSource(r io.Reader) *LineSource {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	return &LineSource{r: r, sc: sc}
}

// NewLineSourceString wraps a string, the common case for parsing an
// already-materialized literal or attribute list.
func NewLineSourceString(s string) *LineSource {
	return NewLineSource(strings.NewReader(s))
}

func (ls *LineSource) nextPhysical() (string, bool) {
	if ls.done {
		return "", false
	}
	if !ls.sc.Scan() {
		ls.done = true
		return "", false
	}
	ls.lineNo++
	return ls.sc.Text(), true
}

// NextRaw returns the next physical line unconditionally.
func (ls *LineSource) NextRaw() (string, bool) {
	return ls.nextPhysical()
}

// NextCooked returns the next physical line that, trimmed, is neither
// empty nor '#'-prefixed.
func (ls *LineSource) NextCooked() (string, bool) {
	for {
		line, ok := ls.nextPhysical()
		if !ok {
			return "", false
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		return line, true
	}
}

// LineNo returns the 1-based line number of the most recently returned
// physical line, cooked or raw.
func (ls *LineSource) LineNo() int { return ls.lineNo }

// Close releases the underlying reader if it is an io.Closer. It is
// safe to call Close more than once.
func (ls *LineSource) Close() error {
	if c, ok := ls.r.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
