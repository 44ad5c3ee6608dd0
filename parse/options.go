package parse

// Option configures an Assembler via the functional-options pattern.
type Option func(*Assembler)

// WithMaxDepth bounds the nesting depth of blocks the assembler will
// descend into before raising a parse error, guarding against
// pathologically deep or adversarial input. n <= 0 means unlimited,
// the default.
func WithMaxDepth(n int) Option {
	return func(a *Assembler) { a.maxDepth = n }
}

// WithTimezone fixes the zone designator substituted into a DateTime
// that combines a Date and a bare time-of-day carrying none, instead
// of leaving the zone empty for later resolution against the
// process's local GMT offset. zone is stored verbatim, as an IANA id,
// a three-letter code, or a GMT±HH(:MM) designator.
func WithTimezone(zone string) Option {
	return func(a *Assembler) { a.zone = zone }
}
