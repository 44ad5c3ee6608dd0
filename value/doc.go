// Package value defines the closed set of SDL values, the coercion of
// host Go values into that set, and each variant's canonical textual
// form.
package value
