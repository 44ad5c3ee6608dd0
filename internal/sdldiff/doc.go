// Package sdldiff renders a line-level diff between two serialized
// documents, for the CLI's diff subcommand.
package sdldiff
