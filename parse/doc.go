// Package parse implements the line source and tag assembler that
// turn a token stream into a tag tree, plus the document-level entry
// points.
package parse
