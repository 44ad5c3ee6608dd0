package token

import "fmt"

// Pos is a 1-based line/column position in the original source, shared
// externally by the tokenizer, assembler, and error reporter.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("line %d, column %d", p.Line, p.Col)
}
