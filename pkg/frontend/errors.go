package frontend

import "fmt"

// LexicalError reports a character the scanner has no rule for. Scanning
// stops at the first one; there is no resynchronization.
type LexicalError struct {
	Message string
	Line    int // 1-based
	Column  int // 1-based
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("LexicalError at %d:%d: %s", e.Line, e.Column, e.Message)
}

// SyntaxError reports a token stream that violates the grammar. It carries
// the offending token so callers can point at the exact source position.
type SyntaxError struct {
	Message string
	Token   Token
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("SyntaxError at %d:%d: %s", e.Token.Line, e.Token.Column, e.Message)
}
