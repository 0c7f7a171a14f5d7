package frontend

import (
	"fmt"
	"unicode"
)

// keywords maps source text to its keyword TokenType. The lookup happens on
// the full scanned identifier, so "integer" never splits into INT + "eger".
var keywords = map[string]TokenType{
	"int": INT,
}

// Lexer holds all mutable state for a single scanning pass over src.
type Lexer struct {
	src    []rune
	pos    int // index of the next rune to consume
	line   int // current 1-based source line
	column int // current 1-based source column
}

func newLexer(src string) *Lexer {
	return &Lexer{src: []rune(src), pos: 0, line: 1, column: 1}
}

// peek returns the rune at the current position without advancing.
func (l *Lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	return l.src[l.pos]
}

// advance consumes one rune and returns it, keeping line/column current.
// A newline moves to column 1 of the next line; everything else moves one
// column to the right.
func (l *Lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r := l.src[l.pos]
	l.pos++
	if r == '\n' {
		l.line++
		l.column = 1
	} else {
		l.column++
	}
	return r
}

func (l *Lexer) skipWhitespace() {
	for l.pos < len(l.src) && unicode.IsSpace(l.peek()) {
		l.advance()
	}
}

// scanIdent collects a full identifier or keyword token.
// The first character (letter or '_') must still be at l.peek().
func (l *Lexer) scanIdent() Token {
	line, column := l.line, l.column
	start := l.pos
	for l.pos < len(l.src) {
		r := l.peek()
		if !isLetter(r) && !isDigit(r) && r != '_' {
			break
		}
		l.advance()
	}
	lexeme := string(l.src[start:l.pos])
	tt := IDENTIFIER
	if kw, ok := keywords[lexeme]; ok {
		tt = kw
	}
	return Token{Type: tt, Lexeme: lexeme, Line: line, Column: column}
}

// scanNumber collects a run of decimal digits.
// The first digit must still be at l.peek().
func (l *Lexer) scanNumber() Token {
	line, column := l.line, l.column
	start := l.pos
	for l.pos < len(l.src) && isDigit(l.peek()) {
		l.advance()
	}
	return Token{Type: NUMBER, Lexeme: string(l.src[start:l.pos]), Line: line, Column: column}
}

// nextToken skips whitespace and returns the next Token.
func (l *Lexer) nextToken() (Token, error) {
	l.skipWhitespace()
	if l.pos >= len(l.src) {
		return Token{Type: EOF, Lexeme: "", Line: l.line, Column: l.column}, nil
	}

	ch := l.peek()
	line, column := l.line, l.column

	if isLetter(ch) || ch == '_' {
		return l.scanIdent(), nil
	}
	if isDigit(ch) {
		return l.scanNumber(), nil
	}

	l.advance() // consume the character before the switch
	switch ch {
	case '+':
		return Token{PLUS, "+", line, column}, nil
	case '-':
		return Token{MINUS, "-", line, column}, nil
	case '*':
		return Token{STAR, "*", line, column}, nil
	case '/':
		return Token{SLASH, "/", line, column}, nil
	case '=':
		return Token{ASSIGN, "=", line, column}, nil
	case ';':
		return Token{SEMICOLON, ";", line, column}, nil
	case '(':
		return Token{LPAREN, "(", line, column}, nil
	case ')':
		return Token{RPAREN, ")", line, column}, nil
	default:
		return Token{}, &LexicalError{
			Message: fmt.Sprintf("unexpected character %q", ch),
			Line:    line,
			Column:  column,
		}
	}
}

// Lex scans src into the full token slice, ending with exactly one EOF token.
// The first unrecognized character aborts the scan with a *LexicalError.
func Lex(src string) ([]Token, error) {
	l := newLexer(src)
	var tokens []Token
	for {
		tok, err := l.nextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			return tokens, nil
		}
	}
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
