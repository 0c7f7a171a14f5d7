package frontend

import (
	"fmt"
	"strconv"
)

// Parser consumes the flat token slice produced by the Lexer and builds an AST.
//
// Grammar:
//
//	program     = statement* EOF
//	statement   = declaration | assignment
//	declaration = "int" IDENTIFIER ";"
//	assignment  = IDENTIFIER "=" expression ";"
//	expression  = term (("+" | "-") term)*
//	term        = factor (("*" | "/") factor)*
//	factor      = NUMBER | IDENTIFIER | "(" expression ")"
//
// One token of lookahead, no backtracking, no recovery: the first grammar
// violation aborts the parse with a *SyntaxError.
type Parser struct {
	tokens []Token
	pos    int
}

func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// peek returns the current token without consuming it.
func (p *Parser) peek() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.pos]
}

// advance consumes and returns the current token. The cursor holds at the
// final token, so advancing past EOF is a no-op.
func (p *Parser) advance() Token {
	tok := p.peek()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

// expect consumes the current token if it matches tt, otherwise returns a
// *SyntaxError naming the expected and actual kinds. This is the sole
// consumption primitive used by the rule methods below.
func (p *Parser) expect(tt TokenType) (Token, error) {
	tok := p.peek()
	if tok.Type != tt {
		return tok, &SyntaxError{
			Message: fmt.Sprintf("expected %s, got %s", tt, tok.Type),
			Token:   tok,
		}
	}
	return p.advance(), nil
}

// parseProgram implements  program = statement* EOF.
func (p *Parser) parseProgram() (*Program, error) {
	var stmts []Stmt
	for p.peek().Type != EOF {
		switch p.peek().Type {
		case INT:
			s, err := p.parseDeclaration()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, s)
		case IDENTIFIER:
			s, err := p.parseAssignment()
			if err != nil {
				return nil, err
			}
			stmts = append(stmts, s)
		default:
			tok := p.peek()
			return nil, &SyntaxError{
				Message: fmt.Sprintf("unexpected token %s", tok.Type),
				Token:   tok,
			}
		}
	}
	return &Program{Statements: stmts}, nil
}

// parseDeclaration implements  declaration = "int" IDENTIFIER ";".
func (p *Parser) parseDeclaration() (*VariableDecl, error) {
	if _, err := p.expect(INT); err != nil {
		return nil, err
	}
	name, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &VariableDecl{Type: "int", Name: name.Lexeme}, nil
}

// parseAssignment implements  assignment = IDENTIFIER "=" expression ";".
func (p *Parser) parseAssignment() (*Assignment, error) {
	name, err := p.expect(IDENTIFIER)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(SEMICOLON); err != nil {
		return nil, err
	}
	return &Assignment{Target: &VarRef{Name: name.Lexeme}, Value: value}, nil
}

// parseExpression handles + and -, the lowest precedence level. The loop
// folds to the left, so  a + b - c  parses as  (a + b) - c.
func (p *Parser) parseExpression() (Expr, error) {
	expr, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == PLUS || p.peek().Type == MINUS {
		op := p.advance().Lexeme
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// parseTerm handles * and /. Because terms are the operands of
// parseExpression, these always bind tighter than + and -.
func (p *Parser) parseTerm() (Expr, error) {
	expr, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	for p.peek().Type == STAR || p.peek().Type == SLASH {
		op := p.advance().Lexeme
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpr{Left: expr, Op: op, Right: right}
	}
	return expr, nil
}

// parseFactor implements  factor = NUMBER | IDENTIFIER | "(" expression ")".
func (p *Parser) parseFactor() (Expr, error) {
	tok := p.peek()
	switch tok.Type {
	case NUMBER:
		p.advance()
		value, err := strconv.Atoi(tok.Lexeme)
		if err != nil {
			return nil, &SyntaxError{
				Message: fmt.Sprintf("invalid integer literal %q", tok.Lexeme),
				Token:   tok,
			}
		}
		return &NumberLit{Value: value}, nil
	case IDENTIFIER:
		p.advance()
		return &VarRef{Name: tok.Lexeme}, nil
	case LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	default:
		return nil, &SyntaxError{
			Message: fmt.Sprintf("unexpected token %s in expression", tok.Type),
			Token:   tok,
		}
	}
}

// Parse builds the Program for a complete token slice.
func Parse(tokens []Token) (*Program, error) {
	return NewParser(tokens).parseProgram()
}
