// Package frontend provides a Mini C lexer, recursive-descent parser, and
// AST tree printer.
//
// Pipeline: Mini C source → Lex → Parse → Render
//
// Mini C covers int variable declarations, assignments, and arithmetic
// expressions with the usual precedence and parenthesized grouping. The
// front-end stops at the syntax tree: there is no semantic analysis and no
// code generation.
package frontend
