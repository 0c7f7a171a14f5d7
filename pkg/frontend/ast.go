package frontend

import "fmt"

//  Expression nodes

// Expr is implemented by every node that produces a value.
type Expr interface {
	exprNode()
	String() string
}

// NumberLit is a non-negative integer constant. The grammar has no unary
// minus, so a negative literal cannot be written.
//
//	x = 42;
//	    ^^  NumberLit{Value: 42}
type NumberLit struct {
	Value int
}

func (*NumberLit) exprNode()        {}
func (n *NumberLit) String() string { return fmt.Sprintf("%d", n.Value) }

// VarRef is a read of a named variable.
//
//	y = x;
//	    ^  VarRef{Name: "x"}
type VarRef struct {
	Name string
}

func (*VarRef) exprNode()        {}
func (v *VarRef) String() string { return v.Name }

// BinaryExpr represents a binary operation: Left Op Right. Op is the
// operator symbol, one of "+", "-", "*", "/".
type BinaryExpr struct {
	Left  Expr
	Op    string
	Right Expr
}

func (*BinaryExpr) exprNode() {}
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

//  Statement nodes

// Stmt is implemented by every node that does not produce a value.
type Stmt interface {
	stmtNode()
	String() string
}

// VariableDecl represents  int name;
type VariableDecl struct {
	Type string // always "int"
	Name string
}

func (*VariableDecl) stmtNode() {}
func (d *VariableDecl) String() string {
	return fmt.Sprintf("VariableDecl(%s %s)", d.Type, d.Name)
}

// Assignment represents  name = expr;
type Assignment struct {
	Target *VarRef
	Value  Expr
}

func (*Assignment) stmtNode() {}
func (a *Assignment) String() string {
	return fmt.Sprintf("Assignment(%s = %s)", a.Target, a.Value)
}

// Program is the root of every parse; it is never nested inside another
// node. Statements appear in source order.
type Program struct {
	Statements []Stmt
}

func (p *Program) String() string {
	return fmt.Sprintf("Program(len=%d)", len(p.Statements))
}
