package frontend

import (
	"fmt"
	"strings"
)

// Render returns a box-drawing text representation of an AST subtree, one
// line per node in depth-first pre-order. The output is for human eyes; it
// is not a source format and cannot be re-parsed. Rendering is pure, so the
// same tree always renders to the same text.
//
//	Program
//	    ├── VariableDeclaration (type: int, name: x)
//	    └── Assignment
//	        ├── Variable (name: x)
//	        └── Number (value: 5)
func Render(node any) string {
	var lines []string
	renderNode(&lines, node, "", true)
	return strings.Join(lines, "\n")
}

// renderNode appends the line for node and recurses into its children.
// prefix is the accumulated ancestor indentation; last marks node as the
// final child of its parent, which picks the connector and the indentation
// handed down to node's own children.
func renderNode(lines *[]string, node any, prefix string, last bool) {
	connector := "├── "
	if last {
		connector = "└── "
	}

	switch n := node.(type) {
	case *Program:
		// The root renders without a connector; its statements indent as
		// children of a last sibling.
		*lines = append(*lines, prefix+"Program")
		childPrefix := prefix + childIndent(last)
		for i, stmt := range n.Statements {
			renderNode(lines, stmt, childPrefix, i == len(n.Statements)-1)
		}

	case *VariableDecl:
		*lines = append(*lines, fmt.Sprintf("%s%sVariableDeclaration (type: %s, name: %s)",
			prefix, connector, n.Type, n.Name))

	case *Assignment:
		*lines = append(*lines, prefix+connector+"Assignment")
		childPrefix := prefix + childIndent(last)
		renderNode(lines, n.Target, childPrefix, false)
		renderNode(lines, n.Value, childPrefix, true)

	case *BinaryExpr:
		*lines = append(*lines, fmt.Sprintf("%s%sBinaryOperation (operator: %s)",
			prefix, connector, n.Op))
		childPrefix := prefix + childIndent(last)
		renderNode(lines, n.Left, childPrefix, false)
		renderNode(lines, n.Right, childPrefix, true)

	case *NumberLit:
		*lines = append(*lines, fmt.Sprintf("%s%sNumber (value: %d)", prefix, connector, n.Value))

	case *VarRef:
		*lines = append(*lines, fmt.Sprintf("%s%sVariable (name: %s)", prefix, connector, n.Name))
	}
}

// childIndent extends a parent's prefix for its children: plain spaces after
// a last sibling, a vertical rule otherwise.
func childIndent(last bool) string {
	if last {
		return "    "
	}
	return "│   "
}
