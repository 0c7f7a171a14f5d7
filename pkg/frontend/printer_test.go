package frontend

import "testing"

// TestRender checks the rendered tree text character for character; external
// callers match on this format, so it is part of the contract.
func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:  "Single Declaration",
			input: "int x;",
			expected: "Program\n" +
				"    └── VariableDeclaration (type: int, name: x)",
		},
		{
			name:  "Declaration And Assignment",
			input: "int x; x = 5;",
			expected: "Program\n" +
				"    ├── VariableDeclaration (type: int, name: x)\n" +
				"    └── Assignment\n" +
				"        ├── Variable (name: x)\n" +
				"        └── Number (value: 5)",
		},
		{
			name:  "Nested Expression",
			input: "y = x + 3 * 2;",
			expected: "Program\n" +
				"    └── Assignment\n" +
				"        ├── Variable (name: y)\n" +
				"        └── BinaryOperation (operator: +)\n" +
				"            ├── Variable (name: x)\n" +
				"            └── BinaryOperation (operator: *)\n" +
				"                ├── Number (value: 3)\n" +
				"                └── Number (value: 2)",
		},
		{
			// A non-final assignment's subtree carries the vertical rule of
			// the pending sibling below it.
			name:  "Vertical Rules",
			input: "x = 1 + 2; int y;",
			expected: "Program\n" +
				"    ├── Assignment\n" +
				"    │   ├── Variable (name: x)\n" +
				"    │   └── BinaryOperation (operator: +)\n" +
				"    │       ├── Number (value: 1)\n" +
				"    │       └── Number (value: 2)\n" +
				"    └── VariableDeclaration (type: int, name: y)",
		},
		{
			name:     "Empty Program",
			input:    "",
			expected: "Program",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := ParseSource(tt.input)
			if err != nil {
				t.Fatalf("ParseSource(%q) failed: %v", tt.input, err)
			}
			got := Render(program)
			if got != tt.expected {
				t.Errorf("Render(%q)\n got:\n%s\nwant:\n%s", tt.input, got, tt.expected)
			}
		})
	}
}

// TestRenderSubtree renders an expression node directly, without a Program
// wrapper above it.
func TestRenderSubtree(t *testing.T) {
	expr := &BinaryExpr{
		Left:  &NumberLit{Value: 2},
		Op:    "+",
		Right: &VarRef{Name: "x"},
	}
	expected := "└── BinaryOperation (operator: +)\n" +
		"    ├── Number (value: 2)\n" +
		"    └── Variable (name: x)"
	if got := Render(expr); got != expected {
		t.Errorf("Render subtree\n got:\n%s\nwant:\n%s", got, expected)
	}
}

// TestRenderIdempotent confirms rendering the same tree twice yields
// identical text.
func TestRenderIdempotent(t *testing.T) {
	program, err := ParseSource("int x; x = (1 + 2) * 3;")
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}
	first := Render(program)
	second := Render(program)
	if first != second {
		t.Errorf("renders differ:\n%s\n---\n%s", first, second)
	}
}
