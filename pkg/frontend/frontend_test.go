package frontend_test

import (
	"errors"
	"strings"
	"testing"

	"minic/pkg/frontend"
)

// TestParseSource drives the public entry point with literal programs, the
// way an embedding tool would.
func TestParseSource(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"Simple Variable", "int x;"},
		{"Simple Assignment", "int x; x = 5;"},
		{"Addition", "int x; x = 3 + 5;"},
		{"Multiplication", "int x; x = 3 * 4;"},
		{"Precedence", "int x; x = 2 + 3 * 4;"},
		{"Parentheses", "int x; x = (2 + 3) * 4;"},
		{"Variables In Expression", "int x; int y; x = 5; y = x + 3;"},
		{"Multiline", "int\ny;\ny = 1;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			program, err := frontend.ParseSource(tt.input)
			if err != nil {
				t.Fatalf("ParseSource(%q) failed: %v", tt.input, err)
			}
			if program == nil || len(program.Statements) == 0 {
				t.Fatalf("ParseSource(%q) returned an empty program", tt.input)
			}
		})
	}
}

func TestParseSourceSyntaxError(t *testing.T) {
	_, err := frontend.ParseSource("int x; x = 5 +;")
	if err == nil {
		t.Fatal("expected a syntax error for a missing operand")
	}
	var synErr *frontend.SyntaxError
	if !errors.As(err, &synErr) {
		t.Fatalf("got %T, want *frontend.SyntaxError", err)
	}
	if !strings.HasPrefix(err.Error(), "SyntaxError at ") {
		t.Errorf("error text %q does not carry the SyntaxError prefix", err.Error())
	}
}

func TestParseSourceLexicalError(t *testing.T) {
	_, err := frontend.ParseSource("int x; x = 5 @ 3;")
	if err == nil {
		t.Fatal("expected a lexical error for '@'")
	}
	var lexErr *frontend.LexicalError
	if !errors.As(err, &lexErr) {
		t.Fatalf("got %T, want *frontend.LexicalError", err)
	}
	if lexErr.Line != 1 || lexErr.Column != 14 {
		t.Errorf("error position = %d:%d, want 1:14", lexErr.Line, lexErr.Column)
	}
}

// TestDemoProgram walks the demo source end to end and pins its rendering.
func TestDemoProgram(t *testing.T) {
	src := "int x; int y; x = 5; y = x + 3 * 2;"
	program, err := frontend.ParseSource(src)
	if err != nil {
		t.Fatalf("ParseSource failed: %v", err)
	}

	expected := "Program\n" +
		"    ├── VariableDeclaration (type: int, name: x)\n" +
		"    ├── VariableDeclaration (type: int, name: y)\n" +
		"    ├── Assignment\n" +
		"    │   ├── Variable (name: x)\n" +
		"    │   └── Number (value: 5)\n" +
		"    └── Assignment\n" +
		"        ├── Variable (name: y)\n" +
		"        └── BinaryOperation (operator: +)\n" +
		"            ├── Variable (name: x)\n" +
		"            └── BinaryOperation (operator: *)\n" +
		"                ├── Number (value: 3)\n" +
		"                └── Number (value: 2)"

	if got := frontend.Render(program); got != expected {
		t.Errorf("rendered tree\n got:\n%s\nwant:\n%s", got, expected)
	}
}
