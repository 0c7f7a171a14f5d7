package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// demoSource is the built-in program used when no input is given.
const demoSource = "int x; int y; x = 5; y = x + 3 * 2;"

var srcFlag string

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#06B6D4"))
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
)

var rootCmd = &cobra.Command{
	Use:   "minic [file]",
	Short: "Mini C front-end: scan, parse, and print syntax trees",
	Long: `minic runs the Mini C front-end pipeline: source text is scanned
into tokens, parsed into an abstract syntax tree, and rendered as an
indented tree for inspection.

With no arguments it parses a built-in demo program. Pass a file path or
use --source to supply your own.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runAST,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&srcFlag, "source", "s", "", "inline Mini C source (overrides the file argument)")
}

// readSource resolves the input program: the --source flag wins, then a file
// argument, then the built-in demo.
func readSource(args []string) (string, error) {
	if srcFlag != "" {
		return srcFlag, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return demoSource, nil
}

func printError(err error) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
}
