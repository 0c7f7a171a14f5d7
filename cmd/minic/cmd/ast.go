package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minic/pkg/frontend"
)

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a Mini C program and print its syntax tree",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
}

func runAST(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Println(headerStyle.Render("Source"))
	fmt.Println(src)
	fmt.Println()

	program, err := frontend.ParseSource(src)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Println(headerStyle.Render("AST"))
	fmt.Println(frontend.Render(program))
	return nil
}
