package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"minic/pkg/frontend"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Dump the token stream for a Mini C program",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	src, err := readSource(args)
	if err != nil {
		printError(err)
		return err
	}

	tokens, err := frontend.Lex(src)
	if err != nil {
		printError(err)
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Tokens (%d)", len(tokens))))
	for _, tok := range tokens {
		fmt.Println(" ", tok)
	}
	return nil
}
