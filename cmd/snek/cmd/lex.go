package cmd

import (
	"fmt"

	"github.com/sneklang/go-snek/internal/lexer"
	"github.com/sneklang/go-snek/pkg/token"
	"github.com/spf13/cobra"
)

var showPos bool

var lexCmd = &cobra.Command{
	Use:   "lex [file]",
	Short: "Tokenize a snek file or expression",
	Long: `Tokenize a snek program and print the resulting token stream,
including the structural NEWLINE/INDENT/DEDENT tokens.

This command is useful for debugging the scanner and understanding how
significant indentation is tokenized.

Examples:
  # Tokenize a script file
  snek lex script.snek

  # Tokenize an inline expression
  snek lex -e "a, b = 2, 3"`,
	Args: cobra.MaximumNArgs(1),
	RunE: lexScript,
}

func init() {
	rootCmd.AddCommand(lexCmd)

	lexCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
	lexCmd.Flags().BoolVar(&showPos, "show-pos", false, "show token positions (line:column)")
}

func lexScript(_ *cobra.Command, args []string) error {
	input, _, err := readInput(args)
	if err != nil {
		return err
	}

	for _, tok := range lexer.New(input).Tokens() {
		if showPos {
			fmt.Printf("%s\t", tok.Pos)
		}
		if tok.Literal != "" && tok.Type != token.ILLEGAL {
			fmt.Printf("%-10s %s\n", symbolicName(tok.Type), tok.Literal)
		} else {
			fmt.Printf("%s %s\n", symbolicName(tok.Type), tok.Literal)
		}
	}
	return nil
}

// symbolicName prints operator token types by their category rather than
// their lexeme, which the default String form uses.
func symbolicName(t token.Type) string {
	switch {
	case t.IsKeyword():
		return "KEYWORD"
	case t == token.NAME, t == token.NUMBER, t == token.STRING, t.IsStructural(), t == token.ILLEGAL:
		return t.String()
	default:
		return "OP"
	}
}
