package cmd

import (
	"errors"
	"fmt"
	"os"

	snekerrors "github.com/sneklang/go-snek/internal/errors"
	"github.com/sneklang/go-snek/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse a snek file or expression and dump the AST",
	Long: `Parse a snek program and print a rendering of the resulting AST.

Examples:
  # Parse a script file
  snek parse script.snek

  # Parse an inline expression
  snek parse -e "a = 1 if b > 2 else 3"`,
	Args: cobra.MaximumNArgs(1),
	RunE: parseScript,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func parseScript(_ *cobra.Command, args []string) error {
	input, filename, err := readInput(args)
	if err != nil {
		return err
	}

	prog, err := parser.Parse(input)
	if err != nil {
		var syntaxErr *parser.SyntaxError
		if errors.As(err, &syntaxErr) {
			fmt.Fprintln(os.Stderr, snekerrors.NewSourceError(syntaxErr.Line, err.Error(), input, filename).Format(true))
			return fmt.Errorf("parsing failed")
		}
		return err
	}

	fmt.Print(prog.String())
	return nil
}
