package cmd

import (
	"errors"
	"fmt"
	"os"

	snekerrors "github.com/sneklang/go-snek/internal/errors"
	"github.com/sneklang/go-snek/internal/interp"
	"github.com/sneklang/go-snek/internal/parser"
	"github.com/spf13/cobra"
)

var evalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a snek file or expression",
	Long: `Execute a snek program from a file or inline expression.

The value of the program's last top-level expression statement is
printed, the way the interactive prompt would print it.

Examples:
  # Run a script file
  snek run script.snek

  # Evaluate an inline expression
  snek run -e "1 + 2 * 3"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
}

// readInput resolves the source text for run/lex/parse: the -e flag or a
// file argument.
func readInput(args []string) (input, filename string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) == 1 {
		content, err := os.ReadFile(args[0])
		if err != nil {
			return "", "", fmt.Errorf("failed to read file %s: %w", args[0], err)
		}
		return string(content), args[0], nil
	}
	return "", "", fmt.Errorf("either provide a file path or use -e flag for inline code")
}

func runScript(_ *cobra.Command, args []string) error {
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

	it := interp.New()
	v, raised := it.Run(prog)
	if raised != nil {
		fmt.Fprintln(os.Stderr, raised.String())
		return fmt.Errorf("execution failed")
	}
	if v != nil {
		if _, isNone := v.(*interp.NoneValue); !isNone {
			fmt.Println(v.String())
		}
	}
	return nil
}
