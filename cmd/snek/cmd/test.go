package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/sneklang/go-snek/internal/transcript"
	"github.com/spf13/cobra"
)

var testCmd = &cobra.Command{
	Use:   "test <file>",
	Short: "Replay a session transcript and check its expected output",
	Long: `Replay an interactive transcript (">>> " chunks with expected
output) against a fresh interpreter and report mismatches.

Examples:
  snek test testdata/core.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranscript,
}

func init() {
	rootCmd.AddCommand(testCmd)
}

func runTranscript(_ *cobra.Command, args []string) error {
	content, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", args[0], err)
	}

	results := transcript.Run(string(content))
	failures := 0
	for _, r := range results {
		if r.Passed() {
			if verbose {
				fmt.Printf("ok   line %d\n", r.Chunk.Line)
			}
			continue
		}
		failures++
		fmt.Printf("FAIL line %d\n", r.Chunk.Line)
		for i, line := range strings.Split(r.Chunk.Source, "\n") {
			prompt := ">>> "
			if i > 0 {
				prompt = "... "
			}
			fmt.Printf("  %s%s\n", prompt, line)
		}
		fmt.Printf("  want: %s\n", strings.Join(r.Chunk.Want, " | "))
		fmt.Printf("  got:  %s\n", strings.Join(r.Got, " | "))
	}

	fmt.Printf("%d chunks, %d failures\n", len(results), failures)
	if failures > 0 {
		return fmt.Errorf("%d transcript failure(s)", failures)
	}
	return nil
}
