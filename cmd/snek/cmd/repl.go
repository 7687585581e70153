package cmd

import (
	"os"

	"github.com/sneklang/go-snek/internal/repl"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start the interactive prompt",
	Long: `Start an interactive snek session.

Statements execute against one persistent global environment. A chunk
continues onto the next line while brackets are open, after a trailing
backslash, or after a compound-statement header ending in ':'. Once a
chunk spans more than one line it ends at the first blank line.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		return repl.Run(os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
