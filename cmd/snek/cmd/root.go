package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "snek",
	Short: "snek interpreter",
	Long: `go-snek is a Go implementation of the snek scripting language.

snek is a small, dynamically-typed, indentation-structured language with:
  - Significant indentation and bracket-suppressed newlines
  - Functions with default parameters and closures
  - Classes with single inheritance and bound methods
  - Exceptions with try/except/else/finally and loop else clauses

Programs run from files, inline expressions, or an interactive prompt.`,
	Version:       Version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
