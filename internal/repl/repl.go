// Package repl implements the interactive read loop. It keeps one
// interpreter alive for the whole session and uses the scanner's
// continuation state to decide when a chunk is complete.
package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sneklang/go-snek/internal/interp"
	"github.com/sneklang/go-snek/internal/lexer"
	"github.com/sneklang/go-snek/internal/transcript"
)

const (
	primaryPrompt      = ">>> "
	continuationPrompt = "... "
)

// Run reads chunks from in, evaluates them against one persistent
// interpreter, and writes results to out. A single-line chunk executes
// immediately unless it needs continuation; a multi-line chunk ends at
// the first blank line.
func Run(in io.Reader, out io.Writer) error {
	it := interp.New()
	scanner := bufio.NewScanner(in)
	var buf []string

	fmt.Fprint(out, primaryPrompt)
	for scanner.Scan() {
		line := scanner.Text()

		if len(buf) == 0 && strings.TrimSpace(line) == "" {
			fmt.Fprint(out, primaryPrompt)
			continue
		}

		blank := strings.TrimSpace(line) == ""
		if !blank {
			buf = append(buf, line)
		}
		src := strings.Join(buf, "\n")

		if lexer.NeedsContinuation(src) || (len(buf) > 1 && !blank) {
			fmt.Fprint(out, continuationPrompt)
			continue
		}

		for _, result := range transcript.Eval(it, src) {
			fmt.Fprintln(out, result)
		}
		buf = buf[:0]
		fmt.Fprint(out, primaryPrompt)
	}

	if len(buf) > 0 {
		for _, result := range transcript.Eval(it, strings.Join(buf, "\n")) {
			fmt.Fprintln(out, result)
		}
	}
	fmt.Fprintln(out)
	return scanner.Err()
}
