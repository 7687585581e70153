package parser

import (
	"fmt"
	"strings"
)

// SyntaxError is the first error encountered while scanning or parsing a
// chunk. Parsing stops at the first error; there is no recovery.
//
// Two shapes exist: the expected/found form produced by the parser
// ("expected : but found NEWLINE at line 1"), and the message form
// produced by the scanner ("unterminated string at line 3").
type SyntaxError struct {
	Wanted []string // grammar alternatives permitted at the error point
	Found  string   // offending token's lexeme or symbolic name
	Msg    string   // used instead of Wanted/Found for scanner errors
	Line   int
}

// Error renders the error the way the interactive driver prints it.
func (e *SyntaxError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("SyntaxError: %s at line %d", e.Msg, e.Line)
	}
	return fmt.Sprintf("SyntaxError: expected %s but found %s at line %d",
		joinAlternatives(e.Wanted), e.Found, e.Line)
}

// joinAlternatives renders a grammar alternative list: "X", "X or Y",
// "X, Y, or Z".
func joinAlternatives(alts []string) string {
	switch len(alts) {
	case 0:
		return ""
	case 1:
		return alts[0]
	case 2:
		return alts[0] + " or " + alts[1]
	default:
		return strings.Join(alts[:len(alts)-1], ", ") + ", or " + alts[len(alts)-1]
	}
}

// bailout carries the syntax error up to Parse through the panic
// mechanism, keeping the descent functions free of error plumbing.
type bailout struct {
	err *SyntaxError
}
