// Package transcript parses and runs interactive-session transcripts:
// chunks introduced by ">>> " with "... " continuation lines, each
// followed by its expected output. The test corpus is written in this
// format, and the snek CLI replays such files with `snek test`.
package transcript

import (
	"strings"

	"github.com/sneklang/go-snek/internal/interp"
	"github.com/sneklang/go-snek/internal/parser"
)

// Chunk is one interactive unit: the source of a single chunk and the
// output the transcript expects for it.
type Chunk struct {
	Source string
	Want   []string
	Line   int // 1-based line of the chunk's ">>> " in the transcript
}

// Result pairs a chunk with the output the interpreter actually
// produced.
type Result struct {
	Chunk Chunk
	Got   []string
}

// Passed reports whether actual output matched the expectation.
func (r Result) Passed() bool {
	if len(r.Got) != len(r.Chunk.Want) {
		return false
	}
	for i := range r.Got {
		if r.Got[i] != r.Chunk.Want[i] {
			return false
		}
	}
	return true
}

// Parse splits a transcript into chunks. Lines outside chunks that are
// blank or start with '#' are commentary; anything else following a
// chunk is its expected output.
func Parse(text string) []Chunk {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	var chunks []Chunk
	i := 0
	for i < len(lines) {
		line := lines[i]
		if !strings.HasPrefix(line, ">>>") {
			i++
			continue
		}
		chunk := Chunk{Line: i + 1}
		var src []string
		src = append(src, stripPrompt(line, ">>>"))
		i++
		for i < len(lines) && strings.HasPrefix(lines[i], "...") {
			src = append(src, stripPrompt(lines[i], "..."))
			i++
		}
		chunk.Source = strings.Join(src, "\n")
		for i < len(lines) && !strings.HasPrefix(lines[i], ">>>") {
			out := lines[i]
			i++
			if strings.TrimSpace(out) == "" || strings.HasPrefix(out, "#") {
				continue
			}
			chunk.Want = append(chunk.Want, out)
		}
		chunks = append(chunks, chunk)
	}
	return chunks
}

func stripPrompt(line, prompt string) string {
	rest := strings.TrimPrefix(line, prompt)
	return strings.TrimPrefix(rest, " ")
}

// Eval runs one chunk of source against a persistent interpreter and
// returns its printed output: the repr of the last top-level expression
// value, or the rendered error. A lone None prints nothing.
func Eval(it *interp.Interpreter, src string) []string {
	prog, err := parser.Parse(src)
	if err != nil {
		return []string{err.Error()}
	}
	v, raised := it.Run(prog)
	if raised != nil {
		return []string{raised.String()}
	}
	if v == nil {
		return nil
	}
	if _, isNone := v.(*interp.NoneValue); isNone {
		return nil
	}
	return []string{v.String()}
}

// Run replays a whole transcript against a fresh interpreter, keeping
// the global environment alive across chunks.
func Run(text string) []Result {
	it := interp.New()
	chunks := Parse(text)
	results := make([]Result, len(chunks))
	for i, c := range chunks {
		results[i] = Result{Chunk: c, Got: Eval(it, c.Source)}
	}
	return results
}

// Render formats a session the way it would appear interactively:
// prompts, source lines, then actual output. Snapshot tests consume
// this.
func Render(results []Result) string {
	var sb strings.Builder
	for _, r := range results {
		for i, line := range strings.Split(r.Chunk.Source, "\n") {
			if i == 0 {
				sb.WriteString(">>> ")
			} else {
				sb.WriteString("... ")
			}
			sb.WriteString(line)
			sb.WriteString("\n")
		}
		for _, out := range r.Got {
			sb.WriteString(out)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
