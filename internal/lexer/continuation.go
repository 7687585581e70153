package lexer

import "strings"

// NeedsContinuation reports whether src is an incomplete interactive
// chunk: the cumulative bracket depth is still positive, the last
// physical line ends with a joining backslash, or the last logical line
// is a compound-statement header ending in ':'. The interactive driver
// uses this to decide between the primary and continuation prompts.
func NeedsContinuation(src string) bool {
	depth := 0
	lastMeaningful := byte(0)
	backslash := false

	for _, line := range strings.Split(strings.ReplaceAll(src, "\r\n", "\n"), "\n") {
		backslash = false
		i := 0
		for i < len(line) {
			ch := line[i]
			switch ch {
			case '#':
				i = len(line)
				continue
			case '\'', '"':
				quote := ch
				i++
				for i < len(line) && line[i] != quote {
					if line[i] == '\\' {
						i++
					}
					i++
				}
				if i < len(line) {
					i++
				}
				lastMeaningful = quote
				continue
			case '(', '[', '{':
				depth++
			case ')', ']', '}':
				if depth > 0 {
					depth--
				}
			case '\\':
				if i == len(line)-1 {
					backslash = true
					i++
					continue
				}
			}
			if ch != ' ' && ch != '\t' {
				lastMeaningful = ch
			}
			i++
		}
	}

	return depth > 0 || backslash || lastMeaningful == ':'
}
