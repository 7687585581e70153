package transcript

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseChunks(t *testing.T) {
	text := strings.Join([]string{
		"# commentary",
		">>> a = 1",
		">>> a",
		"1",
		"",
		">>> while a < 3:",
		"...     a = a + 1",
		">>> a",
		"3",
	}, "\n")

	chunks := Parse(text)
	if len(chunks) != 4 {
		t.Fatalf("got %d chunks, want 4", len(chunks))
	}

	if chunks[0].Source != "a = 1" || len(chunks[0].Want) != 0 {
		t.Errorf("chunk 0 parsed wrong: %+v", chunks[0])
	}
	if diff := cmp.Diff([]string{"1"}, chunks[1].Want); diff != "" {
		t.Errorf("chunk 1 expectations mismatch (-want +got):\n%s", diff)
	}
	if chunks[2].Source != "while a < 3:\n    a = a + 1" {
		t.Errorf("continuation lines mishandled: %q", chunks[2].Source)
	}
	if chunks[1].Line != 3 {
		t.Errorf("chunk 1 line = %d, want 3", chunks[1].Line)
	}
}

func TestRunKeepsEnvironmentAcrossChunks(t *testing.T) {
	results := Run(">>> a = 41\n>>> a + 1\n42\n")
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if !results[0].Passed() || !results[1].Passed() {
		t.Errorf("results failed: %+v", results)
	}
}

func TestSyntaxErrorDoesNotTouchEnvironment(t *testing.T) {
	results := Run(">>> a = 1\n>>> if 1\nSyntaxError: expected : but found NEWLINE at line 1\n>>> a\n1\n")
	for i, r := range results {
		if !r.Passed() {
			t.Errorf("chunk %d failed: got %v, want %v", i, r.Got, r.Chunk.Want)
		}
	}
}

func TestLoneNonePrintsNothing(t *testing.T) {
	results := Run(">>> a = {}\n>>> a['missing']\n")
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if len(results[1].Got) != 0 {
		t.Errorf("lone None printed %v, want nothing", results[1].Got)
	}
}
