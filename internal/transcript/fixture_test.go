package transcript

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
)

// TestTranscriptFixtures replays every transcript under testdata against
// a fresh interpreter. Each chunk's expected output must match, and the
// rendered session is snapshotted so regressions in printing or error
// rendering show up as a diff.
func TestTranscriptFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no transcript fixtures found under testdata")
	}

	for _, file := range files {
		name := strings.TrimSuffix(filepath.Base(file), ".txt")
		t.Run(name, func(t *testing.T) {
			content, err := os.ReadFile(file)
			if err != nil {
				t.Fatal(err)
			}

			results := Run(string(content))
			for _, r := range results {
				if !r.Passed() {
					t.Errorf("line %d:\n  source: %q\n  want: %v\n  got:  %v",
						r.Chunk.Line, r.Chunk.Source, r.Chunk.Want, r.Got)
				}
			}

			snaps.MatchSnapshot(t, Render(results))
		})
	}
}

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	os.Exit(v)
}
