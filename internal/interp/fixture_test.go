package interp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/rwnicholas/WitcherScript/internal/cerr"
)

// TestWitcherScriptFixtures runs every .witcher script under
// testdata/fixtures through the full pipeline and asserts its combined
// stdout/error output against a go-snaps snapshot (written on the first
// run, since none are committed). Modeled on
// CWBudde-go-dws's internal/interp/fixture_test.go category-table
// approach, scaled down to WitcherScript's much smaller built-in surface:
// there is no semantic-analysis pass or codegen stage here, so each
// fixture only needs a lex/parse/run round trip.
func TestWitcherScriptFixtures(t *testing.T) {
	categories := []struct {
		name string
		path string
	}{
		{name: "SimpleScripts", path: "../../testdata/fixtures/SimpleScripts"},
		{name: "FailureScripts", path: "../../testdata/fixtures/FailureScripts"},
	}

	for _, category := range categories {
		t.Run(category.name, func(t *testing.T) {
			files, err := filepath.Glob(filepath.Join(category.path, "*.witcher"))
			if err != nil {
				t.Fatalf("glob %s: %v", category.path, err)
			}
			if len(files) == 0 {
				t.Skipf("no .witcher fixtures found in %s", category.path)
				return
			}

			for _, file := range files {
				file := file
				testName := strings.TrimSuffix(filepath.Base(file), ".witcher")
				t.Run(testName, func(t *testing.T) {
					runFixture(t, file)
				})
			}
		})
	}
}

func runFixture(t *testing.T, path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}

	var out bytes.Buffer
	e := New(Config{Stdout: &out, Stdin: nil})
	e.SetBaseDir(filepath.Dir(path))

	var output strings.Builder
	if runErr := e.Run(string(source)); runErr != nil {
		report := cerr.FromError(runErr, filepath.Base(path), string(source))
		output.WriteString("Errors >>>>\n")
		output.WriteString(report.Format())
		output.WriteString("Result >>>>\n")
	}
	output.WriteString(out.String())

	snaps.MatchSnapshot(t, output.String())
}
