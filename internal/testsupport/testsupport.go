// Package testsupport loads the golden end-to-end scenarios used to exercise
// the full compiler pipeline (spec.md section 8), grounded on the teacher's
// preference for table-driven fixtures and on SPEC_FULL.md's ambient test
// tooling section, which calls for golang.org/x/tools/txtar archives rather
// than inline Go string literals so each scenario carries its own
// description alongside its source text.
package testsupport

import (
	"embed"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/tools/txtar"
)

//go:embed testdata/*.txtar
var fixtures embed.FS

// Scenario is one golden end-to-end compilation scenario: a short
// description and the Triangle source text it applies to.
type Scenario struct {
	Name        string
	Description string
	Source      string
}

// Scenarios returns every golden scenario under testdata, sorted by name for
// deterministic test output.
func Scenarios() ([]Scenario, error) {
	entries, err := fixtures.ReadDir("testdata")
	if err != nil {
		return nil, fmt.Errorf("testsupport: read testdata: %w", err)
	}

	scenarios := make([]Scenario, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := fixtures.ReadFile("testdata/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("testsupport: read %s: %w", entry.Name(), err)
		}

		archive := txtar.Parse(data)
		source, err := sourceFile(archive)
		if err != nil {
			return nil, fmt.Errorf("testsupport: %s: %w", entry.Name(), err)
		}

		scenarios = append(scenarios, Scenario{
			Name:        strings.TrimSuffix(entry.Name(), ".txtar"),
			Description: strings.TrimSpace(string(archive.Comment)),
			Source:      strings.TrimRight(string(source), "\n"),
		})
	}

	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	return scenarios, nil
}

func sourceFile(archive *txtar.Archive) ([]byte, error) {
	for _, f := range archive.Files {
		if f.Name == "source.tri" {
			return f.Data, nil
		}
	}
	return nil, fmt.Errorf("missing source.tri file")
}
