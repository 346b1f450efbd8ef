package harness

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Snapshot renders outcomes as "case: script" lines, or "case: error: msg".
func Snapshot(outcomes []Outcome) []byte {
	var b strings.Builder
	for _, o := range outcomes {
		b.WriteString(o.Case)
		b.WriteString(": ")
		if o.Error != "" {
			b.WriteString("error: ")
			b.WriteString(o.Error)
		} else {
			b.WriteString(o.Script)
		}
		b.WriteByte('\n')
	}
	return []byte(b.String())
}

// RunWithGolden runs a scenario, reports mismatches as test errors, and
// compares the outcomes against testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) error {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return err
	}
	for _, msg := range result.Errors {
		t.Error(msg)
	}

	AssertGolden(t, scenario.Name, result)
	return nil
}

// AssertGolden compares an existing result against a golden file without
// re-running the scenario.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Snapshot(result.Outcomes))
}
