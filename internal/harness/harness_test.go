package harness

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/bytescript/internal/bytecode"
)

func TestRun_AllCasesPass(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/modern.yaml")
	require.NoError(t, err)

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Empty(t, result.Errors)
	require.Len(t, result.Outcomes, len(scenario.Cases))
	assert.Equal(t, `g.V().hasLabel("person").values("name")`, result.Outcomes[0].Script)
}

func TestRun_ReportsMismatch(t *testing.T) {
	scenario := &Scenario{
		Name:        "mismatch",
		Description: "expected script differs",
		Cases: []Case{
			NewCase("count", bytecode.G().Step("V").Step("count").Bytecode(), "g.V().count()"),
			NewCase("wrong", bytecode.G().Step("E").Bytecode(), "g.V()"),
		},
	}

	result, err := Run(scenario)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "wrong: script mismatch")
	assert.Equal(t, "g.E()", result.Outcomes[1].Script)
}

func TestRun_ExpectedError(t *testing.T) {
	bad := &bytecode.Bytecode{Step: []bytecode.Instruction{{Operator: "V"}, {Operator: ""}}}

	c := NewCase("malformed", bad, "")
	c.Error = "malformed instruction 1"
	scenario := &Scenario{Name: "errors", Description: "error cases", Cases: []Case{c}}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.True(t, result.Pass, "errors: %v", result.Errors)
	assert.Contains(t, result.Outcomes[0].Error, "empty operator")
}

func TestRun_UnexpectedError(t *testing.T) {
	bad := &bytecode.Bytecode{Step: []bytecode.Instruction{{Operator: ""}}}
	scenario := &Scenario{
		Name:        "errors",
		Description: "error cases",
		Cases:       []Case{NewCase("malformed", bad, "g")},
	}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], "unexpected error")
}

func TestRun_MissingExpectedError(t *testing.T) {
	c := NewCase("fine", bytecode.G().Step("V").Bytecode(), "")
	c.Error = "boom"
	scenario := &Scenario{Name: "errors", Description: "error cases", Cases: []Case{c}}

	result, err := Run(scenario)
	require.NoError(t, err)
	assert.False(t, result.Pass)
	assert.Contains(t, result.Errors[0], `expected error containing "boom"`)
}

func TestRun_InvalidScenario(t *testing.T) {
	_, err := Run(&Scenario{Name: "empty", Description: "no cases"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid scenario")
}

func TestRunWithLogger_LogsSummary(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	scenario := &Scenario{
		Name:        "logged",
		Description: "logging",
		Cases:       []Case{NewCase("v", bytecode.G().Step("V").Bytecode(), "g.V()")},
	}

	_, err := RunWithLogger(scenario, logger)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "case passed")
	assert.Contains(t, out, "scenario finished")
	assert.Contains(t, out, "failures=0")
}
