package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithGolden_ModernQueries(t *testing.T) {
	scenario, err := LoadScenario("testdata/scenarios/modern.yaml")
	require.NoError(t, err)

	require.NoError(t, RunWithGolden(t, scenario))
}

func TestSnapshot_Format(t *testing.T) {
	got := Snapshot([]Outcome{
		{Case: "a", Script: "g.V()"},
		{Case: "b", Error: "boom"},
	})

	assert.Equal(t, "a: g.V()\nb: error: boom\n", string(got))
}
