package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape_Argument(t *testing.T) {
	out, _, err := executeRoot(t, "", "escape", "say \"hi\"\n")
	require.NoError(t, err)
	assert.Equal(t, `say \"hi\"\n`+"\n", out)
}

func TestEscape_Stdin(t *testing.T) {
	out, _, err := executeRoot(t, "café\n", "escape")
	require.NoError(t, err)
	assert.Equal(t, `caf\u00E9`+"\n", out)
}

func TestEscape_Strict(t *testing.T) {
	out, _, err := executeRoot(t, "", "escape", "--strict", "it's a/b")
	require.NoError(t, err)
	assert.Equal(t, `it\'s a\/b`+"\n", out)

	out, _, err = executeRoot(t, "", "escape", "it's a/b")
	require.NoError(t, err)
	assert.Equal(t, "it's a/b\n", out)
}

func TestEscape_JSON(t *testing.T) {
	out, _, err := executeRoot(t, "", "escape", "--format", "json", "\t")
	require.NoError(t, err)

	var response struct {
		Status string       `json:"status"`
		Data   EscapeResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &response))
	assert.Equal(t, "ok", response.Status)
	assert.Equal(t, "\t", response.Data.Input)
	assert.Equal(t, `\t`, response.Data.Output)
}

func TestUnescape(t *testing.T) {
	out, _, err := executeRoot(t, "", "unescape", `café \"q\"`)
	require.NoError(t, err)
	assert.Equal(t, "café \"q\"\n", out)
}

func TestUnescape_RoundTrip(t *testing.T) {
	input := "line1\nline2\t😀 \\ end"

	escaped, _, err := executeRoot(t, "", "escape", input)
	require.NoError(t, err)

	out, _, err := executeRoot(t, escaped, "unescape")
	require.NoError(t, err)
	assert.Equal(t, input+"\n", out)
}

func TestUnescape_Malformed(t *testing.T) {
	out, _, err := executeRoot(t, "", "unescape", `ab\u12`)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error [E020]")
	assert.Contains(t, out, "offset 2")
}
