package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs a fresh root command with the given args and captures its
// combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestRootCommandDurationString(t *testing.T) {
	out, err := execute(t, "--duration", "8h5m10s")
	require.NoError(t, err)
	assert.Contains(t, out, "Full days: 0\n")
	assert.Contains(t, out, "Full hours: 8\n")
	assert.Contains(t, out, "Full minutes: 485\n")
	assert.Contains(t, out, "Full seconds: 29,110\n")
}

func TestRootCommandLiteralSeconds(t *testing.T) {
	out, err := execute(t, "--seconds", "300")
	require.NoError(t, err)
	assert.Contains(t, out, "Full minutes: 5\n")
	assert.Contains(t, out, "Full seconds: 300\n")
}

func TestRootCommandRequiresInput(t *testing.T) {
	_, err := execute(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one of the flags")
}

func TestRootCommandRejectsBothInputs(t *testing.T) {
	_, err := execute(t, "--duration", "10s", "--seconds", "10")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "none of the others can be")
}

func TestRootCommandMalformedDuration(t *testing.T) {
	_, err := execute(t, "--duration", "10 s")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid duration")
}

func TestRootCommandUnsupportedLogFormat(t *testing.T) {
	_, err := execute(t, "--seconds", "1", "--log-format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}
