package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, format := range []string{"text", "json", ""} {
		logger, err := New("debug", format)
		require.NoError(t, err)
		assert.NotNil(t, logger)
	}

	// Level defaults to info when empty.
	logger, err := New("", "text")
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestNewRejectsBadInput(t *testing.T) {
	_, err := New("debug", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")

	_, err = New("loud", "text")
	require.Error(t, err)
}
