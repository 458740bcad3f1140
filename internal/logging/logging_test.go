package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJSONLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, Options{Level: "info", Format: FormatJSON})
	require.NoError(t, err)

	logger.Info().Str("platform", "AtCoder").Msg("fetched")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "info", decoded["level"])
	assert.Equal(t, "AtCoder", decoded["platform"])
	assert.Equal(t, "fetched", decoded["message"])
}

func TestNewDefaultsToWarnLevel(t *testing.T) {
	var buf bytes.Buffer

	logger, err := New(&buf, Options{})
	require.NoError(t, err)

	logger.Info().Msg("hidden")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewRejectsUnknownLevelAndFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Options{Level: "loud"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse log level")

	_, err = New(&bytes.Buffer{}, Options{Format: "xml"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported log format")
}
