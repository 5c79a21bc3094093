package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newWithWriter(&buf, "info", false)
	require.NoError(t, err)

	logger.Debug().Msg("hidden")
	logger.Info().Int("panel", 2).Msg("sampled")

	var event map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &event))
	assert.Equal(t, "info", event["level"])
	assert.Equal(t, "sampled", event["message"])
	assert.Equal(t, "solard", event["service"])
	assert.EqualValues(t, 2, event["panel"])
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("loud", false)
	assert.Error(t, err)
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newWithWriter(&buf, "debug", true)
	require.NoError(t, err)

	logger.Debug().Msg("console output")
	assert.Contains(t, buf.String(), "console output")
	assert.False(t, json.Valid(buf.Bytes()))
}
