package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_EmitsRoleAndTimestamp(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput("syncd", zerolog.DebugLevel, &buf)

	log.Info().Msg("hello")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "syncd", entry["role"])
	assert.Equal(t, "hello", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput("syncd", zerolog.DebugLevel, &buf).WithComponent("orchestrator")

	log.Info().Msg("run")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "orchestrator", entry["component"])
}

func TestFromContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	log := newWithOutput("syncd", zerolog.DebugLevel, &buf)

	ctx := log.WithContext(context.Background())
	FromContext(ctx).Info().Msg("scoped")

	assert.Contains(t, buf.String(), "scoped")
}

func TestNop_DiscardsOutput(t *testing.T) {
	log := Nop()
	log.Error().Msg("dropped")
}
