package events

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEnvelope(t *testing.T) {
	payload := map[string]any{"count": 3, "unit": "mas"}

	env, err := NewEnvelope("conversion.batch_converted", "conversion-activity", "key-1", "wf-1", "run-1", payload)
	require.NoError(t, err)

	_, err = uuid.Parse(env.ID)
	assert.NoError(t, err, "ID should be a UUID")
	assert.Equal(t, "conversion.batch_converted", env.Type)
	assert.Equal(t, "conversion-activity", env.Source)
	assert.Equal(t, SchemaVersion, env.Version)
	assert.Equal(t, "key-1", env.IdempotencyKey)
	assert.Equal(t, "wf-1", env.WorkflowID)
	assert.Equal(t, "run-1", env.RunID)
	assert.False(t, env.Timestamp.IsZero())
	assert.JSONEq(t, `{"count":3,"unit":"mas"}`, string(env.Payload))
}

func TestNewEnvelope_UniqueIDs(t *testing.T) {
	a, err := NewEnvelope("t", "s", "k", "w", "r", nil)
	require.NoError(t, err)
	b, err := NewEnvelope("t", "s", "k", "w", "r", nil)
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, a.IdempotencyKey, b.IdempotencyKey)
}

func TestNewEnvelope_UnmarshalablePayload(t *testing.T) {
	_, err := NewEnvelope("conversion.batch_converted", "s", "k", "w", "r", math.NaN())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "conversion.batch_converted")
}

func TestNoOpEventSink(t *testing.T) {
	sink := NewNoOpEventSink()
	assert.NoError(t, sink.Append(context.Background(), Envelope{Type: "anything"}))
}

func TestLogEventSink(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	sink := NewLogEventSink(logger)

	env, err := NewEnvelope("conversion.batch_converted", "conversion-activity", "key-9", "wf", "run", map[string]int{"count": 2})
	require.NoError(t, err)
	require.NoError(t, sink.Append(context.Background(), env))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "event", record["msg"])
	assert.Equal(t, "conversion.batch_converted", record["event_type"])
	assert.Equal(t, "key-9", record["idempotency_key"])
	assert.Equal(t, `{"count":2}`, record["payload"])
}

func TestLogEventSink_NilLogger(t *testing.T) {
	sink := NewLogEventSink(nil)
	require.NotNil(t, sink)
	assert.NoError(t, sink.Append(context.Background(), Envelope{}))
}
