// Package events provides the event envelope emitted by conversion activities
// and the EventSink interface that receives them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SchemaVersion is the version stamped on every envelope produced by NewEnvelope.
const SchemaVersion = "1.0.0"

// Envelope wraps an event payload with routing and correlation metadata.
type Envelope struct {
	// ID uniquely identifies this event instance.
	ID string `json:"id"`

	// Type identifies the event for routing, e.g. "conversion.batch_converted".
	Type string `json:"type"`

	// Source identifies the emitting component, e.g. "conversion-activity".
	Source string `json:"source"`

	// Version enables schema evolution.
	Version string `json:"version"`

	Timestamp time.Time `json:"timestamp"`

	// IdempotencyKey lets consumers drop duplicates produced by activity retries.
	IdempotencyKey string `json:"idempotency_key"`

	WorkflowID string `json:"workflow_id"`
	RunID      string `json:"run_id"`

	// Payload contains the event data as JSON; its schema depends on Type.
	Payload json.RawMessage `json:"payload"`
}

// NewEnvelope marshals payload and wraps it with fresh metadata.
func NewEnvelope(typ, source, idempotencyKey, workflowID, runID string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, fmt.Errorf("marshal %s payload: %w", typ, err)
	}
	return Envelope{
		ID:             uuid.NewString(),
		Type:           typ,
		Source:         source,
		Version:        SchemaVersion,
		Timestamp:      time.Now().UTC(),
		IdempotencyKey: idempotencyKey,
		WorkflowID:     workflowID,
		RunID:          runID,
		Payload:        raw,
	}, nil
}

// EventSink receives envelopes with best-effort delivery.
// Callers must not fail their primary operation because Append failed.
type EventSink interface {
	Append(ctx context.Context, envelope Envelope) error
}

// NoOpEventSink discards every event.
type NoOpEventSink struct{}

// Append implements EventSink.
func (n *NoOpEventSink) Append(_ context.Context, _ Envelope) error {
	return nil
}

// NewNoOpEventSink creates a sink that discards events.
func NewNoOpEventSink() EventSink {
	return &NoOpEventSink{}
}

// LogEventSink writes each event as a structured log record.
type LogEventSink struct {
	logger *slog.Logger
}

// NewLogEventSink creates a sink that logs through logger, or slog.Default when nil.
func NewLogEventSink(logger *slog.Logger) EventSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogEventSink{logger: logger}
}

// Append implements EventSink.
func (s *LogEventSink) Append(ctx context.Context, envelope Envelope) error {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "event",
		slog.String("event_id", envelope.ID),
		slog.String("event_type", envelope.Type),
		slog.String("source", envelope.Source),
		slog.String("idempotency_key", envelope.IdempotencyKey),
		slog.String("workflow_id", envelope.WorkflowID),
		slog.String("run_id", envelope.RunID),
		slog.String("payload", string(envelope.Payload)),
	)
	return nil
}
