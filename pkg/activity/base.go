// Package activity provides infrastructure shared by Temporal activity
// implementations: workflow context extraction, safe logging, heartbeats,
// and best-effort event emission.
package activity

import (
	"context"
	"time"

	"go.temporal.io/sdk/activity"

	"github.com/ahrav/go-skyangle/pkg/events"
)

// LocalWorkflowID is reported for calls made outside a Temporal activity,
// such as direct invocations from tests or the CLI.
const LocalWorkflowID = "local"

// WorkflowContext contains metadata extracted from the Temporal activity context.
type WorkflowContext struct {
	WorkflowID string
	RunID      string
	ActivityID string
	Attempt    int32
}

// LogFields returns the context as key/value pairs for SafeLog.
func (w WorkflowContext) LogFields() []any {
	return []any{
		"workflow_id", w.WorkflowID,
		"run_id", w.RunID,
		"activity_id", w.ActivityID,
		"attempt", w.Attempt,
	}
}

// EmitPolicy bounds redelivery of an event to a sink. Events carry an
// idempotency key, so a redelivered event is harmless to the sink.
type EmitPolicy struct {
	MaxAttempts int
	// Backoff is the wait before the second attempt; it doubles after each
	// further failure.
	Backoff time.Duration
}

// BaseActivities provides common infrastructure for all activity types.
// It works both inside a Temporal activity and in plain unit tests.
type BaseActivities struct {
	eventSink events.EventSink
}

// NewBaseActivities creates a BaseActivities emitting to sink.
// A nil sink disables event emission.
func NewBaseActivities(sink events.EventSink) BaseActivities {
	return BaseActivities{eventSink: sink}
}

// GetWorkflowContext extracts workflow execution details from ctx. Outside
// an activity it reports LocalWorkflowID on the first attempt.
func (b *BaseActivities) GetWorkflowContext(ctx context.Context) WorkflowContext {
	if !activity.IsActivity(ctx) {
		return WorkflowContext{WorkflowID: LocalWorkflowID, Attempt: 1}
	}

	info := activity.GetInfo(ctx)
	return WorkflowContext{
		WorkflowID: info.WorkflowExecution.ID,
		RunID:      info.WorkflowExecution.RunID,
		ActivityID: info.ActivityID,
		Attempt:    info.Attempt,
	}
}

// EmitEvent delivers envelope under policy and never returns an error.
// Failures are logged with the workflow context; cancellation of ctx stops
// redelivery.
func (b *BaseActivities) EmitEvent(
	ctx context.Context,
	wfCtx WorkflowContext,
	envelope events.Envelope,
	policy EmitPolicy,
) {
	if b.eventSink == nil {
		return
	}
	attempts := max(policy.MaxAttempts, 1)
	fields := append(wfCtx.LogFields(), "event_type", envelope.Type)

	delay := policy.Backoff
	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(delay):
				delay *= 2
			case <-ctx.Done():
				SafeLogError(ctx, "Event emission cancelled", append(fields, "error", ctx.Err())...)
				return
			}
		}

		if lastErr = b.eventSink.Append(ctx, envelope); lastErr == nil {
			SafeLog(ctx, "Event emitted", append(fields,
				"idempotency_key", envelope.IdempotencyKey,
				"delivery_attempt", attempt)...)
			return
		}
	}

	SafeLogError(ctx, "Event emission failed", append(fields,
		"delivery_attempts", attempts,
		"error", lastErr)...)
}

// RecordHeartbeat records a heartbeat; it is a no-op outside an activity context.
func (b *BaseActivities) RecordHeartbeat(ctx context.Context, details ...any) {
	RecordHeartbeat(ctx, details...)
}

// SafeLog logs at INFO through the activity logger. Outside an activity the
// call is dropped.
func SafeLog(ctx context.Context, msg string, keyvals ...any) {
	if activity.IsActivity(ctx) {
		activity.GetLogger(ctx).Info(msg, keyvals...)
	}
}

// SafeLogError is SafeLog at ERROR level.
func SafeLogError(ctx context.Context, msg string, keyvals ...any) {
	if activity.IsActivity(ctx) {
		activity.GetLogger(ctx).Error(msg, keyvals...)
	}
}

// RecordHeartbeat records activity progress; it is a no-op outside an activity context.
func RecordHeartbeat(ctx context.Context, details ...any) {
	if activity.IsActivity(ctx) {
		activity.RecordHeartbeat(ctx, details...)
	}
}
