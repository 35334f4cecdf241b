package conversion

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"math"
	"time"

	"github.com/ahrav/go-skyangle/pkg/activity"
	"github.com/ahrav/go-skyangle/pkg/events"
)

// Event identifiers.
const (
	EventBatchConverted = "conversion.batch_converted"
	eventSource         = "conversion-activity"
)

// batchConvertedPolicy retries delivery with a total backoff of 700ms, well
// inside the activity heartbeat timeout.
var batchConvertedPolicy = activity.EmitPolicy{MaxAttempts: 4, Backoff: 100 * time.Millisecond}

// BatchConvertedPayload is the payload of EventBatchConverted.
type BatchConvertedPayload struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Precision int    `json:"precision"`
	Count     int    `json:"count"`
}

// EventEmitter builds and emits conversion events.
type EventEmitter struct {
	base activity.BaseActivities
}

// NewEventEmitter creates an EventEmitter using base for delivery.
func NewEventEmitter(base activity.BaseActivities) *EventEmitter {
	return &EventEmitter{base: base}
}

// EmitBatchConverted emits EventBatchConverted. Emission is best-effort.
func (e *EventEmitter) EmitBatchConverted(
	ctx context.Context,
	wfCtx activity.WorkflowContext,
	input ConvertAnglesInput,
	output *ConvertAnglesOutput,
) {
	from, _ := input.units()
	payload := BatchConvertedPayload{
		From:      from.String(),
		To:        output.Unit,
		Precision: precisionBits(input.Precision),
		Count:     output.Count,
	}

	env, err := events.NewEnvelope(
		EventBatchConverted,
		eventSource,
		idempotencyKey(wfCtx, input),
		wfCtx.WorkflowID,
		wfCtx.RunID,
		payload,
	)
	if err != nil {
		activity.SafeLogError(ctx, "Failed to build BatchConverted event", append(wfCtx.LogFields(), "error", err)...)
		return
	}

	e.base.EmitEvent(ctx, wfCtx, env, batchConvertedPolicy)
}

// idempotencyKey is stable across retries of the same activity on the same
// input. Unit aliases hash alike.
func idempotencyKey(wfCtx activity.WorkflowContext, input ConvertAnglesInput) string {
	h := sha256.New()
	h.Write([]byte(wfCtx.WorkflowID))
	h.Write([]byte{0})
	h.Write([]byte(wfCtx.ActivityID))
	h.Write([]byte{0})
	from, to := input.units()
	h.Write([]byte{byte(from), byte(to)})

	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(precisionBits(input.Precision)))
	h.Write(buf[:])
	for _, v := range input.Values {
		binary.BigEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	return hex.EncodeToString(h.Sum(nil))
}
