// Package conversion implements the Temporal activity that converts batches
// of angle values between units.
package conversion

import (
	"context"
	"time"

	"go.temporal.io/sdk/temporal"

	"github.com/ahrav/go-skyangle/pkg/activity"
	"github.com/ahrav/go-skyangle/pkg/skyangle"
)

const (
	// ConvertAnglesActivity is the registered name of Activities.ConvertAngles.
	ConvertAnglesActivity = "ConvertAngles"

	// ValidationErrorType is the Temporal application error type for bad input.
	ValidationErrorType = "Validation"
)

// Activities handles conversion-specific Temporal activities.
type Activities struct {
	activity.BaseActivities
	events *EventEmitter
}

// NewActivities creates conversion activities on top of base.
func NewActivities(base activity.BaseActivities) *Activities {
	return &Activities{
		BaseActivities: base,
		events:         NewEventEmitter(base),
	}
}

// ConvertAngles re-expresses every value in input.Values from input.From to
// input.To, routing through radians. Values are processed in chunks of
// ChunkSize with a heartbeat after each chunk carrying the processed count.
// Validation failures are non-retryable.
func (a *Activities) ConvertAngles(
	ctx context.Context,
	input ConvertAnglesInput,
) (*ConvertAnglesOutput, error) {
	if err := input.Validate(); err != nil {
		return nil, nonRetryable(err, "invalid input")
	}

	start := time.Now()
	wfCtx := a.GetWorkflowContext(ctx)
	from, to := input.units()

	activity.SafeLog(ctx, "Starting ConvertAngles activity", append(wfCtx.LogFields(),
		"from", from.String(),
		"to", to.String(),
		"precision", precisionBits(input.Precision),
		"count", len(input.Values))...)

	out := make([]float64, 0, len(input.Values))
	for lo := 0; lo < len(input.Values); lo += ChunkSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		hi := min(lo+ChunkSize, len(input.Values))
		out = append(out, convertChunk(from, to, input.Precision, input.Values[lo:hi])...)

		a.RecordHeartbeat(ctx, hi)
	}

	output := &ConvertAnglesOutput{
		Values: out,
		Unit:   to.String(),
		Count:  len(out),
	}

	a.events.EmitBatchConverted(ctx, wfCtx, input, output)

	activity.SafeLog(ctx, "ConvertAngles completed", append(wfCtx.LogFields(),
		"count", output.Count,
		"unit", output.Unit,
		"processing_time_ms", time.Since(start).Milliseconds())...)

	return output, nil
}

// convertChunk converts xs at the requested precision.
func convertChunk(from, to skyangle.Unit, precision int, xs []float64) []float64 {
	if precisionBits(precision) == Precision64 {
		return skyangle.ConvertSlice(from, to, xs)
	}

	narrow := make([]float32, len(xs))
	for i, x := range xs {
		narrow[i] = float32(x)
	}
	converted := skyangle.ConvertSlice(from, to, narrow)

	wide := make([]float64, len(converted))
	for i, x := range converted {
		wide[i] = float64(x)
	}
	return wide
}

func precisionBits(p int) int {
	if p == 0 {
		return Precision64
	}
	return p
}

func nonRetryable(cause error, msg string) error {
	return temporal.NewNonRetryableApplicationError(msg, ValidationErrorType, cause)
}
