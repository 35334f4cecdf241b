package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-skyangle/internal/conversion"
	"github.com/ahrav/go-skyangle/pkg/skyangle"
)

// BatchSize is the number of values handed to a single activity invocation.
// It keeps each activity payload well under Temporal's blob size limit.
const BatchSize = 50_000

// batchSize is BatchSize, overridable in tests.
var batchSize = BatchSize

// Activity timeouts and retry limits.
const (
	activityStartToClose = time.Minute
	activityHeartbeat    = 10 * time.Second
	activityMaxAttempts  = 3
)

// ConvertAnglesWorkflow converts input.Values by fanning them out to
// ConvertAngles activities in batches of BatchSize and concatenating the
// results in input order.
func ConvertAnglesWorkflow(
	ctx workflow.Context,
	input conversion.ConvertAnglesInput,
) (*conversion.ConvertAnglesOutput, error) {
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "convert-angles.v", workflow.DefaultVersion, currentVersion)

	if err := validate(input); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid conversion request",
			conversion.ValidationErrorType,
			err,
		)
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: activityStartToClose,
		HeartbeatTimeout:    activityHeartbeat,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:        time.Second,
			BackoffCoefficient:     2.0,
			MaximumInterval:        time.Minute,
			MaximumAttempts:        activityMaxAttempts,
			NonRetryableErrorTypes: []string{conversion.ValidationErrorType},
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	logger := workflow.GetLogger(ctx)
	batches := split(input)
	logger.Info("Converting angles", "count", len(input.Values), "batches", len(batches))

	futures := make([]workflow.Future, len(batches))
	for i, batch := range batches {
		futures[i] = workflow.ExecuteActivity(ctx, conversion.ConvertAnglesActivity, batch)
	}

	out := &conversion.ConvertAnglesOutput{Values: make([]float64, 0, len(input.Values))}
	for i, f := range futures {
		var res conversion.ConvertAnglesOutput
		if err := f.Get(ctx, &res); err != nil {
			logger.Error("Conversion batch failed", "batch", i, "error", err)
			return nil, err
		}
		out.Values = append(out.Values, res.Values...)
		out.Unit = res.Unit
	}
	out.Count = len(out.Values)

	// An empty request runs no activity; report the canonical target unit anyway.
	if len(batches) == 0 {
		to, _ := skyangle.ParseUnit(input.To)
		out.Unit = to.String()
	}

	return out, nil
}

// validate checks units and precision. The per-activity batch cap does not
// apply here because the workflow splits the input.
func validate(input conversion.ConvertAnglesInput) error {
	unbounded := input
	unbounded.Values = nil
	return unbounded.Validate()
}

func split(input conversion.ConvertAnglesInput) []conversion.ConvertAnglesInput {
	var batches []conversion.ConvertAnglesInput
	for lo := 0; lo < len(input.Values); lo += batchSize {
		hi := min(lo+batchSize, len(input.Values))
		batch := input
		batch.Values = input.Values[lo:hi]
		batches = append(batches, batch)
	}
	return batches
}
