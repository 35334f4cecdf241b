// Package worker exposes helpers to register workflows and activities with a
// Temporal worker and to run that worker.
package worker

import (
	sdkactivity "go.temporal.io/sdk/activity"
	sdkworker "go.temporal.io/sdk/worker"
	sdkworkflow "go.temporal.io/sdk/workflow"

	"github.com/ahrav/go-skyangle/internal/conversion"
	"github.com/ahrav/go-skyangle/internal/workflow"
	"github.com/ahrav/go-skyangle/pkg/activity"
	"github.com/ahrav/go-skyangle/pkg/events"
)

// ConvertAnglesWorkflowName is the registered name of workflow.ConvertAnglesWorkflow.
const ConvertAnglesWorkflowName = "ConvertAnglesWorkflow"

// Registry is the subset of a Temporal worker used for registration.
type Registry interface {
	RegisterWorkflowWithOptions(w any, options sdkworkflow.RegisterOptions)
	RegisterActivityWithOptions(a any, options sdkactivity.RegisterOptions)
}

var _ Registry = sdkworker.Worker(nil)

// RegisterAll registers every workflow and activity on r. Events emitted by
// activities go to sink; a nil sink disables emission. Call it once, before
// starting the worker.
func RegisterAll(r Registry, sink events.EventSink) {
	base := activity.NewBaseActivities(sink)
	conversionActivities := conversion.NewActivities(base)

	r.RegisterWorkflowWithOptions(workflow.ConvertAnglesWorkflow, sdkworkflow.RegisterOptions{
		Name: ConvertAnglesWorkflowName,
	})
	r.RegisterActivityWithOptions(conversionActivities.ConvertAngles, sdkactivity.RegisterOptions{
		Name: conversion.ConvertAnglesActivity,
	})
}
