package conversion

import (
	"context"
	"sync"

	"github.com/ahrav/go-skyangle/pkg/activity"
	"github.com/ahrav/go-skyangle/pkg/events"
)

// CapturingEventSink records every envelope it receives.
type CapturingEventSink struct {
	mu     sync.Mutex
	events []events.Envelope
}

func NewCapturingEventSink() *CapturingEventSink {
	return &CapturingEventSink{}
}

func (s *CapturingEventSink) Append(_ context.Context, env events.Envelope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, env)
	return nil
}

func (s *CapturingEventSink) Events() []events.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]events.Envelope(nil), s.events...)
}

func newTestActivities() (*Activities, *CapturingEventSink) {
	sink := NewCapturingEventSink()
	return NewActivities(activity.NewBaseActivities(sink)), sink
}

func sequence(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = float64(i) * 0.5
	}
	return xs
}
