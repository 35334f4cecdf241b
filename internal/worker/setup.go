package worker

import (
	"context"
	"fmt"
	"log/slog"

	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/log"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/ahrav/go-skyangle/internal/config"
	"github.com/ahrav/go-skyangle/pkg/events"
)

// Dialer opens a Temporal client. client.Dial satisfies it.
type Dialer func(options client.Options) (client.Client, error)

// WorkerFactory builds a worker polling taskQueue. sdkworker.New satisfies it.
type WorkerFactory func(c client.Client, taskQueue string, options sdkworker.Options) sdkworker.Worker

// Deps are the Temporal constructors Run uses. Nil fields default to
// client.Dial and sdkworker.New.
type Deps struct {
	Dial      Dialer
	NewWorker WorkerFactory
}

// ClientOptions builds Temporal client options from cfg, routing SDK logs
// through logger.
func ClientOptions(cfg *config.Config, logger *slog.Logger) client.Options {
	return client.Options{
		HostPort:  cfg.TemporalHostPort,
		Namespace: cfg.Namespace,
		Logger:    log.NewStructuredLogger(logger),
	}
}

// Run connects to Temporal, registers everything on cfg.TaskQueue and
// processes tasks until ctx is done.
func Run(ctx context.Context, cfg *config.Config, logger *slog.Logger, deps Deps) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if logger == nil {
		logger = slog.Default()
	}
	if deps.Dial == nil {
		deps.Dial = client.Dial
	}
	if deps.NewWorker == nil {
		deps.NewWorker = sdkworker.New
	}

	c, err := deps.Dial(ClientOptions(cfg, logger))
	if err != nil {
		return fmt.Errorf("failed to connect to temporal at %s: %w", cfg.TemporalHostPort, err)
	}
	defer c.Close()

	w := deps.NewWorker(c, cfg.TaskQueue, sdkworker.Options{})
	RegisterAll(w, events.NewLogEventSink(logger))

	logger.Info("worker starting",
		"host", cfg.TemporalHostPort,
		"namespace", cfg.Namespace,
		"task_queue", cfg.TaskQueue)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	stop := make(chan any)
	go func() {
		<-ctx.Done()
		close(stop)
	}()

	if err := w.Run(stop); err != nil {
		return fmt.Errorf("worker stopped: %w", err)
	}
	logger.Info("worker stopped")
	return nil
}
