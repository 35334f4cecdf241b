package commands

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ahrav/go-skyangle/internal/worker"
)

func workerCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "worker",
		Short: "Run the Temporal worker serving batch conversions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return worker.Run(ctx, a.cfg, a.logger, worker.Deps{})
		},
	}

	cmd.Flags().StringVar(&a.cfg.TemporalHostPort, "host", a.cfg.TemporalHostPort, "Temporal frontend host:port")
	cmd.Flags().StringVar(&a.cfg.Namespace, "namespace", a.cfg.Namespace, "Temporal namespace")
	cmd.Flags().StringVar(&a.cfg.TaskQueue, "task-queue", a.cfg.TaskQueue, "Temporal task queue")
	return cmd
}
