package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"restaurant-system/internal/app"
	"restaurant-system/internal/microservices/notificator"
)

func subscribeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "subscribe",
		Short: "Print notifications published to RabbitMQ",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.RabbitMQ.Enabled {
				return errors.New("subscribe needs rabbitmq.enabled in the config")
			}
			rmq, err := app.DialRabbit(cfg.RabbitMQ)
			if err != nil {
				return err
			}
			defer rmq.Close()

			lg.Info("service_started", map[string]any{"service": cfg.Service, "command": "subscribe"})
			return notificator.Start(cmd.Context(), rmq, cfg.RabbitMQ.Prefetch, cmd.OutOrStdout(), lg.With("notification-subscriber"))
		},
	}
}
