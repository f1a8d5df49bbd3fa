package notificator

import (
	"context"
	"fmt"
	"io"

	"restaurant-system/internal/common/logger"
	"restaurant-system/internal/connections/rabbitmq"
	"restaurant-system/internal/microservices/notificator/service"
)

// Start consumes the notifications queue and prints each event to out
// until ctx is canceled.
func Start(ctx context.Context, rmqClient *rabbitmq.Client, prefetch int, out io.Writer, lg *logger.Logger) error {
	if err := rmqClient.DeclareNotifications(); err != nil {
		return err
	}

	const consumer = "notificator"
	msgs, err := rmqClient.Consume(rabbitmq.NotificationsQueue, consumer, prefetch)
	if err != nil {
		return fmt.Errorf("consume %s: %w", rabbitmq.NotificationsQueue, err)
	}
	lg.Info("subscriber_started", map[string]any{"queue": rabbitmq.NotificationsQueue, "prefetch": prefetch})

	svc := service.NewNotificatorService(out, lg)
	err = svc.Consume(ctx, msgs)
	_ = rmqClient.Cancel(consumer)
	lg.Info("graceful_shutdown", nil)
	return err
}
