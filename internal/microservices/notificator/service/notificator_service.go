package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	amqp "github.com/rabbitmq/amqp091-go"

	"restaurant-system/internal/common/logger"
	"restaurant-system/internal/domain"
)

type NotificatorService struct {
	out io.Writer
	lg  *logger.Logger
}

func NewNotificatorService(out io.Writer, lg *logger.Logger) *NotificatorService {
	return &NotificatorService{out: out, lg: lg}
}

// Consume prints every event arriving on msgs until ctx is done or the
// channel closes. Undecodable deliveries are rejected without requeue.
func (ns *NotificatorService) Consume(ctx context.Context, msgs <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				return nil
			}
			ns.handle(d)
		}
	}
}

func (ns *NotificatorService) handle(d amqp.Delivery) {
	var ev domain.Event
	if err := json.Unmarshal(d.Body, &ev); err != nil || ev.Type == "" {
		ns.lg.Warn("notification_rejected", err, map[string]any{"message_id": d.MessageId})
		_ = d.Reject(false)
		return
	}
	if _, err := fmt.Fprintln(ns.out, ev.Message); err != nil {
		ns.lg.Error("notification_print_failed", err, map[string]any{"message_id": d.MessageId})
		_ = d.Nack(false, true)
		return
	}
	ns.lg.Debug("notification_received", map[string]any{
		"event_type": ev.Type,
		"order_id":   ev.OrderID,
		"payment_id": ev.PaymentID,
		"role":       ev.Role,
	})
	_ = d.Ack(false)
}
