package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"restaurant-system/internal/connections/rabbitmq"
	"restaurant-system/internal/domain"
)

type publisher interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) error
}

// AMQP publishes events as JSON to the notifications fanout exchange.
type AMQP struct {
	pub     publisher
	source  string
	timeout time.Duration
}

func NewAMQP(pub publisher, source string) *AMQP {
	return &AMQP{pub: pub, source: source, timeout: 5 * time.Second}
}

func (a *AMQP) Notify(ctx context.Context, ev domain.Event) error {
	body, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", ev.Type, err)
	}

	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	msg := amqp.Publishing{
		DeliveryMode:  amqp.Persistent,
		ContentType:   "application/json",
		MessageId:     uuid.NewString(),
		CorrelationId: ev.OrderID,
		Timestamp:     ev.OccurredAt,
		Type:          string(ev.Type),
		Headers: amqp.Table{
			"x-source": a.source,
			"x-role":   ev.Role,
		},
		Body: body,
	}
	if err := a.pub.Publish(ctx, rabbitmq.NotificationsExchange, "", msg); err != nil {
		return fmt.Errorf("publish %s event: %w", ev.Type, err)
	}
	return nil
}
