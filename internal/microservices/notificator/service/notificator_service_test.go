package service

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-system/internal/common/logger"
	"restaurant-system/internal/domain"
)

type acks struct {
	acked, nacked, rejected []uint64
}

func (a *acks) Ack(tag uint64, _ bool) error          { a.acked = append(a.acked, tag); return nil }
func (a *acks) Nack(tag uint64, _ bool, _ bool) error { a.nacked = append(a.nacked, tag); return nil }
func (a *acks) Reject(tag uint64, _ bool) error       { a.rejected = append(a.rejected, tag); return nil }

func delivery(t *testing.T, a *acks, tag uint64, body []byte) amqp.Delivery {
	t.Helper()
	return amqp.Delivery{Acknowledger: a, DeliveryTag: tag, Body: body}
}

func TestConsume_PrintsAndAcks(t *testing.T) {
	a := &acks{}
	o := domain.NewOrder("98765", domain.NewCustomer("Mohammed Zoraiki", "", ""))
	body, err := json.Marshal(domain.OrderEvent(domain.EventOrderPlaced, o, "Trattoria", "restaurant", "Placing order 98765 for Mohammed Zoraiki"))
	require.NoError(t, err)

	msgs := make(chan amqp.Delivery, 3)
	msgs <- delivery(t, a, 1, body)
	msgs <- delivery(t, a, 2, []byte("not json"))
	msgs <- delivery(t, a, 3, []byte(`{"message":"no type"}`))
	close(msgs)

	var out bytes.Buffer
	svc := NewNotificatorService(&out, logger.NewWriter("test", io.Discard))
	require.NoError(t, svc.Consume(context.Background(), msgs))

	assert.Equal(t, "Placing order 98765 for Mohammed Zoraiki\n", out.String())
	assert.Equal(t, []uint64{1}, a.acked)
	assert.Equal(t, []uint64{2, 3}, a.rejected)
	assert.Empty(t, a.nacked)
}

func TestConsume_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc := NewNotificatorService(io.Discard, logger.NewWriter("test", io.Discard))
	assert.NoError(t, svc.Consume(ctx, make(chan amqp.Delivery)))
}
