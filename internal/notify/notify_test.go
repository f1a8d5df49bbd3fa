package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restaurant-system/internal/connections/rabbitmq"
	"restaurant-system/internal/domain"
)

func testEvent() domain.Event {
	o := domain.NewOrder("98765", domain.NewCustomer("Mohammed Zoraiki", "egytem ter 1", "+36204935984"))
	return domain.OrderEvent(domain.EventOrderPlaced, o, "Trattoria", "restaurant", "Placing order 98765 for Mohammed Zoraiki")
}

func TestWriter_PrintsMessageLine(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.Notify(context.Background(), testEvent()))
	assert.Equal(t, "Placing order 98765 for Mohammed Zoraiki\n", buf.String())
}

type recorder struct {
	mu     sync.Mutex
	events []domain.Event
	err    error
}

func (r *recorder) Notify(_ context.Context, ev domain.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func TestFanout_DeliversToEveryTarget(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	f := NewFanout(a, b)

	require.NoError(t, f.Notify(context.Background(), testEvent()))
	assert.Len(t, a.events, 1)
	assert.Len(t, b.events, 1)
	assert.Equal(t, 2, f.Len())
}

func TestFanout_JoinsErrorsAndKeepsGoing(t *testing.T) {
	errA := errors.New("broker down")
	errC := errors.New("db down")
	a, b, c := &recorder{err: errA}, &recorder{}, &recorder{err: errC}

	err := NewFanout(a, b, c).Notify(context.Background(), testEvent())

	require.Error(t, err)
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errC)
	assert.Len(t, b.events, 1, "healthy target still receives the event")
}

func TestFanout_Empty(t *testing.T) {
	assert.NoError(t, NewFanout().Notify(context.Background(), testEvent()))
}

type fakePublisher struct {
	exchange, key string
	msg           amqp.Publishing
	err           error
}

func (f *fakePublisher) Publish(_ context.Context, exchange, key string, msg amqp.Publishing) error {
	f.exchange, f.key, f.msg = exchange, key, msg
	return f.err
}

func TestAMQP_PublishesJSONEvent(t *testing.T) {
	pub := &fakePublisher{}
	ev := testEvent()

	require.NoError(t, NewAMQP(pub, "demo").Notify(context.Background(), ev))

	assert.Equal(t, rabbitmq.NotificationsExchange, pub.exchange)
	assert.Empty(t, pub.key)
	assert.Equal(t, amqp.Persistent, pub.msg.DeliveryMode)
	assert.Equal(t, "application/json", pub.msg.ContentType)
	assert.Equal(t, "98765", pub.msg.CorrelationId)
	assert.Equal(t, "order.placed", pub.msg.Type)
	assert.NotEmpty(t, pub.msg.MessageId)
	assert.Equal(t, "demo", pub.msg.Headers["x-source"])

	var got domain.Event
	require.NoError(t, json.Unmarshal(pub.msg.Body, &got))
	assert.Equal(t, ev.Message, got.Message)
	assert.Equal(t, ev.CustomerName, got.CustomerName)
}

func TestAMQP_WrapsPublishError(t *testing.T) {
	nack := errors.New("publish NACK from broker")
	err := NewAMQP(&fakePublisher{err: nack}, "demo").Notify(context.Background(), testEvent())

	assert.ErrorIs(t, err, nack)
	assert.Contains(t, err.Error(), "order.placed")
}

func TestFunc(t *testing.T) {
	called := false
	f := Func(func(context.Context, domain.Event) error { called = true; return nil })

	require.NoError(t, f.Notify(context.Background(), testEvent()))
	assert.True(t, called)
	assert.NoError(t, Discard.Notify(context.Background(), testEvent()))
}
