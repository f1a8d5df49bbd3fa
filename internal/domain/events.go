package domain

import "time"

type EventType string

const (
	EventOrderPlaced      EventType = "order.placed"
	EventFoodPrepared     EventType = "food.prepared"
	EventOrderDelivered   EventType = "order.delivered"
	EventPaymentProcessed EventType = "payment.processed"
	EventOrderTaken       EventType = "order.taken"
	EventOrderServed      EventType = "order.served"
)

// Event is a notification. It carries the identifiers it refers to and
// the human-readable line; it changes no state.
type Event struct {
	Type         EventType `json:"event_type"`
	OrderID      string    `json:"order_id,omitempty"`
	CustomerName string    `json:"customer_name,omitempty"`
	PaymentID    string    `json:"payment_id,omitempty"`
	Actor        string    `json:"actor"`
	Role         string    `json:"role"`
	Message      string    `json:"message"`
	OccurredAt   time.Time `json:"occurred_at"`
}

func OrderEvent(t EventType, o *Order, actor, role, msg string) Event {
	return Event{
		Type:         t,
		OrderID:      o.ID,
		CustomerName: o.Customer.Name,
		Actor:        actor,
		Role:         role,
		Message:      msg,
		OccurredAt:   time.Now().UTC(),
	}
}

func PaymentEvent(p Payment, actor, role, msg string) Event {
	return Event{
		Type:       EventPaymentProcessed,
		PaymentID:  p.ID,
		Actor:      actor,
		Role:       role,
		Message:    msg,
		OccurredAt: time.Now().UTC(),
	}
}
