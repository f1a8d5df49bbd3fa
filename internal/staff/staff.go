package staff

import (
	"context"
	"fmt"

	"restaurant-system/internal/domain"
	"restaurant-system/internal/notify"
)

const (
	RoleStaff    = "staff"
	RoleDelivery = "delivery_staff"
)

// Member is what a restaurant keeps on its roster.
type Member interface {
	Name() string
	Position() string
}

// Deliverer can announce that an order went out. Which implementation
// runs depends on who performed the delivery.
type Deliverer interface {
	DeliverOrder(ctx context.Context, o *domain.Order) error
}

type Staff struct {
	name     string
	position string
	notifier notify.Notifier
}

func New(name, position string, n notify.Notifier) *Staff {
	return &Staff{name: name, position: position, notifier: n}
}

func (s *Staff) Name() string     { return s.name }
func (s *Staff) Position() string { return s.position }

func (s *Staff) TakeOrder(ctx context.Context, o *domain.Order) error {
	return s.notify(ctx, domain.OrderEvent(domain.EventOrderTaken, o, s.name, RoleStaff,
		fmt.Sprintf("Taking order %s", o.ID)))
}

func (s *Staff) ServeOrder(ctx context.Context, o *domain.Order) error {
	return s.notify(ctx, domain.OrderEvent(domain.EventOrderServed, o, s.name, RoleStaff,
		fmt.Sprintf("Serving order %s", o.ID)))
}

func (s *Staff) ProcessPayment(ctx context.Context, p domain.Payment) error {
	return s.notify(ctx, domain.PaymentEvent(p, s.name, RoleStaff,
		fmt.Sprintf("Processing payment with ID: %s", p.ID)))
}

// DeliverOrder is the generic hand-over any staff member can perform.
func (s *Staff) DeliverOrder(ctx context.Context, o *domain.Order) error {
	return s.notify(ctx, domain.OrderEvent(domain.EventOrderDelivered, o, s.name, RoleStaff,
		fmt.Sprintf("%s (%s) handing over order %s to %s", s.name, s.position, o.ID, o.Customer.Name)))
}

func (s *Staff) notify(ctx context.Context, ev domain.Event) error {
	if err := s.notifier.Notify(ctx, ev); err != nil {
		return fmt.Errorf("%s %s: %w", s.name, ev.Type, err)
	}
	return nil
}
