package restaurant

import (
	"context"
	"fmt"

	"restaurant-system/internal/domain"
	"restaurant-system/internal/notify"
	"restaurant-system/internal/staff"
)

const Role = "restaurant"

// Restaurant announces order lifecycle events on its own behalf,
// independent of any staff member.
type Restaurant struct {
	Name     string
	Location string
	Menu     *domain.Menu

	roster   []staff.Member
	notifier notify.Notifier
}

func New(name, location string, menu *domain.Menu, n notify.Notifier) *Restaurant {
	if menu == nil {
		menu = domain.NewMenu()
	}
	return &Restaurant{Name: name, Location: location, Menu: menu, notifier: n}
}

func (r *Restaurant) PlaceOrder(ctx context.Context, o *domain.Order) error {
	return r.notify(ctx, domain.OrderEvent(domain.EventOrderPlaced, o, r.Name, Role,
		fmt.Sprintf("Placing order %s for %s", o.ID, o.Customer.Name)))
}

func (r *Restaurant) PrepareFood(ctx context.Context, o *domain.Order) error {
	return r.notify(ctx, domain.OrderEvent(domain.EventFoodPrepared, o, r.Name, Role,
		fmt.Sprintf("Preparing food for order %s", o.ID)))
}

func (r *Restaurant) DeliverOrder(ctx context.Context, o *domain.Order) error {
	return r.notify(ctx, domain.OrderEvent(domain.EventOrderDelivered, o, r.Name, Role,
		fmt.Sprintf("Delivering order %s to %s", o.ID, o.Customer.Name)))
}

func (r *Restaurant) ProcessPayment(ctx context.Context, p domain.Payment) error {
	return r.notify(ctx, domain.PaymentEvent(p, r.Name, Role,
		fmt.Sprintf("Processing payment with ID: %s", p.ID)))
}

// Dispatch announces the delivery through whoever performed it.
func Dispatch(ctx context.Context, d staff.Deliverer, o *domain.Order) error {
	return d.DeliverOrder(ctx, o)
}

func (r *Restaurant) Hire(m staff.Member) {
	r.roster = append(r.roster, m)
}

// Dismiss removes the first roster member with the given name.
func (r *Restaurant) Dismiss(name string) error {
	for i, m := range r.roster {
		if m.Name() == name {
			r.roster = append(r.roster[:i], r.roster[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("staff member %q at %s: %w", name, r.Name, domain.ErrNotFound)
}

func (r *Restaurant) Staff() []staff.Member {
	out := make([]staff.Member, len(r.roster))
	copy(out, r.roster)
	return out
}

func (r *Restaurant) notify(ctx context.Context, ev domain.Event) error {
	if err := r.notifier.Notify(ctx, ev); err != nil {
		return fmt.Errorf("%s %s: %w", r.Name, ev.Type, err)
	}
	return nil
}

var _ staff.Deliverer = (*Restaurant)(nil)
