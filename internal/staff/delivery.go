package staff

import (
	"context"
	"fmt"

	"restaurant-system/internal/domain"
	"restaurant-system/internal/notify"
)

// DeliveryStaff is a Staff member whose deliveries go to the customer's
// address.
type DeliveryStaff struct {
	*Staff
}

func NewDelivery(name, position string, n notify.Notifier) *DeliveryStaff {
	return &DeliveryStaff{Staff: New(name, position, n)}
}

func (d *DeliveryStaff) DeliverOrder(ctx context.Context, o *domain.Order) error {
	return d.notify(ctx, domain.OrderEvent(domain.EventOrderDelivered, o, d.name, RoleDelivery,
		fmt.Sprintf("Delivering order %s to %s at %s", o.ID, o.Customer.Name, o.Customer.Address)))
}

var (
	_ Deliverer = (*Staff)(nil)
	_ Deliverer = (*DeliveryStaff)(nil)
	_ Member    = (*DeliveryStaff)(nil)
)
