package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID       string
	Customer Customer

	items []Item
	total decimal.Decimal
}

// NewOrder returns an order with no items and a zero total.
func NewOrder(id string, customer Customer) *Order {
	return &Order{ID: id, Customer: customer, total: decimal.Zero}
}

func (o *Order) AddItem(it Item) {
	o.items = append(o.items, it)
}

// RemoveItem deletes the first item equal to it.
func (o *Order) RemoveItem(it Item) error {
	for i := range o.items {
		if o.items[i].Equal(it) {
			o.items = append(o.items[:i], o.items[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("item %q x%d in order %s: %w", it.Dish.Name(), it.Quantity, o.ID, ErrNotFound)
}

func (o *Order) Items() []Item {
	out := make([]Item, len(o.items))
	copy(out, o.items)
	return out
}

// Total is zero until RecomputeTotal has run.
func (o *Order) Total() decimal.Decimal { return o.total }

// SetTotal always fails. The total only changes through RecomputeTotal.
func (o *Order) SetTotal(decimal.Decimal) error {
	return fmt.Errorf("order %s total: use RecomputeTotal: %w", o.ID, ErrIllegalMutation)
}

// RecomputeTotal stores the sum of all item subtotals and adds it to l.
// Calling it again on the same order adds the total to l a second time.
func (o *Order) RecomputeTotal(l *Ledger) decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.items {
		total = total.Add(it.Subtotal())
	}
	o.total = total
	l.Add(total)
	return total
}
