package app

import (
	"context"

	"github.com/shopspring/decimal"

	"restaurant-system/internal/domain"
	"restaurant-system/internal/restaurant"
	"restaurant-system/internal/staff"
)

// RunDemo walks one order through the restaurant: menu, order,
// recompute, preparation, delivery, payment and the staff operations.
// It returns the order total.
func (a *App) RunDemo(ctx context.Context) (decimal.Decimal, error) {
	sushi := domain.NewDish("Sushi", decimal.RequireFromString("15.99"), "Fresh sushi rolls with salmon and avocado")
	pasta := domain.NewDish("Pasta", decimal.RequireFromString("12.99"), "Spaghetti with marinara sauce and meatballs")
	r := restaurant.New("Trattoria Zoraiki", "Budapest", domain.NewMenu(sushi, pasta), a.Notifier)

	customer := domain.NewCustomer("Mohammed Zoraiki", "egytem ter 1", "+36204935984")
	order := domain.NewOrder("98765", customer)
	order.AddItem(domain.NewItem(sushi, 3))
	order.AddItem(domain.NewItem(pasta, 2))

	server := staff.New("Alice", "Server", a.Notifier)
	courier := staff.NewDelivery("Bob", "Delivery Driver", a.Notifier)
	r.Hire(server)
	r.Hire(courier)

	if err := r.PlaceOrder(ctx, order); err != nil {
		return decimal.Zero, err
	}
	total := order.RecomputeTotal(a.Ledger)
	a.Log.Info("order_total_computed", map[string]any{
		"order_id":     order.ID,
		"total":        total.StringFixed(2),
		"ledger_total": a.Ledger.Total().StringFixed(2),
	})

	payment := domain.NewPayment("54321", order.Total(), "Credit Card")
	steps := []func() error{
		func() error { return r.PrepareFood(ctx, order) },
		func() error { return restaurant.Dispatch(ctx, r, order) },
		func() error { return r.ProcessPayment(ctx, payment) },
		func() error { return server.TakeOrder(ctx, order) },
		func() error { return server.ServeOrder(ctx, order) },
		func() error { return server.ProcessPayment(ctx, payment) },
		func() error { return restaurant.Dispatch(ctx, courier, order) },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return total, err
		}
	}
	return total, nil
}
