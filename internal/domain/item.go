package domain

import "github.com/shopspring/decimal"

// Item is a line item. Quantity is not validated: zero or negative
// values produce zero or negative subtotals.
type Item struct {
	Dish     Dish
	Quantity int
}

func NewItem(dish Dish, quantity int) Item {
	return Item{Dish: dish, Quantity: quantity}
}

func (i Item) Subtotal() decimal.Decimal {
	return i.Dish.Price().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func (i Item) Equal(o Item) bool {
	return i.Quantity == o.Quantity && i.Dish.Equal(o.Dish)
}
