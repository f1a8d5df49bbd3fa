package domain

import "github.com/shopspring/decimal"

// Dish is a menu entry. It is shared by value between a Menu and the
// Items that reference it.
type Dish struct {
	name        string
	price       decimal.Decimal
	description string
}

func NewDish(name string, price decimal.Decimal, description string) Dish {
	return Dish{name: name, price: price, description: description}
}

func (d Dish) Name() string           { return d.name }
func (d Dish) Price() decimal.Decimal { return d.price }
func (d Dish) Description() string    { return d.description }

// Equal compares prices numerically, so 12.9 and 12.90 are the same dish.
func (d Dish) Equal(o Dish) bool {
	return d.name == o.name && d.description == o.description && d.price.Equal(o.price)
}
