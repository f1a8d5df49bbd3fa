package domain

import "github.com/shopspring/decimal"

// Payment is a passive record. It is not linked to the order it pays
// for; callers keep that association themselves.
type Payment struct {
	ID     string
	Amount decimal.Decimal
	Method string
}

func NewPayment(id string, amount decimal.Decimal, method string) Payment {
	return Payment{ID: id, Amount: amount, Method: method}
}
