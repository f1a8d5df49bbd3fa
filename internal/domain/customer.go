package domain

type Customer struct {
	Name        string
	Address     string
	PhoneNumber string
}

func NewCustomer(name, address, phone string) Customer {
	return Customer{Name: name, Address: address, PhoneNumber: phone}
}
