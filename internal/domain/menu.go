package domain

import "fmt"

type Menu struct {
	dishes []Dish
}

func NewMenu(dishes ...Dish) *Menu {
	m := &Menu{}
	for _, d := range dishes {
		m.Add(d)
	}
	return m
}

// Add appends the dish. Duplicates are allowed.
func (m *Menu) Add(d Dish) {
	m.dishes = append(m.dishes, d)
}

// Remove deletes the first dish equal to d.
func (m *Menu) Remove(d Dish) error {
	for i := range m.dishes {
		if m.dishes[i].Equal(d) {
			m.dishes = append(m.dishes[:i], m.dishes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("dish %q on menu: %w", d.Name(), ErrNotFound)
}

func (m *Menu) Dishes() []Dish {
	out := make([]Dish, len(m.dishes))
	copy(out, m.dishes)
	return out
}

func (m *Menu) Len() int { return len(m.dishes) }
