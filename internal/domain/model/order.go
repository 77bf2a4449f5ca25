package model

import (
	"errors"
	"fmt"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
)

var ErrAmbiguousLine = errors.New("order line must carry exactly one of drink or breakfast")

// Order is the wire form of an order: each line names its item variant.
type Order struct {
	ID    string `json:"id,omitempty"`
	Items []Line `json:"items"`
}

type Line struct {
	Drink     *domain.Drink     `json:"drink,omitempty"`
	Breakfast *domain.Breakfast `json:"breakfast,omitempty"`
}

func DrinkLine(d domain.Drink) Line {
	return Line{Drink: &d}
}

func BreakfastLine(b domain.Breakfast) Line {
	return Line{Breakfast: &b}
}

func (l Line) Item() (domain.OrderItem, error) {
	switch {
	case l.Drink != nil && l.Breakfast == nil:
		return *l.Drink, nil
	case l.Breakfast != nil && l.Drink == nil:
		return *l.Breakfast, nil
	}
	return nil, ErrAmbiguousLine
}

// OrderItems converts the wire lines into priceable items, in order.
func (o Order) OrderItems() ([]domain.OrderItem, error) {
	items := make([]domain.OrderItem, 0, len(o.Items))
	for i, line := range o.Items {
		item, err := line.Item()
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}
		items = append(items, item)
	}
	return items, nil
}
