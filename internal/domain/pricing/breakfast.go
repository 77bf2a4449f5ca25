package pricing

import (
	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/shopspring/decimal"
)

var two = decimal.NewFromInt(2)

// BreakfastBreakdown prices a breakfast as twice its base plus the sandwich
// and bagel adjustments.
func BreakfastBreakdown(b domain.Breakfast) (Breakdown, error) {
	sandwich, err := SandwichAdjustment(b.Sandwich)
	if err != nil {
		return nil, err
	}
	bagel, err := BagelAdjustment(b.Bagel)
	if err != nil {
		return nil, err
	}
	return Breakdown{
		{Name: "base x2", Amount: b.BasePrice.Mul(two)},
		{Name: "sandwiches." + string(b.Sandwich), Amount: sandwich},
		{Name: "bagels." + string(b.Bagel), Amount: bagel},
	}, nil
}

func BreakfastPrice(b domain.Breakfast) (decimal.Decimal, error) {
	bd, err := BreakfastBreakdown(b)
	if err != nil {
		return decimal.Zero, err
	}
	return bd.Total(), nil
}
