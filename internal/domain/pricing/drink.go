package pricing

import (
	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/shopspring/decimal"
)

// DrinkBreakdown lists the base price and each adjustment of d. It does not
// validate the drink combination; callers run the guards first.
func DrinkBreakdown(d domain.Drink) (Breakdown, error) {
	size, err := SizeAdjustment(d.Size)
	if err != nil {
		return nil, err
	}
	kind, err := DrinkTypeAdjustment(d.DrinkType)
	if err != nil {
		return nil, err
	}

	b := Breakdown{
		{Name: "base", Amount: d.BasePrice},
		{Name: "size." + string(d.Size), Amount: size},
		{Name: "drink_type." + string(d.DrinkType), Amount: kind},
		{Name: "topping.whip_cream", Amount: WhipCreamAdjustment(d.Topping)},
		{Name: "topping.chocolate", Amount: ChocolateAdjustment(d.Topping)},
	}

	if d.HasMilk() {
		milk, err := MilkAdjustment(d.MilkType)
		if err != nil {
			return nil, err
		}
		b = append(b, Adjustment{Name: "milk_type." + string(d.MilkType), Amount: milk})
	}
	return b, nil
}

func DrinkPrice(d domain.Drink) (decimal.Decimal, error) {
	b, err := DrinkBreakdown(d)
	if err != nil {
		return decimal.Zero, err
	}
	return b.Total(), nil
}
