// Package pricing holds the café price tables and the pure arithmetic that
// turns a validated item into a price.
package pricing

import (
	"fmt"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	zero    = decimal.Zero
	quarter = decimal.RequireFromString("0.25")
	half    = decimal.RequireFromString("0.5")
	one     = decimal.NewFromInt(1)
	oneHalf = decimal.RequireFromString("1.5")
)

// Every table is a switch over the full enumeration; a label added to
// domain without a price falls through to ErrUnknownValue.

func SizeAdjustment(s domain.Size) (decimal.Decimal, error) {
	switch s {
	case domain.SizeS:
		return zero, nil
	case domain.SizeM:
		return half, nil
	case domain.SizeL:
		return one, nil
	case domain.SizeXL:
		return oneHalf, nil
	}
	return zero, fmt.Errorf("%w: size %q", domain.ErrUnknownValue, s)
}

func DrinkTypeAdjustment(t domain.DrinkType) (decimal.Decimal, error) {
	switch t {
	case domain.DrinkHot, domain.DrinkCold:
		return zero, nil
	case domain.DrinkMilkTea:
		return quarter, nil
	case domain.DrinkBlended:
		return one, nil
	}
	return zero, fmt.Errorf("%w: drink type %q", domain.ErrUnknownValue, t)
}

func MilkAdjustment(m domain.MilkType) (decimal.Decimal, error) {
	switch m {
	case domain.NoMilk, domain.MilkWhole:
		return zero, nil
	case domain.MilkAlmond:
		return half, nil
	}
	return zero, fmt.Errorf("%w: milk type %q", domain.ErrUnknownValue, m)
}

// WhipCreamAdjustment is charged on every drink, whipped or not.
// TODO: gate on Topping.WhipCream once product confirms the flag should
// affect the price; the current menu charges it unconditionally.
func WhipCreamAdjustment(domain.Topping) decimal.Decimal {
	return half
}

const FreeChocolatePumps = 2

// ChocolateAdjustment charges 0.5 per pump beyond the free ones.
func ChocolateAdjustment(t domain.Topping) decimal.Decimal {
	extra := t.Chocolate - FreeChocolatePumps
	if extra <= 0 {
		return zero
	}
	return half.Mul(decimal.NewFromInt(int64(extra)))
}

func SandwichAdjustment(s domain.SandwichType) (decimal.Decimal, error) {
	switch s {
	case domain.SandwichPlain:
		return zero, nil
	case domain.SandwichEgg, domain.SandwichTurkey:
		return one, nil
	}
	return zero, fmt.Errorf("%w: sandwich type %q", domain.ErrUnknownValue, s)
}

func BagelAdjustment(b domain.BagelType) (decimal.Decimal, error) {
	switch b {
	case domain.BagelPlain:
		return zero, nil
	case domain.BagelCheese, domain.BagelButter:
		return half, nil
	}
	return zero, fmt.Errorf("%w: bagel type %q", domain.ErrUnknownValue, b)
}
