package pricing

import (
	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/engine"
	tables "github.com/Victor-armando18/cafe-pricing/internal/domain/pricing"
)

type (
	DrinkType    = domain.DrinkType
	Size         = domain.Size
	MilkType     = domain.MilkType
	SandwichType = domain.SandwichType
	BagelType    = domain.BagelType

	Topping   = domain.Topping
	Drink     = domain.Drink
	Breakfast = domain.Breakfast
	OrderItem = domain.OrderItem

	ValidationError = domain.ValidationError
	Breakdown       = tables.Breakdown
	OrderQuote      = engine.OrderQuote
	ExecutionStep   = engine.ExecutionStep
)

const (
	Hot     = domain.DrinkHot
	Cold    = domain.DrinkCold
	Blended = domain.DrinkBlended
	MilkTea = domain.DrinkMilkTea

	S  = domain.SizeS
	M  = domain.SizeM
	L  = domain.SizeL
	XL = domain.SizeXL

	NoMilk = domain.NoMilk
	Whole  = domain.MilkWhole
	Almond = domain.MilkAlmond

	PlainSandwich = domain.SandwichPlain
	Egg           = domain.SandwichEgg
	Turkey        = domain.SandwichTurkey

	PlainBagel = domain.BagelPlain
	Butter     = domain.BagelButter
	Cheese     = domain.BagelCheese
)

var (
	ErrUnknownValue = domain.ErrUnknownValue

	NewDrink      = domain.NewDrink
	NewBreakfast  = domain.NewBreakfast
	WithWhipCream = domain.WithWhipCream
	WithChocolate = domain.WithChocolate
	WithMilk      = domain.WithMilk
	WithBasePrice = domain.WithBasePrice

	FormatPrice = tables.FormatPrice
)
