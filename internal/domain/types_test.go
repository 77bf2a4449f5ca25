package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDrink_Defaults(t *testing.T) {
	d := NewDrink(DrinkHot, SizeS)

	assert.True(t, d.Topping.WhipCream)
	assert.Equal(t, 0, d.Topping.Chocolate)
	assert.Equal(t, NoMilk, d.MilkType)
	assert.False(t, d.HasMilk())
	assert.True(t, d.BasePrice.Equal(decimal.NewFromInt(2)))
}

func TestNewDrink_Options(t *testing.T) {
	d := NewDrink(DrinkMilkTea, SizeM,
		WithWhipCream(false),
		WithMilk(MilkAlmond),
		WithBasePrice(decimal.NewFromInt(4)),
	)
	assert.False(t, d.Topping.WhipCream)
	assert.Equal(t, MilkAlmond, d.MilkType)
	assert.True(t, d.BasePrice.Equal(decimal.NewFromInt(4)))

	d = NewDrink(DrinkHot, SizeS, WithTopping(Topping{Chocolate: 3}))
	assert.False(t, d.Topping.WhipCream)
	assert.Equal(t, 3, d.Topping.Chocolate)
}

func TestNewBreakfast_Defaults(t *testing.T) {
	b := NewBreakfast(SandwichEgg, BagelButter)
	assert.True(t, b.BasePrice.Equal(decimal.NewFromInt(3)))
}

func TestDrink_UnmarshalJSONAppliesDefaults(t *testing.T) {
	var d Drink
	require.NoError(t, json.Unmarshal([]byte(`{"drink_type":"HOT","size":"S","topping":{"chocolate":4}}`), &d))

	assert.Equal(t, DrinkHot, d.DrinkType)
	assert.Equal(t, SizeS, d.Size)
	assert.True(t, d.Topping.WhipCream)
	assert.Equal(t, 4, d.Topping.Chocolate)
	assert.True(t, d.BasePrice.Equal(DefaultDrinkBasePrice))
	assert.False(t, d.HasMilk())
}

func TestDrink_UnmarshalJSONRejectsUnknownLabels(t *testing.T) {
	var d Drink
	err := json.Unmarshal([]byte(`{"drink_type":"WARM","size":"S"}`), &d)
	assert.ErrorIs(t, err, ErrUnknownValue)

	err = json.Unmarshal([]byte(`{"drink_type":"HOT","size":"XXL"}`), &d)
	assert.ErrorIs(t, err, ErrUnknownValue)

	err = json.Unmarshal([]byte(`{"drink_type":"MILK_TEA","size":"S","milk_type":"OAT"}`), &d)
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestBreakfast_UnmarshalJSON(t *testing.T) {
	var b Breakfast
	require.NoError(t, json.Unmarshal([]byte(`{"sandwiches":"EGG","bagels":"BUTTER"}`), &b))
	assert.Equal(t, NewBreakfast(SandwichEgg, BagelButter).String(), b.String())
	assert.True(t, b.BasePrice.Equal(DefaultBreakfastBasePrice))

	err := json.Unmarshal([]byte(`{"sandwiches":"HAM","bagels":"BUTTER"}`), &b)
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestParse(t *testing.T) {
	for _, v := range DrinkTypes {
		got, err := ParseDrinkType(string(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}
	for _, v := range Sizes {
		_, err := ParseSize(string(v))
		require.NoError(t, err)
	}
	for _, v := range SandwichTypes {
		_, err := ParseSandwichType(string(v))
		require.NoError(t, err)
	}
	for _, v := range BagelTypes {
		_, err := ParseBagelType(string(v))
		require.NoError(t, err)
	}

	m, err := ParseMilkType("")
	require.NoError(t, err)
	assert.Equal(t, NoMilk, m)

	_, err = ParseDrinkType("hot")
	assert.ErrorIs(t, err, ErrUnknownValue)
	_, err = ParseSize("")
	assert.ErrorIs(t, err, ErrUnknownValue)
}

func TestCheckValues(t *testing.T) {
	require.NoError(t, NewDrink(DrinkCold, SizeXL).CheckValues())
	assert.ErrorIs(t, Drink{DrinkType: "ICED", Size: SizeS}.CheckValues(), ErrUnknownValue)
	assert.ErrorIs(t, Drink{DrinkType: DrinkHot, Size: SizeS, MilkType: "SOY"}.CheckValues(), ErrUnknownValue)

	require.NoError(t, NewBreakfast(SandwichPlain, BagelPlain).CheckValues())
	assert.ErrorIs(t, Breakfast{Sandwich: SandwichPlain}.CheckValues(), ErrUnknownValue)
}

func TestDrink_String(t *testing.T) {
	d := NewDrink(DrinkMilkTea, SizeM, WithMilk(MilkAlmond))
	assert.Equal(t, "Drink(MILK_TEA, M, whip_cream=true, chocolate=0, milk=ALMOND)", d.String())
}

func TestAsValidationError(t *testing.T) {
	err := error(NewValidationError("chocolate.max_pumps", "chocolate pump count exceeds maximum"))
	ve, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "chocolate.max_pumps", ve.RuleID)
	assert.Equal(t, "chocolate pump count exceeds maximum", err.Error())

	_, ok = AsValidationError(ErrUnknownValue)
	assert.False(t, ok)
}
