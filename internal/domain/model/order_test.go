package model

import (
	"encoding/json"
	"testing"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrder_OrderItems(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": "ORD-1",
		"items": [
			{"drink": {"drink_type": "HOT", "size": "S", "topping": {"chocolate": 4}}},
			{"breakfast": {"sandwiches": "EGG", "bagels": "BUTTER"}}
		]
	}`), &o))

	items, err := o.OrderItems()
	require.NoError(t, err)
	require.Len(t, items, 2)

	d, ok := items[0].(domain.Drink)
	require.True(t, ok)
	assert.Equal(t, 4, d.Topping.Chocolate)
	assert.True(t, d.Topping.WhipCream)

	_, ok = items[1].(domain.Breakfast)
	assert.True(t, ok)
}

func TestOrder_AmbiguousLine(t *testing.T) {
	d := domain.NewDrink(domain.DrinkHot, domain.SizeS)
	b := domain.NewBreakfast(domain.SandwichEgg, domain.BagelPlain)

	_, err := Order{Items: []Line{{Drink: &d, Breakfast: &b}}}.OrderItems()
	assert.ErrorIs(t, err, ErrAmbiguousLine)

	_, err = Order{Items: []Line{DrinkLine(d), {}}}.OrderItems()
	assert.ErrorIs(t, err, ErrAmbiguousLine)
	assert.Contains(t, err.Error(), "items[1]")
}
