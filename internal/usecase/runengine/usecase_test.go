package runengine

import (
	"context"
	"testing"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/model"
	"github.com/Victor-armando18/cafe-pricing/internal/infrastructure"
	"github.com/Victor-armando18/cafe-pricing/internal/infrastructure/diff"
	"github.com/Victor-armando18/cafe-pricing/internal/usecase"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUseCase(t *testing.T) *UseCase {
	t.Helper()
	svc, err := usecase.NewPricingService(context.Background(), infrastructure.NewEmbeddedRuleLoader(), infrastructure.NewJsonLogicEvaluator(), "v1", nil)
	require.NoError(t, err)
	return &UseCase{Pricer: svc, Patcher: infrastructure.ApplyOrderPatch, Differ: &diff.Differ{}}
}

func TestRun_RepricesPatchedOrder(t *testing.T) {
	uc := newUseCase(t)
	order := model.Order{Items: []model.Line{
		model.DrinkLine(domain.NewDrink(domain.DrinkHot, domain.SizeS)),
		model.BreakfastLine(domain.NewBreakfast(domain.SandwichEgg, domain.BagelButter)),
	}}

	res, err := uc.Run(context.Background(), order, []byte(`[{"op":"replace","path":"/items/0/drink/topping/chocolate","value":4}]`))
	require.NoError(t, err)

	assert.Equal(t, 4, res.Order.Items[0].Drink.Topping.Chocolate)
	assert.True(t, res.Quote.Subtotal.Equal(decimal.NewFromInt(11)), res.Quote.Subtotal.String())
	assert.NotContains(t, res.Delta, "items.1")
	require.NotNil(t, res.Delta["items.0"])
	assert.Equal(t, "3.5", res.Delta["items.0"].String())
	assert.Contains(t, res.Delta, "total")
}

func TestRun_RemovedLine(t *testing.T) {
	uc := newUseCase(t)
	order := model.Order{Items: []model.Line{
		model.DrinkLine(domain.NewDrink(domain.DrinkCold, domain.SizeL)),
		model.DrinkLine(domain.NewDrink(domain.DrinkBlended, domain.SizeS)),
	}}

	res, err := uc.Run(context.Background(), order, []byte(`[{"op":"remove","path":"/items/1"}]`))
	require.NoError(t, err)
	v, ok := res.Delta["items.1"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestRun_InvalidPatch(t *testing.T) {
	uc := newUseCase(t)
	order := model.Order{Items: []model.Line{model.DrinkLine(domain.NewDrink(domain.DrinkHot, domain.SizeS))}}

	_, err := uc.Run(context.Background(), order, []byte(`[{"op":"move","from":"/nope","path":"/items/0"}]`))
	assert.ErrorIs(t, err, ErrInvalidPatch)

	_, err = uc.Run(context.Background(), order, []byte(`[{"op":"add","path":"/items/0/drink/milk_type","value":"ALMOND"}]`))
	ve, ok := domain.AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "milk.only_milk_tea", ve.RuleID)
}
