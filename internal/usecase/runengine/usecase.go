package runengine

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/Victor-armando18/cafe-pricing/internal/domain/engine"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/model"
	"github.com/Victor-armando18/cafe-pricing/internal/interfaces"
	"github.com/shopspring/decimal"
)

var ErrInvalidPatch = errors.New("invalid order patch")

// UseCase re-quotes an order after a client patch and reports which line
// prices moved.
type UseCase struct {
	Pricer  interfaces.PricingFacade
	Patcher Patcher
	Differ  Differ
}

type Patcher func(original model.Order, patch []byte) (model.Order, error)

type Differ interface {
	Diff(before, after map[string]decimal.Decimal) map[string]*decimal.Decimal
}

type Result struct {
	Order model.Order                 `json:"order"`
	Quote *engine.OrderQuote          `json:"quote"`
	Delta map[string]*decimal.Decimal `json:"delta"`
}

func (u *UseCase) Run(ctx context.Context, order model.Order, patch []byte) (*Result, error) {
	before, err := u.quote(ctx, order)
	if err != nil {
		return nil, err
	}

	updated, err := u.Patcher(order, patch)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	after, err := u.quote(ctx, updated)
	if err != nil {
		return nil, err
	}

	return &Result{
		Order: updated,
		Quote: after,
		Delta: u.Differ.Diff(linePrices(before), linePrices(after)),
	}, nil
}

func (u *UseCase) quote(ctx context.Context, order model.Order) (*engine.OrderQuote, error) {
	items, err := order.OrderItems()
	if err != nil {
		return nil, err
	}
	return u.Pricer.QuoteOrder(ctx, items)
}

func linePrices(q *engine.OrderQuote) map[string]decimal.Decimal {
	m := map[string]decimal.Decimal{"total": q.Total}
	for _, l := range q.Lines {
		m["items."+strconv.Itoa(l.Index)] = l.Price
	}
	return m
}
