package interfaces

import (
	"context"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/engine"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/pricing"
	"github.com/shopspring/decimal"
)

// RulePackLoader loads versioned guard packs (embedded, from disk, ...).
type RulePackLoader interface {
	Load(ctx context.Context, version string) (*engine.RulePack, error)
}

// GuardEvaluator evaluates one guard's logic against a drink's facts.
type GuardEvaluator = engine.GuardEvaluator

// PricingFacade is the entry point other layers price items through.
type PricingFacade interface {
	ValidateDrink(ctx context.Context, drink domain.Drink) error
	PriceDrink(ctx context.Context, drink domain.Drink) (decimal.Decimal, error)
	PriceBreakfast(ctx context.Context, breakfast domain.Breakfast) (decimal.Decimal, error)
	PriceOrder(ctx context.Context, items []domain.OrderItem) (decimal.Decimal, error)
	QuoteItem(ctx context.Context, item domain.OrderItem) (pricing.Breakdown, error)
	QuoteOrder(ctx context.Context, items []domain.OrderItem) (*engine.OrderQuote, error)
	RulesVersion() string
}
