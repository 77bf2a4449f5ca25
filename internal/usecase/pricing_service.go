package usecase

import (
	"context"
	"fmt"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/engine"
	"github.com/Victor-armando18/cafe-pricing/internal/domain/pricing"
	"github.com/Victor-armando18/cafe-pricing/internal/interfaces"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type PricingService struct {
	engine *engine.Engine
	logger *zap.Logger
}

// NewPricingService loads the guard pack for version once; the service is
// stateless afterwards. A nil logger discards the per-item records.
func NewPricingService(ctx context.Context, loader interfaces.RulePackLoader, evaluator interfaces.GuardEvaluator, version string, logger *zap.Logger) (interfaces.PricingFacade, error) {
	pack, err := loader.Load(ctx, version)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PricingService{
		engine: &engine.Engine{Pack: *pack, Evaluator: evaluator},
		logger: logger,
	}, nil
}

func (s *PricingService) RulesVersion() string {
	return s.engine.Pack.Version
}

// ValidateDrink rejects labels outside the menu, then runs the guards in
// order and returns the first *domain.ValidationError hit.
func (s *PricingService) ValidateDrink(ctx context.Context, drink domain.Drink) error {
	if err := drink.CheckValues(); err != nil {
		return err
	}
	return s.engine.CheckGuards(ctx, drinkFacts(drink))
}

func (s *PricingService) PriceDrink(ctx context.Context, drink domain.Drink) (decimal.Decimal, error) {
	if err := s.ValidateDrink(ctx, drink); err != nil {
		return decimal.Zero, err
	}
	return pricing.DrinkPrice(drink)
}

func (s *PricingService) PriceBreakfast(ctx context.Context, breakfast domain.Breakfast) (decimal.Decimal, error) {
	return pricing.BreakfastPrice(breakfast)
}

// QuoteItem returns the adjustment lines of a single item, validating drinks.
func (s *PricingService) QuoteItem(ctx context.Context, item domain.OrderItem) (pricing.Breakdown, error) {
	switch it := deref(item).(type) {
	case domain.Drink:
		if err := s.ValidateDrink(ctx, it); err != nil {
			return nil, err
		}
		return pricing.DrinkBreakdown(it)
	case domain.Breakfast:
		return pricing.BreakfastBreakdown(it)
	}
	return nil, fmt.Errorf("%w: order item %T", domain.ErrUnknownValue, item)
}

func (s *PricingService) PriceOrder(ctx context.Context, items []domain.OrderItem) (decimal.Decimal, error) {
	quote, err := s.QuoteOrder(ctx, items)
	if err != nil {
		return decimal.Zero, err
	}
	return quote.Total, nil
}

// QuoteOrder prices each item in order, sums the subtotal and adds the tax.
// Nil items are skipped. The first drink that fails validation aborts the
// whole order.
func (s *PricingService) QuoteOrder(ctx context.Context, items []domain.OrderItem) (*engine.OrderQuote, error) {
	quote := &engine.OrderQuote{
		Lines:        []engine.LineQuote{},
		TaxRate:      pricing.TaxRate,
		RulesVersion: s.RulesVersion(),
		ExecutionLog: []engine.ExecutionStep{},
	}

	subtotal := decimal.Zero
	for i, raw := range items {
		var (
			price decimal.Decimal
			err   error
		)

		item := deref(raw)
		switch it := item.(type) {
		case domain.Drink:
			price, err = s.PriceDrink(ctx, it)
		case domain.Breakfast:
			price, err = s.PriceBreakfast(ctx, it)
		default:
			s.logger.Debug("skipping order item", zap.Int("index", i), zap.String("type", fmt.Sprintf("%T", raw)))
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("items[%d]: %w", i, err)
		}

		s.logger.Info("priced item",
			zap.Int("index", i),
			zap.String("kind", item.Kind()),
			zap.Stringer("item", item),
			zap.Stringer("price", price),
		)

		subtotal = subtotal.Add(price)
		quote.Lines = append(quote.Lines, engine.LineQuote{Index: i, Kind: item.Kind(), Item: item.String(), Price: price})
		quote.ExecutionLog = append(quote.ExecutionLog, engine.ExecutionStep{
			Phase:   engine.Baseline,
			Message: fmt.Sprintf("items[%d] %s priced at %s", i, item.Kind(), price),
		})
	}

	quote.Subtotal = subtotal
	quote.Tax = pricing.Tax(subtotal)
	quote.Total = pricing.WithTax(subtotal)
	quote.ExecutionLog = append(quote.ExecutionLog,
		engine.ExecutionStep{Phase: engine.Taxes, Message: fmt.Sprintf("tax %s at rate %s", quote.Tax, quote.TaxRate)},
		engine.ExecutionStep{Phase: engine.Totals, Message: fmt.Sprintf("total %s", quote.Total)},
	)
	return quote, nil
}

func drinkFacts(d domain.Drink) map[string]any {
	return map[string]any{
		"drink_type": string(d.DrinkType),
		"size":       string(d.Size),
		"milk_type":  string(d.MilkType),
		"chocolate":  d.Topping.Chocolate,
		"whip_cream": d.Topping.WhipCream,
	}
}

// deref unwraps *Drink and *Breakfast; nil pointers become nil.
func deref(item domain.OrderItem) domain.OrderItem {
	switch it := item.(type) {
	case *domain.Drink:
		if it == nil {
			return nil
		}
		return *it
	case *domain.Breakfast:
		if it == nil {
			return nil
		}
		return *it
	}
	return item
}
