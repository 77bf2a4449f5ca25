package engine

import (
	"context"
	"fmt"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
)

type Engine struct {
	Pack      RulePack
	Evaluator GuardEvaluator
}

// CheckGuards runs the guard rules in pack order and stops at the first hit.
func (e *Engine) CheckGuards(ctx context.Context, facts map[string]any) error {
	for _, g := range e.Pack.RulesFor(Guards) {
		hit, err := e.Evaluator.Evaluate(ctx, g.Logic, facts)
		if err != nil {
			return fmt.Errorf("guard %s: %w", g.ID, err)
		}
		if hit {
			msg := g.ErrorMessage
			if msg == "" {
				msg = "guard " + g.ID + " violated"
			}
			return domain.NewValidationError(g.ID, msg)
		}
	}
	return nil
}
