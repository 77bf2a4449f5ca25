package engine

import "context"

// GuardEvaluator evaluates a guard's logic against a set of facts. A true
// result means the guard was hit.
type GuardEvaluator interface {
	Evaluate(ctx context.Context, logic map[string]any, facts map[string]any) (bool, error)
}
