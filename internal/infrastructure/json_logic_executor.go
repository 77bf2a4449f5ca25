package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/Victor-armando18/cafe-pricing/internal/domain"
	"github.com/diegoholiveira/jsonlogic/v3"
)

// JsonLogicEvaluator runs guard logic written in JsonLogic.
type JsonLogicEvaluator struct{}

func NewJsonLogicEvaluator() *JsonLogicEvaluator {
	return &JsonLogicEvaluator{}
}

func (j *JsonLogicEvaluator) Evaluate(ctx context.Context, logic map[string]any, facts map[string]any) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	ruleJSON, err := json.Marshal(logic)
	if err != nil {
		return false, fmt.Errorf("%w: encode logic: %v", domain.ErrGuardEvaluation, err)
	}
	dataJSON, err := json.Marshal(facts)
	if err != nil {
		return false, fmt.Errorf("%w: encode facts: %v", domain.ErrGuardEvaluation, err)
	}

	var resultBuffer bytes.Buffer
	if err := jsonlogic.Apply(bytes.NewReader(ruleJSON), bytes.NewReader(dataJSON), &resultBuffer); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrGuardEvaluation, err)
	}

	var res any
	if err := json.NewDecoder(&resultBuffer).Decode(&res); err != nil {
		return false, fmt.Errorf("%w: decode result: %v", domain.ErrGuardEvaluation, err)
	}

	hit, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: guard must return boolean, got %v", domain.ErrGuardEvaluation, res)
	}
	return hit, nil
}
