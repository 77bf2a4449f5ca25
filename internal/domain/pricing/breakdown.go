package pricing

import "github.com/shopspring/decimal"

// Adjustment is one additive line of a price.
type Adjustment struct {
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type Breakdown []Adjustment

func (b Breakdown) Total() decimal.Decimal {
	total := decimal.Zero
	for _, a := range b {
		total = total.Add(a.Amount)
	}
	return total
}
