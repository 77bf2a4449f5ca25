package pricing

import "github.com/shopspring/decimal"

// TaxRate is the sales tax applied to an order subtotal (7.25%).
var TaxRate = decimal.RequireFromString("0.0725")

func Tax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Mul(TaxRate)
}

// WithTax returns subtotal * 1.0725.
func WithTax(subtotal decimal.Decimal) decimal.Decimal {
	return subtotal.Add(Tax(subtotal))
}
