package pricing

import "github.com/shopspring/decimal"

func FormatPrice(price decimal.Decimal) string {
	return "Price: " + price.String() + "$"
}
