package diff

import "github.com/shopspring/decimal"

type Differ struct{}

// Diff returns the keys of after whose price is new or changed since before,
// and the keys of before that are gone, mapped to nil.
func (d *Differ) Diff(before, after map[string]decimal.Decimal) map[string]*decimal.Decimal {
	delta := map[string]*decimal.Decimal{}
	for k, v := range after {
		if old, ok := before[k]; !ok || !old.Equal(v) {
			v := v
			delta[k] = &v
		}
	}
	for k := range before {
		if _, ok := after[k]; !ok {
			delta[k] = nil
		}
	}
	return delta
}
