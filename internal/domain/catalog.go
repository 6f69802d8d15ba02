package domain

import "github.com/shopspring/decimal"

// PriceCatalog maps a trimmed product title to its unit price.
// Last write wins when the same title appears twice in the source document.
type PriceCatalog map[string]decimal.Decimal

func (c PriceCatalog) Price(title string) (decimal.Decimal, bool) {
	price, ok := c[title]
	return price, ok
}
