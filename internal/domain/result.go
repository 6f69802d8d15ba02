package domain

import (
	"sort"

	"github.com/shopspring/decimal"
)

// AggregationResult accumulates line totals per sale id plus the grand total.
// GrandTotal always equals the sum of all TotalsBySaleID values.
type AggregationResult struct {
	TotalsBySaleID map[int64]decimal.Decimal
	GrandTotal     decimal.Decimal
}

func NewAggregationResult() *AggregationResult {
	return &AggregationResult{
		TotalsBySaleID: make(map[int64]decimal.Decimal),
	}
}

func (r *AggregationResult) Add(saleID int64, amount decimal.Decimal) {
	r.TotalsBySaleID[saleID] = r.TotalsBySaleID[saleID].Add(amount)
	r.GrandTotal = r.GrandTotal.Add(amount)
}

// SaleIDs returns the accumulated sale ids in ascending numeric order.
func (r *AggregationResult) SaleIDs() []int64 {
	ids := make([]int64, 0, len(r.TotalsBySaleID))
	for id := range r.TotalsBySaleID {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
