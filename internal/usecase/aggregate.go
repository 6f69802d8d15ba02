package usecase

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cp25sy5-modjot/compute-sales/internal/domain"
)

// Aggregate joins the sale records against the catalog, accumulating one
// total per sale id plus the grand total. Records whose product is not in
// the catalog are logged and excluded. Iteration follows input order so the
// diagnostics come out in the order the records appeared.
func Aggregate(catalog domain.PriceCatalog, records []domain.SaleRecord, log zerolog.Logger) *domain.AggregationResult {
	result := domain.NewAggregationResult()

	for _, rec := range records {
		price, ok := catalog.Price(rec.Product)
		if !ok {
			log.Error().Str("product", rec.Product).Int64("sale_id", rec.SaleID).
				Msg("product not found in catalog")
			continue
		}
		result.Add(rec.SaleID, price.Mul(decimal.NewFromInt(rec.Quantity)))
	}

	return result
}
