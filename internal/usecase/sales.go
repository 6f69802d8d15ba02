package usecase

import (
	"github.com/rs/zerolog"

	"github.com/cp25sy5-modjot/compute-sales/internal/domain"
)

// ParseSales validates the raw sales document into an ordered record list.
// Malformed entries are logged and skipped; input order is preserved.
func ParseSales(raw any, log zerolog.Logger) []domain.SaleRecord {
	entries, ok := raw.([]any)
	if !ok {
		log.Error().Msg("sales record is not a JSON list")
		return nil
	}

	records := make([]domain.SaleRecord, 0, len(entries))
	for i, entry := range entries {
		idx := i + 1

		obj, ok := entry.(map[string]any)
		if !ok {
			log.Error().Int("entry", idx).Msg("sale entry is not an object")
			continue
		}
		saleID, ok := intField(obj, "SALE_ID")
		if !ok {
			log.Error().Int("entry", idx).Msg("sale entry has a missing or non-integer SALE_ID")
			continue
		}
		product, ok := stringField(obj, "Product")
		if !ok {
			log.Error().Int("entry", idx).Int64("sale_id", saleID).Msg("sale entry has a missing or empty Product")
			continue
		}
		quantity, ok := intField(obj, "Quantity")
		if !ok {
			log.Error().Int("entry", idx).Int64("sale_id", saleID).Msg("sale entry has a missing or non-integer Quantity")
			continue
		}
		if quantity < 0 {
			log.Warn().Int("entry", idx).Int64("sale_id", saleID).Int64("quantity", quantity).
				Msg("negative quantity treated as a return")
		}

		records = append(records, domain.SaleRecord{
			SaleID:   saleID,
			Product:  product,
			Quantity: quantity,
		})
	}

	return records
}
