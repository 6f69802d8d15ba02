package usecase

import (
	"github.com/rs/zerolog"

	"github.com/cp25sy5-modjot/compute-sales/internal/domain"
)

// BuildCatalog validates the raw catalog document into a PriceCatalog.
// Malformed entries are logged and skipped; the build itself never fails.
func BuildCatalog(raw any, log zerolog.Logger) domain.PriceCatalog {
	catalog := make(domain.PriceCatalog)

	entries, ok := raw.([]any)
	if !ok {
		log.Error().Msg("price catalog is not a JSON list")
		return catalog
	}

	for i, entry := range entries {
		idx := i + 1

		obj, ok := entry.(map[string]any)
		if !ok {
			log.Error().Int("entry", idx).Msg("catalog entry is not an object")
			continue
		}
		title, ok := stringField(obj, "title")
		if !ok {
			log.Error().Int("entry", idx).Msg("catalog entry has a missing or empty title")
			continue
		}
		price, ok := numberField(obj, "price")
		if !ok {
			log.Error().Int("entry", idx).Str("title", title).Msg("catalog entry has a missing or non-numeric price")
			continue
		}

		// Last write wins on duplicate titles.
		catalog[title] = price
	}

	return catalog
}
