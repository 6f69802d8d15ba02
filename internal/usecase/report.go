package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/cp25sy5-modjot/compute-sales/internal/domain"
)

// FormatReport renders the aggregation result into the report layout.
// Sale ids are listed in ascending numeric order.
func FormatReport(result *domain.AggregationResult, elapsed time.Duration) string {
	var b strings.Builder

	b.WriteString("=== Sales Results ===\n\n")
	b.WriteString("Totales por SALE_ID:\n")

	ids := result.SaleIDs()
	if len(ids) == 0 {
		b.WriteString("  - No se pudieron calcular totales.\n")
	}
	for _, id := range ids {
		fmt.Fprintf(&b, "  - SALE_ID %d: $%s\n", id, money(result.TotalsBySaleID[id]))
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "TOTAL GENERAL: $%s\n", money(result.GrandTotal))
	fmt.Fprintf(&b, "Tiempo transcurrido: %.6f segundos\n", elapsed.Seconds())

	return b.String()
}

// money renders an amount with thousands separators and exactly two decimal
// places. Rounding happens in decimal space, half away from zero, before any
// digits are extracted, so exact half-cent totals always move away from zero.
func money(d decimal.Decimal) string {
	r := d.Round(2)
	frac := r.Sub(r.Truncate(0)).Abs().StringFixed(2)
	s := humanize.Comma(r.IntPart()) + frac[1:]
	if r.IsNegative() && r.IntPart() == 0 {
		s = "-" + s
	}
	return s
}
