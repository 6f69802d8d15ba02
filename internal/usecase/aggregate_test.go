package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cp25sy5-modjot/compute-sales/internal/domain"
)

func testCatalog() domain.PriceCatalog {
	return domain.PriceCatalog{
		"Widget": decimal.NewFromInt(10),
		"Gadget": decimal.RequireFromString("2.5"),
	}
}

func TestAggregate_SingleMatch(t *testing.T) {
	log, buf := testLogger()
	records := []domain.SaleRecord{{SaleID: 1, Product: "Widget", Quantity: 3}}

	result := Aggregate(testCatalog(), records, log)

	require.Len(t, result.TotalsBySaleID, 1)
	assert.True(t, result.TotalsBySaleID[1].Equal(decimal.NewFromInt(30)))
	assert.True(t, result.GrandTotal.Equal(decimal.NewFromInt(30)))
	assert.Empty(t, buf.String())
}

func TestAggregate_UnknownProductExcluded(t *testing.T) {
	log, buf := testLogger()
	records := []domain.SaleRecord{
		{SaleID: 1, Product: "Unknown", Quantity: 3},
		{SaleID: 2, Product: "Widget", Quantity: 1},
	}

	result := Aggregate(testCatalog(), records, log)

	_, ok := result.TotalsBySaleID[1]
	assert.False(t, ok, "unmatched sale id must not appear in totals")
	assert.True(t, result.GrandTotal.Equal(decimal.NewFromInt(10)))
	assert.Contains(t, buf.String(), `"product":"Unknown"`)
	assert.Contains(t, buf.String(), `"sale_id":1`)
}

func TestAggregate_SharedSaleIDAccumulates(t *testing.T) {
	log, _ := testLogger()
	records := []domain.SaleRecord{
		{SaleID: 5, Product: "Widget", Quantity: 2},
		{SaleID: 5, Product: "Gadget", Quantity: 4},
	}

	result := Aggregate(testCatalog(), records, log)

	require.Len(t, result.TotalsBySaleID, 1)
	assert.True(t, result.TotalsBySaleID[5].Equal(decimal.NewFromInt(30))) // 20 + 10
}

func TestAggregate_NegativeQuantityContributesNegative(t *testing.T) {
	log, buf := testLogger()
	records := []domain.SaleRecord{{SaleID: 1, Product: "Widget", Quantity: -2}}

	result := Aggregate(testCatalog(), records, log)

	assert.True(t, result.TotalsBySaleID[1].Equal(decimal.NewFromInt(-20)))
	assert.True(t, result.GrandTotal.Equal(decimal.NewFromInt(-20)))
	assert.Empty(t, buf.String(), "negative quantities were already warned about during parsing")
}

func TestAggregate_GrandTotalEqualsSumOfTotals(t *testing.T) {
	log, _ := testLogger()
	records := []domain.SaleRecord{
		{SaleID: 1, Product: "Widget", Quantity: 3},
		{SaleID: 2, Product: "Gadget", Quantity: 7},
		{SaleID: 1, Product: "Gadget", Quantity: -1},
		{SaleID: 3, Product: "Unknown", Quantity: 9},
	}

	result := Aggregate(testCatalog(), records, log)

	sum := decimal.Zero
	for _, total := range result.TotalsBySaleID {
		sum = sum.Add(total)
	}
	assert.True(t, result.GrandTotal.Equal(sum))
}
