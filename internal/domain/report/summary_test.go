package report_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/domain/report"
)

func priced(name, category string, price, q int) report.ProductStock {
	return report.ProductStock{
		ProductID:     name,
		Name:          name,
		CategoryName:  category,
		Quantity:      q,
		MinStockLevel: 5,
		Price:         decimal.NewFromInt(int64(price)),
	}
}

func TestGroupByCategory_PorcentajesSobreElTotal(t *testing.T) {
	// Valores por categoría: A = 100, B = 300; total 400 -> 25.0 y 75.0.
	in := []report.ProductStock{
		priced("p1", "A", 10, 10), // 100
		priced("p2", "B", 30, 10), // 300
	}
	groups, totals := report.GroupByCategory(in)
	require.Len(t, groups, 2)

	// Orden por valor descendente
	assert.Equal(t, "B", groups[0].Label)
	assert.Equal(t, "75", groups[0].PercentOfTotal.String())
	assert.Equal(t, "A", groups[1].Label)
	assert.Equal(t, "25", groups[1].PercentOfTotal.String())

	assert.True(t, totals.PercentOfTotal.Equal(decimal.NewFromInt(100)),
		"el total reporta exactamente 100, no la suma de parciales")
	assert.Equal(t, 2, totals.TotalItems)
	assert.Equal(t, 2, totals.TotalGroups)
	assert.Equal(t, "400", totals.TotalValue.String())
}

func TestGroupByCategory_RedondeoAUnDecimal(t *testing.T) {
	// 1/3 del total -> 33.3
	in := []report.ProductStock{
		priced("p1", "A", 1, 1),
		priced("p2", "B", 2, 1),
	}
	groups, _ := report.GroupByCategory(in)
	require.Len(t, groups, 2)
	assert.Equal(t, "33.3", groups[1].PercentOfTotal.String())
	assert.Equal(t, "66.7", groups[0].PercentOfTotal.String())
}

func TestGroupByCategory_TotalCeroNoDivide(t *testing.T) {
	in := []report.ProductStock{
		priced("p1", "A", 0, 0),
		priced("p2", "B", 0, 3),
	}
	groups, totals := report.GroupByCategory(in)
	require.Len(t, groups, 2)
	for _, g := range groups {
		assert.True(t, g.PercentOfTotal.IsZero(),
			"con total cero todo porcentaje se define como 0")
	}
	assert.True(t, totals.PercentOfTotal.IsZero())
}

func TestGroupByCategory_PlaceholderYLowStock(t *testing.T) {
	in := []report.ProductStock{
		{Name: "sin-cat", Quantity: 2, MinStockLevel: 5, Price: decimal.NewFromInt(4)},
		{Name: "ok", CategoryName: "Z", Quantity: 20, MinStockLevel: 5, Price: decimal.NewFromInt(4)},
	}
	groups, totals := report.GroupByCategory(in)
	require.Len(t, groups, 2)

	labels := []string{groups[0].Label, groups[1].Label}
	assert.Contains(t, labels, report.PlaceholderCategory)
	assert.Equal(t, 1, totals.LowStockItems)
}

func TestGroupBySupplier_MediaDePrecio(t *testing.T) {
	in := []report.ProductStock{
		{Name: "a", SupplierName: "S", Quantity: 1, Price: decimal.NewFromInt(10)},
		{Name: "b", SupplierName: "S", Quantity: 1, Price: decimal.NewFromInt(15)},
	}
	groups, totals := report.GroupBySupplier(in)
	require.Len(t, groups, 1)
	assert.Equal(t, "12.5", groups[0].AvgPrice.String())
	assert.Equal(t, "12.5", totals.AvgPrice.String())
	assert.Equal(t, 1, totals.TotalGroups)
}

func TestOverview_SinGrupos(t *testing.T) {
	in := []report.ProductStock{
		priced("p1", "A", 10, 2),
		priced("p2", "", 5, 1),
	}
	totals := report.Overview(in)
	assert.Equal(t, 2, totals.TotalItems)
	assert.Equal(t, 0, totals.TotalGroups)
	assert.Equal(t, "25", totals.TotalValue.String())
	assert.Equal(t, 3, totals.TotalQuantity)
}

func TestOverview_Vacio(t *testing.T) {
	totals := report.Overview(nil)
	assert.Equal(t, 0, totals.TotalItems)
	assert.True(t, totals.TotalValue.IsZero())
	assert.True(t, totals.AvgPrice.IsZero())
	assert.True(t, totals.PercentOfTotal.IsZero())
}
