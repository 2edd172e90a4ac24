package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// GroupSummary agregados de un grupo (categoría o proveedor).
type GroupSummary struct {
	Label          string
	Items          int
	TotalQuantity  int
	LowStockItems  int             // quantity <= min_stock_level
	TotalValue     decimal.Decimal // Σ price × quantity
	AvgPrice       decimal.Decimal // media del precio unitario, 2 decimales
	PercentOfTotal decimal.Decimal // valor del grupo / valor total × 100, 1 decimal
}

// InventorySummary agregados globales de un conjunto de productos.
// PercentOfTotal del total reporta exactamente 100 (o 0 si el valor total es
// cero: las divisiones por cero se definen como 0, nunca lanzan).
type InventorySummary struct {
	TotalItems     int
	TotalGroups    int
	LowStockItems  int
	TotalQuantity  int
	TotalValue     decimal.Decimal
	AvgPrice       decimal.Decimal
	PercentOfTotal decimal.Decimal
}

// GroupByCategory agrupa por categoría (placeholder "No Category" incluido).
func GroupByCategory(items []ProductStock) ([]GroupSummary, InventorySummary) {
	return groupBy(items, func(p ProductStock) string {
		return orPlaceholder(p.CategoryName, PlaceholderCategory)
	})
}

// GroupBySupplier agrupa por proveedor (placeholder "No Supplier" incluido).
func GroupBySupplier(items []ProductStock) ([]GroupSummary, InventorySummary) {
	return groupBy(items, func(p ProductStock) string {
		return orPlaceholder(p.SupplierName, PlaceholderSupplier)
	})
}

// Overview agregados globales sin agrupar (reporte de inventario).
func Overview(items []ProductStock) InventorySummary {
	_, totals := groupBy(items, func(ProductStock) string { return "" })
	totals.TotalGroups = 0
	return totals
}

// groupBy acumula por clave y calcula porcentajes sobre el valor total.
// Orden de salida: valor total descendente, etiqueta ascendente como desempate.
func groupBy(items []ProductStock, key func(ProductStock) string) ([]GroupSummary, InventorySummary) {
	type acc struct {
		items    int
		quantity int
		lowStock int
		value    decimal.Decimal
		priceSum decimal.Decimal
	}
	byKey := make(map[string]*acc)

	var totals InventorySummary
	grandValue := decimal.Zero
	grandPriceSum := decimal.Zero

	for _, p := range items {
		k := key(p)
		a, ok := byKey[k]
		if !ok {
			a = &acc{value: decimal.Zero, priceSum: decimal.Zero}
			byKey[k] = a
		}
		value := p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))

		a.items++
		a.quantity += p.Quantity
		a.value = a.value.Add(value)
		a.priceSum = a.priceSum.Add(p.Price)
		if p.Quantity <= p.MinStockLevel {
			a.lowStock++
		}

		totals.TotalItems++
		totals.TotalQuantity += p.Quantity
		if p.Quantity <= p.MinStockLevel {
			totals.LowStockItems++
		}
		grandValue = grandValue.Add(value)
		grandPriceSum = grandPriceSum.Add(p.Price)
	}

	groups := make([]GroupSummary, 0, len(byKey))
	for label, a := range byKey {
		groups = append(groups, GroupSummary{
			Label:          label,
			Items:          a.items,
			TotalQuantity:  a.quantity,
			LowStockItems:  a.lowStock,
			TotalValue:     a.value,
			AvgPrice:       meanPrice(a.priceSum, a.items),
			PercentOfTotal: percentOf(a.value, grandValue),
		})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		if !groups[i].TotalValue.Equal(groups[j].TotalValue) {
			return groups[i].TotalValue.GreaterThan(groups[j].TotalValue)
		}
		return strings.Compare(groups[i].Label, groups[j].Label) < 0
	})

	totals.TotalGroups = len(groups)
	totals.TotalValue = grandValue
	totals.AvgPrice = meanPrice(grandPriceSum, totals.TotalItems)
	if grandValue.IsPositive() {
		// El total reporta exactamente 100, no la suma de parciales redondeados.
		totals.PercentOfTotal = hundred
	} else {
		totals.PercentOfTotal = decimal.Zero
	}
	return groups, totals
}

// percentOf devuelve value/total × 100 a 1 decimal; 0 si el total es cero.
func percentOf(value, total decimal.Decimal) decimal.Decimal {
	if !total.IsPositive() {
		return decimal.Zero
	}
	return value.Div(total).Mul(hundred).Round(1)
}

// meanPrice devuelve la media del precio unitario a 2 decimales; 0 sin items.
func meanPrice(priceSum decimal.Decimal, items int) decimal.Decimal {
	if items == 0 {
		return decimal.Zero
	}
	return priceSum.Div(decimal.NewFromInt(int64(items))).Round(2)
}
