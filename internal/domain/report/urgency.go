// Package report contiene la lógica pura de reportes: clasificación de
// urgencia de stock, rollups agregados y resumen de movimientos. Todo se
// recalcula en cada render; nada de este paquete se persiste.
package report

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Urgency nivel de urgencia de reposición de un producto.
type Urgency string

const (
	UrgencyCritical Urgency = "Critical"
	UrgencyVeryLow  Urgency = "Very Low"
	UrgencyLow      Urgency = "Low"
	UrgencyInStock  Urgency = "In Stock"
)

// Textos de sustitución para campos opcionales ausentes. La salida siempre
// lleva el literal, nunca un null propagado.
const (
	PlaceholderCategory = "No Category"
	PlaceholderSupplier = "No Supplier"
	PlaceholderNotes    = "No notes"
)

// ProductStock fila cruda de producto activo para reportes.
// CategoryName y SupplierName vacíos significan "sin asignar"; los builders
// aplican los placeholders al construir la salida.
type ProductStock struct {
	ProductID     string
	SKU           string
	Name          string
	CategoryName  string
	SupplierName  string
	Quantity      int
	MinStockLevel int
	Price         decimal.Decimal
}

// Classify devuelve el nivel de urgencia en función de (quantity, min).
// La comparación quantity <= min*0.5 se hace entera (2q <= min) para no
// depender de redondeos de punto flotante.
func Classify(quantity, minStock int) Urgency {
	switch {
	case quantity == 0:
		return UrgencyCritical
	case 2*quantity <= minStock:
		return UrgencyVeryLow
	case quantity <= minStock:
		return UrgencyLow
	default:
		return UrgencyInStock
	}
}

// LowStockItem fila del reporte de stock bajo.
type LowStockItem struct {
	ProductID     string
	SKU           string
	Name          string
	CategoryName  string // placeholder aplicado
	SupplierName  string // placeholder aplicado
	Quantity      int
	MinStockLevel int
	Price         decimal.Decimal
	Urgency       Urgency
}

// ratioDefined indica si quantity/min tiene un valor definido.
// Con min == 0 la razón es indefinida y la fila ordena después de todas las
// definidas (semántica NULLS LAST de SQL, reproducida explícitamente).
func (it LowStockItem) ratioDefined() bool { return it.MinStockLevel > 0 }

// ratioLess compara a.Q/a.Min < b.Q/b.Min por producto cruzado, sin dividir.
func ratioLess(a, b LowStockItem) bool {
	return a.Quantity*b.MinStockLevel < b.Quantity*a.MinStockLevel
}

// BuildLowStock clasifica los productos activos, excluye los que están
// "In Stock" y ordena el resultado: razón quantity/min ascendente con las
// razones indefinidas al final, luego nombre ascendente (sort estable de dos
// claves).
func BuildLowStock(items []ProductStock) []LowStockItem {
	out := make([]LowStockItem, 0, len(items))
	for _, p := range items {
		u := Classify(p.Quantity, p.MinStockLevel)
		if u == UrgencyInStock {
			continue
		}
		out = append(out, LowStockItem{
			ProductID:     p.ProductID,
			SKU:           p.SKU,
			Name:          p.Name,
			CategoryName:  orPlaceholder(p.CategoryName, PlaceholderCategory),
			SupplierName:  orPlaceholder(p.SupplierName, PlaceholderSupplier),
			Quantity:      p.Quantity,
			MinStockLevel: p.MinStockLevel,
			Price:         p.Price,
			Urgency:       u,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		switch {
		case a.ratioDefined() && !b.ratioDefined():
			return true
		case !a.ratioDefined() && b.ratioDefined():
			return false
		case a.ratioDefined() && b.ratioDefined():
			if ratioLess(a, b) {
				return true
			}
			if ratioLess(b, a) {
				return false
			}
		}
		return strings.Compare(a.Name, b.Name) < 0
	})
	return out
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
