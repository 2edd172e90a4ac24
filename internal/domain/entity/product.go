package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos para Product.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// Product representa un producto del inventario.
// Quantity se actualiza únicamente vía transacciones de stock (ledger);
// CategoryID y SupplierID son opcionales ("" = sin categoría/proveedor).
type Product struct {
	ID            string
	SKU           string // código único
	Name          string
	Description   string
	CategoryID    string // vacío si no tiene categoría
	SupplierID    string // vacío si no tiene proveedor
	Price         decimal.Decimal // precio unitario, >= 0
	Quantity      int             // existencias, >= 0
	MinStockLevel int             // umbral de stock bajo, >= 0
	Status        string          // active, inactive
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsLowStock indica si el producto está en o bajo su umbral mínimo.
func (p *Product) IsLowStock() bool {
	return p.Quantity <= p.MinStockLevel
}

// TotalValue devuelve price × quantity.
func (p *Product) TotalValue() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}
