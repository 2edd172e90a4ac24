package repository

import "github.com/invorya/stockroom-api/internal/domain/entity"

// ProductFilter filtros del listado de productos.
type ProductFilter struct {
	Status     string // "", active, inactive
	CategoryID string
	SupplierID string
	Search     string // busca en sku y name
	Limit      int
	Offset     int
}

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	// GetForUpdate lee el producto bloqueando la fila (FOR UPDATE).
	// Solo tiene sentido dentro de una transacción (ver TxRunner).
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateQuantity fija las existencias; lo usa el registro de movimientos
	// dentro de la misma transacción que inserta la fila del ledger.
	UpdateQuantity(id string, quantity int) error
	SetStatus(id, status string) error
	List(filter ProductFilter) ([]*entity.Product, error)
}
