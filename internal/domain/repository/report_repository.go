package repository

import (
	"context"
	"time"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/report"
)

// MonthlyMovementRow fila cruda del agregado mensual de movimientos.
// La consulta subyacente devuelve los meses en orden DESCENDENTE (LIMIT n
// sobre los más recientes); el use case invierte a cronológico ascendente.
type MonthlyMovementRow struct {
	Month    string // "2024-06"
	StockIn  int
	StockOut int
}

// LedgerRow fila del ledger con referencias ya resueltas para reportes.
type LedgerRow struct {
	entity.StockTransaction
	ProductSKU  string
	ProductName string
	UserName    string
}

// ReportRepository consultas de solo lectura para reportes y charts.
// Las implementaciones no modifican datos.
type ReportRepository interface {
	// ActiveProductStock devuelve los productos activos con nombre de
	// categoría y proveedor ya resueltos (vacíos si no tienen).
	ActiveProductStock(ctx context.Context) ([]report.ProductStock, error)

	// TransactionsBetween devuelve el ledger acotado por fechas, más reciente
	// primero. limit <= 0 significa sin tope.
	TransactionsBetween(ctx context.Context, from, to time.Time, productID string, limit int) ([]LedgerRow, error)

	// MonthlyMovements devuelve los últimos `months` meses con sumas de
	// entradas y salidas, en orden descendente por mes.
	MonthlyMovements(ctx context.Context, months int) ([]MonthlyMovementRow, error)
}
