package repository

import (
	"time"

	"github.com/invorya/stockroom-api/internal/domain/entity"
)

// TransactionFilter acota el listado del ledger.
// Limit <= 0 significa sin tope (exportes de movimientos).
type TransactionFilter struct {
	ProductID string
	From      time.Time
	To        time.Time
	Limit     int
}

// TransactionRepository puerto del ledger de movimientos de stock.
// El ledger es append-only: no hay Update ni Delete.
type TransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	List(filter TransactionFilter) ([]entity.StockTransaction, error)
}
