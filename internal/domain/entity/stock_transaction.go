package entity

import "time"

// TransactionType tipo cerrado de transacción de stock.
// Se mantiene como tipo propio (no string suelto) para que el dispatch por
// tipo sea verificable en compilación.
type TransactionType string

const (
	TransactionIn         TransactionType = "in"
	TransactionOut        TransactionType = "out"
	TransactionAdjustment TransactionType = "adjustment"
)

// Valid indica si el tipo pertenece al conjunto cerrado.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionIn, TransactionOut, TransactionAdjustment:
		return true
	}
	return false
}

// StockTransaction es una entrada inmutable del ledger de movimientos.
// Nunca se actualiza ni se borra; la cadena por producto es append-only.
// Invariante: NewQuantity = PreviousQuantity ± Quantity según el tipo.
type StockTransaction struct {
	ID               string
	ProductID        string
	UserID           string
	Type             TransactionType
	Quantity         int // delta, siempre > 0
	PreviousQuantity int
	NewQuantity      int
	Notes            string
	CreatedAt        time.Time
}
