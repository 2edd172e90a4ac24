package dto

import "time"

// RecordTransactionRequest entrada para registrar un movimiento de stock.
// Para type=adjustment se envía new_quantity (cantidad objetivo) en lugar de
// quantity; el ledger guarda el delta absoluto más previous/new.
type RecordTransactionRequest struct {
	ProductID   string `json:"product_id"`
	Type        string `json:"type"` // in | out | adjustment
	Quantity    int    `json:"quantity"`
	NewQuantity *int   `json:"new_quantity"` // solo adjustment
	Notes       string `json:"notes"`
}

// TransactionResponse salida de una entrada del ledger.
// Notes siempre trae texto: "No notes" si venía vacío.
type TransactionResponse struct {
	ID               string    `json:"id"`
	ProductID        string    `json:"product_id"`
	UserID           string    `json:"user_id"`
	Type             string    `json:"type"`
	Quantity         int       `json:"quantity"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Notes            string    `json:"notes"`
	CreatedAt        time.Time `json:"created_at"`
}

// TransactionListResponse listado del ledger con indicador de truncamiento.
type TransactionListResponse struct {
	Items     []TransactionResponse `json:"items"`
	Truncated bool                  `json:"truncated"`
}
