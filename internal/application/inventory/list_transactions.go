package inventory

import (
	"time"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

// ListTransactionsUseCase lista el ledger para pantalla, con tope de filas y
// bandera de truncamiento para que el cliente sepa que debe exportar a CSV.
type ListTransactionsUseCase struct {
	txRepo         repository.TransactionRepository
	screenRowLimit int
}

// NewListTransactionsUseCase construye el caso de uso.
func NewListTransactionsUseCase(txRepo repository.TransactionRepository, screenRowLimit int) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{txRepo: txRepo, screenRowLimit: screenRowLimit}
}

// List devuelve los movimientos más recientes que cumplen el filtro. Pide una
// fila más que el tope para detectar si quedó material fuera de pantalla.
func (uc *ListTransactionsUseCase) List(productID string, from, to time.Time) (*dto.TransactionListResponse, error) {
	rows, err := uc.txRepo.List(repository.TransactionFilter{
		ProductID: productID,
		From:      from,
		To:        to,
		Limit:     uc.screenRowLimit + 1,
	})
	if err != nil {
		return nil, err
	}

	truncated := false
	if len(rows) > uc.screenRowLimit {
		rows = rows[:uc.screenRowLimit]
		truncated = true
	}

	items := make([]dto.TransactionResponse, 0, len(rows))
	for _, tx := range rows {
		items = append(items, *ToTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{Items: items, Truncated: truncated}, nil
}
