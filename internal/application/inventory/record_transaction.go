// Package inventory caso de uso del ledger de movimientos de stock.
package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/report"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción de base de datos, con repos
// atados a la tx. El lock de fila (GetForUpdate) más la tx serializan los
// ajustes concurrentes sobre el mismo producto.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		activityRepo repository.ActivityLogRepository,
	) error) error
}

// RecordTransactionUseCase registra un movimiento: bloquea el producto,
// calcula la nueva cantidad según el tipo, apendea la fila inmutable del
// ledger y actualiza las existencias, todo en una sola transacción.
type RecordTransactionUseCase struct {
	runner TxRunner
}

// NewRecordTransactionUseCase construye el caso de uso.
func NewRecordTransactionUseCase(runner TxRunner) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{runner: runner}
}

// Record valida y aplica el movimiento. Para type=adjustment la entrada trae
// la cantidad objetivo (new_quantity); el ledger guarda el delta absoluto y
// previous/new, de modo que new = prev ± quantity se cumple siempre.
func (uc *RecordTransactionUseCase) Record(ctx context.Context, userID string, in dto.RecordTransactionRequest) (*dto.TransactionResponse, error) {
	txType := entity.TransactionType(in.Type)
	if !txType.Valid() || in.ProductID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch txType {
	case entity.TransactionIn, entity.TransactionOut:
		if in.Quantity <= 0 {
			return nil, domain.ErrInvalidInput
		}
	case entity.TransactionAdjustment:
		if in.NewQuantity == nil || *in.NewQuantity < 0 {
			return nil, domain.ErrInvalidInput
		}
	}

	var out *dto.TransactionResponse
	err := uc.runner.Run(ctx, func(
		productRepo repository.ProductRepository,
		txRepo repository.TransactionRepository,
		activityRepo repository.ActivityLogRepository,
	) error {
		p, err := productRepo.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		prev := p.Quantity
		var next, delta int
		switch txType {
		case entity.TransactionIn:
			delta = in.Quantity
			next = prev + delta
		case entity.TransactionOut:
			delta = in.Quantity
			next = prev - delta
			if next < 0 {
				return domain.ErrInsufficientStock
			}
		case entity.TransactionAdjustment:
			next = *in.NewQuantity
			delta = next - prev
			if delta < 0 {
				delta = -delta
			}
			if delta == 0 {
				return domain.ErrInvalidInput // ajuste sin cambio
			}
		}

		ledger := &entity.StockTransaction{
			ID:               uuid.New().String(),
			ProductID:        p.ID,
			UserID:           userID,
			Type:             txType,
			Quantity:         delta,
			PreviousQuantity: prev,
			NewQuantity:      next,
			Notes:            in.Notes,
			CreatedAt:        time.Now(),
		}
		if err := txRepo.Create(ledger); err != nil {
			return err
		}
		if err := productRepo.UpdateQuantity(p.ID, next); err != nil {
			return err
		}
		if err := activityRepo.Create(&entity.ActivityLog{
			ID:        uuid.New().String(),
			UserID:    userID,
			Action:    "stock_" + string(txType),
			Detail:    "sku=" + p.SKU,
			CreatedAt: ledger.CreatedAt,
		}); err != nil {
			return err
		}
		out = ToTransactionResponse(*ledger)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ToTransactionResponse mapea una fila del ledger a su DTO, sustituyendo las
// notas vacías por el placeholder.
func ToTransactionResponse(tx entity.StockTransaction) *dto.TransactionResponse {
	notes := tx.Notes
	if notes == "" {
		notes = report.PlaceholderNotes
	}
	return &dto.TransactionResponse{
		ID:               tx.ID,
		ProductID:        tx.ProductID,
		UserID:           tx.UserID,
		Type:             string(tx.Type),
		Quantity:         tx.Quantity,
		PreviousQuantity: tx.PreviousQuantity,
		NewQuantity:      tx.NewQuantity,
		Notes:            notes,
		CreatedAt:        tx.CreatedAt,
	}
}
