package postgres

import (
	"context"
	"fmt"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, product_id, user_id, type, quantity, previous_quantity, new_quantity, notes, created_at`

// TransactionRepo ledger de movimientos sobre PostgreSQL. Append-only: el
// adaptador no expone Update ni Delete.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador del ledger.
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create apendea una fila al ledger.
func (r *TransactionRepo) Create(tx *entity.StockTransaction) error {
	_, err := r.q.Exec(context.Background(),
		`INSERT INTO stock_transactions (`+transactionColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		tx.ID, tx.ProductID, tx.UserID, string(tx.Type), tx.Quantity,
		tx.PreviousQuantity, tx.NewQuantity, nullStr(tx.Notes), tx.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock transaction: %w", err)
	}
	return nil
}

// List devuelve el ledger filtrado, más reciente primero.
func (r *TransactionRepo) List(f repository.TransactionFilter) ([]entity.StockTransaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM stock_transactions WHERE 1=1`
	var args []any
	if f.ProductID != "" {
		args = append(args, f.ProductID)
		query += fmt.Sprintf(" AND product_id = $%d", len(args))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}
	query += " ORDER BY created_at DESC"
	if f.Limit > 0 {
		args = append(args, f.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock transactions: %w", err)
	}
	defer rows.Close()

	var list []entity.StockTransaction
	for rows.Next() {
		var (
			tx    entity.StockTransaction
			typ   string
			notes *string
		)
		if err := rows.Scan(&tx.ID, &tx.ProductID, &tx.UserID, &typ, &tx.Quantity,
			&tx.PreviousQuantity, &tx.NewQuantity, &notes, &tx.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock transaction: %w", err)
		}
		tx.Type = entity.TransactionType(typ)
		tx.Notes = derefStr(notes)
		list = append(list, tx)
	}
	return list, rows.Err()
}
