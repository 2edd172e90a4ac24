package inventory_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

type fakeLedger struct {
	rows      []entity.StockTransaction
	lastLimit int
}

func (f *fakeLedger) Create(tx *entity.StockTransaction) error {
	f.rows = append(f.rows, *tx)
	return nil
}

func (f *fakeLedger) List(filter repository.TransactionFilter) ([]entity.StockTransaction, error) {
	f.lastLimit = filter.Limit
	if filter.Limit > 0 && len(f.rows) > filter.Limit {
		return f.rows[:filter.Limit], nil
	}
	return f.rows, nil
}

func seedLedger(n int) *fakeLedger {
	f := &fakeLedger{}
	for i := 0; i < n; i++ {
		f.rows = append(f.rows, entity.StockTransaction{
			ID:        fmt.Sprintf("tx-%03d", i),
			ProductID: "prod-1",
			Type:      entity.TransactionIn,
			Quantity:  1,
			CreatedAt: time.Now(),
		})
	}
	return f
}

func TestListTransactions_BajoElTope(t *testing.T) {
	repo := seedLedger(3)
	uc := inventory.NewListTransactionsUseCase(repo, 5)

	out, err := uc.List("", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Len(t, out.Items, 3)
	assert.False(t, out.Truncated, "bajo el tope no debe marcar truncado")
	assert.Equal(t, 6, repo.lastLimit, "pide tope+1 para detectar truncamiento")
}

func TestListTransactions_SobreElTope_Trunca(t *testing.T) {
	repo := seedLedger(8)
	uc := inventory.NewListTransactionsUseCase(repo, 5)

	out, err := uc.List("", time.Time{}, time.Time{})
	require.NoError(t, err)

	assert.Len(t, out.Items, 5, "la pantalla recibe exactamente el tope")
	assert.True(t, out.Truncated)
}

func TestListTransactions_NotasVaciasLlevanPlaceholder(t *testing.T) {
	repo := seedLedger(1)
	uc := inventory.NewListTransactionsUseCase(repo, 5)

	out, err := uc.List("", time.Time{}, time.Time{})
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "No notes", out.Items[0].Notes)
}
