package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/report"
)

func tx(t entity.TransactionType, q int) entity.StockTransaction {
	return entity.StockTransaction{Type: t, Quantity: q}
}

func TestSummarizeMovements_Buckets(t *testing.T) {
	s := report.SummarizeMovements([]entity.StockTransaction{
		tx(entity.TransactionIn, 10),
		tx(entity.TransactionIn, 5),
		tx(entity.TransactionOut, 7),
		tx(entity.TransactionAdjustment, 99), // cuenta, pero no suma in/out
	})
	assert.Equal(t, 4, s.TotalTransactions)
	assert.Equal(t, 2, s.InCount)
	assert.Equal(t, 1, s.OutCount)
	assert.Equal(t, 1, s.AdjustmentCount)
	assert.Equal(t, 15, s.TotalInQuantity)
	assert.Equal(t, 7, s.TotalOutQuantity)
	assert.Equal(t, 8, s.NetMovement)
	assert.Equal(t, report.NetIncreased, s.NetLabel)
}

func TestSummarizeMovements_Etiquetas(t *testing.T) {
	assert.Equal(t, report.NetDecreased, report.SummarizeMovements([]entity.StockTransaction{
		tx(entity.TransactionOut, 3),
	}).NetLabel)

	assert.Equal(t, report.NetNoNetChange, report.SummarizeMovements([]entity.StockTransaction{
		tx(entity.TransactionIn, 3),
		tx(entity.TransactionOut, 3),
	}).NetLabel)

	assert.Equal(t, report.NetNoNetChange, report.SummarizeMovements(nil).NetLabel)
}

func TestCap(t *testing.T) {
	rows := []int{1, 2, 3, 4, 5}

	capped, truncated := report.Cap(rows, 3)
	assert.Equal(t, []int{1, 2, 3}, capped)
	assert.True(t, truncated)

	all, truncated := report.Cap(rows, 0) // sin tope
	assert.Equal(t, rows, all)
	assert.False(t, truncated)

	same, truncated := report.Cap(rows, 5)
	assert.Equal(t, rows, same)
	assert.False(t, truncated)
}
