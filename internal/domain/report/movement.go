package report

import "github.com/invorya/stockroom-api/internal/domain/entity"

// Etiquetas del movimiento neto.
const (
	NetIncreased   = "increased"
	NetDecreased   = "decreased"
	NetNoNetChange = "no net change"
)

// MovementSummary agregados de un conjunto de transacciones acotado por fecha.
// Los ajustes cuentan en AdjustmentCount pero no suman a los totales in/out.
type MovementSummary struct {
	TotalTransactions int
	InCount           int
	OutCount          int
	AdjustmentCount   int
	TotalInQuantity   int
	TotalOutQuantity  int
	NetMovement       int // TotalInQuantity - TotalOutQuantity
	NetLabel          string
}

// SummarizeMovements particiona las transacciones en los tres buckets por
// tipo y calcula el movimiento neto.
func SummarizeMovements(txs []entity.StockTransaction) MovementSummary {
	var s MovementSummary
	for _, tx := range txs {
		s.TotalTransactions++
		switch tx.Type {
		case entity.TransactionIn:
			s.InCount++
			s.TotalInQuantity += tx.Quantity
		case entity.TransactionOut:
			s.OutCount++
			s.TotalOutQuantity += tx.Quantity
		case entity.TransactionAdjustment:
			s.AdjustmentCount++
		}
	}
	s.NetMovement = s.TotalInQuantity - s.TotalOutQuantity
	s.NetLabel = NetLabel(s.NetMovement)
	return s
}

// NetLabel traduce el signo del neto a su etiqueta textual.
func NetLabel(net int) string {
	switch {
	case net > 0:
		return NetIncreased
	case net < 0:
		return NetDecreased
	default:
		return NetNoNetChange
	}
}

// Cap trunca rows al límite dado y reporta si hubo truncamiento.
// limit <= 0 significa sin tope (los CSV de movimientos exportan completo).
func Cap[T any](rows []T, limit int) ([]T, bool) {
	if limit <= 0 || len(rows) <= limit {
		return rows, false
	}
	return rows[:limit], true
}
