package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/report"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas read-only para reportes y charts.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// ActiveProductStock productos activos con nombres de categoría y proveedor
// ya resueltos (NULL llega como cadena vacía; los placeholders los pone la
// capa de reportes).
func (r *ReportRepo) ActiveProductStock(ctx context.Context) ([]report.ProductStock, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.sku, p.name, c.name, s.name, p.quantity, p.min_stock_level, p.price
		FROM products p
		LEFT JOIN categories c ON c.id = p.category_id
		LEFT JOIN suppliers s ON s.id = p.supplier_id
		WHERE p.status = 'active'
		ORDER BY p.name ASC`)
	if err != nil {
		return nil, fmt.Errorf("active product stock: %w", err)
	}
	defer rows.Close()

	var list []report.ProductStock
	for rows.Next() {
		var (
			p                          report.ProductStock
			categoryName, supplierName *string
		)
		if err := rows.Scan(&p.ProductID, &p.SKU, &p.Name, &categoryName, &supplierName,
			&p.Quantity, &p.MinStockLevel, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product stock: %w", err)
		}
		p.CategoryName = derefStr(categoryName)
		p.SupplierName = derefStr(supplierName)
		list = append(list, p)
	}
	return list, rows.Err()
}

// ledgerQuery arma el SELECT del ledger resuelto. Las cotas de fecha solo
// aplican si vienen: una fecha cero significa sin acotar por ese lado, igual
// que en TransactionFilter.
func ledgerQuery(from, to time.Time, productID string, limit int) (string, []any) {
	query := `
		SELECT t.id, t.product_id, t.user_id, t.type, t.quantity, t.previous_quantity,
		       t.new_quantity, t.notes, t.created_at, p.sku, p.name, u.name
		FROM stock_transactions t
		JOIN products p ON p.id = t.product_id
		LEFT JOIN users u ON u.id = t.user_id
		WHERE 1=1`
	var args []any
	if !from.IsZero() {
		args = append(args, from)
		query += fmt.Sprintf(" AND t.created_at >= $%d", len(args))
	}
	if !to.IsZero() {
		args = append(args, to)
		query += fmt.Sprintf(" AND t.created_at <= $%d", len(args))
	}
	if productID != "" {
		args = append(args, productID)
		query += fmt.Sprintf(" AND t.product_id = $%d", len(args))
	}
	query += " ORDER BY t.created_at DESC"
	if limit > 0 {
		args = append(args, limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return query, args
}

// TransactionsBetween ledger acotado por fechas con SKU, nombre de producto y
// nombre de usuario resueltos, más reciente primero. Fechas cero = sin acotar;
// limit <= 0 = sin tope.
func (r *ReportRepo) TransactionsBetween(ctx context.Context, from, to time.Time, productID string, limit int) ([]repository.LedgerRow, error) {
	query, args := ledgerQuery(from, to, productID, limit)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("transactions between: %w", err)
	}
	defer rows.Close()

	var list []repository.LedgerRow
	for rows.Next() {
		var (
			row             repository.LedgerRow
			typ             string
			notes, userName *string
		)
		if err := rows.Scan(&row.ID, &row.ProductID, &row.UserID, &typ, &row.Quantity,
			&row.PreviousQuantity, &row.NewQuantity, &notes, &row.CreatedAt,
			&row.ProductSKU, &row.ProductName, &userName); err != nil {
			return nil, fmt.Errorf("scan ledger row: %w", err)
		}
		row.Type = entity.TransactionType(typ)
		row.Notes = derefStr(notes)
		row.UserName = derefStr(userName)
		list = append(list, row)
	}
	return list, rows.Err()
}

// MonthlyMovements sumas mensuales de entradas y salidas, mes más reciente
// primero (el caller invierte al orden cronológico del chart).
func (r *ReportRepo) MonthlyMovements(ctx context.Context, months int) ([]repository.MonthlyMovementRow, error) {
	rows, err := r.q.Query(ctx, `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month,
		       coalesce(sum(quantity) FILTER (WHERE type = 'in'), 0)  AS stock_in,
		       coalesce(sum(quantity) FILTER (WHERE type = 'out'), 0) AS stock_out
		FROM stock_transactions
		GROUP BY 1
		ORDER BY 1 DESC
		LIMIT $1`, months)
	if err != nil {
		return nil, fmt.Errorf("monthly movements: %w", err)
	}
	defer rows.Close()

	var list []repository.MonthlyMovementRow
	for rows.Next() {
		var m repository.MonthlyMovementRow
		if err := rows.Scan(&m.Month, &m.StockIn, &m.StockOut); err != nil {
			return nil, fmt.Errorf("scan monthly movement: %w", err)
		}
		list = append(list, m)
	}
	return list, rows.Err()
}
