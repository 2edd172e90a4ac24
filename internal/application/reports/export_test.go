package reports_test

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invorya/stockroom-api/internal/application/reports"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/report"
	"github.com/invorya/stockroom-api/internal/domain/repository"
)

type fakeReportRepo struct {
	stock   []report.ProductStock
	ledger  []repository.LedgerRow
	monthly []repository.MonthlyMovementRow
}

func (f *fakeReportRepo) ActiveProductStock(context.Context) ([]report.ProductStock, error) {
	return f.stock, nil
}
func (f *fakeReportRepo) TransactionsBetween(_ context.Context, _, _ time.Time, _ string, limit int) ([]repository.LedgerRow, error) {
	if limit > 0 && limit < len(f.ledger) {
		return f.ledger[:limit], nil
	}
	return f.ledger, nil
}
func (f *fakeReportRepo) MonthlyMovements(context.Context, int) ([]repository.MonthlyMovementRow, error) {
	return f.monthly, nil
}

type fakeActivityLogRepo struct {
	logs          []entity.ActivityLog
	requestedSize int
}

func (f *fakeActivityLogRepo) Create(*entity.ActivityLog) error { return nil }
func (f *fakeActivityLogRepo) List(limit, _ int) ([]entity.ActivityLog, error) {
	f.requestedSize = limit
	if limit > 0 && limit < len(f.logs) {
		return f.logs[:limit], nil
	}
	return f.logs, nil
}

func newExportFixture(stock []report.ProductStock) (*reports.ReportUseCase, *fakeActivityLogRepo) {
	activity := &fakeActivityLogRepo{}
	uc := reports.NewReportUseCase(
		&fakeReportRepo{stock: stock},
		activity,
		nil,
		reports.Caps{ScreenRowLimit: 500, ActivityExportCap: 1000},
	)
	return uc, activity
}

func parseCSV(t *testing.T, body []byte) [][]string {
	t.Helper()
	r := csv.NewReader(strings.NewReader(string(body)))
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	require.NoError(t, err)
	return rows
}

func TestParseReportType(t *testing.T) {
	got, ok := reports.ParseReportType("stock_transactions")
	require.True(t, ok, "alias histórico")
	assert.Equal(t, reports.ReportStockMovements, got)

	got, ok = reports.ParseReportType("low_stock")
	require.True(t, ok)
	assert.Equal(t, reports.ReportLowStock, got)

	_, ok = reports.ParseReportType("everything")
	assert.False(t, ok)
}

func TestInvalidTypeCSV(t *testing.T) {
	assert.Equal(t, "Error,Invalid report type\n", string(reports.InvalidTypeCSV()))
}

func TestExportCSV_Products(t *testing.T) {
	uc, _ := newExportFixture([]report.ProductStock{
		{SKU: "SKU-1", Name: "Tornillos", CategoryName: "Ferretería", SupplierName: "ACME",
			Quantity: 3, MinStockLevel: 5, Price: decimal.NewFromFloat(1234.5)},
		{SKU: "SKU-2", Name: "Suelto", Quantity: 1, MinStockLevel: 0, Price: decimal.NewFromInt(2)},
	})

	body, filename, err := uc.ExportCSV(context.Background(), reports.ReportProducts, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(filename, "products_"))
	assert.True(t, strings.HasSuffix(filename, ".csv"))

	rows := parseCSV(t, body)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"SKU", "Name", "Category", "Supplier", "Price", "Quantity", "Min Stock Level", "Total Value"}, rows[0])
	assert.Equal(t, "$1,234.50", rows[1][4], "moneda pre-formateada")
	assert.Equal(t, "$3,703.50", rows[1][7])
	assert.Equal(t, "No Category", rows[2][2])
	assert.Equal(t, "No Supplier", rows[2][3])
}

func TestExportCSV_LowStockExcluyeEnStock(t *testing.T) {
	uc, _ := newExportFixture([]report.ProductStock{
		{SKU: "A", Name: "Agotado", Quantity: 0, MinStockLevel: 10, Price: decimal.NewFromInt(1)},
		{SKU: "B", Name: "Sobrado", Quantity: 99, MinStockLevel: 10, Price: decimal.NewFromInt(1)},
	})

	body, _, err := uc.ExportCSV(context.Background(), reports.ReportLowStock, time.Time{}, time.Time{})
	require.NoError(t, err)

	rows := parseCSV(t, body)
	require.Len(t, rows, 2, "cabecera + solo el agotado")
	assert.Equal(t, "Critical", rows[1][6])
}

func TestExportCSV_ActivityRespetaTope(t *testing.T) {
	uc, activity := newExportFixture(nil)
	activity.logs = []entity.ActivityLog{{UserID: "u1", Action: "login", CreatedAt: time.Now()}}

	_, _, err := uc.ExportCSV(context.Background(), reports.ReportActivityLogs, time.Time{}, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, 1000, activity.requestedSize, "el CSV de actividad corta en el tope configurado")
}

func TestExportCSV_MovimientosConResumen(t *testing.T) {
	activity := &fakeActivityLogRepo{}
	now := time.Now()
	uc := reports.NewReportUseCase(
		&fakeReportRepo{ledger: []repository.LedgerRow{
			{StockTransaction: entity.StockTransaction{Type: entity.TransactionIn, Quantity: 10,
				PreviousQuantity: 0, NewQuantity: 10, CreatedAt: now}, ProductSKU: "SKU-1", ProductName: "Tornillos", UserName: "Ana"},
			{StockTransaction: entity.StockTransaction{Type: entity.TransactionOut, Quantity: 4,
				PreviousQuantity: 10, NewQuantity: 6, CreatedAt: now}, ProductSKU: "SKU-1", ProductName: "Tornillos", UserName: "Ana"},
		}},
		activity,
		nil,
		reports.Caps{ScreenRowLimit: 500, ActivityExportCap: 1000},
	)

	body, _, err := uc.ExportCSV(context.Background(), reports.ReportStockMovements, now.Add(-time.Hour), now)
	require.NoError(t, err)

	rows := parseCSV(t, body)
	require.Len(t, rows, 6, "cabecera + 2 filas + 3 de resumen")
	assert.Equal(t, "No notes", rows[1][8])
	assert.Equal(t, []string{"Total In", "10"}, rows[3])
	assert.Equal(t, []string{"Total Out", "4"}, rows[4])
	assert.Equal(t, []string{"Net Movement", "6", report.NetIncreased}, rows[5])
}

func TestExportCSV_CategoriaConPorcentajes(t *testing.T) {
	uc, _ := newExportFixture([]report.ProductStock{
		{SKU: "A", Name: "Caro", CategoryName: "Alta", Quantity: 1, MinStockLevel: 0, Price: decimal.NewFromInt(300)},
		{SKU: "B", Name: "Barato", CategoryName: "Baja", Quantity: 1, MinStockLevel: 0, Price: decimal.NewFromInt(100)},
	})

	body, _, err := uc.ExportCSV(context.Background(), reports.ReportCategory, time.Time{}, time.Time{})
	require.NoError(t, err)

	rows := parseCSV(t, body)
	require.Len(t, rows, 4)
	assert.Equal(t, "Alta", rows[1][0], "grupos ordenados por valor descendente")
	assert.Equal(t, "75.0%", rows[1][6])
	assert.Equal(t, "25.0%", rows[2][6])
	assert.Equal(t, "100.0%", rows[3][6], "el total reporta exactamente 100")
}
