package reports

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/report"
	"github.com/invorya/stockroom-api/pkg/money"
)

// ReportType conjunto cerrado de tipos exportables. Se resuelve con
// ParseReportType; añadir un tipo nuevo obliga a tocar el switch de
// ExportCSV, que es exhaustivo.
type ReportType string

const (
	ReportProducts       ReportType = "products"
	ReportActivityLogs   ReportType = "activity_logs"
	ReportInventory      ReportType = "inventory"
	ReportLowStock       ReportType = "low_stock"
	ReportStockMovements ReportType = "stock_movements"
	ReportCategory       ReportType = "category"
	ReportSupplier       ReportType = "supplier"
)

// ParseReportType resuelve el query param `type`. "stock_transactions" es
// alias histórico de "stock_movements".
func ParseReportType(s string) (ReportType, bool) {
	switch s {
	case "products":
		return ReportProducts, true
	case "activity_logs":
		return ReportActivityLogs, true
	case "inventory":
		return ReportInventory, true
	case "low_stock":
		return ReportLowStock, true
	case "stock_movements", "stock_transactions":
		return ReportStockMovements, true
	case "category":
		return ReportCategory, true
	case "supplier":
		return ReportSupplier, true
	}
	return "", false
}

// InvalidTypeCSV cuerpo de una fila para tipos desconocidos. El export no
// falla con 4xx: entrega este CSV y la pantalla lo muestra tal cual.
func InvalidTypeCSV() []byte {
	return []byte("Error,Invalid report type\n")
}

// ExportCSV genera el CSV del tipo pedido. Devuelve el cuerpo y el nombre de
// archivo sugerido. Las celdas de moneda van pre-formateadas como "$#,##0.00"
// (idéntico a pantalla); los topes difieren por tipo: activity_logs corta en
// ActivityExportCap, stock_movements exporta completo.
func (uc *ReportUseCase) ExportCSV(ctx context.Context, t ReportType, from, to time.Time) ([]byte, string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	var err error
	switch t {
	case ReportProducts:
		err = uc.writeProductsCSV(ctx, w)
	case ReportActivityLogs:
		err = uc.writeActivityCSV(w)
	case ReportInventory:
		err = uc.writeInventoryCSV(ctx, w)
	case ReportLowStock:
		err = uc.writeLowStockCSV(ctx, w)
	case ReportStockMovements:
		err = uc.writeMovementsCSV(ctx, w, from, to)
	case ReportCategory:
		err = uc.writeGroupCSV(ctx, w, "Category", report.GroupByCategory)
	case ReportSupplier:
		err = uc.writeGroupCSV(ctx, w, "Supplier", report.GroupBySupplier)
	default:
		return nil, "", fmt.Errorf("export: tipo de reporte no soportado: %q", t)
	}
	if err != nil {
		return nil, "", err
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, "", fmt.Errorf("export: escribir csv: %w", err)
	}
	filename := fmt.Sprintf("%s_%s.csv", t, time.Now().Format("2006-01-02"))
	return buf.Bytes(), filename, nil
}

func (uc *ReportUseCase) writeProductsCSV(ctx context.Context, w *csv.Writer) error {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return err
	}
	if err := w.Write([]string{"SKU", "Name", "Category", "Supplier", "Price", "Quantity", "Min Stock Level", "Total Value"}); err != nil {
		return err
	}
	for _, p := range rows {
		value := p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
		if err := w.Write([]string{
			p.SKU,
			p.Name,
			orText(p.CategoryName, report.PlaceholderCategory),
			orText(p.SupplierName, report.PlaceholderSupplier),
			money.Format(p.Price),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinStockLevel),
			money.Format(value),
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ReportUseCase) writeActivityCSV(w *csv.Writer) error {
	logs, err := uc.activityRepo.List(uc.caps.ActivityExportCap, 0)
	if err != nil {
		return err
	}
	if err := w.Write([]string{"Date", "User ID", "Action", "Detail"}); err != nil {
		return err
	}
	for _, l := range logs {
		if err := w.Write([]string{
			l.CreatedAt.Format("2006-01-02 15:04:05"),
			l.UserID,
			l.Action,
			l.Detail,
		}); err != nil {
			return err
		}
	}
	return nil
}

func (uc *ReportUseCase) writeInventoryCSV(ctx context.Context, w *csv.Writer) error {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return err
	}
	if err := w.Write([]string{"SKU", "Name", "Category", "Supplier", "Quantity", "Min Stock Level", "Unit Price", "Total Value", "Stock Status"}); err != nil {
		return err
	}
	for _, p := range rows {
		value := p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
		if err := w.Write([]string{
			p.SKU,
			p.Name,
			orText(p.CategoryName, report.PlaceholderCategory),
			orText(p.SupplierName, report.PlaceholderSupplier),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinStockLevel),
			money.Format(p.Price),
			money.Format(value),
			string(report.Classify(p.Quantity, p.MinStockLevel)),
		}); err != nil {
			return err
		}
	}
	totals := report.Overview(rows)
	return w.Write([]string{
		"Totals",
		fmt.Sprintf("%d items", totals.TotalItems),
		"", "",
		strconv.Itoa(totals.TotalQuantity),
		"",
		money.Format(totals.AvgPrice),
		money.Format(totals.TotalValue),
		"",
	})
}

func (uc *ReportUseCase) writeLowStockCSV(ctx context.Context, w *csv.Writer) error {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return err
	}
	if err := w.Write([]string{"SKU", "Name", "Category", "Supplier", "Quantity", "Min Stock Level", "Urgency", "Unit Price"}); err != nil {
		return err
	}
	for _, it := range report.BuildLowStock(rows) {
		if err := w.Write([]string{
			it.SKU,
			it.Name,
			it.CategoryName,
			it.SupplierName,
			strconv.Itoa(it.Quantity),
			strconv.Itoa(it.MinStockLevel),
			string(it.Urgency),
			money.Format(it.Price),
		}); err != nil {
			return err
		}
	}
	return nil
}

// writeMovementsCSV exporta el ledger del rango completo, sin tope.
func (uc *ReportUseCase) writeMovementsCSV(ctx context.Context, w *csv.Writer, from, to time.Time) error {
	rows, err := uc.reportRepo.TransactionsBetween(ctx, from, to, "", 0)
	if err != nil {
		return err
	}
	if err := w.Write([]string{"Date", "SKU", "Product", "Type", "Quantity", "Previous Quantity", "New Quantity", "User", "Notes"}); err != nil {
		return err
	}
	txs := make([]entity.StockTransaction, 0, len(rows))
	for _, r := range rows {
		txs = append(txs, r.StockTransaction)
		if err := w.Write([]string{
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.ProductSKU,
			r.ProductName,
			string(r.Type),
			strconv.Itoa(r.Quantity),
			strconv.Itoa(r.PreviousQuantity),
			strconv.Itoa(r.NewQuantity),
			orText(r.UserName, r.UserID),
			orText(r.Notes, report.PlaceholderNotes),
		}); err != nil {
			return err
		}
	}
	s := report.SummarizeMovements(txs)
	if err := w.Write([]string{"Total In", strconv.Itoa(s.TotalInQuantity)}); err != nil {
		return err
	}
	if err := w.Write([]string{"Total Out", strconv.Itoa(s.TotalOutQuantity)}); err != nil {
		return err
	}
	return w.Write([]string{"Net Movement", strconv.Itoa(s.NetMovement), s.NetLabel})
}

func (uc *ReportUseCase) writeGroupCSV(
	ctx context.Context,
	w *csv.Writer,
	label string,
	group func([]report.ProductStock) ([]report.GroupSummary, report.InventorySummary),
) error {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return err
	}
	groups, totals := group(rows)
	if err := w.Write([]string{label, "Items", "Total Quantity", "Low Stock Items", "Total Value", "Avg Price", "% of Total"}); err != nil {
		return err
	}
	for _, g := range groups {
		if err := w.Write([]string{
			g.Label,
			strconv.Itoa(g.Items),
			strconv.Itoa(g.TotalQuantity),
			strconv.Itoa(g.LowStockItems),
			money.Format(g.TotalValue),
			money.Format(g.AvgPrice),
			g.PercentOfTotal.StringFixed(1) + "%",
		}); err != nil {
			return err
		}
	}
	return w.Write([]string{
		"Total",
		strconv.Itoa(totals.TotalItems),
		strconv.Itoa(totals.TotalQuantity),
		strconv.Itoa(totals.LowStockItems),
		money.Format(totals.TotalValue),
		money.Format(totals.AvgPrice),
		totals.PercentOfTotal.StringFixed(1) + "%",
	})
}

func orText(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
