// Package reports casos de uso de reportes: proyecciones read-only sobre el
// inventario y el ledger, en JSON, CSV y PDF. Ningún reporte tiene efectos
// secundarios; los agregados se recalculan en cada petición.
package reports

import (
	"context"
	"time"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/application/inventory"
	"github.com/invorya/stockroom-api/internal/domain/entity"
	"github.com/invorya/stockroom-api/internal/domain/report"
	"github.com/invorya/stockroom-api/internal/domain/repository"
	"github.com/invorya/stockroom-api/pkg/money"
)

// Caps límites por tipo de reporte (ver ReportConfig; cada tipo tiene su
// propio tope, no hay política unificada).
type Caps struct {
	ScreenRowLimit    int // movimientos en pantalla
	ActivityExportCap int // CSV de activity_logs
}

// LowStockPDFGenerator puerto de render del reporte de stock bajo en PDF.
type LowStockPDFGenerator interface {
	GenerateLowStockPDF(ctx context.Context, items []dto.LowStockItemDTO, summary dto.InventorySummaryDTO) ([]byte, error)
}

// ReportUseCase construye los reportes de inventario y movimientos.
type ReportUseCase struct {
	reportRepo   repository.ReportRepository
	activityRepo repository.ActivityLogRepository
	pdfGen       LowStockPDFGenerator
	caps         Caps
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(
	reportRepo repository.ReportRepository,
	activityRepo repository.ActivityLogRepository,
	pdfGen LowStockPDFGenerator,
	caps Caps,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:   reportRepo,
		activityRepo: activityRepo,
		pdfGen:       pdfGen,
		caps:         caps,
	}
}

// LowStock clasifica los productos activos y devuelve los que están en o
// bajo umbral, ordenados por razón quantity/min ascendente (indefinidas al
// final) y nombre.
func (uc *ReportUseCase) LowStock(ctx context.Context) (*dto.LowStockReportDTO, error) {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return nil, err
	}
	items := report.BuildLowStock(rows)
	out := make([]dto.LowStockItemDTO, 0, len(items))
	for _, it := range items {
		out = append(out, toLowStockItemDTO(it))
	}
	return &dto.LowStockReportDTO{
		Items:   out,
		Summary: toInventorySummaryDTO(report.Overview(rows)),
	}, nil
}

// Inventory agregados globales del inventario activo.
func (uc *ReportUseCase) Inventory(ctx context.Context) (*dto.InventorySummaryDTO, error) {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return nil, err
	}
	s := toInventorySummaryDTO(report.Overview(rows))
	return &s, nil
}

// ByCategory rollup por categoría con porcentaje sobre el valor total.
func (uc *ReportUseCase) ByCategory(ctx context.Context) (*dto.GroupReportDTO, error) {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return nil, err
	}
	groups, totals := report.GroupByCategory(rows)
	return toGroupReportDTO(groups, totals), nil
}

// BySupplier rollup por proveedor.
func (uc *ReportUseCase) BySupplier(ctx context.Context) (*dto.GroupReportDTO, error) {
	rows, err := uc.reportRepo.ActiveProductStock(ctx)
	if err != nil {
		return nil, err
	}
	groups, totals := report.GroupBySupplier(rows)
	return toGroupReportDTO(groups, totals), nil
}

// Movements agrega el ledger del rango dado. El resumen cubre el rango
// completo; las filas mostradas se truncan al tope de pantalla y Truncated
// lo señala.
func (uc *ReportUseCase) Movements(ctx context.Context, from, to time.Time, productID string) (*dto.MovementReportDTO, error) {
	rows, err := uc.reportRepo.TransactionsBetween(ctx, from, to, productID, 0)
	if err != nil {
		return nil, err
	}
	txs := make([]entity.StockTransaction, 0, len(rows))
	for _, r := range rows {
		txs = append(txs, r.StockTransaction)
	}
	summary := report.SummarizeMovements(txs)

	display, truncated := report.Cap(rows, uc.caps.ScreenRowLimit)
	items := make([]dto.TransactionResponse, 0, len(display))
	for _, r := range display {
		items = append(items, *inventory.ToTransactionResponse(r.StockTransaction))
	}
	return &dto.MovementReportDTO{
		Transactions:      items,
		Truncated:         truncated,
		TotalTransactions: summary.TotalTransactions,
		InCount:           summary.InCount,
		OutCount:          summary.OutCount,
		AdjustmentCount:   summary.AdjustmentCount,
		TotalInQuantity:   summary.TotalInQuantity,
		TotalOutQuantity:  summary.TotalOutQuantity,
		NetMovement:       summary.NetMovement,
		NetLabel:          summary.NetLabel,
	}, nil
}

// ExportLowStockPDF render del reporte de stock bajo vía el generador Maroto.
func (uc *ReportUseCase) ExportLowStockPDF(ctx context.Context) ([]byte, error) {
	rep, err := uc.LowStock(ctx)
	if err != nil {
		return nil, err
	}
	return uc.pdfGen.GenerateLowStockPDF(ctx, rep.Items, rep.Summary)
}

// ── Mapeos ────────────────────────────────────────────────────────────────────

func toLowStockItemDTO(it report.LowStockItem) dto.LowStockItemDTO {
	return dto.LowStockItemDTO{
		ProductID:      it.ProductID,
		SKU:            it.SKU,
		Name:           it.Name,
		Category:       it.CategoryName,
		Supplier:       it.SupplierName,
		Quantity:       it.Quantity,
		MinStockLevel:  it.MinStockLevel,
		Price:          it.Price,
		PriceFormatted: money.Format(it.Price),
		Urgency:        string(it.Urgency),
	}
}

func toInventorySummaryDTO(s report.InventorySummary) dto.InventorySummaryDTO {
	return dto.InventorySummaryDTO{
		TotalItems:          s.TotalItems,
		TotalGroups:         s.TotalGroups,
		LowStockItems:       s.LowStockItems,
		TotalQuantity:       s.TotalQuantity,
		TotalValue:          s.TotalValue,
		TotalValueFormatted: money.Format(s.TotalValue),
		AvgPrice:            s.AvgPrice,
		AvgPriceFormatted:   money.Format(s.AvgPrice),
		PercentOfTotal:      s.PercentOfTotal,
	}
}

func toGroupReportDTO(groups []report.GroupSummary, totals report.InventorySummary) *dto.GroupReportDTO {
	out := make([]dto.GroupSummaryDTO, 0, len(groups))
	for _, g := range groups {
		out = append(out, dto.GroupSummaryDTO{
			Label:               g.Label,
			Items:               g.Items,
			TotalQuantity:       g.TotalQuantity,
			LowStockItems:       g.LowStockItems,
			TotalValue:          g.TotalValue,
			TotalValueFormatted: money.Format(g.TotalValue),
			AvgPrice:            g.AvgPrice,
			AvgPriceFormatted:   money.Format(g.AvgPrice),
			PercentOfTotal:      g.PercentOfTotal,
		})
	}
	return &dto.GroupReportDTO{
		Groups: out,
		Totals: toInventorySummaryDTO(totals),
	}
}
