package dto

import "github.com/shopspring/decimal"

// LowStockItemDTO fila del reporte de stock bajo.
// Price llega formateado ("$#,##0.00") además del valor crudo.
type LowStockItemDTO struct {
	ProductID      string          `json:"product_id"`
	SKU            string          `json:"sku"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	Supplier       string          `json:"supplier"`
	Quantity       int             `json:"quantity"`
	MinStockLevel  int             `json:"min_stock_level"`
	Price          decimal.Decimal `json:"price"`
	PriceFormatted string          `json:"price_formatted"`
	Urgency        string          `json:"urgency"`
}

// LowStockReportDTO reporte de stock bajo completo.
type LowStockReportDTO struct {
	Items   []LowStockItemDTO   `json:"items"`
	Summary InventorySummaryDTO `json:"summary"`
}

// GroupSummaryDTO agregados de un grupo (categoría/proveedor).
type GroupSummaryDTO struct {
	Label               string          `json:"label"`
	Items               int             `json:"items"`
	TotalQuantity       int             `json:"total_quantity"`
	LowStockItems       int             `json:"low_stock_items"`
	TotalValue          decimal.Decimal `json:"total_value"`
	TotalValueFormatted string          `json:"total_value_formatted"`
	AvgPrice            decimal.Decimal `json:"avg_price"`
	AvgPriceFormatted   string          `json:"avg_price_formatted"`
	PercentOfTotal      decimal.Decimal `json:"percent_of_total"`
}

// InventorySummaryDTO agregados globales.
type InventorySummaryDTO struct {
	TotalItems          int             `json:"total_items"`
	TotalGroups         int             `json:"total_groups,omitempty"`
	LowStockItems       int             `json:"low_stock_items"`
	TotalQuantity       int             `json:"total_quantity"`
	TotalValue          decimal.Decimal `json:"total_value"`
	TotalValueFormatted string          `json:"total_value_formatted"`
	AvgPrice            decimal.Decimal `json:"avg_price"`
	AvgPriceFormatted   string          `json:"avg_price_formatted"`
	PercentOfTotal      decimal.Decimal `json:"percent_of_total"`
}

// GroupReportDTO reporte agrupado (category / supplier).
type GroupReportDTO struct {
	Groups []GroupSummaryDTO   `json:"groups"`
	Totals InventorySummaryDTO `json:"totals"`
}

// MovementReportDTO reporte de movimientos acotado por fechas.
// Truncated indica que el tope de pantalla cortó las filas mostradas.
type MovementReportDTO struct {
	Transactions      []TransactionResponse `json:"transactions"`
	Truncated         bool                  `json:"truncated"`
	TotalTransactions int                   `json:"total_transactions"`
	InCount           int                   `json:"in_count"`
	OutCount          int                   `json:"out_count"`
	AdjustmentCount   int                   `json:"adjustment_count"`
	TotalInQuantity   int                   `json:"total_in_quantity"`
	TotalOutQuantity  int                   `json:"total_out_quantity"`
	NetMovement       int                   `json:"net_movement"`
	NetLabel          string                `json:"net_label"` // increased | decreased | no net change
}
