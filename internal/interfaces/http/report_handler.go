package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/application/reports"
)

// ReportHandler maneja los reportes de inventario y movimientos (protegido).
type ReportHandler struct {
	uc *reports.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// LowStock godoc
// @Summary      Reporte de stock bajo con niveles de urgencia
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.LowStockReportDTO
// @Router       /api/reports/low-stock [get]
func (h *ReportHandler) LowStock(c *fiber.Ctx) error {
	out, err := h.uc.LowStock(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Inventory godoc
// @Summary      Resumen del inventario (totales y valor)
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventorySummaryDTO
// @Router       /api/reports/inventory [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	out, err := h.uc.Inventory(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ByCategory godoc
// @Summary      Inventario agrupado por categoría con porcentajes de valor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GroupReportDTO
// @Router       /api/reports/by-category [get]
func (h *ReportHandler) ByCategory(c *fiber.Ctx) error {
	out, err := h.uc.ByCategory(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// BySupplier godoc
// @Summary      Inventario agrupado por proveedor con porcentajes de valor
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.GroupReportDTO
// @Router       /api/reports/by-supplier [get]
func (h *ReportHandler) BySupplier(c *fiber.Ctx) error {
	out, err := h.uc.BySupplier(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// Movements godoc
// @Summary      Reporte de movimientos en un rango de fechas
// @Tags         reports
// @Security     Bearer
// @Produce      json
// @Param        from        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to          query  string  false  "Fecha final YYYY-MM-DD"
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Success      200  {object}  dto.MovementReportDTO
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/reports/movements [get]
func (h *ReportHandler) Movements(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fechas con formato YYYY-MM-DD"})
	}
	out, err := h.uc.Movements(c.Context(), from, to, c.Query("product_id"))
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ExportCSV godoc
// @Summary      Exportar un reporte a CSV
// @Description  Un type desconocido no falla: devuelve un CSV con una fila de error, igual que la pantalla lo muestra.
// @Tags         reports
// @Security     Bearer
// @Produce      text/csv
// @Param        type  query  string  true   "products | inventory | low_stock | stock_movements | category | supplier | activity_logs"
// @Param        from  query  string  false  "Fecha inicial YYYY-MM-DD (solo stock_movements)"
// @Param        to    query  string  false  "Fecha final YYYY-MM-DD (solo stock_movements)"
// @Success      200  {string}  string  "CSV"
// @Router       /api/reports/export [get]
func (h *ReportHandler) ExportCSV(c *fiber.Ctx) error {
	t, known := reports.ParseReportType(c.Query("type"))
	if !known {
		c.Set(fiber.HeaderContentType, "text/csv")
		return c.Send(reports.InvalidTypeCSV())
	}

	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fechas con formato YYYY-MM-DD"})
	}

	body, filename, err := h.uc.ExportCSV(c.Context(), t, from, to)
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(body)
}

// ExportLowStockPDF godoc
// @Summary      Exportar el reporte de stock bajo a PDF
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Success      200  {string}  string  "PDF"
// @Router       /api/reports/low-stock/pdf [get]
func (h *ReportHandler) ExportLowStockPDF(c *fiber.Ctx) error {
	body, err := h.uc.ExportLowStockPDF(c.Context())
	if err != nil {
		return domainError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="low_stock_report.pdf"`)
	return c.Send(body)
}
