package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/application/inventory"
)

// InventoryHandler maneja el ledger de movimientos de stock (protegido).
type InventoryHandler struct {
	record *inventory.RecordTransactionUseCase
	list   *inventory.ListTransactionsUseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(record *inventory.RecordTransactionUseCase, list *inventory.ListTransactionsUseCase) *InventoryHandler {
	return &InventoryHandler{record: record, list: list}
}

// Record godoc
// @Summary      Registrar movimiento de stock (in | out | adjustment)
// @Tags         transactions
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RecordTransactionRequest  true  "Movimiento"
// @Success      201   {object}  dto.TransactionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/transactions [post]
func (h *InventoryHandler) Record(c *fiber.Ctx) error {
	var in dto.RecordTransactionRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.record.Record(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar movimientos (tope de pantalla; truncated indica exceso)
// @Tags         transactions
// @Security     Bearer
// @Produce      json
// @Param        product_id  query  string  false  "Filtrar por producto"
// @Param        from        query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        to          query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200  {object}  dto.TransactionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/transactions [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	from, to, ok := parseDateRange(c)
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_DATE", Message: "fechas con formato YYYY-MM-DD"})
	}
	out, err := h.list.List(c.Query("product_id"), from, to)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// parseDateRange lee from/to como YYYY-MM-DD; `to` se extiende al final del
// día para que el rango sea inclusivo. Ausentes quedan en cero (sin acotar).
func parseDateRange(c *fiber.Ctx) (from, to time.Time, ok bool) {
	const layout = "2006-01-02"
	var err error
	if s := c.Query("from"); s != "" {
		if from, err = time.Parse(layout, s); err != nil {
			return time.Time{}, time.Time{}, false
		}
	}
	if s := c.Query("to"); s != "" {
		if to, err = time.Parse(layout, s); err != nil {
			return time.Time{}, time.Time{}, false
		}
		to = to.Add(24*time.Hour - time.Nanosecond)
	}
	return from, to, true
}
