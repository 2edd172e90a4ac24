package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/analytics"
	"github.com/invorya/stockroom-api/internal/application/dto"
	"github.com/invorya/stockroom-api/internal/domain"
)

// ChartHandler sirve los datos de los charts del dashboard (protegido).
// Todas las respuestas van envueltas en {success, data} / {success, error}.
type ChartHandler struct {
	uc *analytics.ChartUseCase
}

// NewChartHandler construye el handler.
func NewChartHandler(uc *analytics.ChartUseCase) *ChartHandler {
	return &ChartHandler{uc: uc}
}

// Data godoc
// @Summary      Datos de un chart del dashboard
// @Tags         charts
// @Security     Bearer
// @Produce      json
// @Param        type  query  string  true  "stock | category | stock_status | monthly_movements"
// @Success      200  {object}  dto.ChartResponse
// @Failure      400  {object}  dto.ChartResponse
// @Router       /api/charts [get]
func (h *ChartHandler) Data(c *fiber.Ctx) error {
	data, err := h.uc.Data(c.Context(), c.Query("type"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ChartResponse{Success: false, Error: "unknown chart type"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ChartResponse{Success: false, Error: err.Error()})
	}
	return c.JSON(dto.ChartResponse{Success: true, Data: data})
}
