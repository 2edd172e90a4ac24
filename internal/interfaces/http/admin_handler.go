package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/invorya/stockroom-api/internal/application/admin"
	"github.com/invorya/stockroom-api/internal/application/dto"
)

// AdminHandler agrupa los endpoints exclusivos de admin: passcodes de
// registro y bitácora de actividad.
type AdminHandler struct {
	passcodes *admin.PasscodeUseCase
	activity  *admin.ActivityUseCase
}

// NewAdminHandler construye el handler.
func NewAdminHandler(passcodes *admin.PasscodeUseCase, activity *admin.ActivityUseCase) *AdminHandler {
	return &AdminHandler{passcodes: passcodes, activity: activity}
}

// GeneratePasscodes godoc
// @Summary      Generar un lote de passcodes de registro
// @Tags         admin
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.GeneratePasscodesRequest  true  "Lote pedido (count 1..50, role admin|staff)"
// @Success      201   {object}  dto.GeneratePasscodesResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/admin/passcodes [post]
func (h *AdminHandler) GeneratePasscodes(c *fiber.Ctx) error {
	var in dto.GeneratePasscodesRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.passcodes.Generate(c.Context(), GetUserID(c), in)
	if err != nil {
		return domainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListPasscodes godoc
// @Summary      Listar passcodes con su estado de uso
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.PasscodeDTO
// @Router       /api/admin/passcodes [get]
func (h *AdminHandler) ListPasscodes(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 20), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	out, err := h.passcodes.List(page.Limit, page.Offset)
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}

// ListActivity godoc
// @Summary      Listar la bitácora de actividad
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Límite"  default(20)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200  {object}  dto.ActivityListResponse
// @Router       /api/admin/activity [get]
func (h *AdminHandler) ListActivity(c *fiber.Ctx) error {
	out, err := h.activity.List(dto.PageRequest{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	})
	if err != nil {
		return domainError(c, err)
	}
	return c.JSON(out)
}
