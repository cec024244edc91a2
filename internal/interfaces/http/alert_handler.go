package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/stock"
)

// AlertHandler maneja alertas de stock bajo (protegido).
type AlertHandler struct {
	uc *stock.AlertUseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *stock.AlertUseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas de stock bajo
// @Tags         alerts
// @Security     Bearer
// @Produce      json
// @Param        open    query  bool  false  "Solo alertas sin reconocer"
// @Param        limit   query  int   false  "Límite"   default(20)
// @Param        offset  query  int   false  "Offset"   default(0)
// @Success      200  {object}  dto.AlertListResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.QueryBool("open", false), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Acknowledge godoc
// @Summary      Reconocer una alerta
// @Description  Reconocer dos veces da 409; tras reconocer, el par puede volver a alertar.
// @Tags         alerts
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true   "ID de la alerta"
// @Param        body  body  dto.AcknowledgeAlertRequest  false  "Quién reconoce (si se omite, el usuario del token)"
// @Success      200  {object}  dto.AlertResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id}/acknowledge [post]
func (h *AlertHandler) Acknowledge(c *fiber.Ctx) error {
	var in dto.AcknowledgeAlertRequest
	_ = c.BodyParser(&in) // body opcional
	by := in.AcknowledgedBy
	if by == "" {
		by = GetUserID(c)
	}
	out, err := h.uc.Acknowledge(c.Params("id"), by)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
