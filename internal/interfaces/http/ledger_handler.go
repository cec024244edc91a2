package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/stock"
)

// LedgerHandler consultas del libro de inventario (protegido).
type LedgerHandler struct {
	uc *stock.LedgerUseCase
}

// NewLedgerHandler construye el handler.
func NewLedgerHandler(uc *stock.LedgerUseCase) *LedgerHandler {
	return &LedgerHandler{uc: uc}
}

// List godoc
// @Summary      Listar asientos del libro
// @Description  Del más reciente al más antiguo; filtros opcionales por producto y bodega.
// @Tags         ledger
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "ID del producto"
// @Param        warehouse_id  query  string  false  "ID de la bodega"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.LedgerListResponse
// @Router       /api/ledger [get]
func (h *LedgerHandler) List(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.List(c.Query("product_id"), c.Query("warehouse_id"), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Export godoc
// @Summary      Exportar asientos del libro a xlsx
// @Tags         ledger
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        product_id    query  string  false  "ID del producto"
// @Param        warehouse_id  query  string  false  "ID de la bodega"
// @Param        limit         query  int     false  "Máximo de asientos"  default(1000)
// @Success      200  {file}  binary
// @Router       /api/ledger/export [get]
func (h *LedgerHandler) Export(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 1000)
	if limit <= 0 || limit > 10000 {
		limit = 1000
	}
	data, err := h.uc.Export(c.Query("product_id"), c.Query("warehouse_id"), limit)
	if err != nil {
		return mapDomainError(c, err)
	}
	filename := fmt.Sprintf("libro_inventario_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(data)
}
