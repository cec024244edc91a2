package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/bodega-api/internal/application/dto"
	"github.com/jhoicas/bodega-api/internal/application/stock"
)

// StockHandler consultas de saldo por producto y bodega (protegido).
type StockHandler struct {
	uc *stock.BalanceUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *stock.BalanceUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// Get godoc
// @Summary      Saldo de un producto en una bodega
// @Description  Devuelve cero implícito si el par nunca tuvo movimientos.
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  true  "ID del producto"
// @Param        warehouse_id  query  string  true  "ID de la bodega"
// @Success      200  {object}  dto.StockResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [get]
func (h *StockHandler) Get(c *fiber.Ctx) error {
	productID := c.Query("product_id")
	warehouseID := c.Query("warehouse_id")
	if productID == "" || warehouseID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "product_id y warehouse_id son requeridos"})
	}
	out, err := h.uc.Get(productID, warehouseID)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByWarehouse godoc
// @Summary      Saldos de una bodega
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID de la bodega"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/warehouses/{id}/stock [get]
func (h *StockHandler) ListByWarehouse(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByWarehouse(c.Params("id"), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// ListByProduct godoc
// @Summary      Saldos de un producto en todas las bodegas
// @Tags         stock
// @Security     Bearer
// @Produce      json
// @Param        id      path   string  true   "ID del producto"
// @Param        limit   query  int     false  "Límite"   default(20)
// @Param        offset  query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.StockListResponse
// @Router       /api/products/{id}/stock [get]
func (h *StockHandler) ListByProduct(c *fiber.Ctx) error {
	limit, offset := pageParams(c)
	out, err := h.uc.ListByProduct(c.Params("id"), limit, offset)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}
