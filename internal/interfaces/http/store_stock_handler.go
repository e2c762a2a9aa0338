package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/storemanage/internal/application/association"
)

// StoreStockHandler asociación tienda <-> stock.
type StoreStockHandler struct {
	uc *association.UseCase
}

// NewStoreStockHandler construye el handler.
func NewStoreStockHandler(uc *association.UseCase) *StoreStockHandler {
	return &StoreStockHandler{uc: uc}
}

// List godoc
// @Summary      Stocks asociados a una tienda
// @Tags         stores
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la tienda"
// @Success      200  {array}   dto.StockResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/stocks [get]
func (h *StoreStockHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListStocks(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Add godoc
// @Summary      Asociar stock a tienda
// @Tags         stores
// @Security     Bearer
// @Param        id       path  string  true  "ID de la tienda"
// @Param        stockId  path  string  true  "ID del stock"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/stocks/{stockId} [post]
func (h *StoreStockHandler) Add(c *fiber.Ctx) error {
	if err := h.uc.AddStock(c.UserContext(), c.Params("id"), c.Params("stockId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Remove godoc
// @Summary      Desasociar stock de tienda
// @Tags         stores
// @Security     Bearer
// @Param        id       path  string  true  "ID de la tienda"
// @Param        stockId  path  string  true  "ID del stock"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stores/{id}/stocks/{stockId} [delete]
func (h *StoreStockHandler) Remove(c *fiber.Ctx) error {
	if err := h.uc.RemoveStock(c.UserContext(), c.Params("id"), c.Params("stockId")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
