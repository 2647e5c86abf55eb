package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/overview"
)

// InventoryHandler maneja el resumen de inventario.
type InventoryHandler struct {
	uc *overview.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *overview.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// GetOverview godoc
// @Summary      Resumen de inventario por producto
// @Description  Total de stock agregado entre bodegas y clasificación
//
//	Critical / Low Stock / Adequate / Overstocked por producto.
//
// @Tags         inventory
// @Produce      json
// @Success      200  {array}   dto.InventoryOverviewItem
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/inventory/overview [get]
func (h *InventoryHandler) GetOverview(c *fiber.Ctx) error {
	items, err := h.uc.Get(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to load inventory overview",
		})
	}
	return c.JSON(items)
}
