package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/usecase"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// StockHandler maneja las peticiones HTTP del CRUD de filas de stock.
type StockHandler struct {
	uc *usecase.StockUseCase
}

// NewStockHandler construye el handler.
func NewStockHandler(uc *usecase.StockUseCase) *StockHandler {
	return &StockHandler{uc: uc}
}

// List godoc
// @Summary      Listar filas de stock
// @Tags         stock
// @Produce      json
// @Success      200  {array}  entity.StockItem
// @Router       /api/stock [get]
func (h *StockHandler) List(c *fiber.Ctx) error {
	stock, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Error loading stock data",
		})
	}
	return c.JSON(stock)
}

// GetByID godoc
// @Summary      Obtener fila de stock por ID
// @Tags         stock
// @Produce      json
// @Param        id  path  string  true  "ID de la fila de stock"
// @Success      200  {object}  entity.StockItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [get]
func (h *StockHandler) GetByID(c *fiber.Ctx) error {
	item, err := h.uc.GetByID(entity.ID(c.Params("id")))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Error loading stock data",
		})
	}
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "Stock item not found",
		})
	}
	return c.JSON(item)
}

// Create godoc
// @Summary      Registrar stock de un producto en una bodega
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateStockRequest  true  "productId, warehouseId, quantity"
// @Success      201  {object}  entity.StockItem
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/stock [post]
func (h *StockHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "Invalid request body",
		})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	}
	created, err := h.uc.Create(in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to save stock data",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// Update godoc
// @Summary      Editar fila de stock
// @Description  Edición manual: puede dejar la cantidad en 0 sin eliminar la fila.
// @Tags         stock
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la fila de stock"
// @Param        body  body  dto.UpdateStockRequest  true  "Campos a actualizar"
// @Success      200  {object}  entity.StockItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [put]
func (h *StockHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "Invalid request body",
		})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: err.Error(),
		})
	}
	updated, err := h.uc.Update(entity.ID(c.Params("id")), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "Stock item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to save stock data",
		})
	}
	return c.JSON(updated)
}

// Delete godoc
// @Summary      Eliminar fila de stock
// @Tags         stock
// @Param        id  path  string  true  "ID de la fila de stock"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/stock/{id} [delete]
func (h *StockHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(entity.ID(c.Params("id"))); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "Stock item not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to delete stock item",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
