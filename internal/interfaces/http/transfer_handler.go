package http

import (
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/transfer"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// TransferHandler maneja las transferencias de stock entre bodegas.
type TransferHandler struct {
	uc *transfer.UseCase
}

// NewTransferHandler construye el handler.
func NewTransferHandler(uc *transfer.UseCase) *TransferHandler {
	return &TransferHandler{uc: uc}
}

// Create godoc
// @Summary      Crear transferencia de stock
// @Description  Valida y aplica el movimiento: debita la bodega origen
//
//	(eliminando la fila si queda en 0), acredita la destino y registra la
//	transferencia en estado Complete.
//
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateTransferRequest  true  "productId, fromWarehouseId, toWarehouseId, quantity, reason"
// @Success      201  {object}  entity.Transfer
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transfers [post]
func (h *TransferHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateTransferRequest
	if err := c.BodyParser(&in); err != nil {
		// El contrato heredado reporta la cantidad no numérica con su propio
		// mensaje; el resto de bodies malformados reciben uno genérico.
		msg := "Invalid request body"
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field == "quantity" {
			msg = "Quantity must be a positive number."
		}
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: msg,
		})
	}

	created, err := h.uc.Create(c.Context(), in)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: vErr.Message,
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Internal Server Error: Failed to process transfer or update data files.",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

// List godoc
// @Summary      Historial de transferencias
// @Description  Ordenado por timestamp descendente (más reciente primero).
// @Tags         transfers
// @Produce      json
// @Success      200  {array}   entity.Transfer
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/transfers [get]
func (h *TransferHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "A server error occurred while retrieving transfer history.",
		})
	}
	return c.JSON(list)
}

// Delete godoc
// @Summary      Eliminar registro de transferencia
// @Description  Edición del historial: NO revierte el movimiento de stock.
// @Tags         transfers
// @Param        id  path  string  true  "ID de la transferencia"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/transfers/{id} [delete]
func (h *TransferHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), entity.ID(id)); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "Transfer not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to delete transfer",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
