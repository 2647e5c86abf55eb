package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-dashboard/internal/application/alerts"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

// AlertHandler maneja las alertas de stock.
type AlertHandler struct {
	uc *alerts.UseCase
}

// NewAlertHandler construye el handler.
func NewAlertHandler(uc *alerts.UseCase) *AlertHandler {
	return &AlertHandler{uc: uc}
}

// List godoc
// @Summary      Listar alertas activas
// @Description  Regenera las alertas desde el stock actual, las fusiona con
//
//	las persistidas (conservando status y notas de las no-Resolved) y
//	sobrescribe la colección ANTES de responder: listar alertas tiene
//	efectos. status y level filtran el resultado; "All" o vacío no filtra.
//
// @Tags         alerts
// @Produce      json
// @Param        status  query  string  false  "Open | Acknowledged | Resolved | All"
// @Param        level   query  string  false  "Critical | Low | Overstocked | All"
// @Success      200  {array}   entity.Alert
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts [get]
func (h *AlertHandler) List(c *fiber.Ctx) error {
	status := c.Query("status")
	level := c.Query("level")

	list, err := h.uc.List(c.Context(), status, level)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to fetch alerts",
		})
	}
	return c.JSON(list)
}

// Recalculate godoc
// @Summary      Recalcular alertas desde cero
// @Description  Recomputa y sobrescribe la colección SIN fusionar: descarta
//
//	acknowledgements y notas previas.
//
// @Tags         alerts
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/alerts/calculate [post]
func (h *AlertHandler) Recalculate(c *fiber.Ctx) error {
	list, err := h.uc.Recalculate(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to calculate alerts",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Alerts recalculated successfully",
		"count":   len(list),
		"alerts":  list,
	})
}

// Update godoc
// @Summary      Actualizar status/notas de una alerta
// @Tags         alerts
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la alerta"
// @Param        body  body  dto.UpdateAlertRequest true  "status (requerido), notes"
// @Success      200  {object}  entity.Alert
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/alerts/{id} [put]
func (h *AlertHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateAlertRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "Invalid request body",
		})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "Missing required fields: id, status",
		})
	}

	updated, err := h.uc.Update(c.Context(), entity.ID(id), in.Status, in.Notes)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: vErr.Message,
			})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "Alert not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to update alert",
		})
	}
	return c.JSON(updated)
}
