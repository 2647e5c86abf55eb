package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// DashboardHandler maneja los endpoints del módulo de Dashboard.
type DashboardHandler struct {
	uc *dashboard.UseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *dashboard.UseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetMetrics godoc
// @Summary      Métricas del dashboard
// @Description  Valor total del inventario, conteo de productos bajo stock y
//
//	las series para los gráficos por bodega, categoría y estado.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardMetrics
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/metrics [get]
func (h *DashboardHandler) GetMetrics(c *fiber.Ctx) error {
	metrics, err := h.uc.GetMetrics(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to load dashboard metrics",
		})
	}
	return c.JSON(metrics)
}

// DownloadReport godoc
// @Summary      Reporte PDF del snapshot de inventario
// @Tags         dashboard
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/report [get]
func (h *DashboardHandler) DownloadReport(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.DownloadReport(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "Failed to generate inventory report",
		})
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
