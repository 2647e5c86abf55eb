package dashboard

import (
	"context"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
)

// ReportGenerator renderiza el snapshot de inventario como documento PDF.
// La implementación vive en infrastructure/pdf (Maroto).
type ReportGenerator interface {
	GenerateInventoryReport(
		ctx context.Context,
		generatedAt time.Time,
		items []dto.InventoryOverviewItem,
		metrics *dto.DashboardMetrics,
	) ([]byte, error)
}
