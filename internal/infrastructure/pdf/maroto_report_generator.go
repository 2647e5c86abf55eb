// Package pdf implementa el reporte imprimible del snapshot de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  KPIs: Valor total | Productos bajo stock | Total productos  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Categoría | Stock | % | Estado      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Valor de inventario por bodega                       │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"math"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dashboard"
	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/overview"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorDanger  = &props.Color{Red: 211, Green: 47, Blue: 47}
	colorWarn    = &props.Color{Red: 255, Green: 152, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ dashboard.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa dashboard.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateInventoryReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateInventoryReport(
	_ context.Context,
	generatedAt time.Time,
	items []dto.InventoryOverviewItem,
	metrics *dto.DashboardMetrics,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Inventory Report", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(generatedAt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(statsRow(items, metrics))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(overviewHeaderRow())
	for _, r := range overviewRows(items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(warehouseHeaderRow())
	for _, r := range warehouseRows(metrics.WarehouseData) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(generatedAt time.Time) core.Row {
	return row.New(14).Add(
		col.New(7).Add(
			text.New("INVENTORY REPORT", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(5).Add(
			text.New("Generated: "+generatedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

// statsRow: los tres KPIs del dashboard.
func statsRow(items []dto.InventoryOverviewItem, metrics *dto.DashboardMetrics) core.Row {
	return row.New(12).Add(
		statCol("Total inventory value", "$"+metrics.TotalValue.StringFixed(2)),
		statCol("Low stock products", fmt.Sprintf("%d", metrics.LowStockCount)),
		statCol("Products", fmt.Sprintf("%d", len(items))),
	)
}

func statCol(label, value string) core.Col {
	return col.New(4).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1}),
		text.New(value, props.Text{Style: fontstyle.Bold, Size: 11, Top: 5}),
	)
}

func overviewHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("SKU", header)),
		col.New(3).Add(text.New("Product", header)),
		col.New(2).Add(text.New("Category", header)),
		col.New(1).Add(text.New("Stock", propsRight(header))),
		col.New(2).Add(text.New("% Reorder", propsRight(header))),
		col.New(2).Add(text.New("Status", propsRight(header))),
	)
}

func overviewRows(items []dto.InventoryOverviewItem) []core.Row {
	rows := make([]core.Row, 0, len(items))
	for _, item := range items {
		cell := props.Text{Size: 8, Top: 1}
		statusCell := props.Text{Size: 8, Top: 1, Align: align.Right}
		switch item.StatusColor {
		case overview.ColorError:
			statusCell.Color = colorDanger
			statusCell.Style = fontstyle.Bold
		case overview.ColorWarning:
			statusCell.Color = colorWarn
		}
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(item.SKU, cell)),
			col.New(3).Add(text.New(item.Name, cell)),
			col.New(2).Add(text.New(item.Category, cell)),
			col.New(1).Add(text.New(fmt.Sprintf("%d", item.TotalQuantity), propsRight(cell))),
			col.New(2).Add(text.New(formatPercent(float64(item.PercentOfReorder)), propsRight(cell))),
			col.New(2).Add(text.New(item.Status, statusCell)),
		))
	}
	return rows
}

func warehouseHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("Code", header)),
		col.New(6).Add(text.New("Warehouse", header)),
		col.New(4).Add(text.New("Inventory value", propsRight(header))),
	)
}

func warehouseRows(data []dto.ChartDataItem) []core.Row {
	cell := props.Text{Size: 8, Top: 1}
	rows := make([]core.Row, 0, len(data))
	for _, w := range data {
		rows = append(rows, row.New(6).Add(
			col.New(2).Add(text.New(w.Name, cell)),
			col.New(6).Add(text.New(w.FullName, cell)),
			col.New(4).Add(text.New("$"+w.Value.StringFixed(2), propsRight(cell))),
		))
	}
	return rows
}

// formatPercent imprime el porcentaje; NaN/Inf (punto de reorden 0) como "—".
func formatPercent(percent float64) string {
	if math.IsNaN(percent) || math.IsInf(percent, 0) {
		return "—"
	}
	return fmt.Sprintf("%.0f%%", percent)
}

func propsRight(p props.Text) props.Text {
	p.Align = align.Right
	return p
}
