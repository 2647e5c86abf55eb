package dto

import (
	"encoding/json"
	"math"

	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Percent porcentaje sobre el punto de reorden. Con el punto de reorden en 0
// el valor es NaN o ±Inf, que encoding/json no sabe emitir: se serializan
// como null, igual que hacía el serializador heredado.
type Percent float64

// MarshalJSON emite null para NaN/Inf y el número en el resto de casos.
func (p Percent) MarshalJSON() ([]byte, error) {
	f := float64(p)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// InventoryOverviewItem fila del resumen de inventario: los campos del
// producto más el total de stock agregado entre bodegas y su clasificación.
//
// StatusColor usa la paleta del frontend: error (Critical), warning (Low
// Stock), info (Overstocked), success (Adequate).
type InventoryOverviewItem struct {
	ID               entity.ID       `json:"id"`
	SKU              string          `json:"sku"`
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	UnitCost         decimal.Decimal `json:"unitCost"`
	ReorderPoint     int             `json:"reorderPoint"`
	TotalQuantity    int             `json:"totalQuantity"`
	Status           string          `json:"status"`
	StatusColor      string          `json:"statusColor"`
	PercentOfReorder Percent         `json:"percentOfReorder"`
}
