package entity

import "time"

// Niveles de alerta según porcentaje sobre el punto de reorden.
// Adequate nunca se persiste: solo Critical/Low/Overstocked generan alerta.
const (
	AlertLevelCritical    = "Critical"
	AlertLevelLow         = "Low"
	AlertLevelAdequate    = "Adequate"
	AlertLevelOverstocked = "Overstocked"
)

// Estados del ciclo de vida de una alerta.
const (
	AlertStatusOpen         = "Open"
	AlertStatusAcknowledged = "Acknowledged"
	AlertStatusResolved     = "Resolved"
)

// AlertWarehouse desglose de stock por bodega al momento de generar la alerta.
type AlertWarehouse struct {
	ID    ID     `json:"id"`
	Name  string `json:"name"`
	Stock int    `json:"stock"`
}

// Alert registro derivado que marca la salud del stock de un producto fuera de
// la banda Adequate. Se regenera en cada lectura del listado y se fusiona con
// las alertas persistidas no-Resolved para preservar status y notas; las
// alertas Resolved se descartan en la siguiente regeneración.
//
// Nombre y SKU del producto se desnormalizan como snapshot al generarla.
type Alert struct {
	ID                       ID               `json:"id"`
	ProductID                ID               `json:"productId"`
	ProductName              string           `json:"productName"`
	ProductSKU               string           `json:"productSku"`
	TotalStock               int              `json:"totalStock"`
	ReorderPoint             int              `json:"reorderPoint"`
	Level                    string           `json:"level"`
	Status                   string           `json:"status"`
	PercentOfReorder         int              `json:"percentOfReorder"` // redondeado
	RecommendedOrderQuantity int              `json:"recommendedOrderQuantity"`
	Warehouses               []AlertWarehouse `json:"warehouses"`
	Notes                    string           `json:"notes,omitempty"`
	CreatedAt                time.Time        `json:"createdAt"`
	AcknowledgedAt           *time.Time       `json:"acknowledgedAt,omitempty"`
	ResolvedAt               *time.Time       `json:"resolvedAt,omitempty"`
}
