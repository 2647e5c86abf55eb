package entity

import "time"

// Estados posibles de una transferencia. El tipo admite Pending/Cancelled pero
// el procesador crea todas las transferencias directamente en Complete.
const (
	TransferStatusPending   = "Pending"
	TransferStatusComplete  = "Complete"
	TransferStatusCancelled = "Cancelled"
)

// Transfer representa un movimiento de stock entre dos bodegas.
// Inmutable una vez creada, salvo su eliminación — que es una edición del
// historial y NO revierte el movimiento de stock asociado.
type Transfer struct {
	ID              ID        `json:"id"`
	ProductID       ID        `json:"productId"`
	FromWarehouseID ID        `json:"fromWarehouseId"`
	ToWarehouseID   ID        `json:"toWarehouseId"`
	Quantity        int       `json:"quantity"`
	Status          string    `json:"status"`
	Timestamp       time.Time `json:"timestamp"`
	Reason          string    `json:"reason"`
}
