package dto

// CreateTransferRequest body para POST /api/transfers.
// La validación (campos requeridos, cantidad positiva, bodegas distintas,
// stock disponible) la hace el procesador en orden fijo con mensajes propios.
type CreateTransferRequest struct {
	ProductID       string `json:"productId"`
	FromWarehouseID string `json:"fromWarehouseId"`
	ToWarehouseID   string `json:"toWarehouseId"`
	Quantity        int    `json:"quantity"`
	Reason          string `json:"reason"`
}
