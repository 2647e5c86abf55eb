package entity

// StockItem representa el stock de un producto en una bodega.
//
// La unicidad (productId, warehouseId) debería cumplirse pero el storage no la
// exige: los calculadores suman filas duplicadas, mientras que las
// transferencias asumen a lo sumo una fila por par. Una transferencia que deja
// la cantidad exactamente en 0 elimina la fila; una edición manual puede
// dejarla en 0.
type StockItem struct {
	ID          ID  `json:"id"`
	ProductID   ID  `json:"productId"`
	WarehouseID ID  `json:"warehouseId"`
	Quantity    int `json:"quantity"`
}
