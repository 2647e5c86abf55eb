package entity

// Warehouse representa una bodega donde se almacena inventario.
// Su ciclo de vida es independiente: eliminar una bodega NO elimina en cascada
// sus filas de stock (no hay integridad referencial en el storage).
type Warehouse struct {
	ID       ID     `json:"id"`
	Code     string `json:"code"` // código corto usado en gráficos
	Name     string `json:"name"`
	Location string `json:"location"`
}
