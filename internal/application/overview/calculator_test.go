package overview_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/overview"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
)

func product(id entity.ID, reorderPoint int) entity.Product {
	return entity.Product{
		ID:           id,
		SKU:          "SKU-" + string(id),
		Name:         "Producto " + string(id),
		Category:     "General",
		UnitCost:     decimal.NewFromInt(10),
		ReorderPoint: reorderPoint,
	}
}

func stockRow(productID entity.ID, qty int) entity.StockItem {
	return entity.StockItem{ID: "s" + productID, ProductID: productID, WarehouseID: "1", Quantity: qty}
}

// TestCalculate_UmbralesDeClasificacion fija las fronteras exactas del
// resumen: <20 Critical, <100 Low Stock, [100, 200] Adequate, >200 Overstocked.
func TestCalculate_UmbralesDeClasificacion(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		reorder    int
		wantStatus string
		wantColor  string
	}{
		{"0% es Critical", 0, 100, overview.StatusCritical, overview.ColorError},
		{"19% es Critical", 19, 100, overview.StatusCritical, overview.ColorError},
		{"20% exacto ya es Low Stock", 20, 100, overview.StatusLowStock, overview.ColorWarning},
		{"99% es Low Stock", 99, 100, overview.StatusLowStock, overview.ColorWarning},
		{"100% exacto es Adequate", 100, 100, overview.StatusAdequate, overview.ColorSuccess},
		{"200% exacto sigue siendo Adequate", 200, 100, overview.StatusAdequate, overview.ColorSuccess},
		{"201% es Overstocked", 201, 100, overview.StatusOverstocked, overview.ColorInfo},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := overview.Calculate(
				[]entity.Product{product("1", tt.reorder)},
				[]entity.StockItem{stockRow("1", tt.total)},
			)
			require.Len(t, items, 1)
			assert.Equal(t, tt.wantStatus, items[0].Status)
			assert.Equal(t, tt.wantColor, items[0].StatusColor)
		})
	}
}

// TestCalculate_Monotonia aumentar el stock manteniendo el punto de reorden
// fijo nunca retrocede el estado en el orden Critical → Low Stock → Adequate
// → Overstocked.
func TestCalculate_Monotonia(t *testing.T) {
	rank := map[string]int{
		overview.StatusCritical:    0,
		overview.StatusLowStock:    1,
		overview.StatusAdequate:    2,
		overview.StatusOverstocked: 3,
	}
	prev := -1
	for qty := 0; qty <= 250; qty++ {
		items := overview.Calculate(
			[]entity.Product{product("1", 100)},
			[]entity.StockItem{stockRow("1", qty)},
		)
		require.Len(t, items, 1)
		r, ok := rank[items[0].Status]
		require.True(t, ok, "estado desconocido %q", items[0].Status)
		assert.GreaterOrEqual(t, r, prev, "con %d unidades el estado retrocedió", qty)
		prev = r
	}
}

// TestCalculate_PuntoDeReordenCero documenta la aritmética heredada: con
// reorden 0 la división produce NaN (sin stock, cae en Adequate) o +Inf
// (con stock, cumple >200 y cae en Overstocked).
func TestCalculate_PuntoDeReordenCero(t *testing.T) {
	items := overview.Calculate(
		[]entity.Product{product("1", 0), product("2", 0)},
		[]entity.StockItem{stockRow("2", 5)},
	)
	require.Len(t, items, 2)

	assert.Equal(t, overview.StatusAdequate, items[0].Status, "0/0 produce NaN y cae en Adequate")
	assert.True(t, math.IsNaN(float64(items[0].PercentOfReorder)))

	assert.Equal(t, overview.StatusOverstocked, items[1].Status, "5/0 produce +Inf y cae en Overstocked")
	assert.True(t, math.IsInf(float64(items[1].PercentOfReorder), 1))

	data, err := json.Marshal(items)
	require.NoError(t, err, "NaN/Inf deben serializar como null, no romper el encoder")
	assert.Contains(t, string(data), `"percentOfReorder":null`)
}

// TestCalculate_SumaEntreBodegas verifica que el total agrega todas las filas
// de stock del producto sin importar la bodega, incluidas las duplicadas.
func TestCalculate_SumaEntreBodegas(t *testing.T) {
	stock := []entity.StockItem{
		{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 30},
		{ID: "2", ProductID: "1", WarehouseID: "2", Quantity: 50},
		{ID: "3", ProductID: "1", WarehouseID: "2", Quantity: 20}, // fila duplicada, también suma
		{ID: "4", ProductID: "9", WarehouseID: "1", Quantity: 999},
	}
	items := overview.Calculate([]entity.Product{product("1", 100)}, stock)
	require.Len(t, items, 1)
	assert.Equal(t, 100, items[0].TotalQuantity)
	assert.Equal(t, overview.StatusAdequate, items[0].Status)
	assert.InDelta(t, 100.0, float64(items[0].PercentOfReorder), 1e-9)
}

// TestCalculate_OrdenYProductosSinStock el resultado conserva el orden del
// listado de productos y un producto sin filas de stock aparece con total 0.
func TestCalculate_OrdenYProductosSinStock(t *testing.T) {
	products := []entity.Product{product("b", 100), product("a", 100)}
	items := overview.Calculate(products, nil)
	require.Len(t, items, 2)
	assert.Equal(t, entity.ID("b"), items[0].ID, "se respeta el orden de entrada, no se reordena")
	assert.Equal(t, entity.ID("a"), items[1].ID)
	assert.Equal(t, 0, items[0].TotalQuantity)
	assert.Equal(t, overview.StatusCritical, items[0].Status)
}

func TestCalculate_SinProductos(t *testing.T) {
	items := overview.Calculate(nil, []entity.StockItem{stockRow("1", 10)})
	assert.Empty(t, items)
	assert.NotNil(t, items, "lista vacía, no nil, para serializar como []")
}
