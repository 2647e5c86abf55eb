package alerts_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/alerts"
	"github.com/jhoicas/Inventario-dashboard/internal/application/overview"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/jsonstore"
)

func product(id entity.ID, name string, reorderPoint int) entity.Product {
	return entity.Product{
		ID:           id,
		SKU:          "SKU-" + string(id),
		Name:         name,
		Category:     "General",
		UnitCost:     decimal.NewFromInt(1),
		ReorderPoint: reorderPoint,
	}
}

// newTestUseCase monta el caso de uso sobre un store en memoria con los datos
// dados ya persistidos.
func newTestUseCase(t *testing.T, products []entity.Product, stock []entity.StockItem, warehouses []entity.Warehouse, existing []entity.Alert) (*alerts.UseCase, *jsonstore.AlertRepo) {
	t.Helper()
	store, err := jsonstore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	productRepo := jsonstore.NewProductRepository(store)
	stockRepo := jsonstore.NewStockRepository(store)
	warehouseRepo := jsonstore.NewWarehouseRepository(store)
	alertRepo := jsonstore.NewAlertRepository(store)

	require.NoError(t, productRepo.SaveAll(products))
	require.NoError(t, stockRepo.SaveAll(stock))
	require.NoError(t, warehouseRepo.SaveAll(warehouses))
	require.NoError(t, alertRepo.SaveAll(existing))

	return alerts.NewUseCase(productRepo, stockRepo, warehouseRepo, alertRepo, store), alertRepo
}

// TestCompute_Umbrales fija las fronteras del módulo de alertas: <50 Critical,
// <100 Low, (100, 150] Adequate (sin alerta), >150 Overstocked. Nótese que NO
// son los umbrales del resumen de inventario.
func TestCompute_Umbrales(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		reorder   int
		wantLevel string // "" = no genera alerta
	}{
		{"49% es Critical", 49, 100, entity.AlertLevelCritical},
		{"50% exacto ya es Low", 50, 100, entity.AlertLevelLow},
		{"99% es Low", 99, 100, entity.AlertLevelLow},
		{"100% exacto es Adequate, sin alerta", 100, 100, ""},
		{"150% exacto sigue siendo Adequate", 150, 100, ""},
		{"151% es Overstocked", 151, 100, entity.AlertLevelOverstocked},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := alerts.Compute(
				[]entity.Product{product("1", "P", tt.reorder)},
				[]entity.StockItem{{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: tt.total}},
				nil,
			)
			if tt.wantLevel == "" {
				assert.Empty(t, got, "Adequate no debe generar alerta")
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, tt.wantLevel, got[0].Level)
			assert.Equal(t, entity.AlertStatusOpen, got[0].Status)
			assert.Equal(t, tt.total, got[0].TotalStock)
		})
	}
}

// TestCompute_CantidadRecomendada la sugerencia lleva el stock al ideal
// (reorden × 1.5), nunca negativa, y Overstocked no sugiere pedido.
func TestCompute_CantidadRecomendada(t *testing.T) {
	got := alerts.Compute(
		[]entity.Product{product("1", "P", 100)},
		[]entity.StockItem{{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 40}},
		nil,
	)
	require.Len(t, got, 1)
	assert.Equal(t, 110, got[0].RecommendedOrderQuantity, "100×1.5 − 40 = 110")

	over := alerts.Compute(
		[]entity.Product{product("1", "P", 100)},
		[]entity.StockItem{{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 200}},
		nil,
	)
	require.Len(t, over, 1)
	assert.Equal(t, entity.AlertLevelOverstocked, over[0].Level)
	assert.Zero(t, over[0].RecommendedOrderQuantity, "Overstocked no necesita pedido")
}

// TestCompute_DesgloseBodegas cada fila de stock del producto aparece en el
// desglose con el nombre de la bodega, o un fallback si la bodega no existe.
func TestCompute_DesgloseBodegas(t *testing.T) {
	got := alerts.Compute(
		[]entity.Product{product("1", "P", 100)},
		[]entity.StockItem{
			{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 10},
			{ID: "2", ProductID: "1", WarehouseID: "99", Quantity: 5},
		},
		[]entity.Warehouse{{ID: "1", Code: "BOG", Name: "Bodega Bogotá"}},
	)
	require.Len(t, got, 1)
	require.Len(t, got[0].Warehouses, 2)
	assert.Equal(t, "Bodega Bogotá", got[0].Warehouses[0].Name)
	assert.Equal(t, 10, got[0].Warehouses[0].Stock)
	assert.Equal(t, "Warehouse 99", got[0].Warehouses[1].Name, "bodega desconocida usa nombre fallback")
}

// TestCompute_PuntoDeReordenCero el porcentaje NaN/Inf se reporta como 0 y la
// clasificación sigue la aritmética de coma flotante: NaN (0/0) y +Inf (n/0)
// no cumplen ninguna de las comparaciones <50, <100, <=150 y ambos caen en la
// rama final Overstocked. Nótese la asimetría con el resumen de inventario,
// cuya rama final es Adequate: allí NaN no alerta.
func TestCompute_PuntoDeReordenCero(t *testing.T) {
	sinStock := alerts.Compute([]entity.Product{product("1", "P", 0)}, nil, nil)
	require.Len(t, sinStock, 1, "NaN cae en la rama final y sí genera alerta")
	assert.Equal(t, entity.AlertLevelOverstocked, sinStock[0].Level)
	assert.Zero(t, sinStock[0].PercentOfReorder, "NaN se reporta como 0")
	assert.Zero(t, sinStock[0].RecommendedOrderQuantity, "Overstocked no sugiere pedido")

	conStock := alerts.Compute(
		[]entity.Product{product("1", "P", 0)},
		[]entity.StockItem{{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 5}},
		nil,
	)
	require.Len(t, conStock, 1)
	assert.Equal(t, entity.AlertLevelOverstocked, conStock[0].Level)
	assert.Zero(t, conStock[0].PercentOfReorder, "+Inf se reporta como 0")
}

// TestUmbralesDivergentes el mismo producto al 40% es "Low Stock" en el
// resumen de inventario pero "Critical" en alertas. La divergencia viene del
// sistema original y se preserva a propósito.
func TestUmbralesDivergentes(t *testing.T) {
	products := []entity.Product{product("1", "P", 100)}
	stock := []entity.StockItem{{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 40}}

	items := overview.Calculate(products, stock)
	require.Len(t, items, 1)
	assert.Equal(t, overview.StatusLowStock, items[0].Status)

	alertsOut := alerts.Compute(products, stock, nil)
	require.Len(t, alertsOut, 1)
	assert.Equal(t, entity.AlertLevelCritical, alertsOut[0].Level)
}

// TestMerge_PreservaNoResueltas una alerta previa no-Resolved conserva id,
// status, notas y timestamps, y refresca los campos derivados del stock.
func TestMerge_PreservaNoResueltas(t *testing.T) {
	prev := entity.Alert{
		ID:               "anterior",
		ProductID:        "1",
		Status:           entity.AlertStatusAcknowledged,
		Notes:            "pedido en camino",
		Level:            entity.AlertLevelCritical,
		TotalStock:       10,
		PercentOfReorder: 10,
	}
	fresh := entity.Alert{
		ID:                       "nueva",
		ProductID:                "1",
		Status:                   entity.AlertStatusOpen,
		Level:                    entity.AlertLevelLow,
		TotalStock:               60,
		PercentOfReorder:         60,
		RecommendedOrderQuantity: 90,
	}

	merged := alerts.Merge([]entity.Alert{fresh}, []entity.Alert{prev})

	require.Len(t, merged, 1)
	assert.Equal(t, entity.ID("anterior"), merged[0].ID, "se conserva el id previo")
	assert.Equal(t, entity.AlertStatusAcknowledged, merged[0].Status)
	assert.Equal(t, "pedido en camino", merged[0].Notes)
	assert.Equal(t, entity.AlertLevelLow, merged[0].Level, "el nivel se refresca")
	assert.Equal(t, 60, merged[0].TotalStock)
	assert.Equal(t, 90, merged[0].RecommendedOrderQuantity)
}

// TestMerge_ResueltaSeDescarta una alerta Resolved no se reutiliza: la
// condición reaparecida entra como registro nuevo en Open.
func TestMerge_ResueltaSeDescarta(t *testing.T) {
	prev := entity.Alert{ID: "resuelta", ProductID: "1", Status: entity.AlertStatusResolved, Notes: "histórico"}
	fresh := entity.Alert{ID: "nueva", ProductID: "1", Status: entity.AlertStatusOpen}

	merged := alerts.Merge([]entity.Alert{fresh}, []entity.Alert{prev})

	require.Len(t, merged, 1)
	assert.Equal(t, entity.ID("nueva"), merged[0].ID, "la alerta resuelta no se reutiliza")
	assert.Equal(t, entity.AlertStatusOpen, merged[0].Status)
	assert.Empty(t, merged[0].Notes, "las notas del histórico resuelto se descartan")
}

// TestList_RegeneraYPersiste listar no es libre de efectos: recalcula,
// fusiona y sobrescribe la colección antes de responder.
func TestList_RegeneraYPersiste(t *testing.T) {
	prev := entity.Alert{ID: "anterior", ProductID: "1", Status: entity.AlertStatusAcknowledged, Level: entity.AlertLevelCritical}
	uc, alertRepo := newTestUseCase(t,
		[]entity.Product{product("1", "Tornillo", 100), product("2", "Cable", 100)},
		[]entity.StockItem{
			{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 60},
			{ID: "2", ProductID: "2", WarehouseID: "1", Quantity: 120},
		},
		[]entity.Warehouse{{ID: "1", Code: "BOG", Name: "Bodega Bogotá"}},
		[]entity.Alert{prev},
	)

	got, err := uc.List(context.Background(), "", "")
	require.NoError(t, err)

	// Producto 1 al 60% → Low, conserva el registro previo; producto 2 al
	// 120% → Adequate, sin alerta.
	require.Len(t, got, 1)
	assert.Equal(t, entity.ID("anterior"), got[0].ID)
	assert.Equal(t, entity.AlertLevelLow, got[0].Level)

	persisted, err := alertRepo.LoadAll()
	require.NoError(t, err)
	require.Len(t, persisted, 1, "la colección quedó sobrescrita con el set fusionado")
	assert.Equal(t, entity.ID("anterior"), persisted[0].ID)
}

// TestList_Filtros status y level filtran después de persistir; "" y "All"
// equivalen a sin filtro.
func TestList_Filtros(t *testing.T) {
	uc, alertRepo := newTestUseCase(t,
		[]entity.Product{product("1", "Tornillo", 100), product("2", "Cable", 100)},
		[]entity.StockItem{
			{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 10},  // Critical
			{ID: "2", ProductID: "2", WarehouseID: "1", Quantity: 200}, // Overstocked
		},
		nil, nil,
	)

	all, err := uc.List(context.Background(), "All", "All")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	criticas, err := uc.List(context.Background(), "", entity.AlertLevelCritical)
	require.NoError(t, err)
	require.Len(t, criticas, 1)
	assert.Equal(t, entity.ID("1"), criticas[0].ProductID)

	persisted, err := alertRepo.LoadAll()
	require.NoError(t, err)
	assert.Len(t, persisted, 2, "el filtro no afecta lo persistido")
}

// TestRecalculate_DescartaEstadoPrevio el reset sobrescribe sin fusionar:
// status y notas previos se pierden.
func TestRecalculate_DescartaEstadoPrevio(t *testing.T) {
	prev := entity.Alert{ID: "anterior", ProductID: "1", Status: entity.AlertStatusAcknowledged, Notes: "nota"}
	uc, _ := newTestUseCase(t,
		[]entity.Product{product("1", "Tornillo", 100)},
		[]entity.StockItem{{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 10}},
		nil,
		[]entity.Alert{prev},
	)

	got, err := uc.Recalculate(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 1)
	assert.NotEqual(t, entity.ID("anterior"), got[0].ID, "el reset genera un registro nuevo")
	assert.Equal(t, entity.AlertStatusOpen, got[0].Status)
	assert.Empty(t, got[0].Notes)
}

// TestUpdate cubre el cambio de estado: estampado de timestamps, conservación
// de notas previas ante notas vacías, y los errores de validación y not found.
func TestUpdate(t *testing.T) {
	base := entity.Alert{ID: "a1", ProductID: "1", Status: entity.AlertStatusOpen, Notes: "inicial"}

	t.Run("acknowledge estampa acknowledgedAt", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil, nil, nil, []entity.Alert{base})
		got, err := uc.Update(context.Background(), "a1", entity.AlertStatusAcknowledged, "revisando")
		require.NoError(t, err)
		assert.Equal(t, entity.AlertStatusAcknowledged, got.Status)
		assert.Equal(t, "revisando", got.Notes)
		assert.NotNil(t, got.AcknowledgedAt)
		assert.Nil(t, got.ResolvedAt)
	})

	t.Run("resolve estampa resolvedAt", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil, nil, nil, []entity.Alert{base})
		got, err := uc.Update(context.Background(), "a1", entity.AlertStatusResolved, "")
		require.NoError(t, err)
		assert.Equal(t, entity.AlertStatusResolved, got.Status)
		assert.NotNil(t, got.ResolvedAt)
		assert.Equal(t, "inicial", got.Notes, "notas vacías conservan las anteriores")
	})

	t.Run("id inexistente", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil, nil, nil, []entity.Alert{base})
		_, err := uc.Update(context.Background(), "no-existe", entity.AlertStatusOpen, "")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("campos requeridos", func(t *testing.T) {
		uc, _ := newTestUseCase(t, nil, nil, nil, nil)
		_, err := uc.Update(context.Background(), "", "", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.EqualError(t, err, "Missing required fields: id, status")
	})
}
