package transfer_test

import (
	"context"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/application/transfer"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/infrastructure/jsonstore"
)

type testEnv struct {
	uc           *transfer.UseCase
	stockRepo    *jsonstore.StockRepo
	transferRepo *jsonstore.TransferRepo
}

func newTestEnv(t *testing.T, stock []entity.StockItem, transfers []entity.Transfer) testEnv {
	t.Helper()
	store, err := jsonstore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	stockRepo := jsonstore.NewStockRepository(store)
	transferRepo := jsonstore.NewTransferRepository(store)
	require.NoError(t, stockRepo.SaveAll(stock))
	require.NoError(t, transferRepo.SaveAll(transfers))

	return testEnv{
		uc:           transfer.NewUseCase(stockRepo, transferRepo, store),
		stockRepo:    stockRepo,
		transferRepo: transferRepo,
	}
}

func validRequest() dto.CreateTransferRequest {
	return dto.CreateTransferRequest{
		ProductID:       "1",
		FromWarehouseID: "1",
		ToWarehouseID:   "2",
		Quantity:        30,
		Reason:          "rebalanceo",
	}
}

// TestCreate_MueveStock la transferencia debita origen, acredita destino y el
// total del producto se conserva.
func TestCreate_MueveStock(t *testing.T) {
	env := newTestEnv(t, []entity.StockItem{
		{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 100},
		{ID: "2", ProductID: "1", WarehouseID: "2", Quantity: 10},
	}, nil)

	created, err := env.uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, entity.TransferStatusComplete, created.Status, "toda transferencia nace en Complete")
	assert.Equal(t, entity.ID("1"), created.ID)
	assert.Equal(t, "rebalanceo", created.Reason)
	assert.False(t, created.Timestamp.IsZero())

	stock, err := env.stockRepo.LoadAll()
	require.NoError(t, err)
	require.Len(t, stock, 2)
	assert.Equal(t, 70, stock[0].Quantity, "origen debitado")
	assert.Equal(t, 40, stock[1].Quantity, "destino acreditado")

	total := 0
	for _, s := range stock {
		total += s.Quantity
	}
	assert.Equal(t, 110, total, "el total del producto se conserva")
}

// TestCreate_OrigenEnCeroSeElimina si la fila origen queda exactamente en 0
// se elimina, no se conserva con cantidad cero.
func TestCreate_OrigenEnCeroSeElimina(t *testing.T) {
	env := newTestEnv(t, []entity.StockItem{
		{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 30},
	}, nil)

	in := validRequest()
	_, err := env.uc.Create(context.Background(), in)
	require.NoError(t, err)

	stock, err := env.stockRepo.LoadAll()
	require.NoError(t, err)
	require.Len(t, stock, 1, "la fila origen desapareció")
	assert.Equal(t, entity.ID("2"), stock[0].WarehouseID)
	assert.Equal(t, 30, stock[0].Quantity)
}

// TestCreate_CreaFilaDestino si el producto no existía en la bodega destino se
// crea la fila con id consecutivo.
func TestCreate_CreaFilaDestino(t *testing.T) {
	env := newTestEnv(t, []entity.StockItem{
		{ID: "7", ProductID: "1", WarehouseID: "1", Quantity: 100},
	}, nil)

	_, err := env.uc.Create(context.Background(), validRequest())
	require.NoError(t, err)

	stock, err := env.stockRepo.LoadAll()
	require.NoError(t, err)
	require.Len(t, stock, 2)
	assert.Equal(t, entity.ID("8"), stock[1].ID, "id consecutivo sobre el máximo existente")
	assert.Equal(t, entity.ID("2"), stock[1].WarehouseID)
	assert.Equal(t, 30, stock[1].Quantity)
}

// TestCreate_Validacion el orden de los chequeos es fijo y los mensajes son
// parte del contrato con el frontend. Un rechazo no muta ninguna colección.
func TestCreate_Validacion(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*dto.CreateTransferRequest)
		wantMsg string
	}{
		{
			"campos requeridos",
			func(in *dto.CreateTransferRequest) { in.Reason = "" },
			"Product, warehouse IDs, and transfer reason are required.",
		},
		{
			"cantidad cero",
			func(in *dto.CreateTransferRequest) { in.Quantity = 0 },
			"Quantity must be a positive number.",
		},
		{
			"cantidad negativa",
			func(in *dto.CreateTransferRequest) { in.Quantity = -5 },
			"Quantity must be a positive number.",
		},
		{
			"misma bodega",
			func(in *dto.CreateTransferRequest) { in.ToWarehouseID = in.FromWarehouseID },
			"Source and destination warehouses must be different for a transfer.",
		},
		{
			"stock insuficiente",
			func(in *dto.CreateTransferRequest) { in.Quantity = 101 },
			"Insufficient stock. Only 100 units are currently available at the source warehouse.",
		},
		{
			"sin fila origen reporta 0 disponibles",
			func(in *dto.CreateTransferRequest) { in.ProductID = "99" },
			"Insufficient stock. Only 0 units are currently available at the source warehouse.",
		},
		{
			// Requeridos gana aunque la cantidad también sea inválida.
			"orden: requeridos antes que cantidad",
			func(in *dto.CreateTransferRequest) { in.Reason = ""; in.Quantity = -1 },
			"Product, warehouse IDs, and transfer reason are required.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := []entity.StockItem{{ID: "1", ProductID: "1", WarehouseID: "1", Quantity: 100}}
			env := newTestEnv(t, initial, nil)

			in := validRequest()
			tt.mutate(&in)
			_, err := env.uc.Create(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.EqualError(t, err, tt.wantMsg)

			stock, loadErr := env.stockRepo.LoadAll()
			require.NoError(t, loadErr)
			assert.Equal(t, initial, stock, "un rechazo no muta el stock")

			transfers, loadErr := env.transferRepo.LoadAll()
			require.NoError(t, loadErr)
			assert.Empty(t, transfers, "un rechazo no registra transferencia")
		})
	}
}

// TestList_OrdenDescendente el historial sale por timestamp descendente y los
// empates quedan en orden de inserción invertido.
func TestList_OrdenDescendente(t *testing.T) {
	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	env := newTestEnv(t, nil, []entity.Transfer{
		{ID: "1", Timestamp: base},
		{ID: "2", Timestamp: base.Add(time.Hour)},
		{ID: "3", Timestamp: base}, // empata con "1"
	})

	got, err := env.uc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 3)
	assert.Equal(t, entity.ID("2"), got[0].ID, "la más reciente primero")
	assert.Equal(t, entity.ID("3"), got[1].ID, "en empate, la insertada después va primero")
	assert.Equal(t, entity.ID("1"), got[2].ID)
}

// TestDelete_EsEdicionDeHistorial eliminar una transferencia no revierte el
// movimiento de stock asociado.
func TestDelete_EsEdicionDeHistorial(t *testing.T) {
	stock := []entity.StockItem{{ID: "1", ProductID: "1", WarehouseID: "2", Quantity: 30}}
	env := newTestEnv(t, stock, []entity.Transfer{
		{ID: "1", ProductID: "1", FromWarehouseID: "1", ToWarehouseID: "2", Quantity: 30, Status: entity.TransferStatusComplete},
	})

	require.NoError(t, env.uc.Delete(context.Background(), "1"))

	transfers, err := env.transferRepo.LoadAll()
	require.NoError(t, err)
	assert.Empty(t, transfers)

	after, err := env.stockRepo.LoadAll()
	require.NoError(t, err)
	assert.Equal(t, stock, after, "el stock queda intacto")
}

func TestDelete_NoExiste(t *testing.T) {
	env := newTestEnv(t, nil, nil)
	err := env.uc.Delete(context.Background(), "99")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
