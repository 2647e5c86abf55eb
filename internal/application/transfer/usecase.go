// Package transfer valida y ejecuta movimientos de stock entre bodegas,
// dejando un registro inmutable por cada transferencia completada.
package transfer

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/Inventario-dashboard/internal/application/dto"
	"github.com/jhoicas/Inventario-dashboard/internal/domain"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

// Runner serializa los ciclos leer-modificar-escribir sobre el storage.
// Dos transferencias concurrentes contra la misma fila de stock leerían el
// mismo disponible y producirían un sobregiro sin esta serialización.
type Runner interface {
	Run(fn func() error) error
}

// UseCase procesador de transferencias: crea, lista y elimina registros.
type UseCase struct {
	stockRepo    repository.StockRepository
	transferRepo repository.TransferRepository
	runner       Runner
}

// NewUseCase construye el caso de uso.
func NewUseCase(stockRepo repository.StockRepository, transferRepo repository.TransferRepository, runner Runner) *UseCase {
	return &UseCase{stockRepo: stockRepo, transferRepo: transferRepo, runner: runner}
}

// Create valida y aplica una transferencia.
//
// Validación en orden fijo, sin mutación si falla:
//  1. productId, fromWarehouseId, toWarehouseId y reason no vacíos.
//  2. quantity > 0.
//  3. Bodega origen distinta de destino.
//  4. Stock disponible suficiente en la fila origen (0 si no existe).
//
// Efecto: resta en origen (si queda exactamente 0 la fila se elimina), suma en
// destino (creando la fila si no existe), y agrega el registro de la
// transferencia en estado Complete. El stock se persiste antes que el
// historial; cada archivo se escribe de forma atómica pero el par no: un
// crash entre ambas escrituras deja el stock movido sin registro.
func (uc *UseCase) Create(ctx context.Context, in dto.CreateTransferRequest) (*entity.Transfer, error) {
	if in.ProductID == "" || in.FromWarehouseID == "" || in.ToWarehouseID == "" || in.Reason == "" {
		return nil, domain.NewValidationError("Product, warehouse IDs, and transfer reason are required.")
	}
	if in.Quantity <= 0 {
		return nil, domain.NewValidationError("Quantity must be a positive number.")
	}
	if in.FromWarehouseID == in.ToWarehouseID {
		return nil, domain.NewValidationError("Source and destination warehouses must be different for a transfer.")
	}

	productID := entity.ID(in.ProductID)
	fromID := entity.ID(in.FromWarehouseID)
	toID := entity.ID(in.ToWarehouseID)

	var created *entity.Transfer
	err := uc.runner.Run(func() error {
		stock, err := uc.stockRepo.LoadAll()
		if err != nil {
			return fmt.Errorf("transfer: cargar stock: %w", err)
		}
		transfers, err := uc.transferRepo.LoadAll()
		if err != nil {
			return fmt.Errorf("transfer: cargar transferencias: %w", err)
		}

		sourceIdx := findStockRow(stock, productID, fromID)
		available := 0
		if sourceIdx != -1 {
			available = stock[sourceIdx].Quantity
		}
		if in.Quantity > available {
			return domain.NewValidationError(
				"Insufficient stock. Only %d units are currently available at the source warehouse.", available)
		}

		// Debitar origen: la fila que queda exactamente en 0 se elimina,
		// no se conservan filas con cantidad cero por el lado origen.
		remaining := available - in.Quantity
		if remaining > 0 {
			stock[sourceIdx].Quantity = remaining
		} else {
			stock = append(stock[:sourceIdx], stock[sourceIdx+1:]...)
		}

		// Acreditar destino, creando la fila si el producto no existía allí.
		destIdx := findStockRow(stock, productID, toID)
		if destIdx != -1 {
			stock[destIdx].Quantity += in.Quantity
		} else {
			stock = append(stock, entity.StockItem{
				ID:          entity.NextID(stockIDs(stock)),
				ProductID:   productID,
				WarehouseID: toID,
				Quantity:    in.Quantity,
			})
		}

		t := entity.Transfer{
			ID:              entity.NextID(transferIDs(transfers)),
			ProductID:       productID,
			FromWarehouseID: fromID,
			ToWarehouseID:   toID,
			Quantity:        in.Quantity,
			Status:          entity.TransferStatusComplete,
			Timestamp:       time.Now().UTC(),
			Reason:          in.Reason,
		}
		transfers = append(transfers, t)

		if err := uc.stockRepo.SaveAll(stock); err != nil {
			return fmt.Errorf("transfer: guardar stock: %w", err)
		}
		if err := uc.transferRepo.SaveAll(transfers); err != nil {
			return fmt.Errorf("transfer: guardar transferencias: %w", err)
		}
		created = &t
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// List devuelve el historial ordenado por timestamp descendente; los empates
// quedan en orden de inserción invertido.
func (uc *UseCase) List(ctx context.Context) ([]entity.Transfer, error) {
	transfers, err := uc.transferRepo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("transfer: cargar transferencias: %w", err)
	}
	// Invertir antes del sort estable deja los empates en orden de
	// inserción invertido.
	for i, j := 0, len(transfers)-1; i < j; i, j = i+1, j-1 {
		transfers[i], transfers[j] = transfers[j], transfers[i]
	}
	sort.SliceStable(transfers, func(i, j int) bool {
		return transfers[i].Timestamp.After(transfers[j].Timestamp)
	})
	return transfers, nil
}

// Delete elimina el registro de la transferencia. Es una edición del
// historial: NO revierte el movimiento de stock asociado.
func (uc *UseCase) Delete(ctx context.Context, id entity.ID) error {
	return uc.runner.Run(func() error {
		transfers, err := uc.transferRepo.LoadAll()
		if err != nil {
			return fmt.Errorf("transfer: cargar transferencias: %w", err)
		}
		idx := -1
		for i := range transfers {
			if transfers[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrNotFound
		}
		transfers = append(transfers[:idx], transfers[idx+1:]...)
		if err := uc.transferRepo.SaveAll(transfers); err != nil {
			return fmt.Errorf("transfer: guardar transferencias: %w", err)
		}
		return nil
	})
}

// findStockRow devuelve el índice de la primera fila (productID, warehouseID),
// o -1. El procesador asume a lo sumo una fila por par.
func findStockRow(stock []entity.StockItem, productID, warehouseID entity.ID) int {
	for i := range stock {
		if stock[i].ProductID == productID && stock[i].WarehouseID == warehouseID {
			return i
		}
	}
	return -1
}

func stockIDs(stock []entity.StockItem) []entity.ID {
	ids := make([]entity.ID, 0, len(stock))
	for _, s := range stock {
		ids = append(ids, s.ID)
	}
	return ids
}

func transferIDs(transfers []entity.Transfer) []entity.ID {
	ids := make([]entity.ID, 0, len(transfers))
	for _, t := range transfers {
		ids = append(ids, t.ID)
	}
	return ids
}
