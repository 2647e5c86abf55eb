package repository

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// TransferRepository acceso al historial completo de transferencias.
type TransferRepository interface {
	LoadAll() ([]entity.Transfer, error)
	SaveAll(transfers []entity.Transfer) error
}
