package repository

import "github.com/jhoicas/Inventario-dashboard/internal/domain/entity"

// AlertRepository acceso a la colección completa de alertas activas.
type AlertRepository interface {
	LoadAll() ([]entity.Alert, error)
	SaveAll(alerts []entity.Alert) error
}
