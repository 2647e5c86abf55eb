package jsonstore

import (
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.AlertRepository = (*AlertRepo)(nil)

// AlertRepo implementación de AlertRepository sobre alerts.json.
type AlertRepo struct {
	s *Store
}

// NewAlertRepository construye el adaptador.
func NewAlertRepository(s *Store) *AlertRepo { return &AlertRepo{s: s} }

// LoadAll carga la colección completa de alertas.
func (r *AlertRepo) LoadAll() ([]entity.Alert, error) {
	return load[entity.Alert](r.s, alertsFile)
}

// SaveAll sobrescribe la colección completa de alertas.
func (r *AlertRepo) SaveAll(alerts []entity.Alert) error {
	return save(r.s, alertsFile, alerts)
}
