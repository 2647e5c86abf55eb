package jsonstore

import (
	"github.com/jhoicas/Inventario-dashboard/internal/domain/entity"
	"github.com/jhoicas/Inventario-dashboard/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre transfers.json.
type TransferRepo struct {
	s *Store
}

// NewTransferRepository construye el adaptador.
func NewTransferRepository(s *Store) *TransferRepo { return &TransferRepo{s: s} }

// LoadAll carga el historial completo de transferencias.
func (r *TransferRepo) LoadAll() ([]entity.Transfer, error) {
	return load[entity.Transfer](r.s, transfersFile)
}

// SaveAll sobrescribe el historial completo de transferencias.
func (r *TransferRepo) SaveAll(transfers []entity.Transfer) error {
	return save(r.s, transfersFile, transfers)
}
