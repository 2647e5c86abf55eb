package dto

// UpdateAlertRequest body para PUT /api/alerts/:id.
// Status es obligatorio (Acknowledged o Resolved); Notes vacío conserva las
// notas existentes de la alerta.
type UpdateAlertRequest struct {
	Status string `json:"status" validate:"required,oneof=Open Acknowledged Resolved"`
	Notes  string `json:"notes"`
}
