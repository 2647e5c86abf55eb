package entity

import (
	"encoding/json"
	"strconv"
)

// ID identificador opaco de cualquier registro del inventario.
//
// Los archivos JSON heredados mezclan ids numéricos y strings; al deserializar
// se acepta cualquiera de los dos y se normaliza a string en la frontera, de
// modo que el resto del código compara ids directamente sin coerciones.
type ID string

// UnmarshalJSON acepta "3" o 3 y normaliza a string.
func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// NextID genera un identificador estrictamente mayor que cualquier id numérico
// existente en la colección. Colección vacía inicia en "1"; los ids que no
// parsean como entero cuentan como 0 para el máximo.
func NextID(ids []ID) ID {
	max := 0
	for _, id := range ids {
		n, err := strconv.Atoi(string(id))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return ID(strconv.Itoa(max + 1))
}
