// Package jsonstore implementa los repositorios de dominio sobre archivos
// JSON planos: cada colección es un archivo que se lee y sobrescribe completo
// en cada operación. No hay lecturas parciales ni índices.
//
// Cada escritura es atómica a nivel de archivo (temp + rename), así una falla
// deja intacta la versión anterior. Run serializa los ciclos
// leer-modificar-escribir: el servidor atiende requests en paralelo y sin
// este lock dos transferencias concurrentes podrían sobregirar la misma fila.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// Archivos de colección dentro del directorio de datos.
const (
	productsFile   = "products.json"
	warehousesFile = "warehouses.json"
	stockFile      = "stock.json"
	transfersFile  = "transfers.json"
	alertsFile     = "alerts.json"
)

// Store acceso compartido al directorio de datos. Pasar afero.NewOsFs() en
// producción o afero.NewMemMapFs() en tests.
type Store struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// New construye el store y asegura que el directorio de datos exista.
func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: crear directorio %s: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

// Run ejecuta fn con el lock de mutación tomado. Todas las escrituras de los
// casos de uso pasan por aquí; las lecturas puras no lo necesitan porque el
// rename deja siempre un archivo consistente.
func (s *Store) Run(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn()
}

// load lee y deserializa una colección completa. Un archivo inexistente es
// una colección vacía; contenido malformado propaga el error.
func load[T any](s *Store, name string) ([]T, error) {
	path := s.path(name)
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("file", name).Msg("archivo de colección no existe, colección vacía")
			return []T{}, nil
		}
		return nil, fmt.Errorf("jsonstore: leer %s: %w", name, err)
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("jsonstore: parsear %s: %w", name, err)
	}
	return items, nil
}

// save serializa y sobrescribe la colección completa. Escribe a un archivo
// temporal y renombra: la escritura es todo-o-nada a nivel de archivo.
func save[T any](s *Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: serializar %s: %w", name, err)
	}
	path := s.path(name)
	tmp := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("jsonstore: escribir %s: %w", name, err)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		// MemMapFs no renombra sobre un archivo existente; OsFs sí.
		if removeErr := s.fs.Remove(path); removeErr == nil {
			err = s.fs.Rename(tmp, path)
		}
		if err != nil {
			return fmt.Errorf("jsonstore: renombrar %s: %w", name, err)
		}
	}
	return nil
}

func (s *Store) path(name string) string {
	return s.dir + string(os.PathSeparator) + name
}
