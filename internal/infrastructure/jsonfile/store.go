// Package jsonfile persiste el inventario en un archivo JSON con indentación de 2 espacios.
package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jhoicas/stock-tracker/internal/domain"
	"github.com/jhoicas/stock-tracker/internal/domain/inventory"
)

// DefaultPath ruta por defecto del archivo de inventario.
const DefaultPath = "inventory.json"

// LoadData lee el inventario desde path. Nunca devuelve un inventario nil:
// archivo ausente -> vacío + ErrFileNotFound; sin permiso de lectura -> vacío + ErrReadFailed;
// contenido inválido -> vacío + ErrMalformedData.
func LoadData(path string) (*inventory.Inventory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return inventory.New(), fmt.Errorf("%w: %s", domain.ErrFileNotFound, path)
		}
		return inventory.New(), fmt.Errorf("%w: %s: %v", domain.ErrReadFailed, path, err)
	}

	inv := inventory.New()
	if err := json.Unmarshal(data, inv); err != nil {
		if errors.Is(err, domain.ErrMalformedData) {
			return inventory.New(), fmt.Errorf("%s: %w", path, err)
		}
		return inventory.New(), fmt.Errorf("%w: %s: %v", domain.ErrMalformedData, path, err)
	}
	return inv, nil
}

// SaveData escribe el inventario en path sobrescribiendo el contenido previo.
// No hay rollback: ante un error el estado del archivo queda indefinido.
func SaveData(inv *inventory.Inventory, path string) (err error) {
	data, err := json.MarshalIndent(inv, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: serializar: %v", domain.ErrPersist, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrPersist, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("%w: cerrar %s: %v", domain.ErrPersist, path, cerr)
		}
	}()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("%w: escribir %s: %v", domain.ErrPersist, path, err)
	}
	return nil
}

// Store adapta LoadData/SaveData al puerto de persistencia de la aplicación.
type Store struct {
	Path string
}

// NewStore construye el store; path vacío usa DefaultPath.
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{Path: path}
}

// Load lee el archivo configurado.
func (s *Store) Load(_ context.Context) (*inventory.Inventory, error) {
	return LoadData(s.Path)
}

// Save escribe el archivo configurado.
func (s *Store) Save(_ context.Context, inv *inventory.Inventory) error {
	return SaveData(inv, s.Path)
}
