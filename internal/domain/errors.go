package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrInvalidName     = errors.New("nombre de ítem inválido")
	ErrInvalidQuantity = errors.New("cantidad inválida")
	ErrItemNotFound    = errors.New("ítem no encontrado en el inventario")
	ErrFileNotFound    = errors.New("archivo de inventario no encontrado")
	ErrMalformedData   = errors.New("archivo de inventario con formato inválido")
	ErrReadFailed      = errors.New("no se pudo leer el inventario")
	ErrPersist         = errors.New("no se pudo guardar el inventario")
)

// IsValidation indica si err es un fallo de validación de nombre o cantidad.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidName) || errors.Is(err, ErrInvalidQuantity)
}
