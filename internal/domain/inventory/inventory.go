// Package inventory implementa el almacén de stock en memoria: un mapa de nombre de ítem
// a cantidad entera no negativa que conserva el orden de inserción.
//
// El Inventory pertenece al caller y no es seguro para uso concurrente; la capa de
// aplicación lo protege cuando se comparte.
package inventory

import (
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/stock-tracker/internal/domain"
)

// DefaultLowThreshold umbral por defecto de stock bajo (estrictamente menor).
const DefaultLowThreshold = 5

// now es el reloj usado para las entradas del log; reemplazable en tests.
var now = time.Now

// Item par nombre/cantidad en el orden del inventario.
type Item struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

// Inventory mapa nombre -> cantidad con orden de inserción. El valor cero está listo para usar.
type Inventory struct {
	names []string
	qty   map[string]int
}

// New devuelve un inventario vacío.
func New() *Inventory {
	return &Inventory{qty: make(map[string]int)}
}

// FromItems construye un inventario validando nombres y cantidades.
// Nombres repetidos conservan la primera posición y el último valor.
func FromItems(items []Item) (*Inventory, error) {
	inv := New()
	for _, it := range items {
		if it.Name == "" {
			return New(), domain.ErrInvalidName
		}
		if it.Quantity < 0 {
			return New(), fmt.Errorf("%w: %d para %q", domain.ErrInvalidQuantity, it.Quantity, it.Name)
		}
		inv.set(it.Name, it.Quantity)
	}
	return inv, nil
}

func (inv *Inventory) set(name string, qty int) {
	if inv.qty == nil {
		inv.qty = make(map[string]int)
	}
	if _, ok := inv.qty[name]; !ok {
		inv.names = append(inv.names, name)
	}
	inv.qty[name] = qty
}

func (inv *Inventory) delete(name string) {
	delete(inv.qty, name)
	for i, n := range inv.names {
		if n == name {
			inv.names = append(inv.names[:i], inv.names[i+1:]...)
			return
		}
	}
}

// Add suma qty unidades a name y agrega una entrada al log.
// Con nombre vacío, cantidad negativa o suma que desborda int no modifica nada y devuelve el log sin cambios.
// Un log nil se trata como una secuencia vacía nueva.
func (inv *Inventory) Add(name string, qty int, log Log) (Log, error) {
	if name == "" {
		return log, domain.ErrInvalidName
	}
	if qty < 0 {
		return log, fmt.Errorf("%w: %d para %q", domain.ErrInvalidQuantity, qty, name)
	}
	current := inv.Qty(name)
	if qty > math.MaxInt-current {
		return log, fmt.Errorf("%w: %d para %q excede el máximo (actual %d)", domain.ErrInvalidQuantity, qty, name, current)
	}
	inv.set(name, current+qty)
	return append(log, newEntry(name, qty, now())), nil
}

// Remove descuenta qty unidades de name. Si el resultado es <= 0 el ítem se elimina.
// Un ítem ausente devuelve ErrItemNotFound sin modificar el inventario.
func (inv *Inventory) Remove(name string, qty int) error {
	current, ok := inv.qty[name]
	if !ok {
		return fmt.Errorf("%w: %q", domain.ErrItemNotFound, name)
	}
	if qty < 0 {
		return fmt.Errorf("%w: %d", domain.ErrInvalidQuantity, qty)
	}
	if current-qty <= 0 {
		inv.delete(name)
		return nil
	}
	inv.qty[name] = current - qty
	return nil
}

// Qty devuelve la cantidad de name, o 0 si no existe.
func (inv *Inventory) Qty(name string) int {
	return inv.qty[name]
}

// Has indica si name está en el inventario.
func (inv *Inventory) Has(name string) bool {
	_, ok := inv.qty[name]
	return ok
}

// LowItems devuelve los nombres con cantidad estrictamente menor que threshold, en orden de inserción.
func (inv *Inventory) LowItems(threshold int) []string {
	out := make([]string, 0)
	for _, name := range inv.names {
		if inv.qty[name] < threshold {
			out = append(out, name)
		}
	}
	return out
}

// Len número de ítems.
func (inv *Inventory) Len() int {
	return len(inv.names)
}

// Items copia de los ítems en orden de inserción.
func (inv *Inventory) Items() []Item {
	out := make([]Item, 0, len(inv.names))
	for _, name := range inv.names {
		out = append(out, Item{Name: name, Quantity: inv.qty[name]})
	}
	return out
}

// Clone copia profunda del inventario.
func (inv *Inventory) Clone() *Inventory {
	c := New()
	for _, name := range inv.names {
		c.set(name, inv.qty[name])
	}
	return c
}
