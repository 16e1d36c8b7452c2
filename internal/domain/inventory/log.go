package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout formato legible del timestamp de las entradas del log.
const TimestampLayout = "2006-01-02 15:04:05.000000"

// Entry registro de una entrada de stock exitosa.
type Entry struct {
	ID       uuid.UUID `json:"id"`
	At       time.Time `json:"at"`
	Item     string    `json:"item"`
	Quantity int       `json:"quantity"`
}

func newEntry(item string, qty int, at time.Time) Entry {
	return Entry{ID: uuid.New(), At: at, Item: item, Quantity: qty}
}

// String "<timestamp>: Added <qty> of <item>".
func (e Entry) String() string {
	return fmt.Sprintf("%s: Added %d of %s", e.At.Format(TimestampLayout), e.Quantity, e.Item)
}

// Log secuencia append-only de entradas; pertenece al caller.
type Log []Entry
