package inventory

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/jhoicas/stock-tracker/internal/domain"
)

// MarshalJSON serializa el inventario como objeto JSON respetando el orden de inserción.
func (inv *Inventory) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range inv.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.WriteString(strconv.Itoa(inv.qty[name]))
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON lee un objeto JSON nombre -> entero no negativo conservando el orden del archivo.
// Cualquier otra forma devuelve ErrMalformedData y deja el inventario vacío.
func (inv *Inventory) UnmarshalJSON(data []byte) error {
	parsed, err := decodeObject(data)
	if err != nil {
		*inv = Inventory{qty: make(map[string]int)}
		return fmt.Errorf("%w: %v", domain.ErrMalformedData, err)
	}
	*inv = *parsed
	return nil
}

func decodeObject(data []byte) (*Inventory, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, errors.New("se esperaba un objeto JSON")
	}

	inv := New()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, _ := tok.(string)
		if name == "" {
			return nil, errors.New("nombre de ítem vacío")
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, err
		}
		qty, err := strconv.Atoi(string(bytes.TrimSpace(raw)))
		if err != nil {
			return nil, fmt.Errorf("cantidad no entera para %q: %s", name, raw)
		}
		if qty < 0 {
			return nil, fmt.Errorf("cantidad negativa para %q: %d", name, qty)
		}
		inv.set(name, qty)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("datos extra después del objeto")
	}
	return inv, nil
}
