package inventory

import (
	"fmt"
	"io"
)

// ReportHeader primera línea del reporte de texto.
const ReportHeader = "Items Report"

// PrintData escribe el encabezado y una línea "<item> -> <cantidad>" por ítem, en orden de inserción.
func PrintData(w io.Writer, inv *Inventory) error {
	if _, err := fmt.Fprintln(w, ReportHeader); err != nil {
		return err
	}
	for _, it := range inv.Items() {
		if _, err := fmt.Fprintf(w, "%s -> %d\n", it.Name, it.Quantity); err != nil {
			return err
		}
	}
	return nil
}
