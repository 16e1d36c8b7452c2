// Package pdf genera el reporte de stock en PDF con Maroto v2.
//
// Layout de la página A4 del PDF:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la app         │  Fecha de generación     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Ítem | Cantidad | Estado                              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: total de ítems / unidades / bajo umbral             │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/stock-tracker/internal/domain/inventory"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator genera el reporte de stock con Maroto v2.
type MarotoReportGenerator struct {
	title   string
	printer *message.Printer
}

// NewMarotoReportGenerator construye el generador. lang es una etiqueta BCP 47 (ej. "es", "en-US");
// si no se puede interpretar se usa español.
func NewMarotoReportGenerator(title, lang string) *MarotoReportGenerator {
	tag, err := language.Parse(lang)
	if err != nil {
		tag = language.Spanish
	}
	return &MarotoReportGenerator{title: title, printer: message.NewPrinter(tag)}
}

// GenerateInventoryPDF genera el PDF con los ítems en el orden recibido y devuelve sus bytes.
// Los ítems con cantidad < threshold se marcan como stock bajo.
func (g *MarotoReportGenerator) GenerateInventoryPDF(_ context.Context, items []inventory.Item, threshold int) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(g.title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(time.Now()))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())

	total, low := 0, 0
	for _, it := range items {
		isLow := it.Quantity < threshold
		if isLow {
			low++
		}
		total += it.Quantity
		m.AddRows(g.itemRow(it, isLow))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(g.summaryRow(len(items), total, low, threshold))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoReportGenerator) headerRow(at time.Time) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(g.title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+at.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 3, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary, Top: 2,
		}))
	}
	return row.New(8).Add(
		h("Ítem", 7, align.Left),
		h("Cantidad", 3, align.Right),
		h("Estado", 2, align.Center),
	)
}

func (g *MarotoReportGenerator) itemRow(it inventory.Item, isLow bool) core.Row {
	status, color := "OK", colorGray
	if isLow {
		status, color = "BAJO", colorAlert
	}
	return row.New(7).Add(
		col.New(7).Add(text.New(it.Name, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New(g.printer.Sprintf("%d", it.Quantity), props.Text{
			Size: 9, Align: align.Right, Top: 1,
		})),
		col.New(2).Add(text.New(status, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1, Color: color,
		})),
	)
}

func (g *MarotoReportGenerator) summaryRow(items, units, low, threshold int) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(g.printer.Sprintf("Ítems: %d   |   Unidades: %d   |   Bajo umbral (< %d): %d",
				items, units, threshold, low,
			), props.Text{Size: 9, Top: 3, Align: align.Right}),
		),
	)
}
