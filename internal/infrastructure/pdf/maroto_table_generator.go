// Package pdf implementa la exportación tabular del inventario usando Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  TÍTULO: Inventario / <Categoría>                            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Nombre | Estado | Fecha | Cantidad | Costo | Org.    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PIE: Generado el <fecha> · N productos                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/signalee/inventario-api/internal/application/transfer"
)

// Paleta de colores
var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Anchos de columna sobre la grilla de 12 de Maroto:
// Nombre 3 | Estado 2 | Fecha 2 | Cantidad 1 | Costo 2 | Organización 2
var columnSizes = []int{3, 2, 2, 1, 2, 2}

var _ transfer.TablePDFGenerator = (*MarotoTableGenerator)(nil)

// MarotoTableGenerator implementa transfer.TablePDFGenerator usando Maroto v2.
type MarotoTableGenerator struct{}

// NewMarotoTableGenerator construye el generador.
func NewMarotoTableGenerator() *MarotoTableGenerator { return &MarotoTableGenerator{} }

// GenerateTable genera el PDF tabular y devuelve sus bytes.
func (g *MarotoTableGenerator) GenerateTable(title string, headers []string, rows [][]string, footer string) ([]byte, error) {
	if len(headers) != len(columnSizes) {
		return nil, fmt.Errorf("pdf: se esperaban %d cabeceras, llegaron %d", len(columnSizes), len(headers))
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(titleRow(title))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(headerRow(headers))
	for _, cells := range rows {
		m.AddRows(detailRow(cells))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(footer))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func titleRow(title string) core.Row {
	return row.New(12).Add(
		text.NewCol(12, title, props.Text{
			Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
		}),
	)
}

func headerRow(headers []string) core.Row {
	r := row.New(7)
	for i, h := range headers {
		r.Add(text.NewCol(columnSizes[i], h, props.Text{
			Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 1,
		}))
	}
	return r
}

func detailRow(cells []string) core.Row {
	r := row.New(6)
	for i, c := range cells {
		if i >= len(columnSizes) {
			break
		}
		r.Add(text.NewCol(columnSizes[i], c, props.Text{Size: 8, Top: 1}))
	}
	return r
}

func footerRow(footer string) core.Row {
	return row.New(8).Add(
		text.NewCol(12, footer, props.Text{
			Size: 8, Color: colorGray, Align: align.Right, Top: 2,
		}),
	)
}
