// Package pdf genera la hoja imprimible de un inventario cíclico con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Almacén + Tienda     │  N° Inventario + Estado     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Producto | Unidad | Sistema | Contado | Dif.  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: líneas, con diferencia  │  QR del inventario      │
//	│  FIRMAS: contó / revisó                                     │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	appinventory "github.com/jhoicas/mm-inventario/internal/application/inventory"
	"github.com/jhoicas/mm-inventario/internal/domain/entity"
	"github.com/jhoicas/mm-inventario/pkg/money"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorRed     = &props.Color{Red: 180, Green: 30, Blue: 30}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// CountSheetGenerator implementa inventory.CountSheetGenerator usando Maroto v2.
type CountSheetGenerator struct {
	author string
}

// NewCountSheetGenerator construye el generador; author aparece en los metadatos del PDF.
func NewCountSheetGenerator(author string) *CountSheetGenerator {
	return &CountSheetGenerator{author: author}
}

// GenerateCountSheet genera el PDF y devuelve sus bytes.
func (g *CountSheetGenerator) GenerateCountSheet(_ context.Context, sheet appinventory.CountSheet) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Hoja de inventario "+sheet.InventoryID, true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(sheet))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	m.AddRows(tableLineRows(sheet)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(summaryRow(sheet))
	m.AddRows(line.NewRow(6))
	m.AddRows(signaturesRow())

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar hoja de inventario: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: almacén y tienda (izq), inventario, estado y fechas (der).
func headerRow(sheet appinventory.CountSheet) core.Row {
	dates := "Creado: " + money.FormatDateDMY(sheet.CreatedAt)
	if sheet.ClosedAt != nil {
		dates += "   Cerrado: " + money.FormatDateDMY(*sheet.ClosedAt)
	}
	return row.New(18).Add(
		col.New(7).Add(
			text.New(sheet.WarehouseName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Tienda: "+sheet.StoreName, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("HOJA DE INVENTARIO · "+statusLabel(sheet.Status), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(sheet.InventoryID, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 7,
			}),
			text.New(dates, props.Text{
				Size: 8, Align: align.Right, Top: 13, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Producto", 4, align.Left),
		h("Unidad", 2, align.Left),
		h("Sistema", 1, align.Right),
		h("Contado", 2, align.Right),
		h("Dif.", 1, align.Right),
	)
}

// tableLineRows: una fila por producto. En un inventario abierto la columna "Contado"
// queda en blanco para anotar a mano.
func tableLineRows(sheet appinventory.CountSheet) []core.Row {
	open := sheet.Status == entity.InventoryStatusOpen
	rows := make([]core.Row, 0, len(sheet.Lines))
	for _, l := range sheet.Lines {
		counted, diff := "", ""
		if !open || l.Diff != 0 {
			counted = strconv.Itoa(l.CountedQty)
			diff = signed(l.Diff)
		}
		diffProps := props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1}
		if l.Diff != 0 {
			diffProps.Style = fontstyle.Bold
			diffProps.Color = colorRed
		}
		rows = append(rows, row.New(7).Add(
			col.New(2).Add(text.New(l.SKU, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(l.ProductName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(l.SaleUnit, props.Text{Size: 8, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(strconv.Itoa(l.SystemQty), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(counted, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(diff, diffProps)),
		))
	}
	return rows
}

// summaryRow: totales de la hoja y QR con el id para ubicarla rápido.
func summaryRow(sheet appinventory.CountSheet) core.Row {
	withDiff := 0
	for _, l := range sheet.Lines {
		if l.Diff != 0 {
			withDiff++
		}
	}
	return row.New(30).Add(
		col.New(8).Add(
			text.New(fmt.Sprintf("Líneas: %d", len(sheet.Lines)), props.Text{
				Style: fontstyle.Bold, Size: 9, Top: 3,
			}),
			text.New(fmt.Sprintf("Con diferencia: %d", withDiff), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(code.NewQr(sheet.InventoryID, props.Rect{
			Percent: 90,
			Center:  true,
		})),
	)
}

func signaturesRow() core.Row {
	sign := func(label string) core.Col {
		return col.New(6).Add(
			text.New("______________________________", props.Text{Size: 9, Align: align.Center, Top: 6}),
			text.New(label, props.Text{Size: 8, Align: align.Center, Top: 12, Color: colorGray}),
		)
	}
	return row.New(20).Add(sign("Contó"), sign("Revisó"))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func statusLabel(status string) string {
	if status == entity.InventoryStatusClosed {
		return "CERRADO"
	}
	return "ABIERTO"
}

// signed antepone "+" a las diferencias positivas.
func signed(n int) string {
	if n > 0 {
		return "+" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
