// Package pdf implementa la generación del reporte mensual de ventas en PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha de generación │ filtros aplicados    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Mes | Ventas Retail | Transferencias | V. Bodega     │
//	│         (12 filas, meses sin datos en 0.00)                  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: las tres medidas del subconjunto filtrado          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOP PROVEEDORES: hasta 4, por (retail + bodega) desc        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

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
	"github.com/shopspring/decimal"

	"github.com/jhoicas/sales-dashboard-api/internal/application/dto"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa reports.PDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateMonthlyReportPDF genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateMonthlyReportPDF(
	_ context.Context,
	data *dto.MonthlyReportData,
) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("pdf: datos del reporte vacíos")
	}

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(data.Title, true).
		Build()

	m := maroto.New(cfg)

	// Header
	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(criteriaRow(data.Criteria, data.RecordCount))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla mensual
	m.AddRows(tableHeaderRow())
	for _, b := range data.Monthly {
		m.AddRows(monthRow(b))
	}

	// Totales
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(data.Totals))

	// Top proveedores
	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	for _, r := range supplierRows(data.TopSuppliers) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) y fecha de generación (der).
func headerRow(data *dto.MonthlyReportData) core.Row {
	fecha := data.GeneratedAt.Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New(data.Title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte mensual agregado", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado: "+fecha, props.Text{
				Size: 9, Align: align.Right, Top: 2, Color: colorGray,
			}),
		),
	)
}

// criteriaRow: filtros aplicados + número de registros del subconjunto.
func criteriaRow(c dto.AppliedCriteriaDTO, count int) core.Row {
	supplier := c.Supplier
	if supplier == "" {
		supplier = "(todos)"
	}
	left := fmt.Sprintf("Año: %s   Mes: %s", c.Year, c.Month)
	mid := fmt.Sprintf("Tipo: %s   Proveedor: %s", c.ItemType, supplier)
	right := fmt.Sprintf("%d registros", count)

	return row.New(8).Add(
		col.New(4).Add(text.New(left, props.Text{Size: 8, Top: 2})),
		col.New(5).Add(text.New(mid, props.Text{Size: 8, Top: 2})),
		col.New(3).Add(text.New(right, props.Text{Size: 8, Top: 2, Align: align.Right, Color: colorGray})),
	)
}

func tableHeaderRow() core.Row {
	h := props.Text{Style: fontstyle.Bold, Size: 9, Top: 2, Color: colorPrimary}
	hr := h
	hr.Align = align.Right
	return row.New(8).Add(
		col.New(3).Add(text.New("Mes", h)),
		col.New(3).Add(text.New("Ventas Retail", hr)),
		col.New(3).Add(text.New("Transferencias", hr)),
		col.New(3).Add(text.New("Ventas Bodega", hr)),
	)
}

func monthRow(b dto.MonthlyBucketDTO) core.Row {
	v := props.Text{Size: 8, Top: 1}
	vr := v
	vr.Align = align.Right
	return row.New(6).Add(
		col.New(3).Add(text.New(b.Label, v)),
		col.New(3).Add(text.New(amount(b.RetailSales), vr)),
		col.New(3).Add(text.New(amount(b.RetailTransfers), vr)),
		col.New(3).Add(text.New(amount(b.WarehouseSales), vr)),
	)
}

func totalsRow(t dto.TotalsDTO) core.Row {
	b := props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}
	br := b
	br.Align = align.Right
	return row.New(8).Add(
		col.New(3).Add(text.New("TOTALES", b)),
		col.New(3).Add(text.New(amount(t.RetailSales), br)),
		col.New(3).Add(text.New(amount(t.RetailTransfers), br)),
		col.New(3).Add(text.New(amount(t.WarehouseSales), br)),
	)
}

// supplierRows: encabezado de sección + hasta 4 proveedores rankeados.
func supplierRows(top []dto.TopSupplierDTO) []core.Row {
	rows := []core.Row{
		row.New(8).Add(
			col.New(12).Add(text.New("Top proveedores (retail + bodega)", props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 2, Color: colorPrimary,
			})),
		),
	}
	if len(top) == 0 {
		rows = append(rows, row.New(6).Add(
			col.New(12).Add(text.New("Sin datos en el subconjunto filtrado", props.Text{
				Size: 8, Top: 1, Color: colorGray,
			})),
		))
		return rows
	}
	for i, s := range top {
		rows = append(rows, row.New(6).Add(
			col.New(9).Add(text.New(fmt.Sprintf("%d. %s", i+1, s.Supplier), props.Text{Size: 8, Top: 1})),
			col.New(3).Add(text.New(amount(s.Value), props.Text{Size: 8, Top: 1, Align: align.Right})),
		))
	}
	return rows
}

func amount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
