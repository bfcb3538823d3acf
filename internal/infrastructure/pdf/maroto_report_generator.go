// Package pdf implementa la representación gráfica del reporte de divulgación
// de inventario GEI.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Razón social + sector  │  Año de reporte + fecha    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DEL INVENTARIO: tCO2e + versión de tabla de factores  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Alcance | Registros | kgCO2e | tCO2e                 │
//	│  TABLA: Instalación | kgCO2e | tCO2e                         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  SERIE: Período | kgCO2e                                     │
//	│  FOOTER: leyenda metodológica GHG Protocol                   │
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

	"github.com/S-FND/esg-core-api/internal/application/reporting"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 16, Green: 94, Blue: 62}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ reporting.ReportPDFGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa reporting.ReportPDFGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReportPDF(
	_ context.Context,
	data *reporting.ReportData,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Inventario GEI", true).
		WithAuthor(data.CompanyName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla por alcance
	m.AddRows(sectionTitle("EMISIONES POR ALCANCE"))
	m.AddRows(scopeHeaderRow())
	for _, r := range scopeRows(data) {
		m.AddRows(r)
	}

	// Tabla por instalación
	if len(data.ByFacility) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionTitle("EMISIONES POR INSTALACIÓN"))
		m.AddRows(facilityHeaderRow())
		for _, r := range facilityRows(data) {
			m.AddRows(r)
		}
	}

	// Serie por período
	if len(data.MonthlySeries) > 0 {
		m.AddRows(line.NewRow(2))
		m.AddRows(sectionTitle("SERIE POR PERÍODO"))
		for _, r := range seriesRows(data) {
			m.AddRows(r)
		}
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(data))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: razón social + sector (izq) y año + fecha de generación (der).
func headerRow(data *reporting.ReportData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(data.CompanyName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%s · %s", nonEmpty(data.CompanyIndustry, "—"), nonEmpty(data.CompanyCountry, "—")), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE DE INVENTARIO GEI", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New("Año "+data.ReportingPeriod, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Generado: "+data.GeneratedAt, props.Text{
				Size: 7, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// totalRow: total del inventario en toneladas más versión de la tabla de factores.
func totalRow(data *reporting.ReportData) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("TOTAL DEL INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("%.3f tCO2e", data.TotalT), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 7,
			}),
		),
		col.New(4).Add(
			text.New("Tabla de factores", props.Text{
				Size: 7, Align: align.Right, Top: 3, Color: colorGray,
			}),
			text.New(data.FactorTable, props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 9,
			}),
		),
	)
}

func sectionTitle(title string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
		}),
	))
}

func tableHeader(labels ...string) core.Row {
	cols := make([]core.Col, 0, len(labels))
	widths := colWidths(len(labels))
	for i, label := range labels {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(widths[i]).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Top: 1,
		})))
	}
	return row.New(6).Add(cols...)
}

func tableRow(cells ...string) core.Row {
	cols := make([]core.Col, 0, len(cells))
	widths := colWidths(len(cells))
	for i, cell := range cells {
		a := align.Right
		if i == 0 {
			a = align.Left
		}
		cols = append(cols, col.New(widths[i]).Add(text.New(cell, props.Text{
			Size: 8, Align: a, Top: 1, Color: colorGray,
		})))
	}
	return row.New(5).Add(cols...)
}

// colWidths reparte las 12 columnas de la grilla: la primera celda ancha, el
// resto parejo.
func colWidths(n int) []int {
	if n <= 1 {
		return []int{12}
	}
	rest := 12 / n
	first := 12 - rest*(n-1)
	widths := make([]int, n)
	widths[0] = first
	for i := 1; i < n; i++ {
		widths[i] = rest
	}
	return widths
}

func scopeHeaderRow() core.Row {
	return tableHeader("Alcance", "Registros", "kgCO2e", "tCO2e")
}

func scopeRows(data *reporting.ReportData) []core.Row {
	result := make([]core.Row, 0, len(data.ByScope))
	for _, s := range data.ByScope {
		result = append(result, tableRow(
			fmt.Sprintf("Alcance %d", s.Scope),
			fmt.Sprintf("%d", s.Entries),
			fmt.Sprintf("%.2f", s.TotalKg),
			fmt.Sprintf("%.3f", s.TotalKg/1000),
		))
	}
	return result
}

func facilityHeaderRow() core.Row {
	return tableHeader("Instalación", "kgCO2e", "tCO2e")
}

func facilityRows(data *reporting.ReportData) []core.Row {
	result := make([]core.Row, 0, len(data.ByFacility))
	for _, f := range data.ByFacility {
		result = append(result, tableRow(
			f.FacilityName,
			fmt.Sprintf("%.2f", f.TotalKg),
			fmt.Sprintf("%.3f", f.TotalKg/1000),
		))
	}
	return result
}

func seriesRows(data *reporting.ReportData) []core.Row {
	result := make([]core.Row, 0, len(data.MonthlySeries))
	for _, p := range data.MonthlySeries {
		result = append(result, tableRow(p.PeriodName, fmt.Sprintf("%.2f", p.TotalKg)))
	}
	return result
}

// footerRow: leyenda metodológica.
func footerRow(data *reporting.ReportData) core.Row {
	return row.New(10).Add(col.New(12).Add(
		text.New(
			"Inventario calculado según el GHG Protocol Corporate Standard con la tabla de factores "+
				data.FactorTable+". Solo se consolidan registros enviados y verificados; "+
				"los períodos sin dato aportan cero.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
