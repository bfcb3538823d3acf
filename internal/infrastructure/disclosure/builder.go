package disclosure

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/S-FND/esg-core-api/internal/application/reporting"
)

// Namespace del documento de divulgación de inventario GEI.
const (
	NsDisclosure = "urn:s-fnd:esg:schema:xsd:GHGDisclosure-1"
	docVersion   = "1.0"
)

var _ reporting.DisclosureBuilder = (*Builder)(nil)

// Builder serializa el reporte consolidado al XML de divulgación. El orden de
// los elementos es fijo: el digest se calcula sobre la forma canónica y dos
// reportes con los mismos datos deben producir los mismos bytes.
type Builder struct{}

// NewBuilder crea el servicio.
func NewBuilder() *Builder {
	return &Builder{}
}

// BuildXML genera el []byte del documento GHGDisclosure.
func (b *Builder) BuildXML(data *reporting.ReportData) ([]byte, error) {
	if data == nil {
		return nil, fmt.Errorf("disclosure: reporte vacío")
	}
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")

	root := xml.StartElement{
		Name: xml.Name{Local: "GHGDisclosure"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "xmlns"}, Value: NsDisclosure},
			{Name: xml.Name{Local: "version"}, Value: docVersion},
		},
	}
	if err := enc.EncodeToken(root); err != nil {
		return nil, err
	}

	if err := writeLeaf(enc, "ReportingPeriod", data.ReportingPeriod); err != nil {
		return nil, err
	}
	if err := writeLeaf(enc, "GeneratedAt", data.GeneratedAt); err != nil {
		return nil, err
	}
	if err := writeLeaf(enc, "FactorTableVersion", data.FactorTable); err != nil {
		return nil, err
	}

	if err := b.writeOrganization(enc, data); err != nil {
		return nil, err
	}
	if err := b.writeTotals(enc, data); err != nil {
		return nil, err
	}
	if err := b.writeFacilities(enc, data); err != nil {
		return nil, err
	}
	if err := b.writeSeries(enc, data); err != nil {
		return nil, err
	}

	if err := enc.EncodeToken(root.End()); err != nil {
		return nil, err
	}
	if err := enc.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (b *Builder) writeOrganization(enc *xml.Encoder, data *reporting.ReportData) error {
	org := xml.StartElement{Name: xml.Name{Local: "Organization"}}
	if err := enc.EncodeToken(org); err != nil {
		return err
	}
	if err := writeLeaf(enc, "Name", data.CompanyName); err != nil {
		return err
	}
	if err := writeLeaf(enc, "Industry", data.CompanyIndustry); err != nil {
		return err
	}
	if err := writeLeaf(enc, "Country", data.CompanyCountry); err != nil {
		return err
	}
	return enc.EncodeToken(org.End())
}

func (b *Builder) writeTotals(enc *xml.Encoder, data *reporting.ReportData) error {
	totals := xml.StartElement{
		Name: xml.Name{Local: "Emissions"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "unit"}, Value: "kgCO2e"}},
	}
	if err := enc.EncodeToken(totals); err != nil {
		return err
	}
	if err := writeLeaf(enc, "Total", formatKg(data.TotalKg)); err != nil {
		return err
	}
	for _, s := range data.ByScope {
		el := xml.StartElement{
			Name: xml.Name{Local: "Scope"},
			Attr: []xml.Attr{
				{Name: xml.Name{Local: "number"}, Value: strconv.Itoa(s.Scope)},
				{Name: xml.Name{Local: "entries"}, Value: strconv.Itoa(s.Entries)},
			},
		}
		if err := enc.EncodeElement(formatKg(s.TotalKg), el); err != nil {
			return err
		}
	}
	return enc.EncodeToken(totals.End())
}

func (b *Builder) writeFacilities(enc *xml.Encoder, data *reporting.ReportData) error {
	if len(data.ByFacility) == 0 {
		return nil
	}
	facilities := xml.StartElement{Name: xml.Name{Local: "Facilities"}}
	if err := enc.EncodeToken(facilities); err != nil {
		return err
	}
	for _, f := range data.ByFacility {
		el := xml.StartElement{
			Name: xml.Name{Local: "Facility"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: f.FacilityName}},
		}
		if err := enc.EncodeElement(formatKg(f.TotalKg), el); err != nil {
			return err
		}
	}
	return enc.EncodeToken(facilities.End())
}

func (b *Builder) writeSeries(enc *xml.Encoder, data *reporting.ReportData) error {
	if len(data.MonthlySeries) == 0 {
		return nil
	}
	series := xml.StartElement{Name: xml.Name{Local: "PeriodSeries"}}
	if err := enc.EncodeToken(series); err != nil {
		return err
	}
	for _, p := range data.MonthlySeries {
		el := xml.StartElement{
			Name: xml.Name{Local: "Period"},
			Attr: []xml.Attr{{Name: xml.Name{Local: "name"}, Value: p.PeriodName}},
		}
		if err := enc.EncodeElement(formatKg(p.TotalKg), el); err != nil {
			return err
		}
	}
	return enc.EncodeToken(series.End())
}

func writeLeaf(enc *xml.Encoder, name, value string) error {
	return enc.EncodeElement(value, xml.StartElement{Name: xml.Name{Local: name}})
}

// formatKg serializa kgCO2e con precisión fija para que el documento sea
// reproducible byte a byte.
func formatKg(kg float64) string {
	return strconv.FormatFloat(kg, 'f', 6, 64)
}
