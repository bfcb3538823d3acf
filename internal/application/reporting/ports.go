package reporting

import (
	"context"

	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

// ReportData datos consolidados del período que alimentan al documento de
// divulgación, ya agregados y listos para serializar.
type ReportData struct {
	CompanyName     string
	CompanyIndustry string
	CompanyCountry  string
	ReportingPeriod string
	GeneratedAt     string // RFC3339
	FactorTable     string
	TotalKg         float64
	TotalT          float64
	ByScope         []repository.ScopeTotal
	ByFacility      []repository.FacilityTotal
	MonthlySeries   []repository.MonthlyTotal
}

// DisclosureBuilder serializa el reporte al XML de divulgación.
type DisclosureBuilder interface {
	BuildXML(data *ReportData) ([]byte, error)
}

// DisclosureDigester calcula la huella de integridad del documento: SHA-256
// en hex sobre el XML canonicalizado (C14N), de modo que dos serializaciones
// equivalentes produzcan el mismo digest.
type DisclosureDigester interface {
	Digest(xmlDoc []byte) (string, error)
}

// ReportPDFGenerator genera la representación gráfica (PDF) del reporte.
type ReportPDFGenerator interface {
	GenerateReportPDF(ctx context.Context, data *ReportData) ([]byte, error)
}
