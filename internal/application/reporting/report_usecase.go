package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

const (
	FormatXML = "xml"
	FormatPDF = "pdf"
)

// ReportUseCase arma el reporte de divulgación de un tenant para un año:
// consolida los totales del período, serializa el XML, calcula su huella de
// integridad y, si se pide, genera la representación gráfica en PDF. El digest
// siempre se calcula sobre el XML canonicalizado, también cuando el documento
// entregado es el PDF.
type ReportUseCase struct {
	companyRepo   repository.CompanyRepository
	analyticsRepo repository.AnalyticsRepository
	builder       DisclosureBuilder
	digester      DisclosureDigester
	pdfGenerator  ReportPDFGenerator
}

// NewReportUseCase construye el caso de uso inyectando todas sus dependencias.
func NewReportUseCase(
	companyRepo repository.CompanyRepository,
	analyticsRepo repository.AnalyticsRepository,
	builder DisclosureBuilder,
	digester DisclosureDigester,
	pdfGenerator ReportPDFGenerator,
) *ReportUseCase {
	return &ReportUseCase{
		companyRepo:   companyRepo,
		analyticsRepo: analyticsRepo,
		builder:       builder,
		digester:      digester,
		pdfGenerator:  pdfGenerator,
	}
}

// Export genera el reporte del período en el formato pedido.
//
// Retorna:
//   - domain.ErrNotFound      si la empresa no existe.
//   - domain.ErrInvalidInput  si el formato no es xml ni pdf.
func (uc *ReportUseCase) Export(
	ctx context.Context,
	companyID, reportingPeriod, format string,
) (*dto.ReportResponse, string, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatXML
	}
	if format != FormatXML && format != FormatPDF {
		return nil, "", fmt.Errorf("formato %q no soportado: %w", format, domain.ErrInvalidInput)
	}

	company, err := uc.companyRepo.GetByID(companyID)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: obtener empresa: %w", err)
	}
	if company == nil {
		return nil, "", domain.ErrNotFound
	}

	data, err := uc.gather(ctx, companyID, reportingPeriod)
	if err != nil {
		return nil, "", err
	}
	data.CompanyName = company.Name
	data.CompanyIndustry = company.Industry
	data.CompanyCountry = company.Country

	xmlDoc, err := uc.builder.BuildXML(data)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: serializar XML: %w", err)
	}
	digest, err := uc.digester.Digest(xmlDoc)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: digest: %w", err)
	}

	document := xmlDoc
	if format == FormatPDF {
		document, err = uc.pdfGenerator.GenerateReportPDF(ctx, data)
		if err != nil {
			return nil, "", fmt.Errorf("reporte: generación PDF fallida: %w", err)
		}
	}

	filename := fmt.Sprintf("divulgacion_ghg_%s.%s", reportingPeriod, format)
	return &dto.ReportResponse{
		ReportingPeriod: reportingPeriod,
		Format:          format,
		Digest:          digest,
		Document:        document,
	}, filename, nil
}

// gather consolida los totales del período. Solo agregan los registros que
// cuentan (Submitted/Verified/Approved); los períodos sin dato aportan cero.
func (uc *ReportUseCase) gather(ctx context.Context, companyID, reportingPeriod string) (*ReportData, error) {
	byScope, err := uc.analyticsRepo.TotalsByScope(ctx, companyID, reportingPeriod)
	if err != nil {
		return nil, fmt.Errorf("reporte: alcances: %w", err)
	}
	byFacility, err := uc.analyticsRepo.TotalsByFacility(ctx, companyID, reportingPeriod)
	if err != nil {
		return nil, fmt.Errorf("reporte: instalaciones: %w", err)
	}
	monthly, err := uc.analyticsRepo.MonthlySeries(ctx, companyID, reportingPeriod)
	if err != nil {
		return nil, fmt.Errorf("reporte: serie mensual: %w", err)
	}

	var totalKg float64
	for _, s := range byScope {
		totalKg += s.TotalKg
	}

	return &ReportData{
		ReportingPeriod: reportingPeriod,
		GeneratedAt:     time.Now().UTC().Format(time.RFC3339),
		FactorTable:     ghg.TableVersion,
		TotalKg:         totalKg,
		TotalT:          ghg.KgToTonnes(totalKg),
		ByScope:         byScope,
		ByFacility:      byFacility,
		MonthlySeries:   monthly,
	}, nil
}
