package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/application/reporting"
)

// Cabecera con la huella SHA-256 del XML canonicalizado del reporte.
const headerDigest = "X-Report-Digest"

// ReportHandler maneja la exportación del documento de divulgación GHG.
type ReportHandler struct {
	uc *reporting.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reporting.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar divulgación GHG del período
// @Description  Genera el documento en XML (con huella de integridad sobre la
// @Description  forma canónica) o en PDF. La huella viaja en X-Report-Digest.
// @Tags         reports
// @Produce      application/xml
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        period  query  string  true   "año de reporte, ej. 2024"
// @Param        format  query  string  false  "xml (por defecto) o pdf"
// @Success      200  {string}  string  "documento de divulgación"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/reports/export [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	period := c.Query("period")
	if period == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "period es requerido"})
	}
	report, filename, err := h.uc.Export(c.Context(), GetCompanyID(c), period, c.Query("format"))
	if err != nil {
		return domainError(c, err)
	}

	contentType := "application/xml; charset=utf-8"
	if report.Format == reporting.FormatPDF {
		contentType = "application/pdf"
	}
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	c.Set(headerDigest, report.Digest)
	return c.Send(report.Document)
}
