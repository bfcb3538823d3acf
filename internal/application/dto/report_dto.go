package dto

// ReportResponse documento de divulgación XML más su huella de integridad.
type ReportResponse struct {
	ReportingPeriod string `json:"reporting_period"`
	Format          string `json:"format"` // xml | pdf
	Digest          string `json:"digest"` // SHA-256 hex sobre el XML canonicalizado
	Document        []byte `json:"document"`
}
