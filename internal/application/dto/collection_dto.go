package dto

import "time"

// EntryInput un período capturado por el colector dentro de un lote.
type EntryInput struct {
	PeriodName    string   `json:"period_name"`
	ActivityValue float64  `json:"activity_value"`
	ActivityUnit  string   `json:"activity_unit"`
	Notes         string   `json:"notes"`
	DataQuality   string   `json:"data_quality"` // Low, Medium, High
	EvidenceURLs  []string `json:"evidence_urls"`
}

// CollectRequest lote de captura para una fuente y año de reporte.
type CollectRequest struct {
	SourceID        string       `json:"source_id"`
	ReportingPeriod string       `json:"reporting_period"` // año, ej. "2024"
	Entries         []EntryInput `json:"entries"`
}

// EntryResponse registro de actividad con sus emisiones calculadas.
type EntryResponse struct {
	ID                  string     `json:"id"`
	SourceID            string     `json:"source_id"`
	ReportingPeriod     string     `json:"reporting_period"`
	PeriodName          string     `json:"period_name"`
	ActivityValue       float64    `json:"activity_value"`
	ActivityUnit        string     `json:"activity_unit"`
	Notes               string     `json:"notes,omitempty"`
	EvidenceURLs        []string   `json:"evidence_urls,omitempty"`
	DataQuality         string     `json:"data_quality"`
	Status              string     `json:"verification_status"`
	CalculatedEmissions float64    `json:"calculated_emissions"`
	VerifierComment     string     `json:"verifier_comment,omitempty"`
	SubmittedAt         *time.Time `json:"submitted_at,omitempty"`
	VerifiedAt          *time.Time `json:"verified_at,omitempty"`
}

// CollectResponse resultado del lote: registros persistidos y total del lote.
type CollectResponse struct {
	Entries      []EntryResponse `json:"entries"`
	BatchTotalKg float64         `json:"batch_total_kg_co2e"`
}

// VerifyRequest decisión de un verificador sobre un registro enviado.
type VerifyRequest struct {
	EntryID  string `json:"entry_id"`
	Decision string `json:"decision"` // Verified, Approved, Rejected
	Comment  string `json:"comment"`
}

// ScheduleResponse completitud de captura por fuente.
type ScheduleResponse struct {
	SourceID           string  `json:"source_id"`
	FacilityName       string  `json:"facility_name"`
	ExpectedPeriods    int     `json:"expected_periods"`
	CompletionPercent  float64 `json:"completion_percent"`
	Submitted          int     `json:"submitted"`
	Verified           int     `json:"verified"`
	Approved           int     `json:"approved"`
	Rejected           int     `json:"rejected"`
	Pending            int     `json:"pending"`
}

// DraftRequest borrador de captura que el colector guarda antes de enviar.
type DraftRequest struct {
	SourceID        string       `json:"source_id"`
	ReportingPeriod string       `json:"reporting_period"`
	Month           string       `json:"month"`
	Entries         []EntryInput `json:"entries"`
}
