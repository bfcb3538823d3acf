package entity

import (
	"time"

	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

// Calidades de dato reportadas por el colector.
const (
	QualityLow    = "Low"
	QualityMedium = "Medium"
	QualityHigh   = "High"
)

// ActivityEntry un valor de actividad medido para una fuente en un período.
// Clave natural: (SourceID, ReportingPeriod, PeriodName); la persistencia hace
// upsert sobre ella (last-write-wins). Nunca se borra físicamente: un registro
// rechazado se corrige y se reenvía.
type ActivityEntry struct {
	ID                  string
	CompanyID           string
	SourceID            string
	ReportingPeriod     string // año de reporte, ej. "2024"
	PeriodName          string // "January 2024", "Q1 2024", ...
	ActivityValue       float64
	ActivityUnit        string
	Notes               string
	EvidenceURLs        []string
	DataQuality         string // Low, Medium, High
	Status              ghg.Status
	CalculatedEmissions float64 // kgCO2e; congelado al quedar Verified/Approved
	VerifierComment     string
	SubmittedBy         string
	VerifiedBy          string
	SubmittedAt         *time.Time
	VerifiedAt          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// Frozen indica si las emisiones calculadas quedaron congeladas para reporte.
func (e *ActivityEntry) Frozen() bool {
	return ghg.Closed(e.Status)
}
