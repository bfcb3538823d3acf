package repository

import "context"

// ScopeTotal total de emisiones (kgCO2e) de un alcance en el período.
type ScopeTotal struct {
	Scope   int
	TotalKg float64
	Entries int
}

// FacilityTotal total de emisiones por instalación.
type FacilityTotal struct {
	FacilityName string
	TotalKg      float64
}

// MonthlyTotal punto de la serie mensual de emisiones.
type MonthlyTotal struct {
	PeriodName string
	TotalKg    float64
}

// SourceCompletion conteo de estados por fuente para la barra de completitud.
type SourceCompletion struct {
	SourceID             string
	FacilityName         string
	MeasurementFrequency string
	Submitted            int
	Verified             int
	Approved             int
	Rejected             int
	Pending              int
}

// AnalyticsRepository consultas read-only para el dashboard. Solo agrega sobre
// registros que cuentan (Submitted/Verified/Approved); los períodos sin dato
// simplemente no aparecen y aportan cero.
type AnalyticsRepository interface {
	TotalsByScope(ctx context.Context, companyID, reportingPeriod string) ([]ScopeTotal, error)
	TotalsByFacility(ctx context.Context, companyID, reportingPeriod string) ([]FacilityTotal, error)
	MonthlySeries(ctx context.Context, companyID, reportingPeriod string) ([]MonthlyTotal, error)
	CompletionBySource(ctx context.Context, companyID, reportingPeriod string) ([]SourceCompletion, error)
	YearlyTotal(ctx context.Context, companyID, reportingPeriod string) (float64, error)
}
