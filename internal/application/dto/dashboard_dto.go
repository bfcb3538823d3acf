package dto

// ScopeTotalDTO total de un alcance en el período, en kg y toneladas CO2e.
type ScopeTotalDTO struct {
	Scope   int     `json:"scope"`
	TotalKg float64 `json:"total_kg_co2e"`
	TotalT  float64 `json:"total_tco2e"`
	Entries int     `json:"entries"`
}

// FacilityTotalDTO total por instalación.
type FacilityTotalDTO struct {
	FacilityName string  `json:"facility_name"`
	TotalKg      float64 `json:"total_kg_co2e"`
	TotalT       float64 `json:"total_tco2e"`
}

// MonthlyTotalDTO punto de la serie mensual.
type MonthlyTotalDTO struct {
	PeriodName string  `json:"period_name"`
	TotalKg    float64 `json:"total_kg_co2e"`
}

// DashboardSummaryDTO resumen del dashboard de emisiones del tenant.
type DashboardSummaryDTO struct {
	ReportingPeriod string             `json:"reporting_period"`
	TotalKg         float64            `json:"total_kg_co2e"`
	TotalT          float64            `json:"total_tco2e"`
	ByScope         []ScopeTotalDTO    `json:"by_scope"`
	ByFacility      []FacilityTotalDTO `json:"by_facility"`
	MonthlySeries   []MonthlyTotalDTO  `json:"monthly_series"`
	Schedules       []ScheduleResponse `json:"schedules"`
}
