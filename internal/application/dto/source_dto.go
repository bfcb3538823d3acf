package dto

import "time"

// CreateSourceRequest alta de una fuente de emisión de instalación.
type CreateSourceRequest struct {
	FacilityName         string   `json:"facility_name"`
	SourceType           string   `json:"source_type"`
	Scope                int      `json:"scope"`
	Category             string   `json:"category"`
	EmissionFactorID     string   `json:"emission_factor_id"`
	ActivityDataUnit     string   `json:"activity_data_unit"`
	MeasurementFrequency string   `json:"measurement_frequency"`
	AssignedCollectors   []string `json:"assigned_collectors"`
	AssignedVerifiers    []string `json:"assigned_verifiers"`
}

// UpdateSourceRequest campos modificables de una fuente.
type UpdateSourceRequest struct {
	FacilityName         *string   `json:"facility_name"`
	SourceType           *string   `json:"source_type"`
	EmissionFactorID     *string   `json:"emission_factor_id"`
	ActivityDataUnit     *string   `json:"activity_data_unit"`
	MeasurementFrequency *string   `json:"measurement_frequency"`
	AssignedCollectors   *[]string `json:"assigned_collectors"`
	AssignedVerifiers    *[]string `json:"assigned_verifiers"`
}

// SourceResponse representación de una fuente de emisión.
type SourceResponse struct {
	ID                   string    `json:"id"`
	CompanyID            string    `json:"company_id"`
	FacilityName         string    `json:"facility_name"`
	SourceType           string    `json:"source_type"`
	Scope                int       `json:"scope"`
	Category             string    `json:"category"`
	EmissionFactorID     string    `json:"emission_factor_id"`
	EmissionFactor       float64   `json:"emission_factor"`
	ActivityDataUnit     string    `json:"activity_data_unit"`
	MeasurementFrequency string    `json:"measurement_frequency"`
	AssignedCollectors   []string  `json:"assigned_collectors"`
	AssignedVerifiers    []string  `json:"assigned_verifiers"`
	ExpectedPeriods      int       `json:"expected_periods"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// SourceListResponse listado paginado de fuentes.
type SourceListResponse struct {
	Items []SourceResponse `json:"items"`
	Page  PageResponse     `json:"page"`
}
