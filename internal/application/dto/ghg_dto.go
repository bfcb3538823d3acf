package dto

// EmissionFactorResponse factor del registro estático.
type EmissionFactorResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Factor      float64 `json:"factor"`
	Unit        string  `json:"unit"`
	Source      string  `json:"source"`
	Year        string  `json:"year"`
	Region      string  `json:"region,omitempty"`
	Gases       string  `json:"gases"`
	Description string  `json:"description,omitempty"`
}

// FactorListResponse factores de un alcance más la versión de la tabla.
type FactorListResponse struct {
	TableVersion string                   `json:"table_version"`
	Scope        int                      `json:"scope"`
	Items        []EmissionFactorResponse `json:"items"`
}

// ConvertRequest petición de conversión de unidades.
type ConvertRequest struct {
	Value    float64 `json:"value"`
	FromUnit string  `json:"from_unit"`
	ToUnit   string  `json:"to_unit"`
}

// ConvertResponse resultado de una conversión. Result es null cuando las
// unidades no son convertibles entre sí.
type ConvertResponse struct {
	Result      *float64 `json:"result"`
	Convertible bool     `json:"convertible"`
	FromUnit    string   `json:"from_unit"`
	ToUnit      string   `json:"to_unit"`
}

// AvailableConversionsResponse unidades alcanzables desde una unidad.
type AvailableConversionsResponse struct {
	Unit     string   `json:"unit"`
	Category string   `json:"category,omitempty"`
	Units    []string `json:"units"`
}

// EmissionsResponse desglose por gas de un cálculo, en kgCO2e.
type EmissionsResponse struct {
	CO2    float64 `json:"co2"`
	CH4    float64 `json:"ch4"`
	N2O    float64 `json:"n2o"`
	Total  float64 `json:"total"`
	TotalT float64 `json:"total_tco2e"`
}
