package entity

import "time"

// EmissionSource describe una fuente de emisión a nivel de instalación:
// qué se mide, con qué factor, en qué unidad y con qué frecuencia.
// Posee cero o más ActivityEntry, uno por período esperado.
type EmissionSource struct {
	ID                   string
	CompanyID            string
	FacilityName         string
	SourceType           string
	Scope                int    // 1-4, alcances del GHG Protocol
	Category             string // categoría del factor dentro del alcance
	EmissionFactorID     string // referencia al registro estático
	EmissionFactor       float64
	ActivityDataUnit     string
	MeasurementFrequency string // Daily, Weekly, Monthly, Quarterly, Annually
	AssignedCollectors   []string
	AssignedVerifiers    []string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// IsVerifier indica si userID aparece en el set de verificadores asignados.
func (s *EmissionSource) IsVerifier(userID string) bool {
	for _, v := range s.AssignedVerifiers {
		if v == userID {
			return true
		}
	}
	return false
}

// IsCollector indica si userID aparece en el set de colectores asignados.
func (s *EmissionSource) IsCollector(userID string) bool {
	for _, c := range s.AssignedCollectors {
		if c == userID {
			return true
		}
	}
	return false
}
