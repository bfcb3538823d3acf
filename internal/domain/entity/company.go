package entity

import "time"

// Company representa el tenant: toda entidad de datos ESG pertenece a una.
type Company struct {
	ID        string
	Name      string
	Industry  string
	Country   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
