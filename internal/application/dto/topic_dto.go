package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateTopicRequest alta de un tema material.
type CreateTopicRequest struct {
	Name                 string          `json:"name"`
	Category             string          `json:"category"` // Environment, Social, Governance
	BusinessImpact       decimal.Decimal `json:"business_impact"`
	SustainabilityImpact decimal.Decimal `json:"sustainability_impact"`
	Framework            string          `json:"framework"`
}

// UpdateTopicRequest campos modificables de un tema material.
type UpdateTopicRequest struct {
	Name                 *string          `json:"name"`
	Category             *string          `json:"category"`
	BusinessImpact       *decimal.Decimal `json:"business_impact"`
	SustainabilityImpact *decimal.Decimal `json:"sustainability_impact"`
	Framework            *string          `json:"framework"`
}

// TopicResponse tema material con su clasificación derivada (no almacenada).
type TopicResponse struct {
	ID                   string          `json:"id"`
	CompanyID            string          `json:"company_id"`
	Name                 string          `json:"name"`
	Category             string          `json:"category"`
	BusinessImpact       decimal.Decimal `json:"business_impact"`
	SustainabilityImpact decimal.Decimal `json:"sustainability_impact"`
	Framework            string          `json:"framework,omitempty"`
	Classification       string          `json:"classification"` // risk | opportunity
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// MatrixResponse temas agrupados por eje para la matriz de materialidad.
type MatrixResponse struct {
	Risks         []TopicResponse `json:"risks"`
	Opportunities []TopicResponse `json:"opportunities"`
}
