package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Categorías ESG de un tema material.
const (
	TopicEnvironment = "Environment"
	TopicSocial      = "Social"
	TopicGovernance  = "Governance"
)

// Clasificación derivada de un tema en la matriz de materialidad.
const (
	ClassificationRisk        = "risk"
	ClassificationOpportunity = "opportunity"
)

// riskThreshold impacto de negocio a partir del cual un tema se grafica como
// riesgo en la matriz.
var riskThreshold = decimal.NewFromInt(5)

// MaterialTopic tema de la matriz de materialidad de dos ejes. La clasificación
// riesgo/oportunidad se deriva del impacto de negocio, no se almacena.
type MaterialTopic struct {
	ID                   string
	CompanyID            string
	Name                 string
	Category             string          // Environment, Social, Governance
	BusinessImpact       decimal.Decimal // 0-10
	SustainabilityImpact decimal.Decimal // 0-10
	Framework            string          // GRI, SASB, ... (opcional)
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// Classification deriva riesgo u oportunidad del impacto de negocio.
func (t *MaterialTopic) Classification() string {
	if t.BusinessImpact.GreaterThanOrEqual(riskThreshold) {
		return ClassificationRisk
	}
	return ClassificationOpportunity
}
