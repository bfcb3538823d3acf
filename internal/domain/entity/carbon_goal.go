package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CarbonGoal meta de reducción de carbono de la empresa. CurrentProgress se
// captura manualmente; la derivación desde emisiones medidas existe solo como
// operación explícita del caso de uso (RecalculateProgress), nunca implícita.
type CarbonGoal struct {
	ID              string
	CompanyID       string
	Name            string
	TargetReduction decimal.Decimal // porcentaje objetivo de reducción
	Deadline        time.Time
	CurrentProgress decimal.Decimal // porcentaje 0-100
	Category        string
	BaselineYear    *int // si está presente habilita el recálculo desde mediciones
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
