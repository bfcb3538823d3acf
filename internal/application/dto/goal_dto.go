package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateGoalRequest alta de una meta de carbono.
type CreateGoalRequest struct {
	Name            string          `json:"name"`
	TargetReduction decimal.Decimal `json:"target_reduction"`
	Deadline        time.Time       `json:"deadline"`
	CurrentProgress decimal.Decimal `json:"current_progress"`
	Category        string          `json:"category"`
	BaselineYear    *int            `json:"baseline_year"`
}

// UpdateGoalRequest campos modificables de una meta.
type UpdateGoalRequest struct {
	Name            *string          `json:"name"`
	TargetReduction *decimal.Decimal `json:"target_reduction"`
	Deadline        *time.Time       `json:"deadline"`
	CurrentProgress *decimal.Decimal `json:"current_progress"`
	Category        *string          `json:"category"`
	BaselineYear    *int             `json:"baseline_year"`
}

// GoalResponse representación de una meta de carbono.
type GoalResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Name            string          `json:"name"`
	TargetReduction decimal.Decimal `json:"target_reduction"`
	Deadline        time.Time       `json:"deadline"`
	CurrentProgress decimal.Decimal `json:"current_progress"`
	Category        string          `json:"category"`
	BaselineYear    *int            `json:"baseline_year,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// GoalListResponse listado paginado de metas.
type GoalListResponse struct {
	Items []GoalResponse `json:"items"`
	Page  PageResponse   `json:"page"`
}
