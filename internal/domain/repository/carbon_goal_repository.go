package repository

import "github.com/S-FND/esg-core-api/internal/domain/entity"

// CarbonGoalRepository define el puerto de persistencia para CarbonGoal (DIP).
type CarbonGoalRepository interface {
	Create(goal *entity.CarbonGoal) error
	GetByID(id string) (*entity.CarbonGoal, error)
	Update(goal *entity.CarbonGoal) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.CarbonGoal, error)
	Delete(id string) error
}
