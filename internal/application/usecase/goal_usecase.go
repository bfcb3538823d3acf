package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

var hundred = decimal.NewFromInt(100)

// GoalUseCase CRUD de metas de carbono. El progreso es un campo capturado;
// RecalculateProgress lo deriva de emisiones medidas solo cuando la meta tiene
// año base y el llamador lo pide explícitamente.
type GoalUseCase struct {
	repo          repository.CarbonGoalRepository
	analyticsRepo repository.AnalyticsRepository
}

// NewGoalUseCase construye el caso de uso.
func NewGoalUseCase(repo repository.CarbonGoalRepository, analyticsRepo repository.AnalyticsRepository) *GoalUseCase {
	return &GoalUseCase{repo: repo, analyticsRepo: analyticsRepo}
}

// Create valida porcentajes (0-100) y persiste la meta.
func (uc *GoalUseCase) Create(companyID string, in dto.CreateGoalRequest) (*dto.GoalResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	}
	if !validPercent(in.TargetReduction) || !validPercent(in.CurrentProgress) {
		return nil, fmt.Errorf("porcentajes fuera de 0-100: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	goal := &entity.CarbonGoal{
		ID:              uuid.New().String(),
		CompanyID:       companyID,
		Name:            in.Name,
		TargetReduction: in.TargetReduction,
		Deadline:        in.Deadline,
		CurrentProgress: in.CurrentProgress,
		Category:        in.Category,
		BaselineYear:    in.BaselineYear,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.repo.Create(goal); err != nil {
		return nil, err
	}
	return toGoalResponse(goal), nil
}

// GetByID obtiene una meta por ID.
func (uc *GoalUseCase) GetByID(id string) (*dto.GoalResponse, error) {
	goal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, nil
	}
	return toGoalResponse(goal), nil
}

// Update actualiza una meta.
func (uc *GoalUseCase) Update(id string, in dto.UpdateGoalRequest) (*dto.GoalResponse, error) {
	goal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, nil
	}
	if in.Name != nil {
		goal.Name = *in.Name
	}
	if in.TargetReduction != nil {
		if !validPercent(*in.TargetReduction) {
			return nil, fmt.Errorf("target_reduction fuera de 0-100: %w", domain.ErrInvalidInput)
		}
		goal.TargetReduction = *in.TargetReduction
	}
	if in.Deadline != nil {
		goal.Deadline = *in.Deadline
	}
	if in.CurrentProgress != nil {
		if !validPercent(*in.CurrentProgress) {
			return nil, fmt.Errorf("current_progress fuera de 0-100: %w", domain.ErrInvalidInput)
		}
		goal.CurrentProgress = *in.CurrentProgress
	}
	if in.Category != nil {
		goal.Category = *in.Category
	}
	if in.BaselineYear != nil {
		goal.BaselineYear = in.BaselineYear
	}
	goal.UpdatedAt = time.Now()
	if err := uc.repo.Update(goal); err != nil {
		return nil, err
	}
	return toGoalResponse(goal), nil
}

// List lista metas por empresa con paginación.
func (uc *GoalUseCase) List(companyID string, limit, offset int) (*dto.GoalListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.GoalResponse, 0, len(list))
	for _, g := range list {
		items = append(items, *toGoalResponse(g))
	}
	return &dto.GoalListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una meta por ID.
func (uc *GoalUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// RecalculateProgress deriva el progreso desde las emisiones medidas:
// reducción = (total año base - total año actual) / total año base, expresada
// como porcentaje del objetivo de la meta y acotada a 0-100. Requiere año base.
func (uc *GoalUseCase) RecalculateProgress(ctx context.Context, companyID, id string, currentYear int) (*dto.GoalResponse, error) {
	goal, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if goal == nil || goal.CompanyID != companyID {
		return nil, nil
	}
	if goal.BaselineYear == nil {
		return nil, fmt.Errorf("la meta no tiene año base configurado: %w", domain.ErrInvalidInput)
	}
	baseTotal, err := uc.analyticsRepo.YearlyTotal(ctx, companyID, strconv.Itoa(*goal.BaselineYear))
	if err != nil {
		return nil, err
	}
	currentTotal, err := uc.analyticsRepo.YearlyTotal(ctx, companyID, strconv.Itoa(currentYear))
	if err != nil {
		return nil, err
	}
	if baseTotal <= 0 {
		return nil, fmt.Errorf("el año base no tiene emisiones medidas: %w", domain.ErrConflict)
	}

	reduction := decimal.NewFromFloat((baseTotal - currentTotal) / baseTotal).Mul(hundred)
	progress := decimal.Zero
	if goal.TargetReduction.IsPositive() {
		progress = reduction.Div(goal.TargetReduction).Mul(hundred)
	}
	if progress.IsNegative() {
		progress = decimal.Zero
	}
	if progress.GreaterThan(hundred) {
		progress = hundred
	}
	goal.CurrentProgress = progress.Round(2)
	goal.UpdatedAt = time.Now()
	if err := uc.repo.Update(goal); err != nil {
		return nil, err
	}
	return toGoalResponse(goal), nil
}

func validPercent(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(hundred)
}

func toGoalResponse(g *entity.CarbonGoal) *dto.GoalResponse {
	if g == nil {
		return nil
	}
	return &dto.GoalResponse{
		ID:              g.ID,
		CompanyID:       g.CompanyID,
		Name:            g.Name,
		TargetReduction: g.TargetReduction,
		Deadline:        g.Deadline,
		CurrentProgress: g.CurrentProgress,
		Category:        g.Category,
		BaselineYear:    g.BaselineYear,
		CreatedAt:       g.CreatedAt,
		UpdatedAt:       g.UpdatedAt,
	}
}
