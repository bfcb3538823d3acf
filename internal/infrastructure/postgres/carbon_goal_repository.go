package postgres

import (
	"context"
	"fmt"

	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

var _ repository.CarbonGoalRepository = (*CarbonGoalRepo)(nil)

// CarbonGoalRepo implementación del puerto CarbonGoalRepository sobre
// PostgreSQL. Los porcentajes viven como NUMERIC y entran/salen como decimal.
type CarbonGoalRepo struct {
	q Querier
}

// NewCarbonGoalRepository construye el adaptador de metas de carbono.
func NewCarbonGoalRepository(q Querier) *CarbonGoalRepo {
	return &CarbonGoalRepo{q: q}
}

const goalColumns = `id, company_id, name, target_reduction, deadline,
	current_progress, category, baseline_year, created_at, updated_at`

// Create persiste una nueva meta.
func (r *CarbonGoalRepo) Create(goal *entity.CarbonGoal) error {
	query := `
		INSERT INTO carbon_goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.q.Exec(context.Background(), query,
		goal.ID, goal.CompanyID, goal.Name, goal.TargetReduction, goal.Deadline,
		goal.CurrentProgress, goal.Category, goal.BaselineYear,
		goal.CreatedAt, goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert carbon goal: %w", err)
	}
	return nil
}

func scanGoal(row interface{ Scan(...any) error }) (*entity.CarbonGoal, error) {
	var g entity.CarbonGoal
	err := row.Scan(
		&g.ID, &g.CompanyID, &g.Name, &g.TargetReduction, &g.Deadline,
		&g.CurrentProgress, &g.Category, &g.BaselineYear, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// GetByID obtiene una meta por ID.
func (r *CarbonGoalRepo) GetByID(id string) (*entity.CarbonGoal, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+goalColumns+` FROM carbon_goals WHERE id = $1`, id)
	g, err := scanGoal(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get carbon goal: %w", err)
	}
	return g, nil
}

// Update actualiza una meta existente.
func (r *CarbonGoalRepo) Update(goal *entity.CarbonGoal) error {
	query := `
		UPDATE carbon_goals
		SET name = $2, target_reduction = $3, deadline = $4, current_progress = $5,
		    category = $6, baseline_year = $7, updated_at = $8
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		goal.ID, goal.Name, goal.TargetReduction, goal.Deadline,
		goal.CurrentProgress, goal.Category, goal.BaselineYear, goal.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update carbon goal: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany devuelve las metas de una empresa con paginación.
func (r *CarbonGoalRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.CarbonGoal, error) {
	query := `
		SELECT ` + goalColumns + ` FROM carbon_goals
		WHERE company_id = $1 ORDER BY deadline LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list carbon goals: %w", err)
	}
	defer rows.Close()

	var list []*entity.CarbonGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan carbon goal: %w", err)
		}
		list = append(list, g)
	}
	return list, rows.Err()
}

// Delete elimina una meta por ID.
func (r *CarbonGoalRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM carbon_goals WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete carbon goal: %w", err)
	}
	return nil
}
