package postgres

import (
	"context"
	"fmt"

	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

var _ repository.EmissionSourceRepository = (*EmissionSourceRepo)(nil)

// EmissionSourceRepo implementación del puerto EmissionSourceRepository sobre
// PostgreSQL. Los sets de asignación viven como text[].
type EmissionSourceRepo struct {
	q Querier
}

// NewEmissionSourceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmissionSourceRepository(q Querier) *EmissionSourceRepo {
	return &EmissionSourceRepo{q: q}
}

const sourceColumns = `id, company_id, facility_name, source_type, scope, category,
	emission_factor_id, emission_factor, activity_data_unit, measurement_frequency,
	assigned_collectors, assigned_verifiers, created_at, updated_at`

// Create persiste una nueva fuente de emisión.
func (r *EmissionSourceRepo) Create(source *entity.EmissionSource) error {
	query := `
		INSERT INTO emission_sources (` + sourceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(context.Background(), query,
		source.ID, source.CompanyID, source.FacilityName, source.SourceType,
		source.Scope, source.Category, source.EmissionFactorID, source.EmissionFactor,
		source.ActivityDataUnit, source.MeasurementFrequency,
		source.AssignedCollectors, source.AssignedVerifiers,
		source.CreatedAt, source.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert emission source: %w", err)
	}
	return nil
}

func scanSource(row interface{ Scan(...any) error }) (*entity.EmissionSource, error) {
	var s entity.EmissionSource
	err := row.Scan(
		&s.ID, &s.CompanyID, &s.FacilityName, &s.SourceType,
		&s.Scope, &s.Category, &s.EmissionFactorID, &s.EmissionFactor,
		&s.ActivityDataUnit, &s.MeasurementFrequency,
		&s.AssignedCollectors, &s.AssignedVerifiers,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// GetByID obtiene una fuente por ID.
func (r *EmissionSourceRepo) GetByID(id string) (*entity.EmissionSource, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+sourceColumns+` FROM emission_sources WHERE id = $1`, id)
	s, err := scanSource(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get emission source: %w", err)
	}
	return s, nil
}

// Update actualiza una fuente existente (incluye reasignación de colectores y verificadores).
func (r *EmissionSourceRepo) Update(source *entity.EmissionSource) error {
	query := `
		UPDATE emission_sources
		SET facility_name = $2, source_type = $3, scope = $4, category = $5,
		    emission_factor_id = $6, emission_factor = $7, activity_data_unit = $8,
		    measurement_frequency = $9, assigned_collectors = $10,
		    assigned_verifiers = $11, updated_at = $12
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		source.ID, source.FacilityName, source.SourceType, source.Scope,
		source.Category, source.EmissionFactorID, source.EmissionFactor,
		source.ActivityDataUnit, source.MeasurementFrequency,
		source.AssignedCollectors, source.AssignedVerifiers, source.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update emission source: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany devuelve las fuentes de una empresa con paginación.
func (r *EmissionSourceRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.EmissionSource, error) {
	query := `
		SELECT ` + sourceColumns + ` FROM emission_sources
		WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.q.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list emission sources: %w", err)
	}
	defer rows.Close()

	var list []*entity.EmissionSource
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan emission source: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListByScope devuelve las fuentes de un alcance de una empresa.
func (r *EmissionSourceRepo) ListByScope(companyID string, scope int) ([]*entity.EmissionSource, error) {
	query := `
		SELECT ` + sourceColumns + ` FROM emission_sources
		WHERE company_id = $1 AND scope = $2 ORDER BY facility_name, source_type`
	rows, err := r.q.Query(context.Background(), query, companyID, scope)
	if err != nil {
		return nil, fmt.Errorf("list emission sources by scope: %w", err)
	}
	defer rows.Close()

	var list []*entity.EmissionSource
	for rows.Next() {
		s, err := scanSource(rows)
		if err != nil {
			return nil, fmt.Errorf("scan emission source: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// Delete elimina una fuente por ID. Sus registros de actividad caen en cascada.
func (r *EmissionSourceRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM emission_sources WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete emission source: %w", err)
	}
	return nil
}
