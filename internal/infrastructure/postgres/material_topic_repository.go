package postgres

import (
	"context"
	"fmt"

	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

var _ repository.MaterialTopicRepository = (*MaterialTopicRepo)(nil)

// MaterialTopicRepo implementación del puerto MaterialTopicRepository sobre PostgreSQL.
type MaterialTopicRepo struct {
	q Querier
}

// NewMaterialTopicRepository construye el adaptador de temas materiales.
func NewMaterialTopicRepository(q Querier) *MaterialTopicRepo {
	return &MaterialTopicRepo{q: q}
}

const topicColumns = `id, company_id, name, category, business_impact,
	sustainability_impact, framework, created_at, updated_at`

// Create persiste un nuevo tema.
func (r *MaterialTopicRepo) Create(topic *entity.MaterialTopic) error {
	query := `
		INSERT INTO material_topics (` + topicColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		topic.ID, topic.CompanyID, topic.Name, topic.Category,
		topic.BusinessImpact, topic.SustainabilityImpact, topic.Framework,
		topic.CreatedAt, topic.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert material topic: %w", err)
	}
	return nil
}

func scanTopic(row interface{ Scan(...any) error }) (*entity.MaterialTopic, error) {
	var t entity.MaterialTopic
	err := row.Scan(
		&t.ID, &t.CompanyID, &t.Name, &t.Category,
		&t.BusinessImpact, &t.SustainabilityImpact, &t.Framework,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetByID obtiene un tema por ID.
func (r *MaterialTopicRepo) GetByID(id string) (*entity.MaterialTopic, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+topicColumns+` FROM material_topics WHERE id = $1`, id)
	t, err := scanTopic(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get material topic: %w", err)
	}
	return t, nil
}

// Update actualiza un tema existente.
func (r *MaterialTopicRepo) Update(topic *entity.MaterialTopic) error {
	query := `
		UPDATE material_topics
		SET name = $2, category = $3, business_impact = $4,
		    sustainability_impact = $5, framework = $6, updated_at = $7
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query,
		topic.ID, topic.Name, topic.Category,
		topic.BusinessImpact, topic.SustainabilityImpact, topic.Framework,
		topic.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update material topic: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByCompany devuelve todos los temas de la empresa (la matriz se arma completa).
func (r *MaterialTopicRepo) ListByCompany(companyID string) ([]*entity.MaterialTopic, error) {
	query := `
		SELECT ` + topicColumns + ` FROM material_topics
		WHERE company_id = $1 ORDER BY business_impact DESC, name`
	rows, err := r.q.Query(context.Background(), query, companyID)
	if err != nil {
		return nil, fmt.Errorf("list material topics: %w", err)
	}
	defer rows.Close()

	var list []*entity.MaterialTopic
	for rows.Next() {
		t, err := scanTopic(rows)
		if err != nil {
			return nil, fmt.Errorf("scan material topic: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// Delete elimina un tema por ID.
func (r *MaterialTopicRepo) Delete(id string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM material_topics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete material topic: %w", err)
	}
	return nil
}
