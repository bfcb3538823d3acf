package postgres

import (
	"context"
	"fmt"

	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

var _ repository.EvidenceRepository = (*EvidenceRepo)(nil)

// EvidenceRepo implementación del puerto EvidenceRepository sobre PostgreSQL.
type EvidenceRepo struct {
	q Querier
}

// NewEvidenceRepository construye el adaptador de archivos de evidencia.
func NewEvidenceRepository(q Querier) *EvidenceRepo {
	return &EvidenceRepo{q: q}
}

const evidenceColumns = `id, company_id, entry_id, name, content_type,
	size_bytes, status, storage_key, created_at, updated_at`

// CreateBatch inserta todos los archivos del lote.
func (r *EvidenceRepo) CreateBatch(files []*entity.EvidenceFile) error {
	query := `
		INSERT INTO evidence_files (` + evidenceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	for _, f := range files {
		_, err := r.q.Exec(context.Background(), query,
			f.ID, f.CompanyID, f.EntryID, f.Name, f.ContentType,
			f.SizeBytes, f.Status, f.StorageKey, f.CreatedAt, f.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("insert evidence file %s: %w", f.Name, err)
		}
	}
	return nil
}

// GetByID obtiene un archivo por ID.
func (r *EvidenceRepo) GetByID(id string) (*entity.EvidenceFile, error) {
	var f entity.EvidenceFile
	err := r.q.QueryRow(context.Background(),
		`SELECT `+evidenceColumns+` FROM evidence_files WHERE id = $1`, id).Scan(
		&f.ID, &f.CompanyID, &f.EntryID, &f.Name, &f.ContentType,
		&f.SizeBytes, &f.Status, &f.StorageKey, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get evidence file: %w", err)
	}
	return &f, nil
}

// UpdateStatus actualiza el estado de subida de un archivo.
func (r *EvidenceRepo) UpdateStatus(id, status string) error {
	cmd, err := r.q.Exec(context.Background(),
		`UPDATE evidence_files SET status = $2, updated_at = now() WHERE id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("update evidence status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListByEntry devuelve los archivos de un registro de actividad.
func (r *EvidenceRepo) ListByEntry(entryID string) ([]*entity.EvidenceFile, error) {
	rows, err := r.q.Query(context.Background(),
		`SELECT `+evidenceColumns+` FROM evidence_files WHERE entry_id = $1 ORDER BY created_at`, entryID)
	if err != nil {
		return nil, fmt.Errorf("list evidence files: %w", err)
	}
	defer rows.Close()

	var list []*entity.EvidenceFile
	for rows.Next() {
		var f entity.EvidenceFile
		if err := rows.Scan(&f.ID, &f.CompanyID, &f.EntryID, &f.Name, &f.ContentType,
			&f.SizeBytes, &f.Status, &f.StorageKey, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan evidence file: %w", err)
		}
		list = append(list, &f)
	}
	return list, rows.Err()
}
