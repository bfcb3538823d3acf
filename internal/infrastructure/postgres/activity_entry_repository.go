package postgres

import (
	"context"
	"fmt"

	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

var _ repository.ActivityEntryRepository = (*ActivityEntryRepo)(nil)

// ActivityEntryRepo implementación del puerto ActivityEntryRepository sobre
// PostgreSQL. El índice único sobre (source_id, reporting_period, period_name)
// materializa la clave natural; Upsert resuelve el conflicto con DO UPDATE,
// por lo que dos envíos concurrentes al mismo período terminan en una sola
// fila y gana el último commit.
type ActivityEntryRepo struct {
	q Querier
}

// NewActivityEntryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewActivityEntryRepository(q Querier) *ActivityEntryRepo {
	return &ActivityEntryRepo{q: q}
}

const entryColumns = `id, company_id, source_id, reporting_period, period_name,
	activity_value, activity_unit, notes, evidence_urls, data_quality, status,
	calculated_emissions, verifier_comment, submitted_by, verified_by,
	submitted_at, verified_at, created_at, updated_at`

// Upsert escribe sobre la clave natural y devuelve la fila resultante. En el
// conflicto se conservan id y created_at originales; el resto se sobreescribe
// y el estado vuelve a Submitted (reenvío tras rechazo incluido).
func (r *ActivityEntryRepo) Upsert(entry *entity.ActivityEntry) (*entity.ActivityEntry, error) {
	query := `
		INSERT INTO activity_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
		ON CONFLICT (source_id, reporting_period, period_name) DO UPDATE SET
			activity_value       = EXCLUDED.activity_value,
			activity_unit        = EXCLUDED.activity_unit,
			notes                = EXCLUDED.notes,
			evidence_urls        = EXCLUDED.evidence_urls,
			data_quality         = EXCLUDED.data_quality,
			status               = EXCLUDED.status,
			calculated_emissions = EXCLUDED.calculated_emissions,
			verifier_comment     = '',
			submitted_by         = EXCLUDED.submitted_by,
			verified_by          = NULL,
			submitted_at         = EXCLUDED.submitted_at,
			verified_at          = NULL,
			updated_at           = EXCLUDED.updated_at
		RETURNING ` + entryColumns
	row := r.q.QueryRow(context.Background(), query,
		entry.ID, entry.CompanyID, entry.SourceID, entry.ReportingPeriod, entry.PeriodName,
		entry.ActivityValue, entry.ActivityUnit, entry.Notes, entry.EvidenceURLs,
		entry.DataQuality, string(entry.Status), entry.CalculatedEmissions,
		entry.VerifierComment, entry.SubmittedBy, nullable(entry.VerifiedBy),
		entry.SubmittedAt, entry.VerifiedAt, entry.CreatedAt, entry.UpdatedAt,
	)
	stored, err := scanEntry(row)
	if err != nil {
		return nil, fmt.Errorf("upsert activity entry: %w", err)
	}
	return stored, nil
}

// GetByID obtiene un registro por ID.
func (r *ActivityEntryRepo) GetByID(id string) (*entity.ActivityEntry, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+entryColumns+` FROM activity_entries WHERE id = $1`, id)
	e, err := scanEntry(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity entry: %w", err)
	}
	return e, nil
}

// GetByNaturalKey obtiene el registro de un período concreto de una fuente.
func (r *ActivityEntryRepo) GetByNaturalKey(sourceID, reportingPeriod, periodName string) (*entity.ActivityEntry, error) {
	row := r.q.QueryRow(context.Background(),
		`SELECT `+entryColumns+` FROM activity_entries
		 WHERE source_id = $1 AND reporting_period = $2 AND period_name = $3`,
		sourceID, reportingPeriod, periodName)
	e, err := scanEntry(row)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get activity entry by key: %w", err)
	}
	return e, nil
}

// UpdateStatus aplica la decisión de un verificador sobre el registro.
func (r *ActivityEntryRepo) UpdateStatus(id string, status ghg.Status, verifierID, comment string) error {
	query := `
		UPDATE activity_entries
		SET status = $2, verified_by = $3, verifier_comment = $4,
		    verified_at = now(), updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, string(status), verifierID, comment)
	if err != nil {
		return fmt.Errorf("update entry status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListBySource registros de una fuente para un año de reporte, en orden de captura.
func (r *ActivityEntryRepo) ListBySource(sourceID, reportingPeriod string) ([]*entity.ActivityEntry, error) {
	query := `
		SELECT ` + entryColumns + ` FROM activity_entries
		WHERE source_id = $1 AND reporting_period = $2
		ORDER BY created_at`
	return r.list(query, sourceID, reportingPeriod)
}

// ListByCompany registros de toda la empresa para un año de reporte.
func (r *ActivityEntryRepo) ListByCompany(companyID, reportingPeriod string) ([]*entity.ActivityEntry, error) {
	query := `
		SELECT ` + entryColumns + ` FROM activity_entries
		WHERE company_id = $1 AND reporting_period = $2
		ORDER BY source_id, created_at`
	return r.list(query, companyID, reportingPeriod)
}

// AppendEvidenceURLs agrega claves de evidencia al registro sin duplicar.
func (r *ActivityEntryRepo) AppendEvidenceURLs(id string, urls []string) error {
	query := `
		UPDATE activity_entries
		SET evidence_urls = (
			SELECT array_agg(DISTINCT u) FROM unnest(evidence_urls || $2::text[]) AS u
		), updated_at = now()
		WHERE id = $1`
	cmd, err := r.q.Exec(context.Background(), query, id, urls)
	if err != nil {
		return fmt.Errorf("append evidence urls: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *ActivityEntryRepo) list(query string, args ...any) ([]*entity.ActivityEntry, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list activity entries: %w", err)
	}
	defer rows.Close()

	var list []*entity.ActivityEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity entry: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

func scanEntry(row interface{ Scan(...any) error }) (*entity.ActivityEntry, error) {
	var (
		e          entity.ActivityEntry
		status     string
		verifiedBy *string
	)
	err := row.Scan(
		&e.ID, &e.CompanyID, &e.SourceID, &e.ReportingPeriod, &e.PeriodName,
		&e.ActivityValue, &e.ActivityUnit, &e.Notes, &e.EvidenceURLs,
		&e.DataQuality, &status, &e.CalculatedEmissions,
		&e.VerifierComment, &e.SubmittedBy, &verifiedBy,
		&e.SubmittedAt, &e.VerifiedAt, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	e.Status = ghg.Status(status)
	if verifiedBy != nil {
		e.VerifiedBy = *verifiedBy
	}
	return &e, nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
