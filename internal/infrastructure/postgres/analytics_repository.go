package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// countingStatuses estados que agregan a totales y completitud. Pending y
// Rejected no suman: un dato rechazado no existe para el reporte hasta que se
// reenvía y vuelve a pasar por el verificador.
const countingStatuses = `('Submitted', 'Verified', 'Approved')`

// AnalyticsRepo consultas de solo lectura para el dashboard de emisiones.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// TotalsByScope agrupa las emisiones calculadas (kgCO2e) por alcance.
func (r *AnalyticsRepo) TotalsByScope(ctx context.Context, companyID, reportingPeriod string) ([]repository.ScopeTotal, error) {
	const query = `
	SELECT s.scope,
	       SUM(e.calculated_emissions) AS total_kg,
	       COUNT(*)                    AS entries
	FROM activity_entries e
	JOIN emission_sources s ON s.id = e.source_id
	WHERE e.company_id = $1
	  AND e.reporting_period = $2
	  AND e.status IN ` + countingStatuses + `
	GROUP BY s.scope
	ORDER BY s.scope`

	rows, err := r.pool.Query(ctx, query, companyID, reportingPeriod)
	if err != nil {
		return nil, fmt.Errorf("analytics.TotalsByScope: %w", err)
	}
	defer rows.Close()

	var results []repository.ScopeTotal
	for rows.Next() {
		var row repository.ScopeTotal
		if err := rows.Scan(&row.Scope, &row.TotalKg, &row.Entries); err != nil {
			return nil, fmt.Errorf("analytics.TotalsByScope scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TotalsByFacility agrupa las emisiones calculadas por instalación.
func (r *AnalyticsRepo) TotalsByFacility(ctx context.Context, companyID, reportingPeriod string) ([]repository.FacilityTotal, error) {
	const query = `
	SELECT s.facility_name,
	       SUM(e.calculated_emissions) AS total_kg
	FROM activity_entries e
	JOIN emission_sources s ON s.id = e.source_id
	WHERE e.company_id = $1
	  AND e.reporting_period = $2
	  AND e.status IN ` + countingStatuses + `
	GROUP BY s.facility_name
	ORDER BY total_kg DESC`

	rows, err := r.pool.Query(ctx, query, companyID, reportingPeriod)
	if err != nil {
		return nil, fmt.Errorf("analytics.TotalsByFacility: %w", err)
	}
	defer rows.Close()

	var results []repository.FacilityTotal
	for rows.Next() {
		var row repository.FacilityTotal
		if err := rows.Scan(&row.FacilityName, &row.TotalKg); err != nil {
			return nil, fmt.Errorf("analytics.TotalsByFacility scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// MonthlySeries emisiones por etiqueta de período, ordenadas por fecha de
// envío. Los períodos sin registro no aparecen: aportan cero, no NULL.
func (r *AnalyticsRepo) MonthlySeries(ctx context.Context, companyID, reportingPeriod string) ([]repository.MonthlyTotal, error) {
	const query = `
	SELECT e.period_name,
	       SUM(e.calculated_emissions) AS total_kg
	FROM activity_entries e
	WHERE e.company_id = $1
	  AND e.reporting_period = $2
	  AND e.status IN ` + countingStatuses + `
	GROUP BY e.period_name
	ORDER BY MIN(e.submitted_at)`

	rows, err := r.pool.Query(ctx, query, companyID, reportingPeriod)
	if err != nil {
		return nil, fmt.Errorf("analytics.MonthlySeries: %w", err)
	}
	defer rows.Close()

	var results []repository.MonthlyTotal
	for rows.Next() {
		var row repository.MonthlyTotal
		if err := rows.Scan(&row.PeriodName, &row.TotalKg); err != nil {
			return nil, fmt.Errorf("analytics.MonthlySeries scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// CompletionBySource conteo de estados por fuente; las fuentes sin ningún
// registro salen con todos los conteos en cero (LEFT JOIN).
func (r *AnalyticsRepo) CompletionBySource(ctx context.Context, companyID, reportingPeriod string) ([]repository.SourceCompletion, error) {
	const query = `
	SELECT s.id,
	       s.facility_name,
	       s.measurement_frequency,
	       COUNT(*) FILTER (WHERE e.status = 'Submitted') AS submitted,
	       COUNT(*) FILTER (WHERE e.status = 'Verified')  AS verified,
	       COUNT(*) FILTER (WHERE e.status = 'Approved')  AS approved,
	       COUNT(*) FILTER (WHERE e.status = 'Rejected')  AS rejected,
	       COUNT(*) FILTER (WHERE e.status = 'Pending')   AS pending
	FROM emission_sources s
	LEFT JOIN activity_entries e
	       ON e.source_id = s.id AND e.reporting_period = $2
	WHERE s.company_id = $1
	GROUP BY s.id, s.facility_name, s.measurement_frequency
	ORDER BY s.facility_name`

	rows, err := r.pool.Query(ctx, query, companyID, reportingPeriod)
	if err != nil {
		return nil, fmt.Errorf("analytics.CompletionBySource: %w", err)
	}
	defer rows.Close()

	var results []repository.SourceCompletion
	for rows.Next() {
		var row repository.SourceCompletion
		if err := rows.Scan(&row.SourceID, &row.FacilityName, &row.MeasurementFrequency,
			&row.Submitted, &row.Verified, &row.Approved, &row.Rejected, &row.Pending); err != nil {
			return nil, fmt.Errorf("analytics.CompletionBySource scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// YearlyTotal total de emisiones (kgCO2e) de la empresa en un año de reporte.
func (r *AnalyticsRepo) YearlyTotal(ctx context.Context, companyID, reportingPeriod string) (float64, error) {
	const query = `
	SELECT COALESCE(SUM(calculated_emissions), 0)
	FROM activity_entries
	WHERE company_id = $1
	  AND reporting_period = $2
	  AND status IN ` + countingStatuses

	var total float64
	if err := r.pool.QueryRow(ctx, query, companyID, reportingPeriod).Scan(&total); err != nil {
		return 0, fmt.Errorf("analytics.YearlyTotal: %w", err)
	}
	return total, nil
}
