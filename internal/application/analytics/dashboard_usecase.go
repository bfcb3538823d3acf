package analytics

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

// DashboardCache cachea el resumen serializado por tenant y período. Una
// captura o verificación nueva invalida todas las llaves del tenant.
type DashboardCache interface {
	GetDashboard(ctx context.Context, companyID, reportingPeriod string) ([]byte, bool, error)
	SetDashboard(ctx context.Context, companyID, reportingPeriod string, payload []byte) error
}

// DashboardUseCase orquesta las consultas del dashboard de emisiones:
//   - Totales por alcance, instalación y mes (solo registros que cuentan).
//   - Completitud de captura por fuente.
//   - Cache por tenant con invalidación en cada escritura.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
	cache         DashboardCache
}

// NewDashboardUseCase construye el caso de uso. cache puede ser nil (sin cache).
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository, cache DashboardCache) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo, cache: cache}
}

// Summary genera el resumen del dashboard para un tenant y año de reporte.
func (uc *DashboardUseCase) Summary(ctx context.Context, companyID, reportingPeriod string) (*dto.DashboardSummaryDTO, error) {
	if uc.cache != nil {
		if payload, ok, err := uc.cache.GetDashboard(ctx, companyID, reportingPeriod); err == nil && ok {
			var cached dto.DashboardSummaryDTO
			if err := json.Unmarshal(payload, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	// Consultas independientes en paralelo
	type scopeResult struct {
		rows []repository.ScopeTotal
		err  error
	}
	type facilityResult struct {
		rows []repository.FacilityTotal
		err  error
	}
	type monthlyResult struct {
		rows []repository.MonthlyTotal
		err  error
	}
	type completionResult struct {
		rows []repository.SourceCompletion
		err  error
	}

	scopeChan := make(chan scopeResult, 1)
	facilityChan := make(chan facilityResult, 1)
	monthlyChan := make(chan monthlyResult, 1)
	completionChan := make(chan completionResult, 1)

	go func() {
		rows, err := uc.analyticsRepo.TotalsByScope(ctx, companyID, reportingPeriod)
		scopeChan <- scopeResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.TotalsByFacility(ctx, companyID, reportingPeriod)
		facilityChan <- facilityResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.MonthlySeries(ctx, companyID, reportingPeriod)
		monthlyChan <- monthlyResult{rows, err}
	}()
	go func() {
		rows, err := uc.analyticsRepo.CompletionBySource(ctx, companyID, reportingPeriod)
		completionChan <- completionResult{rows, err}
	}()

	scopeRes := <-scopeChan
	facilityRes := <-facilityChan
	monthlyRes := <-monthlyChan
	completionRes := <-completionChan

	if scopeRes.err != nil {
		return nil, fmt.Errorf("dashboard: alcances: %w", scopeRes.err)
	}
	if facilityRes.err != nil {
		return nil, fmt.Errorf("dashboard: instalaciones: %w", facilityRes.err)
	}
	if monthlyRes.err != nil {
		return nil, fmt.Errorf("dashboard: serie mensual: %w", monthlyRes.err)
	}
	if completionRes.err != nil {
		return nil, fmt.Errorf("dashboard: completitud: %w", completionRes.err)
	}

	summary := buildSummary(reportingPeriod, scopeRes.rows, facilityRes.rows, monthlyRes.rows, completionRes.rows)

	if uc.cache != nil {
		if payload, err := json.Marshal(summary); err == nil {
			_ = uc.cache.SetDashboard(ctx, companyID, reportingPeriod, payload)
		}
	}
	return summary, nil
}

func buildSummary(
	reportingPeriod string,
	scopes []repository.ScopeTotal,
	facilities []repository.FacilityTotal,
	monthly []repository.MonthlyTotal,
	completion []repository.SourceCompletion,
) *dto.DashboardSummaryDTO {
	byScope := make([]dto.ScopeTotalDTO, 0, len(scopes))
	var totalKg float64
	for _, s := range scopes {
		// El alcance 4 (emisiones evitadas/removidas) se reporta aparte: ni se
		// netea ni engrosa el total bruto.
		if s.Scope != 4 {
			totalKg += s.TotalKg
		}
		byScope = append(byScope, dto.ScopeTotalDTO{
			Scope:   s.Scope,
			TotalKg: s.TotalKg,
			TotalT:  ghg.KgToTonnes(s.TotalKg),
			Entries: s.Entries,
		})
	}

	byFacility := make([]dto.FacilityTotalDTO, 0, len(facilities))
	for _, f := range facilities {
		byFacility = append(byFacility, dto.FacilityTotalDTO{
			FacilityName: f.FacilityName,
			TotalKg:      f.TotalKg,
			TotalT:       ghg.KgToTonnes(f.TotalKg),
		})
	}

	series := make([]dto.MonthlyTotalDTO, 0, len(monthly))
	for _, m := range monthly {
		series = append(series, dto.MonthlyTotalDTO{PeriodName: m.PeriodName, TotalKg: m.TotalKg})
	}

	year, _ := strconv.Atoi(reportingPeriod)
	schedules := make([]dto.ScheduleResponse, 0, len(completion))
	for _, c := range completion {
		expected := ghg.ExpectedPeriodCount(c.MeasurementFrequency, year)
		percent := 0.0
		if expected > 0 {
			percent = float64(c.Submitted+c.Verified+c.Approved) / float64(expected) * 100
		}
		if percent > 100 {
			percent = 100
		}
		schedules = append(schedules, dto.ScheduleResponse{
			SourceID:          c.SourceID,
			FacilityName:      c.FacilityName,
			ExpectedPeriods:   expected,
			CompletionPercent: percent,
			Submitted:         c.Submitted,
			Verified:          c.Verified,
			Approved:          c.Approved,
			Rejected:          c.Rejected,
			Pending:           c.Pending,
		})
	}

	return &dto.DashboardSummaryDTO{
		ReportingPeriod: reportingPeriod,
		TotalKg:         totalKg,
		TotalT:          ghg.KgToTonnes(totalKg),
		ByScope:         byScope,
		ByFacility:      byFacility,
		MonthlySeries:   series,
		Schedules:       schedules,
	}
}
