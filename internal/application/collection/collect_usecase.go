package collection

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

// CollectUseCase captura de datos de actividad por lote: valida cada período
// contra el set esperado de la fuente, normaliza unidades contra el
// denominador del factor, calcula emisiones y hace upsert sobre la clave
// natural dentro de una transacción. Tras el commit invalida el dashboard.
type CollectUseCase struct {
	tx         TxRunner
	sourceRepo repository.EmissionSourceRepository
	entryRepo  repository.ActivityEntryRepository
	cache      CacheInvalidator
}

// NewCollectUseCase construye el caso de uso.
func NewCollectUseCase(
	tx TxRunner,
	sourceRepo repository.EmissionSourceRepository,
	entryRepo repository.ActivityEntryRepository,
	cache CacheInvalidator,
) *CollectUseCase {
	return &CollectUseCase{tx: tx, sourceRepo: sourceRepo, entryRepo: entryRepo, cache: cache}
}

func validQuality(q string) bool {
	switch q {
	case entity.QualityLow, entity.QualityMedium, entity.QualityHigh:
		return true
	}
	return false
}

// Collect procesa un lote de captura para una fuente y año de reporte.
// userID debe ser colector asignado de la fuente (o admin de la empresa).
func (uc *CollectUseCase) Collect(ctx context.Context, companyID, userID, role string, in dto.CollectRequest) (*dto.CollectResponse, error) {
	if len(in.Entries) == 0 {
		return nil, fmt.Errorf("lote vacío: %w", domain.ErrInvalidInput)
	}
	source, err := uc.sourceRepo.GetByID(in.SourceID)
	if err != nil {
		return nil, err
	}
	if source == nil || source.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	if !source.IsCollector(userID) && role != entity.RoleAdmin && role != entity.RoleUnitAdmin {
		return nil, fmt.Errorf("usuario no asignado como colector: %w", domain.ErrForbidden)
	}
	year, err := strconv.Atoi(in.ReportingPeriod)
	if err != nil {
		return nil, fmt.Errorf("período de reporte %q: %w", in.ReportingPeriod, domain.ErrInvalidInput)
	}
	expected, err := ghg.ExpectedPeriods(source.MeasurementFrequency, year)
	if err != nil {
		return nil, err
	}
	expectedSet := make(map[string]bool, len(expected))
	for _, p := range expected {
		expectedSet[p] = true
	}

	factor := ghg.ByID(source.EmissionFactorID)
	if factor == nil {
		return nil, fmt.Errorf("factor %q de la fuente: %w", source.EmissionFactorID, domain.ErrNotFound)
	}

	// Validar y calcular todo el lote antes de tocar la base: un solo período
	// inválido rechaza el lote completo.
	now := time.Now()
	prepared := make([]*entity.ActivityEntry, 0, len(in.Entries))
	for _, row := range in.Entries {
		if !expectedSet[row.PeriodName] {
			return nil, fmt.Errorf("período %q no pertenece al calendario %s: %w",
				row.PeriodName, source.MeasurementFrequency, domain.ErrInvalidInput)
		}
		quality := row.DataQuality
		if quality == "" {
			quality = entity.QualityMedium
		}
		if !validQuality(quality) {
			return nil, fmt.Errorf("calidad de dato %q: %w", row.DataQuality, domain.ErrInvalidInput)
		}
		unit := row.ActivityUnit
		if unit == "" {
			unit = source.ActivityDataUnit
		}

		current := ghg.StatusPending
		existing, err := uc.entryRepo.GetByNaturalKey(in.SourceID, in.ReportingPeriod, row.PeriodName)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			current = existing.Status
		}
		if err := ghg.ValidateSubmit(current, row.ActivityValue); err != nil {
			return nil, fmt.Errorf("período %q: %w", row.PeriodName, err)
		}

		normalized, ok := ghg.NormalizeActivity(row.ActivityValue, unit, factor.Unit)
		if !ok {
			return nil, fmt.Errorf("período %q: unidad %q no convertible al denominador de %q: %w",
				row.PeriodName, unit, factor.Unit, domain.ErrNotConvertible)
		}
		emissions := ghg.Calculate(normalized, source.EmissionFactor, nil)

		submittedAt := now
		prepared = append(prepared, &entity.ActivityEntry{
			ID:                  uuid.New().String(),
			CompanyID:           companyID,
			SourceID:            in.SourceID,
			ReportingPeriod:     in.ReportingPeriod,
			PeriodName:          row.PeriodName,
			ActivityValue:       row.ActivityValue,
			ActivityUnit:        unit,
			Notes:               row.Notes,
			EvidenceURLs:        row.EvidenceURLs,
			DataQuality:         quality,
			Status:              ghg.StatusSubmitted,
			CalculatedEmissions: emissions.Total,
			SubmittedBy:         userID,
			SubmittedAt:         &submittedAt,
			CreatedAt:           now,
			UpdatedAt:           now,
		})
	}

	// Upsert transaccional sobre la clave natural: la escritura concurrente al
	// mismo período resuelve por last-write-wins y devolvemos la fila ganadora.
	stored := make([]*entity.ActivityEntry, 0, len(prepared))
	err = uc.tx.Run(ctx, func(entryRepo repository.ActivityEntryRepository) error {
		for _, e := range prepared {
			row, err := entryRepo.Upsert(e)
			if err != nil {
				return err
			}
			stored = append(stored, row)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		uc.cache.InvalidateDashboard(ctx, companyID)
	}

	out := &dto.CollectResponse{Entries: make([]dto.EntryResponse, 0, len(stored))}
	for _, e := range stored {
		out.Entries = append(out.Entries, toEntryResponse(e))
		out.BatchTotalKg += e.CalculatedEmissions
	}
	return out, nil
}

// ListBySource registros de una fuente para un año de reporte.
func (uc *CollectUseCase) ListBySource(sourceID, reportingPeriod string) ([]dto.EntryResponse, error) {
	list, err := uc.entryRepo.ListBySource(sourceID, reportingPeriod)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EntryResponse, 0, len(list))
	for _, e := range list {
		out = append(out, toEntryResponse(e))
	}
	return out, nil
}

// Schedule arma la barra de completitud de una fuente: períodos con estado
// Submitted/Verified/Approved sobre el total esperado de la frecuencia.
func (uc *CollectUseCase) Schedule(sourceID, reportingPeriod string) (*dto.ScheduleResponse, error) {
	source, err := uc.sourceRepo.GetByID(sourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, nil
	}
	year, err := strconv.Atoi(reportingPeriod)
	if err != nil {
		return nil, fmt.Errorf("período de reporte %q: %w", reportingPeriod, domain.ErrInvalidInput)
	}
	entries, err := uc.entryRepo.ListBySource(sourceID, reportingPeriod)
	if err != nil {
		return nil, err
	}
	expected := ghg.ExpectedPeriodCount(source.MeasurementFrequency, year)
	statuses := make([]ghg.Status, 0, len(entries))
	out := &dto.ScheduleResponse{
		SourceID:        source.ID,
		FacilityName:    source.FacilityName,
		ExpectedPeriods: expected,
	}
	for _, e := range entries {
		statuses = append(statuses, e.Status)
		switch e.Status {
		case ghg.StatusSubmitted:
			out.Submitted++
		case ghg.StatusVerified:
			out.Verified++
		case ghg.StatusApproved:
			out.Approved++
		case ghg.StatusRejected:
			out.Rejected++
		case ghg.StatusPending:
			out.Pending++
		}
	}
	// Los períodos sin registro también son Pending.
	if missing := expected - len(entries); missing > 0 {
		out.Pending += missing
	}
	out.CompletionPercent = ghg.Completion(statuses, expected)
	return out, nil
}

func toEntryResponse(e *entity.ActivityEntry) dto.EntryResponse {
	return dto.EntryResponse{
		ID:                  e.ID,
		SourceID:            e.SourceID,
		ReportingPeriod:     e.ReportingPeriod,
		PeriodName:          e.PeriodName,
		ActivityValue:       e.ActivityValue,
		ActivityUnit:        e.ActivityUnit,
		Notes:               e.Notes,
		EvidenceURLs:        e.EvidenceURLs,
		DataQuality:         e.DataQuality,
		Status:              string(e.Status),
		CalculatedEmissions: e.CalculatedEmissions,
		VerifierComment:     e.VerifierComment,
		SubmittedAt:         e.SubmittedAt,
		VerifiedAt:          e.VerifiedAt,
	}
}
