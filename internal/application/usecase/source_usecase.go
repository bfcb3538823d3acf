package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

// SourceUseCase CRUD de fuentes de emisión. El factor se resuelve contra el
// registro estático al crear/actualizar y la unidad de actividad debe ser
// convertible al denominador del factor: el mismatch se ataja aquí, no al
// calcular.
type SourceUseCase struct {
	repo repository.EmissionSourceRepository
}

// NewSourceUseCase construye el caso de uso.
func NewSourceUseCase(repo repository.EmissionSourceRepository) *SourceUseCase {
	return &SourceUseCase{repo: repo}
}

// Create valida factor, unidad y frecuencia, y persiste la fuente.
func (uc *SourceUseCase) Create(companyID string, in dto.CreateSourceRequest) (*dto.SourceResponse, error) {
	factor := ghg.ByID(in.EmissionFactorID)
	if factor == nil {
		return nil, fmt.Errorf("factor de emisión %q: %w", in.EmissionFactorID, domain.ErrNotFound)
	}
	// El alcance declarado debe coincidir con el del factor elegido.
	if in.Scope != 0 && in.Scope != factorScope(factor.ID) {
		return nil, fmt.Errorf("el factor %s no pertenece al alcance %d: %w", factor.ID, in.Scope, domain.ErrInvalidInput)
	}
	if !ghg.ValidFrequency(in.MeasurementFrequency) {
		return nil, fmt.Errorf("frecuencia %q: %w", in.MeasurementFrequency, domain.ErrInvalidInput)
	}
	if _, ok := ghg.NormalizeActivity(1, in.ActivityDataUnit, factor.Unit); !ok {
		return nil, fmt.Errorf("unidad %q no convertible al denominador de %q: %w",
			in.ActivityDataUnit, factor.Unit, domain.ErrNotConvertible)
	}
	now := time.Now()
	source := &entity.EmissionSource{
		ID:                   uuid.New().String(),
		CompanyID:            companyID,
		FacilityName:         in.FacilityName,
		SourceType:           in.SourceType,
		Scope:                scopeOf(factor.ID, in.Scope),
		Category:             factor.Category,
		EmissionFactorID:     factor.ID,
		EmissionFactor:       factor.Factor,
		ActivityDataUnit:     in.ActivityDataUnit,
		MeasurementFrequency: in.MeasurementFrequency,
		AssignedCollectors:   in.AssignedCollectors,
		AssignedVerifiers:    in.AssignedVerifiers,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(source); err != nil {
		return nil, err
	}
	return toSourceResponse(source), nil
}

// GetByID obtiene una fuente por ID.
func (uc *SourceUseCase) GetByID(id string) (*dto.SourceResponse, error) {
	source, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, nil
	}
	return toSourceResponse(source), nil
}

// Update actualiza una fuente. Cambiar el factor revalida unidad y categoría.
func (uc *SourceUseCase) Update(id string, in dto.UpdateSourceRequest) (*dto.SourceResponse, error) {
	source, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, nil
	}
	if in.FacilityName != nil {
		source.FacilityName = *in.FacilityName
	}
	if in.SourceType != nil {
		source.SourceType = *in.SourceType
	}
	if in.EmissionFactorID != nil {
		factor := ghg.ByID(*in.EmissionFactorID)
		if factor == nil {
			return nil, fmt.Errorf("factor de emisión %q: %w", *in.EmissionFactorID, domain.ErrNotFound)
		}
		source.EmissionFactorID = factor.ID
		source.EmissionFactor = factor.Factor
		source.Category = factor.Category
	}
	if in.ActivityDataUnit != nil {
		source.ActivityDataUnit = *in.ActivityDataUnit
	}
	if in.MeasurementFrequency != nil {
		if !ghg.ValidFrequency(*in.MeasurementFrequency) {
			return nil, fmt.Errorf("frecuencia %q: %w", *in.MeasurementFrequency, domain.ErrInvalidInput)
		}
		source.MeasurementFrequency = *in.MeasurementFrequency
	}
	if in.AssignedCollectors != nil {
		source.AssignedCollectors = *in.AssignedCollectors
	}
	if in.AssignedVerifiers != nil {
		source.AssignedVerifiers = *in.AssignedVerifiers
	}
	factor := ghg.ByID(source.EmissionFactorID)
	if factor != nil {
		if _, ok := ghg.NormalizeActivity(1, source.ActivityDataUnit, factor.Unit); !ok {
			return nil, fmt.Errorf("unidad %q no convertible al denominador de %q: %w",
				source.ActivityDataUnit, factor.Unit, domain.ErrNotConvertible)
		}
	}
	source.UpdatedAt = time.Now()
	if err := uc.repo.Update(source); err != nil {
		return nil, err
	}
	return toSourceResponse(source), nil
}

// List lista fuentes por empresa con paginación.
func (uc *SourceUseCase) List(companyID string, limit, offset int) (*dto.SourceListResponse, error) {
	list, err := uc.repo.ListByCompany(companyID, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.SourceResponse, 0, len(list))
	for _, s := range list {
		items = append(items, *toSourceResponse(s))
	}
	return &dto.SourceListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete elimina una fuente por ID.
func (uc *SourceUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// factorInScope verifica que el factor pertenezca al alcance dado.
func factorInScope(scope int, factorID string) bool {
	for _, f := range ghg.ByScope(scope) {
		if f.ID == factorID {
			return true
		}
	}
	return false
}

// factorScope alcance al que pertenece un factor (0 si no aparece).
func factorScope(factorID string) int {
	for scope := 1; scope <= 4; scope++ {
		if factorInScope(scope, factorID) {
			return scope
		}
	}
	return 0
}

// scopeOf usa el alcance declarado si vino, o el del factor si no.
func scopeOf(factorID string, declared int) int {
	if declared != 0 {
		return declared
	}
	return factorScope(factorID)
}

func toSourceResponse(s *entity.EmissionSource) *dto.SourceResponse {
	if s == nil {
		return nil
	}
	year := time.Now().Year()
	return &dto.SourceResponse{
		ID:                   s.ID,
		CompanyID:            s.CompanyID,
		FacilityName:         s.FacilityName,
		SourceType:           s.SourceType,
		Scope:                s.Scope,
		Category:             s.Category,
		EmissionFactorID:     s.EmissionFactorID,
		EmissionFactor:       s.EmissionFactor,
		ActivityDataUnit:     s.ActivityDataUnit,
		MeasurementFrequency: s.MeasurementFrequency,
		AssignedCollectors:   s.AssignedCollectors,
		AssignedVerifiers:    s.AssignedVerifiers,
		ExpectedPeriods:      ghg.ExpectedPeriodCount(s.MeasurementFrequency, year),
		CreatedAt:            s.CreatedAt,
		UpdatedAt:            s.UpdatedAt,
	}
}
