package collection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

// draftTTL vigencia de un borrador: lo suficiente para terminar la captura
// del mes sin acumular basura indefinida.
const draftTTL = 45 * 24 * time.Hour

// DraftUseCase borradores de captura detrás del puerto clave-valor. La clave
// compuesta replica el esquema histórico del front:
// scope<N>_data_collections_<templateId>_<month>_<year>.
type DraftUseCase struct {
	drafts     repository.DraftRepository
	sourceRepo repository.EmissionSourceRepository
}

// NewDraftUseCase construye el caso de uso.
func NewDraftUseCase(drafts repository.DraftRepository, sourceRepo repository.EmissionSourceRepository) *DraftUseCase {
	return &DraftUseCase{drafts: drafts, sourceRepo: sourceRepo}
}

func (uc *DraftUseCase) key(scope int, sourceID, month, year string) string {
	return fmt.Sprintf("scope%d_data_collections_%s_%s_%s", scope, sourceID, month, year)
}

// Save guarda (o reemplaza) el borrador de una fuente para un mes.
func (uc *DraftUseCase) Save(ctx context.Context, companyID string, in dto.DraftRequest) error {
	source, err := uc.sourceRepo.GetByID(in.SourceID)
	if err != nil {
		return err
	}
	if source == nil || source.CompanyID != companyID {
		return domain.ErrNotFound
	}
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return uc.drafts.Put(ctx, uc.key(source.Scope, in.SourceID, in.Month, in.ReportingPeriod), payload, draftTTL)
}

// Load recupera un borrador. nil si no existe (caso esperado).
func (uc *DraftUseCase) Load(ctx context.Context, companyID, sourceID, month, year string) (*dto.DraftRequest, error) {
	source, err := uc.sourceRepo.GetByID(sourceID)
	if err != nil {
		return nil, err
	}
	if source == nil || source.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	raw, err := uc.drafts.Get(ctx, uc.key(source.Scope, sourceID, month, year))
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var out dto.DraftRequest
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, fmt.Errorf("borrador corrupto: %w", domain.ErrConflict)
	}
	return &out, nil
}

// Discard borra el borrador (tras enviar el lote definitivo).
func (uc *DraftUseCase) Discard(ctx context.Context, companyID, sourceID, month, year string) error {
	source, err := uc.sourceRepo.GetByID(sourceID)
	if err != nil {
		return err
	}
	if source == nil || source.CompanyID != companyID {
		return domain.ErrNotFound
	}
	return uc.drafts.Delete(ctx, uc.key(source.Scope, sourceID, month, year))
}
