package collection

import (
	"context"
	"fmt"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

// VerifyUseCase decisión del verificador sobre un registro enviado. El chequeo
// de pertenencia al set de verificadores ocurre antes de cualquier mutación;
// el rol del token no sustituye la asignación salvo para administradores.
type VerifyUseCase struct {
	sourceRepo repository.EmissionSourceRepository
	entryRepo  repository.ActivityEntryRepository
	cache      CacheInvalidator
}

// NewVerifyUseCase construye el caso de uso.
func NewVerifyUseCase(
	sourceRepo repository.EmissionSourceRepository,
	entryRepo repository.ActivityEntryRepository,
	cache CacheInvalidator,
) *VerifyUseCase {
	return &VerifyUseCase{sourceRepo: sourceRepo, entryRepo: entryRepo, cache: cache}
}

// Verify aplica la decisión (Verified, Approved o Rejected) sobre un registro
// Submitted. Approved solo lo emite un administrador; los verificadores
// asignados deciden Verified o Rejected. Al quedar Verified/Approved las
// emisiones calculadas se consideran congeladas para reporte: nadie las
// recalcula sin reapertura.
func (uc *VerifyUseCase) Verify(ctx context.Context, companyID, userID, role string, in dto.VerifyRequest) (*dto.EntryResponse, error) {
	entry, err := uc.entryRepo.GetByID(in.EntryID)
	if err != nil {
		return nil, err
	}
	if entry == nil || entry.CompanyID != companyID {
		return nil, domain.ErrNotFound
	}
	source, err := uc.sourceRepo.GetByID(entry.SourceID)
	if err != nil {
		return nil, err
	}
	if source == nil {
		return nil, domain.ErrNotFound
	}

	// Permiso antes que estado: un no-verificador no obtiene ni siquiera el
	// detalle de por qué la transición fallaría.
	if !source.IsVerifier(userID) && role != entity.RoleAdmin {
		return nil, fmt.Errorf("verificar %s: %w", entry.ID, domain.ErrNotVerifier)
	}

	decision := ghg.Status(in.Decision)
	if err := ghg.ValidateDecision(entry.Status, decision); err != nil {
		return nil, err
	}
	// Approved es el cierre de mayor jerarquía: reservado a administradores,
	// aunque el usuario esté en el set de verificadores de la fuente.
	if decision == ghg.StatusApproved && role != entity.RoleAdmin {
		return nil, fmt.Errorf("aprobar %s: %w", entry.ID, domain.ErrForbidden)
	}
	if decision == ghg.StatusRejected && in.Comment == "" {
		return nil, fmt.Errorf("un rechazo requiere comentario: %w", domain.ErrInvalidInput)
	}

	if err := uc.entryRepo.UpdateStatus(entry.ID, decision, userID, in.Comment); err != nil {
		return nil, err
	}
	if uc.cache != nil {
		uc.cache.InvalidateDashboard(ctx, companyID)
	}

	updated, err := uc.entryRepo.GetByID(entry.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domain.ErrNotFound
	}
	resp := toEntryResponse(updated)
	return &resp, nil
}
