package usecase

import (
	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

// FactorUseCase consultas de solo lectura sobre el registro estático de
// factores de emisión. No hay mutaciones: la tabla es dato de referencia
// versionado.
type FactorUseCase struct{}

// NewFactorUseCase construye el caso de uso.
func NewFactorUseCase() *FactorUseCase {
	return &FactorUseCase{}
}

// ByScope factores de un alcance. Alcance desconocido devuelve lista vacía.
func (uc *FactorUseCase) ByScope(scope int) *dto.FactorListResponse {
	return toFactorList(scope, ghg.ByScope(scope))
}

// ByCategory factores de un alcance filtrados por categoría.
func (uc *FactorUseCase) ByCategory(scope int, category string) *dto.FactorListResponse {
	return toFactorList(scope, ghg.ByCategory(scope, category))
}

// Search búsqueda case-insensitive por substring dentro de un alcance.
func (uc *FactorUseCase) Search(scope int, term string) *dto.FactorListResponse {
	return toFactorList(scope, ghg.Search(scope, term))
}

// ByID un factor por ID. nil si no existe (la ausencia es esperada).
func (uc *FactorUseCase) ByID(id string) *dto.EmissionFactorResponse {
	f := ghg.ByID(id)
	if f == nil {
		return nil
	}
	out := toFactorResponse(*f)
	return &out
}

// Categories categorías publicadas de un alcance.
func (uc *FactorUseCase) Categories(scope int) []string {
	return ghg.Categories(scope)
}

func toFactorList(scope int, factors []ghg.EmissionFactor) *dto.FactorListResponse {
	items := make([]dto.EmissionFactorResponse, 0, len(factors))
	for _, f := range factors {
		items = append(items, toFactorResponse(f))
	}
	return &dto.FactorListResponse{
		TableVersion: ghg.TableVersion,
		Scope:        scope,
		Items:        items,
	}
}

func toFactorResponse(f ghg.EmissionFactor) dto.EmissionFactorResponse {
	return dto.EmissionFactorResponse{
		ID:          f.ID,
		Name:        f.Name,
		Category:    f.Category,
		Factor:      f.Factor,
		Unit:        f.Unit,
		Source:      f.Source,
		Year:        f.Year,
		Region:      f.Region,
		Gases:       f.Gases,
		Description: f.Description,
	}
}
