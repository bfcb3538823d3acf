package usecase

import (
	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

// UnitUseCase expone el motor de conversión de unidades a la API.
type UnitUseCase struct{}

// NewUnitUseCase construye el caso de uso.
func NewUnitUseCase() *UnitUseCase {
	return &UnitUseCase{}
}

// Convert convierte un valor entre unidades. Result queda en null cuando las
// unidades no son convertibles: el llamador distingue "no convertible" de un
// cero legítimo.
func (uc *UnitUseCase) Convert(in dto.ConvertRequest) *dto.ConvertResponse {
	out := &dto.ConvertResponse{FromUnit: in.FromUnit, ToUnit: in.ToUnit}
	result, ok := ghg.Convert(in.Value, in.FromUnit, in.ToUnit)
	if !ok {
		return out
	}
	out.Convertible = true
	out.Result = &result
	return out
}

// AvailableConversions unidades alcanzables desde una unidad dada.
func (uc *UnitUseCase) AvailableConversions(unit string) *dto.AvailableConversionsResponse {
	out := &dto.AvailableConversionsResponse{
		Unit:  unit,
		Units: ghg.AvailableConversions(unit),
	}
	if cat, ok := ghg.CategoryOf(unit); ok {
		out.Category = string(cat)
	}
	return out
}
