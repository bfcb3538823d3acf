package repository

import "github.com/S-FND/esg-core-api/internal/domain/entity"

// EmissionSourceRepository define el puerto de persistencia para las fuentes
// de emisión de la empresa (DIP).
type EmissionSourceRepository interface {
	Create(source *entity.EmissionSource) error
	GetByID(id string) (*entity.EmissionSource, error)
	Update(source *entity.EmissionSource) error
	ListByCompany(companyID string, limit, offset int) ([]*entity.EmissionSource, error)
	ListByScope(companyID string, scope int) ([]*entity.EmissionSource, error)
	Delete(id string) error
}
