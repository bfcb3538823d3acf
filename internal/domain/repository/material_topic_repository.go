package repository

import "github.com/S-FND/esg-core-api/internal/domain/entity"

// MaterialTopicRepository define el puerto de persistencia para los temas de
// la matriz de materialidad (DIP).
type MaterialTopicRepository interface {
	Create(topic *entity.MaterialTopic) error
	GetByID(id string) (*entity.MaterialTopic, error)
	Update(topic *entity.MaterialTopic) error
	ListByCompany(companyID string) ([]*entity.MaterialTopic, error)
	Delete(id string) error
}
