package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

var ten = decimal.NewFromInt(10)

// TopicUseCase CRUD de temas materiales y armado de la matriz de materialidad.
// La clasificación riesgo/oportunidad siempre se deriva, nunca se persiste.
type TopicUseCase struct {
	repo repository.MaterialTopicRepository
}

// NewTopicUseCase construye el caso de uso.
func NewTopicUseCase(repo repository.MaterialTopicRepository) *TopicUseCase {
	return &TopicUseCase{repo: repo}
}

func validTopicCategory(category string) bool {
	switch category {
	case entity.TopicEnvironment, entity.TopicSocial, entity.TopicGovernance:
		return true
	}
	return false
}

func validImpact(d decimal.Decimal) bool {
	return !d.IsNegative() && d.LessThanOrEqual(ten)
}

// Create valida categoría e impactos (0-10) y persiste el tema.
func (uc *TopicUseCase) Create(companyID string, in dto.CreateTopicRequest) (*dto.TopicResponse, error) {
	if in.Name == "" {
		return nil, fmt.Errorf("nombre requerido: %w", domain.ErrInvalidInput)
	}
	if !validTopicCategory(in.Category) {
		return nil, fmt.Errorf("categoría %q: %w", in.Category, domain.ErrInvalidInput)
	}
	if !validImpact(in.BusinessImpact) || !validImpact(in.SustainabilityImpact) {
		return nil, fmt.Errorf("impactos fuera de 0-10: %w", domain.ErrInvalidInput)
	}
	now := time.Now()
	topic := &entity.MaterialTopic{
		ID:                   uuid.New().String(),
		CompanyID:            companyID,
		Name:                 in.Name,
		Category:             in.Category,
		BusinessImpact:       in.BusinessImpact,
		SustainabilityImpact: in.SustainabilityImpact,
		Framework:            in.Framework,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := uc.repo.Create(topic); err != nil {
		return nil, err
	}
	return toTopicResponse(topic), nil
}

// Update actualiza un tema material.
func (uc *TopicUseCase) Update(id string, in dto.UpdateTopicRequest) (*dto.TopicResponse, error) {
	topic, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if topic == nil {
		return nil, nil
	}
	if in.Name != nil {
		topic.Name = *in.Name
	}
	if in.Category != nil {
		if !validTopicCategory(*in.Category) {
			return nil, fmt.Errorf("categoría %q: %w", *in.Category, domain.ErrInvalidInput)
		}
		topic.Category = *in.Category
	}
	if in.BusinessImpact != nil {
		if !validImpact(*in.BusinessImpact) {
			return nil, fmt.Errorf("business_impact fuera de 0-10: %w", domain.ErrInvalidInput)
		}
		topic.BusinessImpact = *in.BusinessImpact
	}
	if in.SustainabilityImpact != nil {
		if !validImpact(*in.SustainabilityImpact) {
			return nil, fmt.Errorf("sustainability_impact fuera de 0-10: %w", domain.ErrInvalidInput)
		}
		topic.SustainabilityImpact = *in.SustainabilityImpact
	}
	if in.Framework != nil {
		topic.Framework = *in.Framework
	}
	topic.UpdatedAt = time.Now()
	if err := uc.repo.Update(topic); err != nil {
		return nil, err
	}
	return toTopicResponse(topic), nil
}

// List lista los temas de la empresa.
func (uc *TopicUseCase) List(companyID string) ([]dto.TopicResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TopicResponse, 0, len(list))
	for _, t := range list {
		items = append(items, *toTopicResponse(t))
	}
	return items, nil
}

// Matrix agrupa los temas por eje derivado para la matriz de materialidad.
func (uc *TopicUseCase) Matrix(companyID string) (*dto.MatrixResponse, error) {
	list, err := uc.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	out := &dto.MatrixResponse{
		Risks:         []dto.TopicResponse{},
		Opportunities: []dto.TopicResponse{},
	}
	for _, t := range list {
		resp := *toTopicResponse(t)
		if t.Classification() == entity.ClassificationRisk {
			out.Risks = append(out.Risks, resp)
		} else {
			out.Opportunities = append(out.Opportunities, resp)
		}
	}
	return out, nil
}

// Delete elimina un tema por ID.
func (uc *TopicUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

func toTopicResponse(t *entity.MaterialTopic) *dto.TopicResponse {
	if t == nil {
		return nil
	}
	return &dto.TopicResponse{
		ID:                   t.ID,
		CompanyID:            t.CompanyID,
		Name:                 t.Name,
		Category:             t.Category,
		BusinessImpact:       t.BusinessImpact,
		SustainabilityImpact: t.SustainabilityImpact,
		Framework:            t.Framework,
		Classification:       t.Classification(),
		CreatedAt:            t.CreatedAt,
		UpdatedAt:            t.UpdatedAt,
	}
}
