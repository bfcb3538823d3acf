package repository

import (
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

// ActivityEntryRepository define el puerto de persistencia para los registros
// de actividad (DIP).
//
// Upsert escribe sobre la clave natural (source_id, reporting_period,
// period_name): escrituras concurrentes al mismo período resuelven por
// last-write-wins y el llamador observa la fila ganadora.
type ActivityEntryRepository interface {
	Upsert(entry *entity.ActivityEntry) (*entity.ActivityEntry, error)
	GetByID(id string) (*entity.ActivityEntry, error)
	GetByNaturalKey(sourceID, reportingPeriod, periodName string) (*entity.ActivityEntry, error)
	UpdateStatus(id string, status ghg.Status, verifierID, comment string) error
	ListBySource(sourceID, reportingPeriod string) ([]*entity.ActivityEntry, error)
	ListByCompany(companyID, reportingPeriod string) ([]*entity.ActivityEntry, error)
	AppendEvidenceURLs(id string, urls []string) error
}
