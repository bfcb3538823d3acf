package repository

import "github.com/S-FND/esg-core-api/internal/domain/entity"

// EvidenceRepository define el puerto de persistencia para los archivos de
// evidencia (DIP). El estado de subida se actualiza por archivo.
type EvidenceRepository interface {
	CreateBatch(files []*entity.EvidenceFile) error
	GetByID(id string) (*entity.EvidenceFile, error)
	UpdateStatus(id, status string) error
	ListByEntry(entryID string) ([]*entity.EvidenceFile, error)
}
