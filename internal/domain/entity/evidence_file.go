package entity

import "time"

// Estados individuales de subida de un archivo de evidencia. Cada archivo del
// lote se rastrea por separado: un fallo no tumba al resto.
const (
	EvidenceUploading = "uploading"
	EvidenceDone      = "done"
	EvidenceError     = "error"
)

// EvidenceFile archivo soporte asociado a un registro de actividad. Los bytes
// se suben contra una URL firmada después de crear el lote; aquí solo viven
// metadatos y estado.
type EvidenceFile struct {
	ID          string
	CompanyID   string
	EntryID     string
	Name        string
	ContentType string
	SizeBytes   int64
	Status      string // uploading, done, error
	StorageKey  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
