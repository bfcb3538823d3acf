package dto

// EvidenceFileInput metadatos de un archivo del lote de evidencias.
type EvidenceFileInput struct {
	Name        string `json:"name"`
	ContentType string `json:"type"`
	SizeBytes   int64  `json:"size_bytes"`
}

// CreateEvidenceBatchRequest crea el lote y devuelve URLs firmadas de subida.
type CreateEvidenceBatchRequest struct {
	EntryID string              `json:"entry_id"`
	Files   []EvidenceFileInput `json:"files"`
}

// EvidenceFileResponse archivo del lote con su URL firmada y estado.
type EvidenceFileResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ContentType string `json:"type"`
	Status      string `json:"status"` // uploading, done, error
	UploadURL   string `json:"upload_url,omitempty"`
}

// EvidenceBatchResponse lote completo.
type EvidenceBatchResponse struct {
	EntryID string                 `json:"entry_id"`
	Files   []EvidenceFileResponse `json:"files"`
}
