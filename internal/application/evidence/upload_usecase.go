package evidence

import (
	"context"
	"fmt"
	"path"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
	"github.com/S-FND/esg-core-api/pkg/logger"
)

// maxConcurrentUploads tope de subidas simultáneas por lote.
const maxConcurrentUploads = 3

const maxFileSizeBytes = 25 << 20 // 25 MB por archivo

// UploadUseCase gestiona los archivos de evidencia de un registro de
// actividad: crea el lote con URLs firmadas, sube lotes multiparte con
// concurrencia acotada y rastrea el estado de cada archivo por separado.
type UploadUseCase struct {
	evidenceRepo repository.EvidenceRepository
	entryRepo    repository.ActivityEntryRepository
	signer       URLSigner
	uploader     Uploader
	log          *logger.Logger
}

// NewUploadUseCase construye el caso de uso.
func NewUploadUseCase(
	evidenceRepo repository.EvidenceRepository,
	entryRepo repository.ActivityEntryRepository,
	signer URLSigner,
	uploader Uploader,
	log *logger.Logger,
) *UploadUseCase {
	return &UploadUseCase{
		evidenceRepo: evidenceRepo,
		entryRepo:    entryRepo,
		signer:       signer,
		uploader:     uploader,
		log:          log,
	}
}

// CreateBatch registra el lote de evidencias de un registro y devuelve una URL
// firmada de subida por archivo. Cada archivo nace en estado "uploading".
func (uc *UploadUseCase) CreateBatch(
	ctx context.Context,
	companyID string,
	req dto.CreateEvidenceBatchRequest,
) (*dto.EvidenceBatchResponse, error) {
	if len(req.Files) == 0 {
		return nil, fmt.Errorf("lote sin archivos: %w", domain.ErrInvalidInput)
	}

	entry, err := uc.entryRepo.GetByID(req.EntryID)
	if err != nil {
		return nil, fmt.Errorf("evidencias: obtener registro: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if entry.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	now := time.Now()
	files := make([]*entity.EvidenceFile, 0, len(req.Files))
	for _, f := range req.Files {
		if f.Name == "" {
			return nil, fmt.Errorf("archivo sin nombre: %w", domain.ErrInvalidInput)
		}
		if f.SizeBytes > maxFileSizeBytes {
			return nil, fmt.Errorf("archivo %q excede el tamaño máximo: %w", f.Name, domain.ErrInvalidInput)
		}
		id := uuid.New().String()
		files = append(files, &entity.EvidenceFile{
			ID:          id,
			CompanyID:   companyID,
			EntryID:     entry.ID,
			Name:        f.Name,
			ContentType: f.ContentType,
			SizeBytes:   f.SizeBytes,
			Status:      entity.EvidenceUploading,
			StorageKey:  path.Join(companyID, entry.ID, id+path.Ext(f.Name)),
			CreatedAt:   now,
			UpdatedAt:   now,
		})
	}

	if err := uc.evidenceRepo.CreateBatch(files); err != nil {
		return nil, fmt.Errorf("evidencias: crear lote: %w", err)
	}

	resp := &dto.EvidenceBatchResponse{EntryID: entry.ID}
	for _, f := range files {
		url, err := uc.signer.SignUploadURL(f.StorageKey, f.ContentType)
		if err != nil {
			return nil, fmt.Errorf("evidencias: firmar URL de %q: %w", f.Name, err)
		}
		resp.Files = append(resp.Files, dto.EvidenceFileResponse{
			ID:          f.ID,
			Name:        f.Name,
			ContentType: f.ContentType,
			Status:      f.Status,
			UploadURL:   url,
		})
	}
	return resp, nil
}

// FilePayload bytes de un archivo cuando la subida pasa por el servidor.
type FilePayload struct {
	FileID  string
	Content []byte
}

// UploadBatch sube los bytes de un lote ya creado, con a lo sumo tres subidas
// en vuelo. Cada archivo termina en "done" o "error" por su cuenta: un fallo
// individual no aborta el resto ni falla el lote completo.
func (uc *UploadUseCase) UploadBatch(
	ctx context.Context,
	companyID string,
	payloads []FilePayload,
) (*dto.EvidenceBatchResponse, error) {
	if len(payloads) == 0 {
		return nil, fmt.Errorf("lote vacío: %w", domain.ErrInvalidInput)
	}

	type outcome struct {
		file   *entity.EvidenceFile
		status string
	}

	var (
		mu       sync.Mutex
		outcomes = make([]outcome, 0, len(payloads))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentUploads)
	for _, p := range payloads {
		p := p
		g.Go(func() error {
			file, err := uc.evidenceRepo.GetByID(p.FileID)
			if err != nil || file == nil {
				uc.logUploadError(p.FileID, err)
				return nil
			}
			if file.CompanyID != companyID {
				return nil
			}

			status := entity.EvidenceDone
			if err := uc.uploader.Upload(gctx, file.StorageKey, file.ContentType, p.Content); err != nil {
				uc.logUploadError(file.ID, err)
				status = entity.EvidenceError
			}
			if err := uc.evidenceRepo.UpdateStatus(file.ID, status); err != nil {
				uc.logUploadError(file.ID, err)
			}
			file.Status = status

			mu.Lock()
			outcomes = append(outcomes, outcome{file: file, status: status})
			mu.Unlock()
			return nil
		})
	}
	// Los fallos por archivo se absorben arriba; Wait solo propaga cancelación.
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &dto.EvidenceBatchResponse{}
	var doneURLs []string
	var entryID string
	for _, o := range outcomes {
		entryID = o.file.EntryID
		resp.Files = append(resp.Files, dto.EvidenceFileResponse{
			ID:          o.file.ID,
			Name:        o.file.Name,
			ContentType: o.file.ContentType,
			Status:      o.status,
		})
		if o.status == entity.EvidenceDone {
			doneURLs = append(doneURLs, o.file.StorageKey)
		}
	}
	resp.EntryID = entryID

	if len(doneURLs) > 0 && entryID != "" {
		if err := uc.entryRepo.AppendEvidenceURLs(entryID, doneURLs); err != nil {
			return nil, fmt.Errorf("evidencias: enlazar al registro: %w", err)
		}
	}
	return resp, nil
}

// MarkUploaded confirma (o marca en error) un archivo subido vía URL firmada.
func (uc *UploadUseCase) MarkUploaded(ctx context.Context, companyID, fileID string, ok bool) (*dto.EvidenceFileResponse, error) {
	file, err := uc.evidenceRepo.GetByID(fileID)
	if err != nil {
		return nil, fmt.Errorf("evidencias: obtener archivo: %w", err)
	}
	if file == nil {
		return nil, domain.ErrNotFound
	}
	if file.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	status := entity.EvidenceError
	if ok {
		status = entity.EvidenceDone
	}
	if err := uc.evidenceRepo.UpdateStatus(file.ID, status); err != nil {
		return nil, fmt.Errorf("evidencias: actualizar estado: %w", err)
	}
	if ok {
		if err := uc.entryRepo.AppendEvidenceURLs(file.EntryID, []string{file.StorageKey}); err != nil {
			return nil, fmt.Errorf("evidencias: enlazar al registro: %w", err)
		}
	}
	return &dto.EvidenceFileResponse{
		ID:          file.ID,
		Name:        file.Name,
		ContentType: file.ContentType,
		Status:      status,
	}, nil
}

// ListByEntry lista los archivos de evidencia de un registro.
func (uc *UploadUseCase) ListByEntry(ctx context.Context, companyID, entryID string) (*dto.EvidenceBatchResponse, error) {
	entry, err := uc.entryRepo.GetByID(entryID)
	if err != nil {
		return nil, fmt.Errorf("evidencias: obtener registro: %w", err)
	}
	if entry == nil {
		return nil, domain.ErrNotFound
	}
	if entry.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}

	files, err := uc.evidenceRepo.ListByEntry(entryID)
	if err != nil {
		return nil, fmt.Errorf("evidencias: listar: %w", err)
	}
	resp := &dto.EvidenceBatchResponse{EntryID: entryID}
	for _, f := range files {
		resp.Files = append(resp.Files, dto.EvidenceFileResponse{
			ID:          f.ID,
			Name:        f.Name,
			ContentType: f.ContentType,
			Status:      f.Status,
		})
	}
	return resp, nil
}

func (uc *UploadUseCase) logUploadError(fileID string, err error) {
	if uc.log == nil || err == nil {
		return
	}
	uc.log.Error().Err(err).Str("file_id", fileID).Msg("subida de evidencia fallida")
}
