package evidence_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/application/evidence"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
)

const testCompany = "company-1"

type fakeEntryRepo struct {
	entries map[string]*entity.ActivityEntry
	urls    map[string][]string
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{entries: map[string]*entity.ActivityEntry{}, urls: map[string][]string{}}
}

func (f *fakeEntryRepo) Upsert(e *entity.ActivityEntry) (*entity.ActivityEntry, error) {
	f.entries[e.ID] = e
	return e, nil
}
func (f *fakeEntryRepo) GetByID(id string) (*entity.ActivityEntry, error) { return f.entries[id], nil }
func (f *fakeEntryRepo) GetByNaturalKey(string, string, string) (*entity.ActivityEntry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) UpdateStatus(string, ghg.Status, string, string) error { return nil }
func (f *fakeEntryRepo) ListBySource(string, string) ([]*entity.ActivityEntry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) ListByCompany(string, string) ([]*entity.ActivityEntry, error) {
	return nil, nil
}
func (f *fakeEntryRepo) AppendEvidenceURLs(id string, urls []string) error {
	f.urls[id] = append(f.urls[id], urls...)
	return nil
}

// fakeEvidenceRepo protege sus mapas con mutex: UploadBatch actualiza estados
// desde varias goroutines a la vez.
type fakeEvidenceRepo struct {
	mu    sync.Mutex
	files map[string]*entity.EvidenceFile
}

func newFakeEvidenceRepo() *fakeEvidenceRepo {
	return &fakeEvidenceRepo{files: map[string]*entity.EvidenceFile{}}
}

func (f *fakeEvidenceRepo) CreateBatch(files []*entity.EvidenceFile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, file := range files {
		copied := *file
		f.files[file.ID] = &copied
	}
	return nil
}

func (f *fakeEvidenceRepo) GetByID(id string) (*entity.EvidenceFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[id]
	if !ok {
		return nil, nil
	}
	copied := *file
	return &copied, nil
}

func (f *fakeEvidenceRepo) UpdateStatus(id, status string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	file, ok := f.files[id]
	if !ok {
		return domain.ErrNotFound
	}
	file.Status = status
	return nil
}

func (f *fakeEvidenceRepo) ListByEntry(entryID string) ([]*entity.EvidenceFile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.EvidenceFile
	for _, file := range f.files {
		if file.EntryID == entryID {
			copied := *file
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeSigner struct{}

func (fakeSigner) SignUploadURL(storageKey, _ string) (string, error) {
	return "https://storage.local/" + storageKey + "?sig=firmada", nil
}

// fakeUploader falla las claves que contengan failSubstr y cuenta las subidas.
type fakeUploader struct {
	mu         sync.Mutex
	failSubstr string
	uploaded   []string
}

func (f *fakeUploader) Upload(_ context.Context, storageKey, _ string, _ []byte) error {
	if f.failSubstr != "" && strings.Contains(storageKey, f.failSubstr) {
		return assert.AnError
	}
	f.mu.Lock()
	f.uploaded = append(f.uploaded, storageKey)
	f.mu.Unlock()
	return nil
}

func newUploadFixture(t *testing.T, uploader *fakeUploader) (*evidence.UploadUseCase, *fakeEntryRepo, *fakeEvidenceRepo) {
	t.Helper()
	entryRepo := newFakeEntryRepo()
	evidenceRepo := newFakeEvidenceRepo()
	_, err := entryRepo.Upsert(&entity.ActivityEntry{
		ID:              "entry-1",
		CompanyID:       testCompany,
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		PeriodName:      "January 2024",
		Status:          ghg.StatusSubmitted,
	})
	require.NoError(t, err)
	uc := evidence.NewUploadUseCase(evidenceRepo, entryRepo, fakeSigner{}, uploader, nil)
	return uc, entryRepo, evidenceRepo
}

func TestCreateBatch_DevuelveURLFirmadaPorArchivo(t *testing.T) {
	uc, _, _ := newUploadFixture(t, &fakeUploader{})

	resp, err := uc.CreateBatch(context.Background(), testCompany, dto.CreateEvidenceBatchRequest{
		EntryID: "entry-1",
		Files: []dto.EvidenceFileInput{
			{Name: "factura.pdf", ContentType: "application/pdf", SizeBytes: 1024},
			{Name: "medidor.jpg", ContentType: "image/jpeg", SizeBytes: 2048},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Files, 2)
	for _, f := range resp.Files {
		assert.Equal(t, entity.EvidenceUploading, f.Status)
		assert.Contains(t, f.UploadURL, "sig=firmada")
		assert.NotEmpty(t, f.ID)
	}
}

func TestCreateBatch_Validaciones(t *testing.T) {
	uc, _, _ := newUploadFixture(t, &fakeUploader{})
	ctx := context.Background()

	_, err := uc.CreateBatch(ctx, testCompany, dto.CreateEvidenceBatchRequest{EntryID: "entry-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "lote sin archivos")

	_, err = uc.CreateBatch(ctx, testCompany, dto.CreateEvidenceBatchRequest{
		EntryID: "no-existe",
		Files:   []dto.EvidenceFileInput{{Name: "factura.pdf"}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "registro inexistente")

	_, err = uc.CreateBatch(ctx, "company-2", dto.CreateEvidenceBatchRequest{
		EntryID: "entry-1",
		Files:   []dto.EvidenceFileInput{{Name: "factura.pdf"}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden, "registro de otro tenant")

	_, err = uc.CreateBatch(ctx, testCompany, dto.CreateEvidenceBatchRequest{
		EntryID: "entry-1",
		Files:   []dto.EvidenceFileInput{{Name: "enorme.zip", SizeBytes: 26 << 20}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "archivo sobre el tope de tamaño")
}

func TestUploadBatch_UnArchivoFallidoNoTumbaElLote(t *testing.T) {
	uploader := &fakeUploader{}
	uc, entryRepo, evidenceRepo := newUploadFixture(t, uploader)

	batch, err := uc.CreateBatch(context.Background(), testCompany, dto.CreateEvidenceBatchRequest{
		EntryID: "entry-1",
		Files: []dto.EvidenceFileInput{
			{Name: "factura.pdf", ContentType: "application/pdf", SizeBytes: 1024},
			{Name: "rota.png", ContentType: "image/png", SizeBytes: 512},
			{Name: "medidor.jpg", ContentType: "image/jpeg", SizeBytes: 2048},
		},
	})
	require.NoError(t, err)

	// La clave de almacenamiento conserva la extensión del nombre original.
	uploader.failSubstr = ".png"

	payloads := make([]evidence.FilePayload, 0, len(batch.Files))
	for _, f := range batch.Files {
		payloads = append(payloads, evidence.FilePayload{FileID: f.ID, Content: []byte("bytes")})
	}

	resp, err := uc.UploadBatch(context.Background(), testCompany, payloads)
	require.NoError(t, err, "un fallo individual nunca falla el lote")
	require.Len(t, resp.Files, 3)

	byName := map[string]string{}
	for _, f := range resp.Files {
		byName[f.Name] = f.Status
	}
	assert.Equal(t, entity.EvidenceDone, byName["factura.pdf"])
	assert.Equal(t, entity.EvidenceError, byName["rota.png"])
	assert.Equal(t, entity.EvidenceDone, byName["medidor.jpg"])

	// El estado persistido coincide con el reportado.
	for _, f := range batch.Files {
		stored, _ := evidenceRepo.GetByID(f.ID)
		assert.Equal(t, byName[f.Name], stored.Status)
	}

	// Solo las subidas exitosas quedan enlazadas al registro.
	assert.Len(t, entryRepo.urls["entry-1"], 2)
	for _, url := range entryRepo.urls["entry-1"] {
		assert.NotContains(t, url, ".png")
	}
}

func TestUploadBatch_LoteVacio(t *testing.T) {
	uc, _, _ := newUploadFixture(t, &fakeUploader{})

	_, err := uc.UploadBatch(context.Background(), testCompany, nil)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarkUploaded_ConfirmaYEnlaza(t *testing.T) {
	uc, entryRepo, _ := newUploadFixture(t, &fakeUploader{})

	batch, err := uc.CreateBatch(context.Background(), testCompany, dto.CreateEvidenceBatchRequest{
		EntryID: "entry-1",
		Files:   []dto.EvidenceFileInput{{Name: "factura.pdf", ContentType: "application/pdf"}},
	})
	require.NoError(t, err)
	fileID := batch.Files[0].ID

	resp, err := uc.MarkUploaded(context.Background(), testCompany, fileID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.EvidenceDone, resp.Status)
	assert.Len(t, entryRepo.urls["entry-1"], 1)

	_, err = uc.MarkUploaded(context.Background(), "company-2", fileID, true)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
