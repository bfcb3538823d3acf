package collection_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-FND/esg-core-api/internal/application/collection"
	"github.com/S-FND/esg-core-api/internal/application/dto"
	"github.com/S-FND/esg-core-api/internal/domain"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/ghg"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
)

// ── Fakes en memoria ──────────────────────────────────────────────────────────

type fakeSourceRepo struct {
	sources map[string]*entity.EmissionSource
}

func (f *fakeSourceRepo) Create(s *entity.EmissionSource) error { f.sources[s.ID] = s; return nil }
func (f *fakeSourceRepo) GetByID(id string) (*entity.EmissionSource, error) {
	return f.sources[id], nil
}
func (f *fakeSourceRepo) Update(s *entity.EmissionSource) error { f.sources[s.ID] = s; return nil }
func (f *fakeSourceRepo) ListByCompany(string, int, int) ([]*entity.EmissionSource, error) {
	return nil, nil
}
func (f *fakeSourceRepo) ListByScope(string, int) ([]*entity.EmissionSource, error) {
	return nil, nil
}
func (f *fakeSourceRepo) Delete(string) error { return nil }

type naturalKey struct {
	sourceID, reportingPeriod, periodName string
}

type fakeEntryRepo struct {
	byKey map[naturalKey]*entity.ActivityEntry
	byID  map[string]*entity.ActivityEntry
}

func newFakeEntryRepo() *fakeEntryRepo {
	return &fakeEntryRepo{
		byKey: make(map[naturalKey]*entity.ActivityEntry),
		byID:  make(map[string]*entity.ActivityEntry),
	}
}

func (f *fakeEntryRepo) Upsert(e *entity.ActivityEntry) (*entity.ActivityEntry, error) {
	key := naturalKey{e.SourceID, e.ReportingPeriod, e.PeriodName}
	if prev, ok := f.byKey[key]; ok {
		e.ID = prev.ID // la clave natural conserva la identidad de la fila
	}
	f.byKey[key] = e
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEntryRepo) GetByID(id string) (*entity.ActivityEntry, error) { return f.byID[id], nil }

func (f *fakeEntryRepo) GetByNaturalKey(sourceID, reportingPeriod, periodName string) (*entity.ActivityEntry, error) {
	return f.byKey[naturalKey{sourceID, reportingPeriod, periodName}], nil
}

func (f *fakeEntryRepo) UpdateStatus(id string, status ghg.Status, verifierID, comment string) error {
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.Status = status
	e.VerifiedBy = verifierID
	e.VerifierComment = comment
	now := time.Now()
	e.VerifiedAt = &now
	return nil
}

func (f *fakeEntryRepo) ListBySource(sourceID, reportingPeriod string) ([]*entity.ActivityEntry, error) {
	var out []*entity.ActivityEntry
	for key, e := range f.byKey {
		if key.sourceID == sourceID && key.reportingPeriod == reportingPeriod {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) ListByCompany(companyID, reportingPeriod string) ([]*entity.ActivityEntry, error) {
	var out []*entity.ActivityEntry
	for _, e := range f.byID {
		if e.CompanyID == companyID && e.ReportingPeriod == reportingPeriod {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEntryRepo) AppendEvidenceURLs(id string, urls []string) error {
	e, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	e.EvidenceURLs = append(e.EvidenceURLs, urls...)
	return nil
}

// fakeTxRunner pasa el repo directo; el contrato todo-o-nada se prueba contra
// Postgres real, aquí solo interesa la lógica del caso de uso.
type fakeTxRunner struct {
	entryRepo repository.ActivityEntryRepository
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(repository.ActivityEntryRepository) error) error {
	return fn(f.entryRepo)
}

type fakeInvalidator struct {
	calls int
}

func (f *fakeInvalidator) InvalidateDashboard(context.Context, string) { f.calls++ }

// ── Setup común ───────────────────────────────────────────────────────────────

const (
	testCompany   = "company-1"
	testCollector = "user-collector"
	testVerifier  = "user-verifier"
)

func dieselSource() *entity.EmissionSource {
	return &entity.EmissionSource{
		ID:                   "src-diesel",
		CompanyID:            testCompany,
		FacilityName:         "Planta Norte",
		SourceType:           "Flota propia",
		Scope:                1,
		Category:             "Combustión móvil",
		EmissionFactorID:     "ef-s1-diesel",
		EmissionFactor:       2.68,
		ActivityDataUnit:     "L",
		MeasurementFrequency: ghg.FrequencyMonthly,
		AssignedCollectors:   []string{testCollector},
		AssignedVerifiers:    []string{testVerifier},
	}
}

func newCollectFixture() (*collection.CollectUseCase, *fakeEntryRepo, *fakeInvalidator) {
	entryRepo := newFakeEntryRepo()
	sourceRepo := &fakeSourceRepo{sources: map[string]*entity.EmissionSource{"src-diesel": dieselSource()}}
	cache := &fakeInvalidator{}
	uc := collection.NewCollectUseCase(&fakeTxRunner{entryRepo: entryRepo}, sourceRepo, entryRepo, cache)
	return uc, entryRepo, cache
}

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestCollect_LoteCalculaEmisiones(t *testing.T) {
	uc, _, cache := newCollectFixture()

	resp, err := uc.Collect(context.Background(), testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries: []dto.EntryInput{
			{PeriodName: "January 2024", ActivityValue: 2450, ActivityUnit: "L"},
			{PeriodName: "February 2024", ActivityValue: 1000, ActivityUnit: "L"},
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Entries, 2)

	assert.InDelta(t, 6566.0, resp.Entries[0].CalculatedEmissions, 1e-9, "2450 L * 2.68 kgCO2e/L")
	assert.Equal(t, string(ghg.StatusSubmitted), resp.Entries[0].Status)
	assert.InDelta(t, 6566.0+2680.0, resp.BatchTotalKg, 1e-9)
	assert.Equal(t, 1, cache.calls, "el commit del lote invalida el dashboard")
}

func TestCollect_NormalizaUnidadAlDenominadorDelFactor(t *testing.T) {
	uc, _, _ := newCollectFixture()

	// 2 m3 = 2000 L -> 2000 * 2.68
	resp, err := uc.Collect(context.Background(), testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         []dto.EntryInput{{PeriodName: "March 2024", ActivityValue: 2, ActivityUnit: "m3"}},
	})
	require.NoError(t, err)
	assert.InDelta(t, 5360.0, resp.Entries[0].CalculatedEmissions, 1e-6)
	assert.Equal(t, 2.0, resp.Entries[0].ActivityValue, "el valor reportado se conserva tal cual")
}

func TestCollect_UnidadNoConvertibleRechazaLote(t *testing.T) {
	uc, entryRepo, _ := newCollectFixture()

	_, err := uc.Collect(context.Background(), testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries: []dto.EntryInput{
			{PeriodName: "January 2024", ActivityValue: 10, ActivityUnit: "L"},
			{PeriodName: "February 2024", ActivityValue: 10, ActivityUnit: "kWh"},
		},
	})
	assert.ErrorIs(t, err, domain.ErrNotConvertible)
	assert.Empty(t, entryRepo.byID, "un período inválido rechaza el lote entero")
}

func TestCollect_PeriodoFueraDelCalendario(t *testing.T) {
	uc, _, _ := newCollectFixture()

	_, err := uc.Collect(context.Background(), testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         []dto.EntryInput{{PeriodName: "Q1 2024", ActivityValue: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "etiqueta trimestral contra fuente mensual")
}

func TestCollect_ValorCeroRechazado(t *testing.T) {
	uc, _, _ := newCollectFixture()

	_, err := uc.Collect(context.Background(), testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         []dto.EntryInput{{PeriodName: "January 2024", ActivityValue: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCollect_NoColectorRechazado(t *testing.T) {
	uc, _, _ := newCollectFixture()

	_, err := uc.Collect(context.Background(), testCompany, "otro-usuario", entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         []dto.EntryInput{{PeriodName: "January 2024", ActivityValue: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCollect_OtroTenantNoVeLaFuente(t *testing.T) {
	uc, _, _ := newCollectFixture()

	_, err := uc.Collect(context.Background(), "company-2", testCollector, entity.RoleAdmin, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         []dto.EntryInput{{PeriodName: "January 2024", ActivityValue: 10}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound, "cross-tenant se responde como inexistente")
}

func TestCollect_ReenvioSobreRechazadoConservaIdentidad(t *testing.T) {
	uc, entryRepo, _ := newCollectFixture()
	ctx := context.Background()

	resp, err := uc.Collect(ctx, testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         []dto.EntryInput{{PeriodName: "January 2024", ActivityValue: 100}},
	})
	require.NoError(t, err)
	firstID := resp.Entries[0].ID

	require.NoError(t, entryRepo.UpdateStatus(firstID, ghg.StatusRejected, testVerifier, "sin soporte"))

	resp, err = uc.Collect(ctx, testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         []dto.EntryInput{{PeriodName: "January 2024", ActivityValue: 120}},
	})
	require.NoError(t, err)
	assert.Equal(t, firstID, resp.Entries[0].ID, "el upsert sobre la clave natural no duplica filas")
	assert.Equal(t, string(ghg.StatusSubmitted), resp.Entries[0].Status)
	assert.InDelta(t, 120*2.68, resp.Entries[0].CalculatedEmissions, 1e-9)
}

func TestCollect_ResubmitSobreAprobadoRechazado(t *testing.T) {
	uc, entryRepo, _ := newCollectFixture()
	ctx := context.Background()

	resp, err := uc.Collect(ctx, testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         []dto.EntryInput{{PeriodName: "January 2024", ActivityValue: 100}},
	})
	require.NoError(t, err)
	require.NoError(t, entryRepo.UpdateStatus(resp.Entries[0].ID, ghg.StatusApproved, testVerifier, ""))

	_, err = uc.Collect(ctx, testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         []dto.EntryInput{{PeriodName: "January 2024", ActivityValue: 200}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidTransition, "un período cerrado no acepta recaptura")
}

func TestSchedule_PeriodosFaltantesCuentanComoPendientes(t *testing.T) {
	uc, _, _ := newCollectFixture()
	ctx := context.Background()

	entries := make([]dto.EntryInput, 0, 8)
	months := []string{"January", "February", "March", "April", "May", "June", "July", "August"}
	for _, m := range months {
		entries = append(entries, dto.EntryInput{PeriodName: m + " 2024", ActivityValue: 50})
	}
	_, err := uc.Collect(ctx, testCompany, testCollector, entity.RoleCollector, dto.CollectRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Entries:         entries,
	})
	require.NoError(t, err)

	sched, err := uc.Schedule("src-diesel", "2024")
	require.NoError(t, err)
	assert.Equal(t, 12, sched.ExpectedPeriods)
	assert.Equal(t, 8, sched.Submitted)
	assert.Equal(t, 4, sched.Pending, "los meses sin registro son pendientes")
	assert.InDelta(t, 66.7, sched.CompletionPercent, 0.05, "8 de 12 períodos capturados")
}
