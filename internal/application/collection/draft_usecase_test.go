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
)

// fakeDraftStore imita el contrato del almacén real: Get devuelve
// domain.ErrNotFound cuando la clave no existe.
type fakeDraftStore struct {
	data map[string][]byte
}

func (f *fakeDraftStore) Get(_ context.Context, key string) ([]byte, error) {
	val, ok := f.data[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return val, nil
}

func (f *fakeDraftStore) Put(_ context.Context, key string, value []byte, _ time.Duration) error {
	f.data[key] = value
	return nil
}

func (f *fakeDraftStore) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func newDraftFixture(t *testing.T) (*collection.DraftUseCase, *fakeDraftStore) {
	t.Helper()
	store := &fakeDraftStore{data: map[string][]byte{}}
	sourceRepo := &fakeSourceRepo{sources: map[string]*entity.EmissionSource{"src-diesel": dieselSource()}}
	return collection.NewDraftUseCase(store, sourceRepo), store
}

func TestDraft_GuardarYRecuperar(t *testing.T) {
	uc, store := newDraftFixture(t)
	ctx := context.Background()

	in := dto.DraftRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Month:           "January 2024",
		Entries: []dto.EntryInput{
			{PeriodName: "January 2024", ActivityValue: 120.5, ActivityUnit: "L"},
		},
	}
	require.NoError(t, uc.Save(ctx, testCompany, in))
	require.Len(t, store.data, 1)

	out, err := uc.Load(ctx, testCompany, "src-diesel", "January 2024", "2024")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Entries, out.Entries)
}

func TestDraft_SinBorradorDevuelveNil(t *testing.T) {
	uc, _ := newDraftFixture(t)

	// Sin borrador guardado no hay error: es el caso esperado al abrir la
	// captura de un mes nuevo.
	out, err := uc.Load(context.Background(), testCompany, "src-diesel", "January 2024", "2024")
	require.NoError(t, err)
	assert.Nil(t, out)
}

func TestDraft_FuenteDeOtroTenant(t *testing.T) {
	uc, _ := newDraftFixture(t)
	ctx := context.Background()

	_, err := uc.Load(ctx, "company-2", "src-diesel", "January 2024", "2024")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	err = uc.Save(ctx, "company-2", dto.DraftRequest{SourceID: "src-diesel", ReportingPeriod: "2024", Month: "January 2024"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDraft_DescartarEliminaLaClave(t *testing.T) {
	uc, store := newDraftFixture(t)
	ctx := context.Background()

	require.NoError(t, uc.Save(ctx, testCompany, dto.DraftRequest{
		SourceID:        "src-diesel",
		ReportingPeriod: "2024",
		Month:           "January 2024",
	}))
	require.NoError(t, uc.Discard(ctx, testCompany, "src-diesel", "January 2024", "2024"))
	assert.Empty(t, store.data)

	out, err := uc.Load(ctx, testCompany, "src-diesel", "January 2024", "2024")
	require.NoError(t, err)
	assert.Nil(t, out)
}
