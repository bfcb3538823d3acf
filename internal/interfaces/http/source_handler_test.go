package http_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/S-FND/esg-core-api/internal/application/usecase"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
	"github.com/S-FND/esg-core-api/internal/domain/repository"
	apphttp "github.com/S-FND/esg-core-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Stubs en memoria
// ──────────────────────────────────────────────────────────────────────────────

type stubSourceRepo struct {
	sources map[string]*entity.EmissionSource
}

func (s *stubSourceRepo) Create(src *entity.EmissionSource) error { s.sources[src.ID] = src; return nil }
func (s *stubSourceRepo) GetByID(id string) (*entity.EmissionSource, error) {
	return s.sources[id], nil
}
func (s *stubSourceRepo) Update(src *entity.EmissionSource) error { s.sources[src.ID] = src; return nil }
func (s *stubSourceRepo) ListByCompany(string, int, int) ([]*entity.EmissionSource, error) {
	return nil, nil
}
func (s *stubSourceRepo) ListByScope(string, int) ([]*entity.EmissionSource, error) {
	return nil, nil
}
func (s *stubSourceRepo) Delete(id string) error { delete(s.sources, id); return nil }

type stubGoalRepo struct {
	goals map[string]*entity.CarbonGoal
}

func (s *stubGoalRepo) Create(g *entity.CarbonGoal) error             { s.goals[g.ID] = g; return nil }
func (s *stubGoalRepo) GetByID(id string) (*entity.CarbonGoal, error) { return s.goals[id], nil }
func (s *stubGoalRepo) Update(g *entity.CarbonGoal) error             { s.goals[g.ID] = g; return nil }
func (s *stubGoalRepo) ListByCompany(string, int, int) ([]*entity.CarbonGoal, error) {
	return nil, nil
}
func (s *stubGoalRepo) Delete(id string) error { delete(s.goals, id); return nil }

type stubAnalyticsRepo struct{}

func (stubAnalyticsRepo) TotalsByScope(context.Context, string, string) ([]repository.ScopeTotal, error) {
	return nil, nil
}
func (stubAnalyticsRepo) TotalsByFacility(context.Context, string, string) ([]repository.FacilityTotal, error) {
	return nil, nil
}
func (stubAnalyticsRepo) MonthlySeries(context.Context, string, string) ([]repository.MonthlyTotal, error) {
	return nil, nil
}
func (stubAnalyticsRepo) CompletionBySource(context.Context, string, string) ([]repository.SourceCompletion, error) {
	return nil, nil
}
func (stubAnalyticsRepo) YearlyTotal(context.Context, string, string) (float64, error) {
	return 0, nil
}

// buildCrudApp monta las rutas de fuentes y metas detrás del AuthMiddleware,
// como en el router real.
func buildCrudApp(srcRepo *stubSourceRepo, goalRepo *stubGoalRepo) *fiber.App {
	app := fiber.New()
	sourceH := apphttp.NewSourceHandler(usecase.NewSourceUseCase(srcRepo))
	goalH := apphttp.NewGoalHandler(usecase.NewGoalUseCase(goalRepo, stubAnalyticsRepo{}))

	api := app.Group("/api", apphttp.AuthMiddleware(testJWTSecret))
	api.Get("/sources/:id", sourceH.GetByID)
	api.Delete("/sources/:id", sourceH.Delete)
	api.Get("/goals/:id", goalH.GetByID)
	return app
}

func crudFixture() (*stubSourceRepo, *stubGoalRepo) {
	srcRepo := &stubSourceRepo{sources: map[string]*entity.EmissionSource{
		"src-propia": {ID: "src-propia", CompanyID: testCompanyID, FacilityName: "Planta Norte"},
		"src-ajena":  {ID: "src-ajena", CompanyID: "otra-empresa", FacilityName: "Planta Ajena"},
	}}
	goalRepo := &stubGoalRepo{goals: map[string]*entity.CarbonGoal{
		"goal-propia": {ID: "goal-propia", CompanyID: testCompanyID, Name: "Reducir 30%"},
	}}
	return srcRepo, goalRepo
}

func getPath(t *testing.T, app *fiber.App, path string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de pertenencia por tenant
// ──────────────────────────────────────────────────────────────────────────────

func TestSourceHandler_IDInexistenteRetorna404(t *testing.T) {
	app := buildCrudApp(crudFixture())

	resp := getPath(t, app, "/api/sources/no-existe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode,
		"un ID desconocido es un 404 suave, nunca un 500")

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestSourceHandler_FuenteDeOtroTenantRetorna404(t *testing.T) {
	app := buildCrudApp(crudFixture())

	// Mismo código que el ID inexistente: no se filtra la existencia.
	resp := getPath(t, app, "/api/sources/src-ajena")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestSourceHandler_FuentePropiaRetorna200(t *testing.T) {
	app := buildCrudApp(crudFixture())

	resp := getPath(t, app, "/api/sources/src-propia")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Planta Norte")
}

func TestSourceHandler_DeleteIDInexistenteRetorna404(t *testing.T) {
	srcRepo, goalRepo := crudFixture()
	app := buildCrudApp(srcRepo, goalRepo)

	req := httptest.NewRequest(http.MethodDelete, "/api/sources/no-existe", nil)
	req.Header.Set("Authorization", tokenForRole(t, "admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Len(t, srcRepo.sources, 2, "nada se borra en un 404")
}

func TestGoalHandler_IDInexistenteRetorna404(t *testing.T) {
	app := buildCrudApp(crudFixture())

	resp := getPath(t, app, "/api/goals/no-existe")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "NOT_FOUND")
}

func TestGoalHandler_MetaPropiaRetorna200(t *testing.T) {
	app := buildCrudApp(crudFixture())

	resp := getPath(t, app, "/api/goals/goal-propia")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "Reducir 30%")
}
