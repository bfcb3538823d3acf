package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/S-FND/esg-core-api/internal/application/analytics"
	"github.com/S-FND/esg-core-api/internal/application/auth"
	"github.com/S-FND/esg-core-api/internal/application/collection"
	"github.com/S-FND/esg-core-api/internal/application/evidence"
	"github.com/S-FND/esg-core-api/internal/application/reporting"
	"github.com/S-FND/esg-core-api/internal/application/usecase"
	"github.com/S-FND/esg-core-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CompanyUC   *usecase.CompanyUseCase
	FactorUC    *usecase.FactorUseCase
	UnitUC      *usecase.UnitUseCase
	SourceUC    *usecase.SourceUseCase
	GoalUC      *usecase.GoalUseCase
	TopicUC     *usecase.TopicUseCase
	CollectUC   *collection.CollectUseCase
	VerifyUC    *collection.VerifyUseCase
	DraftUC     *collection.DraftUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *reporting.ReportUseCase
	EvidenceUC  *evidence.UploadUseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Roles de gestión: administran fuentes, metas y temas del tenant.
	manage := RequireRole(entity.RoleAdmin, entity.RoleUnitAdmin, entity.RolePlatform)

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Companies (alta pública para el bootstrap del tenant)
	companies := api.Group("/companies")
	companyHandler := NewCompanyHandler(deps.CompanyUC)
	companies.Post("/", companyHandler.Create)
	companies.Get("/", companyHandler.List)
	companies.Get("/:id", companyHandler.GetByID)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Registro de factores y conversión de unidades (protegido, solo lectura)
	factorHandler := NewFactorHandler(deps.FactorUC, deps.UnitUC)
	factors := protected.Group("/factors")
	factors.Get("/scope/:scope", factorHandler.ByScope)
	factors.Get("/scope/:scope/categories", factorHandler.Categories)
	factors.Get("/scope/:scope/category/:category", factorHandler.ByCategory)
	factors.Get("/scope/:scope/search", factorHandler.Search)
	factors.Get("/:id", factorHandler.ByID)
	units := protected.Group("/units")
	units.Post("/convert", factorHandler.Convert)
	units.Get("/:unit/conversions", factorHandler.AvailableConversions)

	// Fuentes de emisión (protegido; escritura solo para gestión)
	sources := protected.Group("/sources")
	sourceHandler := NewSourceHandler(deps.SourceUC)
	sources.Post("/", manage, sourceHandler.Create)
	sources.Get("/", sourceHandler.List)
	sources.Get("/:id", sourceHandler.GetByID)
	sources.Put("/:id", manage, sourceHandler.Update)
	sources.Delete("/:id", manage, sourceHandler.Delete)

	// Captura de datos de actividad (protegido; el caso de uso valida la
	// asignación del colector contra la fuente)
	collectionHandler := NewCollectionHandler(deps.CollectUC, deps.DraftUC, deps.SourceUC)
	protected.Post("/collect", collectionHandler.Collect)
	sources.Get("/:id/entries", collectionHandler.ListEntries)
	sources.Get("/:id/schedule", collectionHandler.Schedule)
	sources.Get("/:id/template", collectionHandler.Template)
	sources.Post("/:id/import", collectionHandler.Import)

	// Borradores de captura (protegido)
	drafts := protected.Group("/drafts")
	drafts.Put("/", collectionHandler.SaveDraft)
	drafts.Get("/:sourceID", collectionHandler.LoadDraft)
	drafts.Delete("/:sourceID", collectionHandler.DiscardDraft)

	// Verificación (protegido; el caso de uso valida la asignación)
	verifyHandler := NewVerifyHandler(deps.VerifyUC)
	protected.Post("/verify",
		RequireRole(entity.RoleVerifier, entity.RoleAdmin),
		verifyHandler.Verify)

	// Metas de carbono (protegido; escritura solo para gestión)
	goals := protected.Group("/goals")
	goalHandler := NewGoalHandler(deps.GoalUC)
	goals.Post("/", manage, goalHandler.Create)
	goals.Get("/", goalHandler.List)
	goals.Get("/:id", goalHandler.GetByID)
	goals.Put("/:id", manage, goalHandler.Update)
	goals.Delete("/:id", manage, goalHandler.Delete)
	goals.Post("/:id/recalculate", manage, goalHandler.Recalculate)

	// Temas materiales y matriz (protegido)
	topics := protected.Group("/topics")
	topicHandler := NewTopicHandler(deps.TopicUC)
	topics.Post("/", manage, topicHandler.Create)
	topics.Get("/", topicHandler.List)
	topics.Get("/matrix", topicHandler.Matrix)
	topics.Put("/:id", manage, topicHandler.Update)
	topics.Delete("/:id", manage, topicHandler.Delete)

	// Dashboard de emisiones (protegido)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	protected.Get("/dashboard", dashboardHandler.Summary)

	// Divulgación GHG (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/export", reportHandler.Export)

	// Evidencias (protegido)
	evidenceHandler := NewEvidenceHandler(deps.EvidenceUC)
	evidenceGroup := protected.Group("/evidence")
	evidenceGroup.Post("/batch", evidenceHandler.CreateBatch)
	evidenceGroup.Post("/upload", evidenceHandler.Upload)
	evidenceGroup.Patch("/:id/status", evidenceHandler.MarkUploaded)
	protected.Get("/entries/:id/evidence", evidenceHandler.ListByEntry)
}
