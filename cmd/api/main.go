package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/S-FND/esg-core-api/internal/application/analytics"
	"github.com/S-FND/esg-core-api/internal/application/auth"
	"github.com/S-FND/esg-core-api/internal/application/collection"
	"github.com/S-FND/esg-core-api/internal/application/evidence"
	"github.com/S-FND/esg-core-api/internal/application/reporting"
	"github.com/S-FND/esg-core-api/internal/application/usecase"
	"github.com/S-FND/esg-core-api/internal/infrastructure/cache"
	"github.com/S-FND/esg-core-api/internal/infrastructure/disclosure"
	infrapdf "github.com/S-FND/esg-core-api/internal/infrastructure/pdf"
	"github.com/S-FND/esg-core-api/internal/infrastructure/postgres"
	"github.com/S-FND/esg-core-api/internal/infrastructure/storage"
	httpRouter "github.com/S-FND/esg-core-api/internal/interfaces/http"
	"github.com/S-FND/esg-core-api/pkg/config"
	"github.com/S-FND/esg-core-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	// Redis: borradores de captura y caché del dashboard.
	redisStore, err := cache.NewRedisStore(ctx, cfg.Redis, log.Component("redis"))
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}
	defer redisStore.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	sourceRepo := postgres.NewEmissionSourceRepository(pool)
	entryRepo := postgres.NewActivityEntryRepository(pool)
	goalRepo := postgres.NewCarbonGoalRepository(pool)
	topicRepo := postgres.NewMaterialTopicRepository(pool)
	evidenceRepo := postgres.NewEvidenceRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, companyRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	companyUC := usecase.NewCompanyUseCase(companyRepo)
	factorUC := usecase.NewFactorUseCase()
	unitUC := usecase.NewUnitUseCase()
	sourceUC := usecase.NewSourceUseCase(sourceRepo)
	goalUC := usecase.NewGoalUseCase(goalRepo, analyticsRepo)
	topicUC := usecase.NewTopicUseCase(topicRepo)

	collectUC := collection.NewCollectUseCase(txRunner, sourceRepo, entryRepo, redisStore)
	verifyUC := collection.NewVerifyUseCase(sourceRepo, entryRepo, redisStore)
	draftUC := collection.NewDraftUseCase(redisStore, sourceRepo)
	dashboardUC := appanalytics.NewDashboardUseCase(analyticsRepo, redisStore)

	// Divulgación GHG: XML determinístico + huella SHA-256 canónica + PDF
	reportUC := reporting.NewReportUseCase(
		companyRepo, analyticsRepo,
		disclosure.NewBuilder(), disclosure.NewDigester(),
		infrapdf.NewMarotoReportGenerator(),
	)

	// Evidencias: URLs firmadas HMAC y subidas concurrentes acotadas
	urlSigner := storage.NewSigner(cfg.Storage)
	evidenceUC := evidence.NewUploadUseCase(
		evidenceRepo, entryRepo,
		urlSigner, storage.NewHTTPUploader(urlSigner),
		log.Component("evidence"),
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ESG Core API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CompanyUC:   companyUC,
		FactorUC:    factorUC,
		UnitUC:      unitUC,
		SourceUC:    sourceUC,
		GoalUC:      goalUC,
		TopicUC:     topicUC,
		CollectUC:   collectUC,
		VerifyUC:    verifyUC,
		DraftUC:     draftUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
		EvidenceUC:  evidenceUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
