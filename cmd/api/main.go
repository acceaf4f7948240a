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

	"github.com/jhoicas/sales-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/sales-dashboard-api/internal/application/auth"
	appdataset "github.com/jhoicas/sales-dashboard-api/internal/application/dataset"
	"github.com/jhoicas/sales-dashboard-api/internal/application/ports"
	"github.com/jhoicas/sales-dashboard-api/internal/application/reports"
	"github.com/jhoicas/sales-dashboard-api/internal/domain/repository"
	infradataset "github.com/jhoicas/sales-dashboard-api/internal/infrastructure/dataset"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/identity"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/sales-dashboard-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sales-dashboard-api/internal/infrastructure/xmlreport"
	httpRouter "github.com/jhoicas/sales-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/sales-dashboard-api/pkg/config"
	"github.com/jhoicas/sales-dashboard-api/pkg/logger"

	_ "github.com/jhoicas/sales-dashboard-api/docs"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	// Origen del dataset: archivo local si DATASET_PATH está definido,
	// descarga HTTP en caso contrario.
	var source repository.DatasetSource
	if cfg.Dataset.Path != "" {
		source = infradataset.NewFileSource(cfg.Dataset.Path)
	} else {
		source = infradataset.NewHTTPSource(cfg.Dataset.URL, time.Duration(cfg.Dataset.TimeoutSeconds)*time.Second)
	}

	recordRepo := memory.NewRecordRepository()
	datasetUC := appdataset.NewUseCase(source, recordRepo, log)
	analyticsUC := analytics.NewUseCase(recordRepo)

	// Proveedor de identidad: REST externo si hay credenciales, local en memoria
	// para desarrollo.
	var provider ports.IdentityProvider
	if cfg.Identity.UseLocalProvider() {
		log.Warn().Msg("proveedor de identidad local en memoria (solo desarrollo)")
		provider = identity.NewLocalProvider()
	} else {
		provider = identity.NewRESTProvider(cfg.Identity.BaseURL, cfg.Identity.APIKey,
			time.Duration(cfg.Identity.TimeoutSeconds)*time.Second)
	}

	authUC := auth.NewAuthUseCase(provider, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	reportUC := reports.NewUseCase(analyticsUC, infrapdf.NewMarotoReportGenerator(), xmlreport.NewEtreeBuilder())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Sales Dashboard API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AnalyticsUC: analyticsUC,
		DatasetUC:   datasetUC,
		AuthUC:      authUC,
		ReportUC:    reportUC,
		JWTSecret:   cfg.JWT.Secret,
	})

	// Carga inicial en segundo plano: si falla, el servicio arranca igual con
	// el dataset vacío y la recarga queda disponible vía POST /api/dataset/reload.
	go func() {
		loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
		defer cancel()
		if _, err := datasetUC.Load(loadCtx); err != nil {
			log.Error().Err(err).Msg("carga inicial del dataset fallida")
		}
	}()

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
