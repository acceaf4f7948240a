package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/sales-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/sales-dashboard-api/internal/application/auth"
	"github.com/jhoicas/sales-dashboard-api/internal/application/dataset"
	"github.com/jhoicas/sales-dashboard-api/internal/application/reports"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AnalyticsUC *analytics.UseCase
	DatasetUC   *dataset.UseCase
	AuthUC      *auth.AuthUseCase
	ReportUC    *reports.UseCase
	JWTSecret   string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Dashboard (público, solo lectura)
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	dashboard.Get("/facets", dashboardHandler.GetFacets)
	dashboard.Get("/records", dashboardHandler.GetRecords)
	dashboard.Get("/summary", dashboardHandler.GetSummary)

	// Dataset status (público)
	datasetHandler := NewDatasetHandler(deps.DatasetUC)
	api.Get("/dataset/status", datasetHandler.Status)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/auth/me", authHandler.Me)

	// Recarga del dataset (protegido)
	protected.Post("/dataset/reload", datasetHandler.Reload)

	// Reportes (protegido)
	reportHandler := NewReportHandler(deps.ReportUC)
	protected.Get("/reports/monthly", reportHandler.Export)
}
