package app

import (
	"go-reestr/internal/auth"
	"go-reestr/internal/company"
	"go-reestr/internal/config"
	"go-reestr/internal/dashboard"
	"go-reestr/internal/health"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

type moduleDeps struct {
	cfg       *config.Config
	repo      company.Repository
	publisher company.EventPublisher
	rdb       *redis.Client
	checks    map[string]health.Check
}

func registerModules(router *gin.Engine, deps moduleDeps) {
	mode := "api"
	if deps.cfg.Demo.Enabled {
		mode = "demo"
	}

	// --- Services ---
	companyService := company.NewServiceWithPublisher(
		deps.repo,
		deps.publisher,
		company.ServiceConfig{
			DefaultLimit: deps.cfg.Registry.DefaultLimit,
			CacheTTL:     deps.cfg.Redis.CacheTTL,
		},
		deps.rdb,
	)
	dashboardService := dashboard.NewService(companyService)

	// --- Handlers ---
	companyHandler := company.NewHandler(companyService)
	companyPageHandler := company.NewPageHandler(companyService)
	dashboardHandler := dashboard.NewHandler(dashboardService)
	authHandler := auth.NewHandler(deps.cfg.IsProduction())
	healthHandler := health.NewHandler(mode, deps.checks)

	// --- Pages ---
	dashboard.RegisterPageRoutes(router, dashboardHandler)
	company.RegisterPageRoutes(router, companyPageHandler)
	auth.RegisterRoutes(router, authHandler)
	health.RegisterRoutes(router, healthHandler)

	// --- JSON API ---
	api := router.Group("/api/v1")
	{
		company.RegisterRoutes(api, companyHandler, deps.rdb)
		dashboard.RegisterRoutes(api, dashboardHandler)
	}
}
