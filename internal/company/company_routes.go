package company

import (
	"go-reestr/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the JSON API
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rdb *redis.Client) {
	companies := r.Group("/companies")
	{
		// reads: 5 req/s, burst 20
		companies.GET("",
			middleware.RateLimitByUser(5, 20),
			handler.List,
		)
		companies.GET("/:id",
			middleware.RateLimitByUser(5, 20),
			handler.GetByID,
		)
		companies.GET("/inn/:inn",
			middleware.RateLimitByUser(5, 20),
			handler.GetByINN,
		)

		// writes: 1 req/s, burst 3
		companies.POST("",
			middleware.RateLimitByUser(1, 3),
			middleware.Idempotency(rdb),
			handler.Create,
		)
	}
}

// RegisterPageRoutes mounts the server-rendered views
func RegisterPageRoutes(r gin.IRouter, handler *PageHandler) {
	r.GET("/tables", handler.Table)
	r.POST("/tables", middleware.RateLimitByUser(1, 3), handler.AddRow)

	// exports build the whole page in memory: 0.5 req/s, burst 2
	r.GET("/tables/export.xls", middleware.RateLimitByUser(0.5, 2), handler.ExportXLS)
	r.GET("/tables/export.xlsx", middleware.RateLimitByUser(0.5, 2), handler.ExportXLSX)

	r.GET("/companies/inn", handler.SearchByINN)
	r.GET("/companies/inn/:inn", handler.DetailByINN)
	r.GET("/companies/:id", handler.Detail)
}
