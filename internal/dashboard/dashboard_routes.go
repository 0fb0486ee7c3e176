package dashboard

import "github.com/gin-gonic/gin"

func RegisterRoutes(api *gin.RouterGroup, handler *Handler) {
	api.GET("/dashboard/summary", handler.GetSummary)
}

func RegisterPageRoutes(r gin.IRouter, handler *Handler) {
	r.GET("/", handler.Page)
}
