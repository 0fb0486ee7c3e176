package auth

import (
	"go-reestr/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.GET("", handler.LoginPage)
		auth.POST("", middleware.RateLimitByIP(0.5, 5), handler.Login)
		auth.POST("/logout", handler.Logout)
	}
}
