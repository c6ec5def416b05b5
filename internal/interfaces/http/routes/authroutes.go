package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/interfaces/http/handlers"
	"github.com/vendra-inc/vendra/internal/interfaces/http/middleware"
)

// AuthRouteConfig holds dependencies for authentication routes.
type AuthRouteConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupAuthRoutes configures the login and session verification endpoints.
func SetupAuthRoutes(engine *gin.Engine, cfg *AuthRouteConfig) {
	engine.POST("/api/auth/login", cfg.AuthHandler.AdminLogin)
	engine.POST("/api/staff-auth/login", cfg.AuthHandler.StaffLogin)
	engine.GET("/api/staff-auth/verify", cfg.AuthMiddleware.RequireAuth(), cfg.AuthHandler.Verify)
}
