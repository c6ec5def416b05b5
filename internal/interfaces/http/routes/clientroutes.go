package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/interfaces/http/handlers"
	"github.com/vendra-inc/vendra/internal/interfaces/http/middleware"
)

// ClientRouteConfig holds dependencies for client registry routes.
type ClientRouteConfig struct {
	ClientHandler  *handlers.ClientHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupClientRoutes configures client registry routes.
func SetupClientRoutes(engine *gin.Engine, cfg *ClientRouteConfig) {
	clients := engine.Group("/api/client")
	clients.Use(cfg.AuthMiddleware.RequireAuth())
	{
		clients.GET("/all", cfg.ClientHandler.List)
		clients.GET("/history/:id", cfg.ClientHandler.History)
		clients.GET("/external/:id", cfg.ClientHandler.ListExternal)
		clients.POST("/create", cfg.ClientHandler.Create)
		clients.PUT("/update/:id", cfg.ClientHandler.Update)
		clients.PATCH("/toggle-status/:id", cfg.ClientHandler.ToggleStatus)
		clients.DELETE("/delete/:id", cfg.ClientHandler.Delete)
		clients.POST("/delete-external", cfg.ClientHandler.DeleteExternal)
	}
}
