package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/interfaces/http/handlers"
	"github.com/vendra-inc/vendra/internal/interfaces/http/middleware"
)

// CatalogRouteConfig holds dependencies for the software, service and
// package routes.
type CatalogRouteConfig struct {
	SoftwareHandler *handlers.SoftwareHandler
	ServiceHandler  *handlers.ServiceHandler
	PackageHandler  *handlers.PackageHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// SetupCatalogRoutes configures the catalog management routes. All of them
// sit behind authentication; both admin and staff tokens are accepted.
func SetupCatalogRoutes(engine *gin.Engine, cfg *CatalogRouteConfig) {
	software := engine.Group("/api/software")
	software.Use(cfg.AuthMiddleware.RequireAuth())
	{
		software.GET("/all", cfg.SoftwareHandler.List)
		software.POST("/add", cfg.SoftwareHandler.Create)
		software.PUT("/update/:id", cfg.SoftwareHandler.Update)
		software.DELETE("/delete/:id", cfg.SoftwareHandler.Delete)
	}

	service := engine.Group("/api/service")
	service.Use(cfg.AuthMiddleware.RequireAuth())
	{
		service.GET("/all", cfg.ServiceHandler.List)
		service.POST("/create", cfg.ServiceHandler.Create)
		service.PUT("/update/:id", cfg.ServiceHandler.Update)
		service.PATCH("/toggle-status/:id", cfg.ServiceHandler.ToggleStatus)
		service.DELETE("/delete/:id", cfg.ServiceHandler.Delete)
	}

	pkg := engine.Group("/api/package")
	pkg.Use(cfg.AuthMiddleware.RequireAuth())
	{
		pkg.GET("/all", cfg.PackageHandler.List)
		pkg.POST("/create", cfg.PackageHandler.Create)
		pkg.PUT("/update/:id", cfg.PackageHandler.Update)
		pkg.PATCH("/toggle-status/:id", cfg.PackageHandler.ToggleStatus)
		pkg.DELETE("/delete/:id", cfg.PackageHandler.Delete)
	}
}
