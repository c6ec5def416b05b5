package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/interfaces/http/handlers"
	"github.com/vendra-inc/vendra/internal/interfaces/http/middleware"
)

// HRRouteConfig holds dependencies for staff, department and position routes.
type HRRouteConfig struct {
	StaffHandler      *handlers.StaffHandler
	DepartmentHandler *handlers.DepartmentHandler
	PositionHandler   *handlers.PositionHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// SetupHRRoutes configures the HR management routes. Staff accounts are
// credentials, so every write here is admin-only.
func SetupHRRoutes(engine *gin.Engine, cfg *HRRouteConfig) {
	staff := engine.Group("/api/staff")
	staff.Use(cfg.AuthMiddleware.RequireAuth())
	staff.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		staff.GET("/all", cfg.StaffHandler.List)
		staff.POST("/create", cfg.StaffHandler.Create)
		staff.PUT("/update/:id", cfg.StaffHandler.Update)
		staff.PATCH("/toggle-status/:id", cfg.StaffHandler.ToggleStatus)
		staff.POST("/reset-password/:id", cfg.StaffHandler.ResetPassword)
		staff.DELETE("/delete/:id", cfg.StaffHandler.Delete)
	}

	department := engine.Group("/api/department")
	department.Use(cfg.AuthMiddleware.RequireAuth())
	department.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		department.GET("/all", cfg.DepartmentHandler.List)
		department.POST("/create", cfg.DepartmentHandler.Create)
		department.PUT("/update/:id", cfg.DepartmentHandler.Update)
		department.PATCH("/toggle-status/:id", cfg.DepartmentHandler.ToggleStatus)
		department.DELETE("/delete/:id", cfg.DepartmentHandler.Delete)
	}

	position := engine.Group("/api/position")
	position.Use(cfg.AuthMiddleware.RequireAuth())
	position.Use(cfg.AuthMiddleware.RequireAdmin())
	{
		position.GET("/all", cfg.PositionHandler.List)
		position.POST("/create", cfg.PositionHandler.Create)
		position.PUT("/update/:id", cfg.PositionHandler.Update)
		position.PATCH("/toggle-status/:id", cfg.PositionHandler.ToggleStatus)
		position.DELETE("/delete/:id", cfg.PositionHandler.Delete)
	}
}
