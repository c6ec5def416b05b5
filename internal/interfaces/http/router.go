package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/vendra-inc/vendra/internal/infrastructure/config"
	"github.com/vendra-inc/vendra/internal/interfaces/http/middleware"
	"github.com/vendra-inc/vendra/internal/interfaces/http/routes"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// Router owns the HTTP surface: the container with all wired dependencies
// plus the route table.
type Router struct {
	container *Container
}

// NewRouter creates the container and returns a router ready for SetupRoutes.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	return &Router{container: NewContainer(db, cfg, log)}
}

// SetupRoutes attaches global middleware and registers every route group.
func (r *Router) SetupRoutes() {
	c := r.container
	engine := c.engine

	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(c.log))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupAuthRoutes(engine, &routes.AuthRouteConfig{
		AuthHandler:    c.hdlrs.auth,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupCatalogRoutes(engine, &routes.CatalogRouteConfig{
		SoftwareHandler: c.hdlrs.software,
		ServiceHandler:  c.hdlrs.service,
		PackageHandler:  c.hdlrs.pkg,
		AuthMiddleware:  c.authMiddleware,
	})

	routes.SetupClientRoutes(engine, &routes.ClientRouteConfig{
		ClientHandler:  c.hdlrs.client,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupHRRoutes(engine, &routes.HRRouteConfig{
		StaffHandler:      c.hdlrs.staff,
		DepartmentHandler: c.hdlrs.department,
		PositionHandler:   c.hdlrs.position,
		AuthMiddleware:    c.authMiddleware,
	})

	routes.SetupPublicRoutes(engine, &routes.PublicRouteConfig{
		RenewalHandler:    c.hdlrs.renewal,
		RateLimiter:       c.rateLimiter,
		RequestsPerMinute: c.cfg.RateLimit.PublicRequestsPerMinute,
		Logger:            c.log,
	})
}

// GetEngine exposes the gin engine for the HTTP server.
func (r *Router) GetEngine() *gin.Engine {
	return r.container.GetEngine()
}

// Shutdown tears down container-owned resources.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
