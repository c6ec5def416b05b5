package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/vendra-inc/vendra/internal/infrastructure/ratelimit"
	"github.com/vendra-inc/vendra/internal/interfaces/http/handlers"
	"github.com/vendra-inc/vendra/internal/interfaces/http/middleware"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// PublicRouteConfig holds dependencies for the unauthenticated renewal
// surface.
type PublicRouteConfig struct {
	RenewalHandler    *handlers.RenewalHandler
	RateLimiter       ratelimit.RateLimiter
	RequestsPerMinute int
	Logger            logger.Interface
}

// SetupPublicRoutes configures the public renewal flow. These routes carry
// no auth, so they sit behind a per-IP rate limit instead.
func SetupPublicRoutes(engine *gin.Engine, cfg *PublicRouteConfig) {
	limited := middleware.PublicRateLimit(cfg.RateLimiter, cfg.RequestsPerMinute, cfg.Logger)

	public := engine.Group("/api/public")
	public.Use(limited)
	{
		public.GET("/client-info", cfg.RenewalHandler.GetPublicClientInfo)
		public.GET("/service-client-info", cfg.RenewalHandler.GetPublicServiceClientInfo)
		public.POST("/process-renewal", cfg.RenewalHandler.ProcessRenewal)
	}

	payment := engine.Group("/api/payment")
	payment.Use(limited)
	{
		payment.POST("/create-order", cfg.RenewalHandler.CreateOrder)
	}
}
