package http

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vendra-inc/vendra/internal/infrastructure/auth"
	"github.com/vendra-inc/vendra/internal/infrastructure/bridge"
	"github.com/vendra-inc/vendra/internal/infrastructure/config"
	"github.com/vendra-inc/vendra/internal/infrastructure/email"
	"github.com/vendra-inc/vendra/internal/infrastructure/markdown"
	"github.com/vendra-inc/vendra/internal/infrastructure/payment/razorpay"
	"github.com/vendra-inc/vendra/internal/infrastructure/ratelimit"
	"github.com/vendra-inc/vendra/internal/interfaces/http/middleware"
	shareddb "github.com/vendra-inc/vendra/internal/shared/db"
	"github.com/vendra-inc/vendra/internal/shared/logger"
)

// Container holds all infrastructure components, repositories, use cases and
// handlers. It wires everything together and owns shutdown of the pieces
// that need explicit teardown.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	authMiddleware *middleware.AuthMiddleware
	rateLimiter    ratelimit.RateLimiter

	jwtSvc      *auth.JWTService
	hasher      *auth.BcryptPasswordHasher
	txManager   *shareddb.TransactionManager
	gateway     *razorpay.Gateway
	provisioner *bridge.HTTPProvisioner
	renderer    *markdown.Renderer
	receiptSvc  *email.ReceiptService
}

// NewContainer creates a Container with all dependencies wired together.
// Wiring order matters: infrastructure first, then repositories, use cases,
// handlers and finally the middlewares that guard them.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	c.initInfrastructure()
	c.initRepositories()
	c.initUseCases()
	c.initHandlers()
	c.initMiddleware()

	return c
}

func (c *Container) initInfrastructure() {
	c.redis = initRedis(c.cfg, c.log)

	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	c.txManager = shareddb.NewTransactionManager(c.db)
	c.gateway = razorpay.NewGateway(c.cfg.Razorpay, c.log)
	c.provisioner = bridge.NewHTTPProvisioner(c.cfg.Bridge, c.log)
	c.renderer = markdown.NewRenderer()
	c.receiptSvc = email.NewReceiptService(c.cfg.Email)
	c.rateLimiter = ratelimit.NewRedisRateLimiter(c.redis)
}

func (c *Container) initMiddleware() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		log.Fatalw("failed to connect to Redis", "error", err)
	}
	log.Infow("Redis connection established")

	return redisClient
}

// GetEngine returns the underlying gin engine for the HTTP server.
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown releases resources the container owns. The database connection
// is closed by the caller that opened it.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Errorw("failed to close Redis client", "error", err)
		}
	}
}
