package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/tutor-classes-api/internal/middleware"
	"github.com/noah-isme/tutor-classes-api/internal/service"
	"github.com/noah-isme/tutor-classes-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/tutor-classes-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/tutor-classes-api/pkg/middleware/requestid"
)

// RouterConfig carries everything the HTTP surface depends on.
type RouterConfig struct {
	Classes        *ClassHandler
	Health         *HealthHandler
	Metrics        *service.MetricsService
	Logger         *zap.Logger
	AllowedOrigins []string
	EnableDocs     bool
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(cfg.Logger))
	r.Use(middleware.Metrics(cfg.Metrics))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))

	r.GET("/health", cfg.Health.Health)
	r.GET("/ready", cfg.Health.Ready)
	r.GET("/metrics", cfg.Health.Prometheus)

	classes := r.Group("/classes")
	{
		classes.GET("", cfg.Classes.Search)
		classes.POST("", cfg.Classes.Create)
		classes.GET("/export", cfg.Classes.Export)
		classes.GET("/count", cfg.Classes.Count)
	}
	r.GET("/subjects", cfg.Classes.Subjects)

	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
	return r
}
