package api

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"time"

	"github.com/Aidin1998/apiregistry/common/apiutil"
	_ "github.com/Aidin1998/apiregistry/docs"
	"github.com/Aidin1998/apiregistry/internal/infrastructure/config"
	"github.com/Aidin1998/apiregistry/pkg/models"
	"github.com/gin-contrib/cors"
	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// EndpointService is the endpoint registry as seen by the HTTP handlers.
type EndpointService interface {
	List(ctx context.Context) ([]models.APIEndpoint, error)
	Create(ctx context.Context, input models.EndpointInput) (*models.APIEndpoint, error)
	Get(ctx context.Context, id string) (*models.APIEndpoint, error)
	Update(ctx context.Context, id string, input models.EndpointInput) (*models.APIEndpoint, error)
	Delete(ctx context.Context, id string) error
}

// ReadinessProbe reports whether the storage layer can serve requests.
type ReadinessProbe func(ctx context.Context) error

// BuildInfo is reported by /version.
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Options contains the dependencies of a Server
type Options struct {
	Logger    *zap.Logger
	Config    config.ServerConfig
	Endpoints EndpointService
	Ready     ReadinessProbe
	Build     BuildInfo
}

// Server represents the API server
type Server struct {
	router    *gin.Engine
	logger    *zap.Logger
	config    config.ServerConfig
	endpoints EndpointService
	ready     ReadinessProbe
	build     BuildInfo
}

// NewServer creates the API server and registers all routes
func NewServer(opts Options) (*Server, error) {
	if opts.Logger == nil {
		return nil, errors.New("logger is required")
	}
	if opts.Endpoints == nil {
		return nil, errors.New("endpoint service is required")
	}
	if opts.Build.Service == "" {
		opts.Build.Service = "apiregistry"
	}

	server := &Server{
		logger:    opts.Logger,
		config:    opts.Config,
		endpoints: opts.Endpoints,
		ready:     opts.Ready,
		build:     opts.Build,
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true

	// Add middleware
	router.Use(apiutil.RequestIDMiddleware())
	router.Use(ginzap.Ginzap(opts.Logger, time.RFC3339, true))
	router.Use(ginzap.CustomRecoveryWithZap(opts.Logger, true, func(c *gin.Context, _ any) {
		apiutil.WriteErrorResponse(c, http.StatusInternalServerError, "internal", "Internal server error", nil)
		c.Abort()
	}))
	router.Use(otelgin.Middleware(opts.Build.Service))
	if corsMiddleware := newCORS(opts.Config.CORSAllowOrigins); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}
	router.Use(apiutil.MetricsMiddleware())
	router.Use(apiutil.ErrorMiddleware(opts.Logger))

	server.router = router
	server.registerRoutes()
	return server, nil
}

// Router returns the internal Gin engine
func (s *Server) Router() *gin.Engine {
	return s.router
}

// registerRoutes registers all API routes
func (s *Server) registerRoutes() {
	s.router.GET("/health", s.healthCheck)
	s.router.GET("/ready", s.readinessCheck)
	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	s.router.GET("/version", s.versionHandler)

	// Swagger documentation endpoint
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	collection := &collectionHandler{endpoints: s.endpoints}
	item := &itemHandler{endpoints: s.endpoints}

	base := s.router.Group(s.config.BasePath)
	{
		base.GET("/endpoints", collection.list)
		base.POST("/endpoints", collection.create)

		base.GET("/endpoints/:id", item.get)
		base.PUT("/endpoints/:id", item.update)
		base.DELETE("/endpoints/:id", item.delete)
	}

	s.router.NoRoute(apiutil.NotFoundHandler)
	s.router.NoMethod(apiutil.MethodNotAllowedHandler)
}

func newCORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		return nil
	}

	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", apiutil.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", apiutil.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
