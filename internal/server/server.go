package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/ridwanfathin/shelf-price-monitor/internal/config"
	"github.com/ridwanfathin/shelf-price-monitor/internal/handler"
	"github.com/ridwanfathin/shelf-price-monitor/internal/logger"
	"github.com/ridwanfathin/shelf-price-monitor/internal/metrics"
	"github.com/ridwanfathin/shelf-price-monitor/internal/middleware"
	"github.com/ridwanfathin/shelf-price-monitor/internal/session"
)

const shutdownTimeout = 10 * time.Second

// Server represents the HTTP server of the price monitor console
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	log        *logger.Logger
	metrics    *metrics.Metrics

	stores   *handler.StoreHandler
	sessions *handler.SessionHandler
	gallery  *handler.GalleryHandler
	uploads  *handler.UploadHandler
	products *handler.ProductHandler
	review   *handler.ReviewHandler
	health   *handler.HealthHandler
}

// Deps are the collaborators the server exposes
type Deps struct {
	Session *session.Session
	Backend handler.BackendChecker
	Logger  *logger.Logger
	Metrics *metrics.Metrics
}

// NewServer creates and configures a new server instance
func NewServer(cfg *config.Config, deps Deps) *Server {
	if !cfg.Server.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.Server.CORSOrigins))
	router.Use(middleware.RequestID(deps.Logger))
	router.Use(deps.Metrics.Middleware())
	router.Use(middleware.RequestLogger(deps.Logger, middleware.LoggerConfig{
		LogBodies: cfg.Server.LogBodies,
		SkipPaths: []string{"/health", "/metrics"},
	}))

	server := &Server{
		router:  router,
		config:  cfg,
		log:     deps.Logger,
		metrics: deps.Metrics,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
			Handler:      router,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
		stores:   handler.NewStoreHandler(deps.Session),
		sessions: handler.NewSessionHandler(deps.Session),
		gallery:  handler.NewGalleryHandler(deps.Session),
		uploads:  handler.NewUploadHandler(deps.Session),
		products: handler.NewProductHandler(deps.Session),
		review:   handler.NewReviewHandler(deps.Session),
		health:   handler.NewHealthHandler(deps.Backend),
	}

	server.setupRoutes()

	return server
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health.Health)
	s.router.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	// Swagger UI at /api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})

	api := s.router.Group("/api")

	sessions := api.Group("/session")
	sessions.GET("", s.sessions.State)
	sessions.POST("/restore", s.sessions.Restore)
	sessions.POST("/navigate", s.sessions.Navigate)
	sessions.POST("/back", s.sessions.Back)

	stores := api.Group("/stores")
	stores.GET("", s.stores.ListStores)
	stores.POST("", s.stores.CreateStore)
	stores.POST("/reload", s.stores.ReloadStores)
	stores.GET("/targets", s.stores.UploadTargets)
	stores.GET("/facets", s.stores.Facets)
	stores.POST("/current/refresh", s.stores.RefreshStore)
	stores.GET("/:id", s.stores.GetStore)
	stores.POST("/:id/products", s.stores.AddManualProduct)

	gallery := api.Group("/gallery")
	gallery.GET("/slide", s.gallery.Slide)
	gallery.POST("/slide", s.gallery.AdvanceSlide)
	gallery.GET("/modal", s.gallery.Modal)
	gallery.POST("/modal", s.gallery.OpenModal)
	gallery.POST("/modal/advance", s.gallery.AdvanceModal)
	gallery.DELETE("/modal", s.gallery.CloseModal)

	uploads := api.Group("/uploads")
	uploads.GET("", s.uploads.Selection)
	uploads.GET("/last", s.uploads.LastBatch)
	uploads.POST("/files", s.uploads.AddFiles)
	uploads.DELETE("/files", s.uploads.ClearFiles)
	uploads.DELETE("/files/:index", s.uploads.RemoveFile)
	uploads.POST("/submit", s.uploads.Submit)

	api.GET("/products", s.products.ListProducts)
	api.GET("/dashboard", s.products.Dashboard)

	api.GET("/review", s.review.ListPending)
	api.POST("/review/:id/approve", s.review.Approve)
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		s.log.Info(ctx, fmt.Sprintf("server listening on port %d", s.config.Server.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info(context.Background(), "shutting down server")
	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.log.Info(context.Background(), "server exited gracefully")
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
