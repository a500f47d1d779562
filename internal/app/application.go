package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/AnanduApillAi/kendo-forms/internal/builder"
	"github.com/AnanduApillAi/kendo-forms/internal/config"
	"github.com/AnanduApillAi/kendo-forms/internal/handlers"
	"github.com/AnanduApillAi/kendo-forms/internal/middleware"
	"github.com/AnanduApillAi/kendo-forms/internal/models"
	"github.com/AnanduApillAi/kendo-forms/internal/repository"
	"github.com/AnanduApillAi/kendo-forms/internal/service"
	"github.com/AnanduApillAi/kendo-forms/pkg/cache"
	"github.com/AnanduApillAi/kendo-forms/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db       *gorm.DB
	cache    *cache.Cache
	sessions *builder.Manager
	limiter  *middleware.RateLimiter

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	Collection repository.CollectionRepository
}

type serviceContainer struct {
	Assistant  *service.AssistantService
	Collection *service.CollectionService
	Export     *service.ExportService
}

type handlerContainer struct {
	Session    *handlers.SessionHandler
	Customize  *handlers.CustomizeHandler
	Assistant  *handlers.AssistantHandler
	Collection *handlers.CollectionHandler
	Export     *handlers.ExportHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.initCache(); err != nil {
		return nil, err
	}

	app.sessions = builder.NewManager(cfg.SessionTTL)

	app.initRepositories()

	if err := app.initServices(); err != nil {
		return nil, err
	}

	app.initHandlers()
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   90 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.sessions != nil {
		a.sessions.Close()
	}

	if a.limiter != nil {
		a.limiter.Close()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(&models.FormCollection{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_form_collections_created_at ON form_collections(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_form_collections_form_state ON form_collections USING GIN (form_state)",
	}
	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) initCache() error {
	if !a.cfg.EnableCache {
		a.cache = cache.Disabled()
		return nil
	}

	c, err := cache.NewCache(a.cfg.RedisURL, true)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	a.cache = c
	return nil
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Collection: repository.NewCollectionRepository(a.db),
	}
}

func (a *Application) initServices() error {
	var generator service.FormGenerator
	if a.cfg.OpenAIAPIKey == "" {
		logger.Warn("OPENAI_API_KEY is not set, assistant generation is disabled", nil)
		generator = service.NewDisabledGenerator()
	} else {
		g, err := service.NewOpenAIGenerator(service.OpenAIGeneratorConfig{
			APIKey:  a.cfg.OpenAIAPIKey,
			Model:   a.cfg.OpenAIModel,
			BaseURL: a.cfg.OpenAIBaseURL,
		})
		if err != nil {
			return fmt.Errorf("failed to create form generator: %w", err)
		}
		generator = g
	}

	a.services = serviceContainer{
		Assistant:  service.NewAssistantService(generator, a.cfg.GenerationTimeout, a.cfg.HistoryWindow, a.cfg.MaxPromptChars),
		Collection: service.NewCollectionService(a.repositories.Collection, a.cache),
		Export:     service.NewExportService(),
	}
	return nil
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Session:    handlers.NewSessionHandler(a.sessions),
		Customize:  handlers.NewCustomizeHandler(a.sessions),
		Assistant:  handlers.NewAssistantHandler(a.sessions, a.services.Assistant),
		Collection: handlers.NewCollectionHandler(a.services.Collection),
		Export:     handlers.NewExportHandler(a.sessions, a.services.Export),
	}
}

func (a *Application) initRouter() {
	if a.cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLogger())

	if a.cfg.EnableMetrics {
		router.Use(middleware.MetricsMiddleware())
	}

	a.limiter = middleware.NewRateLimiter(a.cfg.RateLimitRequests, a.cfg.RateLimitWindow)
	router.Use(a.limiter.Middleware())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"sessions": a.sessions.Count(),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		v1.GET("/builder/components", a.handlers.Export.Palette)
		v1.GET("/builder/sample", a.handlers.Export.SampleForm)

		sessions := v1.Group("/sessions")
		{
			sessions.POST("", a.handlers.Session.Create)
			sessions.GET("/:id", a.handlers.Session.Get)
			sessions.DELETE("/:id", a.handlers.Session.Delete)

			sessions.POST("/:id/components", a.handlers.Session.AddComponent)
			sessions.POST("/:id/rows", a.handlers.Session.InsertRow)
			sessions.POST("/:id/rows/inline", a.handlers.Session.InsertInline)
			sessions.PUT("/:id/components/:componentId", a.handlers.Session.UpdateComponent)
			sessions.DELETE("/:id/components/:componentId", a.handlers.Session.RemoveComponent)
			sessions.POST("/:id/rows/move", a.handlers.Session.MoveRow)
			sessions.POST("/:id/rows/reorder", a.handlers.Session.ReorderRow)
			sessions.PUT("/:id/selection", a.handlers.Session.Select)
			sessions.PUT("/:id/schema", a.handlers.Session.ReplaceSchema)

			sessions.POST("/:id/customize/:componentId", a.handlers.Customize.Begin)
			sessions.PUT("/:id/customize", a.handlers.Customize.Update)
			sessions.POST("/:id/customize/options", a.handlers.Customize.AddOption)
			sessions.PUT("/:id/customize/options", a.handlers.Customize.UpdateOption)
			sessions.DELETE("/:id/customize/options", a.handlers.Customize.RemoveOption)
			sessions.POST("/:id/customize/commit", a.handlers.Customize.Commit)
			sessions.POST("/:id/customize/cancel", a.handlers.Customize.Cancel)

			sessions.POST("/:id/assistant", a.handlers.Assistant.Submit)
			sessions.GET("/:id/assistant/history", a.handlers.Assistant.History)
			sessions.POST("/:id/assistant/restore", a.handlers.Assistant.Restore)

			sessions.GET("/:id/export/json", a.handlers.Export.ExportJSON)
			sessions.GET("/:id/export/code", a.handlers.Export.ExportCode)
			sessions.POST("/:id/import", a.handlers.Export.Import)
		}

		collections := v1.Group("/collections")
		{
			collections.POST("", a.handlers.Collection.Create)
			collections.GET("", a.handlers.Collection.GetAll)
			collections.GET("/:id", a.handlers.Collection.GetByID)
			collections.PUT("/:id", a.handlers.Collection.Update)
			collections.DELETE("/:id", a.handlers.Collection.Delete)
		}
	}

	a.router = router
}
