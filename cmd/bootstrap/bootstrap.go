package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doctor-profile-service/config"
	deliveryHttp "doctor-profile-service/internal/delivery/http"
	"doctor-profile-service/internal/delivery/http/handler"
	"doctor-profile-service/internal/delivery/http/middleware"
	"doctor-profile-service/internal/infrastructure/cache"
	"doctor-profile-service/internal/infrastructure/database"
	"doctor-profile-service/internal/infrastructure/metrics"
	"doctor-profile-service/internal/repository"
	"doctor-profile-service/internal/service"
	"doctor-profile-service/internal/service/search"
	"doctor-profile-service/internal/usecase"
	"doctor-profile-service/pkg/jwt"
	"doctor-profile-service/pkg/validator"

	"github.com/gorilla/handlers"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Catalog     *service.DoctorCatalogService
	Server      *http.Server
	accessLog   io.WriteCloser
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	setupLogger(cfg.App.LogLevel)
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	if cfg.DB.AutoMigrate {
		if err := database.RunMigrations(db); err != nil {
			app.Close()
			return nil, err
		}
	}

	// Initialize Redis
	startupCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	redisClient, err := cache.NewRedisClient(startupCtx, cfg.Redis)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.initializeServer(cfg, db, redisClient)

	// A cold cache is not fatal, searches fall back to the database.
	if err := app.Catalog.Warm(startupCtx); err != nil {
		logrus.Warnf("Doctor snapshot cache not warmed: %v", err)
	}

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)
}

// initializeServer wires repositories, services, usecases and handlers
// into the HTTP server
func (app *App) initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	doctorRepo := repository.NewDoctorRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize metrics
	appMetrics := metrics.New()

	// Initialize services
	doctorCache := cache.NewDoctorCache(redisClient, cfg.Search.CacheTTL)
	catalog := service.NewDoctorCatalogService(db, log, doctorRepo, doctorCache, appMetrics)
	engine := search.NewEngine(catalog, cfg.Search.DefaultPageSize)
	auditService := service.NewAuditService(log, auditLogRepo)
	app.Catalog = catalog

	// Initialize usecases
	doctorProfileUsecase := usecase.NewDoctorProfileUsecase(db, log, doctorRepo, engine, catalog, auditService, appMetrics)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)

	// Initialize handlers
	doctorHandler := handler.NewDoctorHandler(doctorProfileUsecase, customValidator, cfg.Search.DefaultPageSize)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase, customValidator)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.AllowedOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(doctorHandler, auditLogHandler, authMiddleware, corsMiddleware, appMetrics.Handler())
	httpRouter := router.Setup()

	// Access log lines go through logrus, panics are recovered per request
	app.accessLog = log.Writer()
	httpHandler := handlers.CombinedLoggingHandler(app.accessLog, httpRouter)
	httpHandler = handlers.RecoveryHandler(handlers.RecoveryLogger(log))(httpHandler)

	// Create server
	app.Server = &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.App.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run serves HTTP until SIGINT/SIGTERM, then drains in-flight requests.
// It returns the listener error if the server could not start.
func (app *App) Run() error {
	serverErr := make(chan error, 1)
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.shutdown()
	return nil
}

func (app *App) shutdown() {
	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.accessLog != nil {
		app.accessLog.Close()
	}
}
