// Package bootstrap assembles the application's dependencies.
package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/selim/lostfound/internal/app/controllers"
	appMigrations "github.com/selim/lostfound/internal/app/migrations"
	appRepos "github.com/selim/lostfound/internal/app/repositories"
	appRoutes "github.com/selim/lostfound/internal/app/routes"
	appServices "github.com/selim/lostfound/internal/app/services"
	"github.com/selim/lostfound/internal/config"
	"github.com/selim/lostfound/internal/db"
	appMiddleware "github.com/selim/lostfound/internal/middleware"
	pkgAuth "github.com/selim/lostfound/internal/pkg/auth"
	"github.com/selim/lostfound/internal/pkg/filestorage"
	"github.com/selim/lostfound/internal/pkg/logger"
	"github.com/selim/lostfound/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	ItemService       appServices.ItemService
	ClaimService      appServices.ClaimService
	AuthController    *appControllers.AuthController
	ItemController    *appControllers.ItemController
	ClaimController   *appControllers.ClaimController
	SessionMiddleware *appMiddleware.SessionMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	FileStorage       *filestorage.LocalStorage
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the bootstrap administrator.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), database.Pool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return database, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database)

	// The blob base URL must match the static file serving path
	baseURL := ""
	if cfg.Server.PublicURL != "" {
		baseURL = strings.TrimSuffix(cfg.Server.PublicURL, "/") + "/uploads"
	}
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, baseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExp:    cfg.SessionTokenExpiration(),
		TokenIssuer: cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.AdministratorRepository,
		deps.JWTService,
		lgr,
	)
	deps.ItemService = appServices.NewItemService(
		deps.Repos.ItemRepository,
		deps.FileStorage,
		lgr,
	)
	deps.ClaimService = appServices.NewClaimService(
		deps.Repos.ClaimRepository,
		deps.Repos.ItemRepository,
		deps.Repos.StudentRepository,
		lgr,
	)

	deps.SessionMiddleware = appMiddleware.NewSessionMiddleware(deps.JWTService, cfg.Session.CookieName)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, cfg.Session.CookieName, lgr)
	deps.ItemController = appControllers.NewItemController(deps.ItemService, deps.ClaimService, lgr)
	deps.ClaimController = appControllers.NewClaimController(deps.ClaimService, deps.ItemService, lgr)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRoutes(router, appRoutes.Controllers{
		Auth:  deps.AuthController,
		Item:  deps.ItemController,
		Claim: deps.ClaimController,
	}, deps.SessionMiddleware)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
