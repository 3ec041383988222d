package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/rcabrera/studentrecords/internal/app/controllers"
	appMigrations "github.com/rcabrera/studentrecords/internal/app/migrations"
	appRepos "github.com/rcabrera/studentrecords/internal/app/repositories"
	appRoutes "github.com/rcabrera/studentrecords/internal/app/routes"
	appServices "github.com/rcabrera/studentrecords/internal/app/services"
	"github.com/rcabrera/studentrecords/internal/config"
	"github.com/rcabrera/studentrecords/internal/db"
	appMiddleware "github.com/rcabrera/studentrecords/internal/middleware"
	pkgAuth "github.com/rcabrera/studentrecords/internal/pkg/auth"
	"github.com/rcabrera/studentrecords/internal/pkg/helpers"
	"github.com/rcabrera/studentrecords/internal/pkg/logger"
	"github.com/rcabrera/studentrecords/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	StudentService    appServices.StudentService
	ExportService     appServices.ExportService
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	PageController    *appControllers.PageController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	SessionService    *pkgAuth.SessionService
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "configs/config.yaml"
	}

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
// seeds default data.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

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

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Log but keep starting: a partially seeded database is still usable
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.SessionService = pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:   cfg.Session.Secret,
		TokenExpiry: helpers.ParseDuration(cfg.Session.TokenExpiry, 168*time.Hour),
		Issuer:      cfg.Session.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.SessionService, lgr)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.ExportService = appServices.NewExportService(deps.Repos.StudentRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.SessionService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.SessionService, cfg.IsProduction(), lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, deps.ExportService, lgr)
	deps.PageController = appControllers.NewPageController()

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.Default()

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.PageController,
		deps.AuthMiddleware,
	)

	return router
}
