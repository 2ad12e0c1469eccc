// Package container provides dependency injection using Uber FX
package container

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/smartbundle/assistant/internal/application/assistant"
	"github.com/smartbundle/assistant/internal/infrastructure/ai/openai"
	"github.com/smartbundle/assistant/internal/infrastructure/config"
	"github.com/smartbundle/assistant/internal/infrastructure/http/server"
	gormRepo "github.com/smartbundle/assistant/internal/infrastructure/persistence/gorm"
	"github.com/smartbundle/assistant/internal/infrastructure/persistence/postgres"
	"github.com/smartbundle/assistant/internal/infrastructure/persistence/sqlite"
	"github.com/smartbundle/assistant/internal/ports/inbound"
	"github.com/smartbundle/assistant/internal/ports/outbound"
	"github.com/smartbundle/assistant/pkg/healthcheck"
	"github.com/smartbundle/assistant/pkg/logger"
)

// Module provides all dependency injection modules
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DatabaseModule,
	RepositoryModule,
	ServiceModule,
	HealthModule,
	HTTPModule,
	LifecycleModule,
)

// ConfigModule provides configuration
var ConfigModule = fx.Provide(
	func() (*config.Config, error) {
		return config.Load("")
	},
)

// LoggerModule provides logging
var LoggerModule = fx.Provide(
	func(cfg *config.Config) (*zap.Logger, error) {
		return logger.New(logger.Config{
			Level:       cfg.App.LogLevel,
			Format:      cfg.App.LogFormat,
			Development: cfg.App.Debug,
		})
	},
)

// DatabaseModule provides the database connection. The driver selects
// between PostgreSQL for deployments and SQLite for local development.
var DatabaseModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
		switch cfg.Database.Driver {
		case "postgres":
			conn, err := postgres.NewConnection(cfg, log)
			if err != nil {
				return nil, err
			}
			return conn.DB(), nil

		case "sqlite":
			dbPath := ""
			if cfg.Database.Database != "" {
				dbPath = cfg.Database.Database + ".db"
			}

			logLevel := gormLogger.Silent
			if cfg.App.Debug {
				logLevel = gormLogger.Info
			}

			db, err := sqlite.SetupDatabase(dbPath, logLevel)
			if err != nil {
				return nil, fmt.Errorf("failed to setup SQLite database: %w", err)
			}

			if err := sqlite.SeedDatabase(db); err != nil {
				log.Warn("Failed to seed database", zap.Error(err))
			}

			log.Info("Connected to SQLite database",
				zap.String("path", dbPath),
				zap.Bool("in_memory", dbPath == ""),
			)
			return db, nil

		default:
			return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
		}
	},
)

// RepositoryModule provides repository implementations
var RepositoryModule = fx.Provide(
	gormRepo.NewProfileRepository,
	gormRepo.NewShoppingListRepository,
	gormRepo.NewRecommendationRepository,
)

// ServiceModule provides the completion engine and application services
var ServiceModule = fx.Provide(
	// Completion engine. Construction fails without an API key.
	fx.Annotate(
		func(cfg *config.Config, log *zap.Logger) (*openai.Client, error) {
			return openai.NewClient(cfg.AI, log)
		},
		fx.As(new(outbound.CompletionEngine)),
	),

	// Assistant service
	fx.Annotate(
		assistant.NewService,
		fx.As(new(inbound.AssistantService)),
	),
)

// HealthModule provides the health check registry
var HealthModule = fx.Provide(
	func(cfg *config.Config, log *zap.Logger, db *gorm.DB) *healthcheck.HealthCheck {
		hc := healthcheck.New(cfg.App.Version, log)

		hc.Register("database", healthcheck.NewChecker("database", func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}))

		hc.Register("completion_engine", healthcheck.NewChecker("completion_engine", func(ctx context.Context) error {
			if cfg.AI.OpenAIKey == "" {
				return fmt.Errorf("completion engine API key not configured")
			}
			return nil
		}))

		return hc
	},
)

// HTTPModule provides the HTTP server
var HTTPModule = fx.Provide(
	server.NewServer,
)

// LifecycleModule registers application lifecycle hooks
var LifecycleModule = fx.Invoke(
	RegisterLifecycleHooks,
)

// RegisterLifecycleHooks starts the HTTP server on application start and
// tears down the server, database, and logger on stop.
func RegisterLifecycleHooks(
	lc fx.Lifecycle,
	cfg *config.Config,
	log *zap.Logger,
	db *gorm.DB,
	srv *server.Server,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting SmartBundle assistant",
				zap.String("version", cfg.App.Version),
				zap.String("environment", cfg.App.Environment),
			)

			go func() {
				if err := srv.Start(); err != nil && err != http.ErrServerClosed {
					log.Fatal("Failed to start HTTP server", zap.Error(err))
				}
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down SmartBundle assistant")

			if err := srv.Shutdown(ctx); err != nil {
				log.Error("Failed to shutdown HTTP server", zap.Error(err))
			}

			sqlDB, err := db.DB()
			if err == nil {
				if err := sqlDB.Close(); err != nil {
					log.Error("Failed to close database connection", zap.Error(err))
				}
			}

			_ = log.Sync()

			return nil
		},
	})
}
