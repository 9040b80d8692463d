package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/information-sharing-networks/journey/internal/config"
	"github.com/information-sharing-networks/journey/internal/database"
	"github.com/information-sharing-networks/journey/internal/logger"
	"github.com/information-sharing-networks/journey/internal/server"
	"github.com/information-sharing-networks/journey/internal/version"
	"github.com/information-sharing-networks/journey/sql/schema"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

//	@title			journey-server
//	@description	journey-server stores journal entries and provides CRUD and criteria search over them.
//	@description
//	@description	## Common Error Responses
//	@description	All endpoints may return:
//	@description	- `413` Request body exceeds size limit
//	@description	- `429` Rate limit exceeded
//	@description	- `500` Internal server error
//	@description
//	@description	Errors are returned as an ErrorResponse body. The errorKey field identifies the error class
//	@description	(e.g idexists, idnull, validation, badcriteria, notfound).
//	@description
//	@description	## Alert headers
//	@description	Successful writes set `X-<app>-alert` (e.g journeyApp.journalEntry.created) and `X-<app>-params` (the entry id).
//	@description	Client errors set `X-<app>-error` (e.g error.idexists). `<app>` is the APPLICATION_NAME setting.
//	@description
//	@description	## Request Limits
//	@description	- **Rate limiting**: Configurable requests per second (see env vars) - default 100 rps (set to 0 to disable)
//	@description	- **Request size limits**: Configurable (see env vars) - default 1MB
//	@description
//	@description	Check the X-Max-Request-Size response header for the configured limit.
//	@license.name	MIT

//	@servers.url			http://localhost:8080
//	@servers.description	Development server

//	@accept		json
//	@produce	json

//	@tag.name			JournalEntries
//	@tag.description	Create, read, update, delete, search and count journal entries

//	@tag.name			Common
//	@tag.description	Server API endpoints (health, readiness, version, docs)

func main() {
	cmd := &cobra.Command{
		Use:   "journey-server",
		Short: "Journal entry API server",
		Long:  `journey-server serves the /api/journal-entries REST API backed by PostgreSQL`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply the database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return migrate()
		},
	})

	v := version.Get()
	cmd.Version = fmt.Sprintf("%s (built %s, commit %s)", v.Version, v.BuildDate, v.GitCommit)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		os.Exit(1)
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	appLogger.Info("Configuration loaded",
		slog.String("ENVIRONMENT", cfg.Environment),
		slog.String("HOST", cfg.Host),
		slog.Int("PORT", cfg.Port),
		slog.String("LOG_LEVEL", cfg.LogLevel),
		slog.String("APPLICATION_NAME", cfg.ApplicationName),
		slog.Any("ALLOWED_ORIGINS", cfg.AllowedOrigins),
		slog.Int("RATE_LIMIT_RPS", int(cfg.RateLimitRPS)),
		slog.Int64("MAX_REQUEST_SIZE", cfg.MaxRequestSize),
		slog.Bool("AUTO_MIGRATE", cfg.AutoMigrate),
	)

	pool, err := openPool(cfg, appLogger)
	if err != nil {
		appLogger.Error("Database connection failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.AutoMigrate {
		if err := database.Migrate(ctx, pool, schema.FS); err != nil {
			appLogger.Error("Migration failed", slog.String("error", err.Error()))
			pool.Close()
			os.Exit(1)
		}
		appLogger.Info("database migrations applied")
	}

	appLogger.Info("Starting server", slog.String("version", version.Get().Version))

	server := server.NewServer(pool, cfg, appLogger)
	defer server.DatabaseShutdown()

	if err := server.Start(ctx); err != nil {
		appLogger.Error("Server error", slog.String("error", err.Error()))
		return err
	}

	appLogger.Info("server shutdown complete")
	return nil
}

func migrate() error {
	cfg, err := config.NewServerConfig()
	if err != nil {
		log.Printf("failed to load configuration: %v", err.Error())
		return err
	}

	appLogger := logger.InitLogger(logger.ParseLogLevel(cfg.LogLevel), cfg.Environment)

	pool, err := openPool(cfg, appLogger)
	if err != nil {
		return err
	}
	defer pool.Close()

	ctx := context.Background()
	if err := database.Migrate(ctx, pool, schema.FS); err != nil {
		return err
	}

	schemaVersion, err := database.MigrationStatus(ctx, pool, schema.FS)
	if err != nil {
		return err
	}
	appLogger.Info("database migrations applied", slog.Int64("schema_version", schemaVersion))
	return nil
}

// openPool creates the pgx pool from the DB_* settings and checks the database answers.
func openPool(cfg *config.ServerEnvironment, appLogger *slog.Logger) (*pgxpool.Pool, error) {
	dbCtx, dbCancel := context.WithTimeout(context.Background(), cfg.DatabasePingTimeout)
	defer dbCancel()

	poolConfig, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	poolConfig.MaxConns = cfg.DBMaxConnections
	poolConfig.MinConns = cfg.DBMinConnections
	poolConfig.MaxConnLifetime = cfg.DBMaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.DBMaxConnIdleTime
	poolConfig.ConnConfig.ConnectTimeout = cfg.DBConnectTimeout

	pool, err := pgxpool.NewWithConfig(dbCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err = pool.Ping(dbCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database via pool: %w", err)
	}

	appLogger.Info("connected to PostgreSQL",
		slog.String("host", poolConfig.ConnConfig.Host),
		slog.String("database", poolConfig.ConnConfig.Database),
	)
	return pool, nil
}
