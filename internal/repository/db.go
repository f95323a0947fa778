package repository

import (
	"context"
	"database/sql"
	"log/slog"
	"strings"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/tkarvonen/huoltokirja/gen/ent"
	"github.com/tkarvonen/huoltokirja/internal/common"
)

// Open creates a pgx pool, wraps it for Ent, and returns both.
func Open(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, *pgxpool.Pool, error) {
	logger.Info("connecting to database", "dsn", cfg.DSN)
	pc, err := pgxpool.ParseConfig(cfg.DSN)
	if err != nil {
		logger.Error("failed to parse database config", "error", err)
		return nil, nil, err
	}

	pc.MaxConns = cfg.MaxConns
	pc.MinConns = cfg.MinConns
	pc.MaxConnLifetime = cfg.MaxConnLifetime
	pc.MaxConnIdleTime = cfg.MaxConnIdleTime
	pc.ConnConfig.RuntimeParams["application_name"] = "huoltokirja"
	if cfg.StatementTimeout > 0 {
		pc.ConnConfig.RuntimeParams["statement_timeout"] = cfg.StatementTimeout.String()
	}

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	pool, err := pgxpool.NewWithConfig(ctx, pc)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		return nil, nil, err
	}

	// Wrap pool as *sql.DB for Ent
	db := stdlib.OpenDBFromPool(pool)
	drv := entsql.OpenDB(dialect.Postgres, db)
	client := ent.NewClient(ent.Driver(drv))

	logger.Info("successfully connected to database")
	return client, pool, nil
}

// OpenSQLite opens an embedded SQLite index, defaulting to a shared in-memory
// database. Used when no Postgres DSN is configured.
func OpenSQLite(dsn string, logger *slog.Logger) (*ent.Client, error) {
	if dsn == "" {
		dsn = "file:huoltokirja?mode=memory&cache=shared&_pragma=foreign_keys(1)"
	}
	logger.Info("opening sqlite index", "dsn", dsn)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// The modernc driver misbehaves with concurrent writers on one connection
	// pool; the index is low-traffic, so a single connection is fine.
	db.SetMaxOpenConns(1)
	drv := entsql.OpenDB(dialect.SQLite, db)
	return ent.NewClient(ent.Driver(drv)), nil
}

// InitDatabase opens the receipt index (Postgres when a DSN is configured,
// embedded SQLite otherwise) and runs schema migration. The returned cleanup
// closes everything.
func InitDatabase(ctx context.Context, cfg common.DatabaseConfig, logger *slog.Logger) (*ent.Client, func(), error) {
	if logger == nil {
		logger = slog.Default()
	}

	var client *ent.Client
	var pool *pgxpool.Pool
	var err error
	if cfg.DSN == "" || strings.HasPrefix(cfg.DSN, "file:") || strings.HasPrefix(cfg.DSN, "sqlite:") {
		client, err = OpenSQLite(strings.TrimPrefix(cfg.DSN, "sqlite:"), logger)
	} else {
		client, pool, err = Open(ctx, cfg, logger)
	}
	if err != nil {
		return nil, nil, err
	}

	if err := client.Schema.Create(ctx); err != nil {
		Close(client, pool, logger)
		return nil, nil, common.WrapError(err, "schema migration failed")
	}
	cleanup := func() { Close(client, pool, logger) }
	return client, cleanup, nil
}

// Close closes the database connections gracefully.
func Close(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) {
	logger.Info("closing database connections")
	if entc != nil {
		if err := entc.Close(); err != nil {
			logger.Error("failed to close ent client", "error", err)
		}
	}
	if pool != nil {
		pool.Close()
	}
	logger.Info("database connections closed")
}

// HealthCheck pings the pool to catch DSN issues early.
func HealthCheck(ctx context.Context, pool *pgxpool.Pool, timeout time.Duration, logger *slog.Logger) error {
	logger.Debug("pinging database")
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return pool.Ping(ctx)
}
