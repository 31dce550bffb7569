package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/migrations"
)

// Pool limits for the Postgres connection. The site is read-heavy with
// rare admin writes, so a small pool is plenty.
const (
	pgMaxOpenConns    = 10
	pgMaxIdleConns    = 4
	pgConnMaxIdleTime = 5 * time.Minute
)

// NewConnectPostgres opens a pgx-backed pool and wraps it into a [DB]
// speaking the Postgres dialect.
func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("invalid postgres dsn")
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	conn.SetMaxOpenConns(pgMaxOpenConns)
	conn.SetMaxIdleConns(pgMaxIdleConns)
	conn.SetConnMaxIdleTime(pgConnMaxIdleTime)

	if err = ping(ctx, conn); err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("postgres is unreachable")
		return nil, err
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to postgres")

	return newDB(conn, migrations.DialectPostgres, postgresErrors{}, log), nil
}

// ping checks conn and closes it when the database does not answer.
func ping(ctx context.Context, conn *sql.DB) error {
	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return fmt.Errorf("ping database: %w", err)
	}
	return nil
}
