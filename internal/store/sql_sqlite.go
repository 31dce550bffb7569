package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/brand-showcase/internal/config"
	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/migrations"
)

// sqliteParams turns on foreign keys and makes concurrent writers wait
// instead of failing with SQLITE_BUSY.
const sqliteParams = "_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL"

// NewConnectSQLite opens the SQLite database named by cfg.DSN, creating the
// file and its directory on first use. A DSN carrying query parameters is
// handed to the driver untouched.
func NewConnectSQLite(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := cfg.DSN
	if !strings.Contains(dsn, "?") {
		if err := ensureFile(dsn); err != nil {
			log.Err(err).Str("func", "NewConnectSQLite").Str("path", dsn).Msg("cannot prepare database file")
			return nil, err
		}
		dsn = "file:" + dsn + "?" + sqliteParams
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("invalid sqlite dsn")
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err = ping(ctx, conn); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("sqlite database is unusable")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("opened sqlite database")

	return newDB(conn, migrations.DialectSQLite, sqliteErrors{}, log), nil
}

func ensureFile(path string) error {
	if path == "" {
		return errors.New("empty database path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create database directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_RDONLY|os.O_CREATE, 0o644)
	if err != nil {
		return fmt.Errorf("create database file: %w", err)
	}
	return f.Close()
}
