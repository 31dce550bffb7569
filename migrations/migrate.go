// Package migrations embeds the versioned database schema and applies it
// with goose. Each supported dialect has its own directory of SQL files.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

// Dialect names accepted by Migrate and Status.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite"
)

var errNilDB = errors.New("migration error: db is nil")

// Migrate brings db up to the latest schema version for dialect.
func Migrate(ctx context.Context, db *sql.DB, dialect string) error {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return err
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

// MigrationStatus describes one migration file and whether it is applied.
type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

// Status lists every known migration for dialect with its applied state.
func Status(ctx context.Context, db *sql.DB, dialect string) ([]MigrationStatus, error) {
	provider, err := newProvider(db, dialect)
	if err != nil {
		return nil, err
	}

	results, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	statuses := make([]MigrationStatus, 0, len(results))
	for _, r := range results {
		statuses = append(statuses, MigrationStatus{
			Version: r.Source.Version,
			Source:  r.Source.Path,
			Applied: r.State == goose.StateApplied,
		})
	}
	return statuses, nil
}

func newProvider(db *sql.DB, dialect string) (*goose.Provider, error) {
	if db == nil {
		return nil, errNilDB
	}

	var gooseDialect goose.Dialect
	switch dialect {
	case DialectPostgres:
		gooseDialect = goose.DialectPostgres
	case DialectSQLite:
		gooseDialect = goose.DialectSQLite3
	default:
		return nil, fmt.Errorf("migration error: unsupported dialect %q", dialect)
	}

	migrationsFS, err := fs.Sub(embedMigrations, dialect)
	if err != nil {
		return nil, fmt.Errorf("migration error: %w", err)
	}

	provider, err := goose.NewProvider(gooseDialect, db, migrationsFS)
	if err != nil {
		return nil, fmt.Errorf("migration error setting up provider: %w", err)
	}
	return provider, nil
}
