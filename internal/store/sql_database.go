package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/migrations"
)

// DB wraps *sql.DB with what repositories need to stay dialect neutral:
// a squirrel builder with the matching placeholder format and the driver's
// error codes.
type DB struct {
	*sql.DB
	dialect      string
	builder      sq.StatementBuilderType
	driverErrors driverErrors
	logger       *logger.Logger
}

func newDB(conn *sql.DB, dialect string, errs driverErrors, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:           conn,
		dialect:      dialect,
		builder:      sq.StatementBuilder.PlaceholderFormat(placeholder),
		driverErrors: errs,
		logger:       log,
	}
}

// Dialect returns the migrations dialect name of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, db.dialect)
}

// MigrationStatus lists every known migration with its applied state.
func (db *DB) MigrationStatus(ctx context.Context) ([]migrations.MigrationStatus, error) {
	return migrations.Status(ctx, db.DB, db.dialect)
}

// isUniqueViolation reports whether err is a unique constraint failure for
// the connected driver.
func (db *DB) isUniqueViolation(err error) bool {
	return db.driverErrors != nil && db.driverErrors.uniqueViolation(err)
}

// retryable reports the driver's verdict on whether a failed operation
// could succeed if attempted again. Used for logging only.
func (db *DB) retryable(err error) bool {
	return db.driverErrors != nil && db.driverErrors.transient(err)
}

// withTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise.
func (db *DB) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = fn(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommittingTransaction, err)
	}
	return nil
}
