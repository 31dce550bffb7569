package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// driverErrors interprets errors returned by a specific database driver.
type driverErrors interface {
	// transient reports whether the failed statement may succeed on retry.
	transient(err error) bool
	// uniqueViolation reports whether err is a unique constraint failure.
	uniqueViolation(err error) bool
}

// postgresErrors reads SQLSTATE codes from pgconn errors.
type postgresErrors struct{}

func pgCode(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}

// transient covers connection loss (class 08), rolled back transactions
// (class 40) and a server that is still starting up. Constraint, data and
// syntax errors never are.
func (postgresErrors) transient(err error) bool {
	code, ok := pgCode(err)
	if !ok {
		return false
	}
	return pgerrcode.IsConnectionException(code) ||
		pgerrcode.IsTransactionRollback(code) ||
		code == pgerrcode.CannotConnectNow
}

func (postgresErrors) uniqueViolation(err error) bool {
	code, ok := pgCode(err)
	return ok && code == pgerrcode.UniqueViolation
}
