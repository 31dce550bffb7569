package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/brand-showcase/internal/logger"
	"github.com/MKhiriev/brand-showcase/migrations"
)

func TestNewDB_PlaceholderPerDialect(t *testing.T) {
	tests := []struct {
		dialect string
		errs    driverErrors
		want    string
	}{
		{migrations.DialectPostgres, postgresErrors{}, "WHERE username = $1"},
		{migrations.DialectSQLite, sqliteErrors{}, "WHERE username = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.dialect, func(t *testing.T) {
			db := newDB(nil, tt.dialect, tt.errs, logger.Nop())
			assert.Equal(t, tt.dialect, db.Dialect())

			query, args, err := buildSelectUserByUsernameQuery(db.builder, "admin")
			require.NoError(t, err)
			assert.Contains(t, query, tt.want)
			assert.Equal(t, []any{"admin"}, args)
		})
	}
}
