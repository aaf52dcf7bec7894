package store

import (
	"context"
	"database/sql"

	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/migrations"
)

const defaultMaxRetries = 3

// DB wraps the catalog connection pool with the error classifier and retry
// budget used by every repository query.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	maxRetries         int
	logger             *logger.Logger
}

// Migrate applies all pending catalog migrations.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB)
}
