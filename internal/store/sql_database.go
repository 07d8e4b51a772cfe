package store

import (
	"database/sql"

	"github.com/MKhiriev/go-web-scaffold/internal/logger"
	"github.com/MKhiriev/go-web-scaffold/migrations"
	sq "github.com/Masterminds/squirrel"
	"github.com/rs/zerolog"
)

// DB wraps a *sql.DB together with what the repositories need to talk to it:
// the driver name, a placeholder-aware query builder and an error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate brings the schema up to date for the connected dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect, logger.NewStdLogger(db.logger, zerolog.InfoLevel))
}

// classify reports how err should be treated. A DB without a classifier
// treats every error as [Unclassified].
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
