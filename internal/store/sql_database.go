package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/ai-one-api/internal/config"
	"github.com/MKhiriev/ai-one-api/internal/logger"
	"github.com/MKhiriev/ai-one-api/migrations"
)

const (
	// readAttempts is the number of times a read query is tried when the
	// error classifier reports a transient failure.
	readAttempts = 3

	// retryBackoff is multiplied by the attempt number between retries.
	retryBackoff = 50 * time.Millisecond
)

// DB wraps a *sql.DB together with the SQL dialect it speaks.
// The dialect selects the migration set, the placeholder format of
// generated queries and the driver error classifier.
type DB struct {
	*sql.DB
	dialect            migrations.Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger

	// now stamps created_at and updated_at.
	now func() time.Time
}

// NewConnectDB opens the database selected by cfg.DSN: PostgreSQL URLs use
// the pgx driver, everything else is treated as a SQLite file.
func NewConnectDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	if DialectFromDSN(cfg.DSN) == migrations.Postgres {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

// DialectFromDSN reports which dialect a DSN belongs to.
func DialectFromDSN(dsn string) migrations.Dialect {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return migrations.Postgres
	}
	return migrations.SQLite
}

func newDB(conn *sql.DB, dialect migrations.Dialect, classifier ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == migrations.Postgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classifier,
		logger:             log,
		now:                func() time.Time { return time.Now().UTC() },
	}
}

// Dialect returns the SQL dialect of the connection.
func (db *DB) Dialect() migrations.Dialect {
	return db.dialect
}

// Migrate applies the migration set of the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// withRetry runs fn until it succeeds, fails with a non-retryable error or
// readAttempts is exhausted.
func (db *DB) withRetry(ctx context.Context, fn func() error) error {
	var err error
	for attempt := 1; attempt <= readAttempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		if db.errorClassificator.Classify(err) != Retryable || attempt == readAttempts {
			return err
		}

		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "DB.withRetry").
			Int("attempt", attempt).
			Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
	return err
}
