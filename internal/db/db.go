package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/swcatalog/starwars/internal/config"
	"github.com/swcatalog/starwars/internal/pkg/logger"
)

// Dialect identifies the SQL engine behind a Database
type Dialect string

const (
	SQLite   Dialect = "sqlite"
	Postgres Dialect = "postgres"
)

// Database wraps the shared *sql.DB handle together with the engine it talks to
type Database struct {
	DB      *sql.DB
	Dialect Dialect

	closers []func()
}

// Open connects to the engine selected by the configuration
func Open(cfg *config.Config) (*Database, error) {
	switch strings.ToLower(cfg.Database.Driver) {
	case config.DriverSQLite:
		return OpenSQLite(cfg.Database.Path)
	case config.DriverPostgres:
		return OpenPostgres(cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}
}

// Builder returns a squirrel statement builder using the placeholder format of the dialect
func (d *Database) Builder() sq.StatementBuilderType {
	if d.Dialect == Postgres {
		return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	}
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// Ping verifies the connection is alive
func (d *Database) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return d.DB.PingContext(ctx)
}

// Close releases the handle and any pool behind it
func (d *Database) Close() {
	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			logger.Warn().Err(err).Msg("Failed to close database handle")
		}
	}
	for _, c := range d.closers {
		c()
	}
}

// TransactionFn is a function that executes within a transaction
type TransactionFn func(ctx context.Context, tx *sql.Tx) error

// WithTransaction runs a function within a transaction
func (d *Database) WithTransaction(ctx context.Context, fn TransactionFn) error {
	_, hasDeadline := ctx.Deadline()
	if !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
		defer cancel()
	}

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(ctx, tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Error().Err(rbErr).Msg("Failed to rollback transaction")
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
