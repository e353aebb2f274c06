package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/swcatalog/starwars/internal/db"
	"github.com/swcatalog/starwars/internal/pkg/apperrors"
	"github.com/swcatalog/starwars/internal/pkg/dberrors"
	"github.com/swcatalog/starwars/internal/pkg/logger"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// baseRepository carries the table specific plumbing shared by every kind
type baseRepository struct {
	db     *db.Database
	sb     squirrel.StatementBuilderType
	table  string
	entity string
}

func newBaseRepository(database *db.Database, table, entity string) baseRepository {
	return baseRepository{
		db:     database,
		sb:     database.Builder(),
		table:  table,
		entity: entity,
	}
}

// insert stores one row inside its own transaction and returns the new id
func (r *baseRepository) insert(ctx context.Context, values map[string]any) (int64, error) {
	// Valuers are resolved here so both drivers receive plain column values.
	for column, v := range values {
		valuer, ok := v.(driver.Valuer)
		if !ok {
			continue
		}
		resolved, err := valuer.Value()
		if err != nil {
			return 0, apperrors.Newf(apperrors.ErrValidationFailed, "invalid %s %s: %v", r.entity, column, err)
		}
		values[column] = resolved
	}

	query, args, err := r.sb.Insert(r.table).
		SetMap(values).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building insert SQL")
		return 0, fmt.Errorf("failed to build create %s query: %w", r.entity, err)
	}

	var id int64
	err = r.db.WithTransaction(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return tx.QueryRowContext(ctx, query, args...).Scan(&id)
	})
	if err != nil {
		if dberrors.IsConstraintError(err) {
			return 0, apperrors.Newf(apperrors.ErrValidationFailed, "%s violates a constraint: %v", r.entity, err)
		}
		logger.Error().Err(err).Str("table", r.table).Msg("Error executing insert query")
		return 0, fmt.Errorf("error creating %s: %w", r.entity, err)
	}

	logger.Debug().Str("table", r.table).Int64("id", id).Msg("Row inserted")
	return id, nil
}

// getOne selects the row with the given id
func getOne[T any](ctx context.Context, r *baseRepository, columns []string, id int64, scan func(rowScanner) (*T, error)) (*T, error) {
	query, args, err := r.sb.Select(columns...).
		From(r.table).
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building get by ID SQL")
		return nil, fmt.Errorf("failed to build get %s query: %w", r.entity, err)
	}

	item, err := scan(r.db.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", r.entity, id))
		}
		logger.Error().Err(err).Str("table", r.table).Int64("id", id).Msg("Error scanning row")
		return nil, fmt.Errorf("error getting %s by ID: %w", r.entity, err)
	}

	return item, nil
}

// getAll selects every row ordered by id
func getAll[T any](ctx context.Context, r *baseRepository, columns []string, scan func(rowScanner) (*T, error)) ([]*T, error) {
	query, args, err := r.sb.Select(columns...).
		From(r.table).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building get all SQL")
		return nil, fmt.Errorf("failed to build list %s query: %w", r.entity, err)
	}

	rows, err := r.db.DB.QueryContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error executing get all query")
		return nil, fmt.Errorf("error querying %s: %w", r.table, err)
	}
	defer rows.Close()

	items := []*T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			logger.Error().Err(err).Str("table", r.table).Msg("Error scanning row during get all")
			return nil, fmt.Errorf("error scanning %s row: %w", r.entity, err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error iterating rows")
		return nil, fmt.Errorf("error iterating %s rows: %w", r.entity, err)
	}

	return items, nil
}

// delete removes the row with the given id. No dependent rows are touched.
func (r *baseRepository) delete(ctx context.Context, id int64) error {
	query, args, err := r.sb.Delete(r.table).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building delete SQL")
		return fmt.Errorf("failed to build delete %s query: %w", r.entity, err)
	}

	res, err := r.db.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Int64("id", id).Msg("Error executing delete query")
		return fmt.Errorf("error deleting %s: %w", r.entity, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("error reading deleted %s rows: %w", r.entity, err)
	}
	if affected == 0 {
		return apperrors.NewResourceNotFoundError(fmt.Sprintf("%s %d not found", r.entity, id))
	}

	return nil
}

// exists reports whether any row matches pred. A nil pred matches every row.
func (r *baseRepository) exists(ctx context.Context, pred any) (bool, error) {
	query, args, err := r.sb.Select("1").
		From(r.table).
		Where(pred).
		Limit(1).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error building exists SQL")
		return false, fmt.Errorf("failed to build %s existence query: %w", r.entity, err)
	}

	var found bool
	if err := r.db.DB.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error checking existence")
		return false, fmt.Errorf("error checking %s existence: %w", r.entity, err)
	}

	return found, nil
}

// isEmpty reports whether the table holds no rows
func (r *baseRepository) isEmpty(ctx context.Context) (bool, error) {
	found, err := r.exists(ctx, nil)
	return !found, err
}
