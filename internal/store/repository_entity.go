package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// tableSpec describes how one entity type maps onto its SQLite table.
// routeColumn is empty for global-scope entities.
type tableSpec[T models.Record] struct {
	table       string
	routeColumn string
	columns     []string
	values      func(T) []any
	scan        func(rowScanner) (T, error)
}

// entityRepository is the single generic implementation of
// [EntityRepository]; per-entity behavior comes entirely from the tableSpec.
type entityRepository[T models.Record] struct {
	db     *DB
	spec   tableSpec[T]
	logger *logger.Logger
}

func newEntityRepository[T models.Record](db *DB, spec tableSpec[T], log *logger.Logger) EntityRepository[T] {
	return &entityRepository[T]{db: db, spec: spec, logger: log.WithComponent(spec.table)}
}

func (r *entityRepository[T]) ModifiedSince(ctx context.Context, since int64, routeIDs []int64) ([]T, error) {
	builder := sq.Select(r.spec.columns...).
		From(r.spec.table).
		Where(sq.Gt{"updated_at": since}).
		OrderBy("updated_at ASC", "id ASC")

	if r.spec.routeColumn != "" && routeIDs != nil {
		builder = builder.Where(sq.Or{
			sq.Eq{r.spec.routeColumn: nil},
			sq.Eq{r.spec.routeColumn: routeIDs},
		})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", "entityRepository.ModifiedSince").Msg("failed to query modified records")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recs := make([]T, 0, 32)
	for rows.Next() {
		rec, scanErr := r.spec.scan(rows)
		if scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		recs = append(recs, rec)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return recs, nil
}

func (r *entityRepository[T]) Get(ctx context.Context, id int64) (T, error) {
	var zero T

	query, args, err := sq.Select(r.spec.columns...).
		From(r.spec.table).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return zero, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rec, err := r.spec.scan(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return zero, fmt.Errorf("%w: %s id %d", ErrRecordNotFound, r.spec.table, id)
		}
		return zero, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return rec, nil
}

func (r *entityRepository[T]) Upsert(ctx context.Context, recs ...T) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin upsert tx: %w", ErrExecutingQuery, err)
	}
	defer tx.Rollback()

	for _, rec := range recs {
		query, args, buildErr := sq.Replace(r.spec.table).
			Columns(r.spec.columns...).
			Values(r.spec.values(rec)...).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingQuery, buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			r.logger.Err(err).
				Str("func", "entityRepository.Upsert").
				Int64("id", rec.RecordID()).
				Msg("failed to upsert record")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit upsert tx: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *entityRepository[T]) CountModifiedSince(ctx context.Context, since int64) (int, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(r.spec.table).
		Where(sq.Gt{"updated_at": since}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var count int
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}
