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

var syncMetadataColumns = []string{
	"entity_type",
	"user_id",
	"last_sync_timestamp",
	"last_sync_count",
	"last_sync_duration_ms",
	"last_sync_bytes_downloaded",
	"last_sync_bytes_uploaded",
	"last_error",
	"updated_at",
}

type syncMetadataRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSyncMetadataRepository returns the SQLite-backed [SyncMetadataRepository].
func NewSyncMetadataRepository(db *DB, log *logger.Logger) SyncMetadataRepository {
	return &syncMetadataRepository{db: db, logger: log.WithComponent("sync_metadata")}
}

func (r *syncMetadataRepository) LastTimestamp(ctx context.Context, entityType string, userID int64) (int64, error) {
	query, args, err := sq.Select("last_sync_timestamp").
		From("sync_metadata").
		Where(sq.Eq{"entity_type": entityType, "user_id": userID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var ts int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&ts)
	if errors.Is(err, sql.ErrNoRows) {
		// never synced
		return 0, nil
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.LastTimestamp").
			Str("entity_type", entityType).
			Msg("failed to read sync bookmark")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ts, nil
}

func (r *syncMetadataRepository) Save(ctx context.Context, md models.SyncMetadata) error {
	query, args, err := sq.Replace("sync_metadata").
		Columns(syncMetadataColumns...).
		Values(
			md.EntityType,
			md.UserID,
			md.LastTimestamp,
			md.LastCount,
			md.LastDurationMs,
			md.BytesDownloaded,
			md.BytesUploaded,
			md.LastError,
			md.UpdatedAt,
		).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).
			Str("func", "syncMetadataRepository.Save").
			Str("entity_type", md.EntityType).
			Msg("failed to save sync bookmark")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (r *syncMetadataRepository) ForUser(ctx context.Context, userID int64) ([]models.SyncMetadata, error) {
	query, args, err := sq.Select(syncMetadataColumns...).
		From("sync_metadata").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("updated_at DESC", "entity_type ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	mds := make([]models.SyncMetadata, 0, 32)
	for rows.Next() {
		var md models.SyncMetadata
		if err = rows.Scan(
			&md.EntityType,
			&md.UserID,
			&md.LastTimestamp,
			&md.LastCount,
			&md.LastDurationMs,
			&md.BytesDownloaded,
			&md.BytesUploaded,
			&md.LastError,
			&md.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		mds = append(mds, md)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return mds, nil
}
