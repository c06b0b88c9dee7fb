package service

import (
	"context"

	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/internal/store"
	"github.com/mbarbosa/mesasync/models"
)

// metadataStore adapts the repository to the sync engine's bookkeeping
// semantics: bookmark reads degrade to 0 and writes are best-effort, so
// metadata problems never fail a sync cycle that moved data successfully.
type metadataStore struct {
	repo   store.SyncMetadataRepository
	logger *logger.Logger
}

func NewMetadataStore(repo store.SyncMetadataRepository, log *logger.Logger) MetadataStore {
	return &metadataStore{repo: repo, logger: log.WithComponent("sync_metadata")}
}

func (m *metadataStore) LastTimestamp(ctx context.Context, entityType string, userID int64) int64 {
	ts, err := m.repo.LastTimestamp(ctx, entityType, userID)
	if err != nil {
		m.logger.Warn().Err(err).Str("entity_type", entityType).Msg("bookmark read failed, treating as never synced")
		return 0
	}
	return ts
}

func (m *metadataStore) GlobalLastSync(ctx context.Context, userID int64) int64 {
	return m.LastTimestamp(ctx, models.GlobalSyncEntity, userID)
}

func (m *metadataStore) Record(ctx context.Context, md models.SyncMetadata) {
	if err := m.repo.Save(ctx, md); err != nil {
		m.logger.Err(err).Str("entity_type", md.EntityType).Msg("failed to persist sync bookmark")
	}
}

func (m *metadataStore) ForUser(ctx context.Context, userID int64) ([]models.SyncMetadata, error) {
	return m.repo.ForUser(ctx, userID)
}
