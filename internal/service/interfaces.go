package service

import (
	"context"

	"github.com/mbarbosa/mesasync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// EntityHandler moves one entity type's data between the local store and the
// remote store. Handlers are stateless; identity and route grants arrive in
// the AccessContext supplied per call.
type EntityHandler interface {
	// EntityType is the remote collection name, also the metadata key.
	EntityType() string

	// Pull replicates remote changes into the local store and returns
	// the number of records upserted. Idempotent for a fixed window.
	Pull(ctx context.Context, actx models.AccessContext) (int, error)

	// Push uploads local records modified since the last recorded push
	// and returns the number written.
	Push(ctx context.Context, actx models.AccessContext) (int, error)

	// Pending counts local records queued for push without uploading
	// them. Feeds the background scheduler gate.
	Pending(ctx context.Context, userID int64) (int, error)
}

// Session exposes the current authenticated identity. Queried at the start
// of every sync cycle because route grants can change between cycles.
type Session interface {
	LoggedIn() bool
	Current(ctx context.Context) (models.AccessContext, error)
}

// MetadataStore is the sync engine's view of replication bookmarks. Reads
// never fail: a missing or unreadable bookmark reads as 0, which simply
// widens the next sync window.
type MetadataStore interface {
	LastTimestamp(ctx context.Context, entityType string, userID int64) int64
	GlobalLastSync(ctx context.Context, userID int64) int64
	Record(ctx context.Context, md models.SyncMetadata)
	ForUser(ctx context.Context, userID int64) ([]models.SyncMetadata, error)
}

// StatusPublisher is the current-value broadcast of sync progress observed
// by the status API.
type StatusPublisher interface {
	StartSyncing(message string)
	Progress(percent int, message string)
	Finish(result models.SyncResult)
	Reset()
	Snapshot() models.SyncStatus
}
