package models

// PushSuffix distinguishes push progress from pull progress in the metadata
// store: push metadata for "clientes" is stored under "clientes_push" so the
// two directions are independently resumable.
const PushSuffix = "_push"

// GlobalSyncEntity is the pseudo entity type whose metadata row records the
// completion of a whole sync cycle. It only feeds the background scheduler's
// idle-time check.
const GlobalSyncEntity = "global_sync"

// SyncMetadata is the per-(entityType, userID) replication bookmark. At most
// one row exists per pair; every sync attempt replaces the previous row
// entirely.
type SyncMetadata struct {
	EntityType      string  `json:"entity_type" db:"entity_type"`
	UserID          int64   `json:"user_id" db:"user_id"`
	LastTimestamp   int64   `json:"last_sync_timestamp" db:"last_sync_timestamp"`
	LastCount       int     `json:"last_sync_count" db:"last_sync_count"`
	LastDurationMs  int64   `json:"last_sync_duration_ms" db:"last_sync_duration_ms"`
	BytesDownloaded int64   `json:"last_sync_bytes_downloaded" db:"last_sync_bytes_downloaded"`
	BytesUploaded   int64   `json:"last_sync_bytes_uploaded" db:"last_sync_bytes_uploaded"`
	LastError       *string `json:"last_error" db:"last_error"`
	UpdatedAt       int64   `json:"updated_at" db:"updated_at"`
}

// PushKey returns the metadata key under which push progress for entityType
// is tracked.
func PushKey(entityType string) string { return entityType + PushSuffix }

// SyncResult is the aggregate outcome of one orchestrated operation. It is
// never persisted. Success is true iff Errors is empty, regardless of
// SyncedCount.
type SyncResult struct {
	Success     bool     `json:"success"`
	SyncedCount int      `json:"synced_count"`
	DurationMs  int64    `json:"duration_ms"`
	Errors      []string `json:"errors"`
}
