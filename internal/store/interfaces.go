package store

import (
	"context"

	"github.com/mbarbosa/mesasync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// EntityRepository is the generic local-store access contract the sync
// handlers depend on, one instance per entity table.
//
// All writes are upserts keyed by record identifier, so re-applying the same
// batch is idempotent.
type EntityRepository[T models.Record] interface {
	// ModifiedSince returns records with updated_at strictly greater than
	// since. A non-nil routeIDs restricts route-scoped rows to those
	// routes; rows with a NULL route column (global scope) always pass.
	// A nil routeIDs applies no route restriction.
	ModifiedSince(ctx context.Context, since int64, routeIDs []int64) ([]T, error)

	// Get returns the record with the given identifier, or a
	// [ErrRecordNotFound]-wrapped error when absent.
	Get(ctx context.Context, id int64) (T, error)

	// Upsert inserts or fully replaces each record by identifier.
	Upsert(ctx context.Context, recs ...T) error

	// CountModifiedSince reports how many records changed after since.
	// Feeds the background scheduler's queue-depth gate.
	CountModifiedSince(ctx context.Context, since int64) (int, error)
}

// SyncMetadataRepository persists per-(entityType, userID) replication
// bookmarks with upsert semantics.
type SyncMetadataRepository interface {
	// LastTimestamp returns the stored bookmark, or 0 when no row exists.
	// Absence is a normal "never synced" state, not an error.
	LastTimestamp(ctx context.Context, entityType string, userID int64) (int64, error)

	// Save fully replaces the row for (md.EntityType, md.UserID).
	Save(ctx context.Context, md models.SyncMetadata) error

	// ForUser returns every metadata row of the user, newest first.
	ForUser(ctx context.Context, userID int64) ([]models.SyncMetadata, error)
}

// RouteResolver resolves the owning route of records that are scoped
// indirectly through a client or a table. An owner that is not in the local
// store yet resolves to nil without error: absence carries no scoping
// information, only a genuine query failure is an error.
type RouteResolver interface {
	// ClientRouteID returns the route of a client, nil when the client is
	// global-scope or not locally known.
	ClientRouteID(ctx context.Context, clientID int64) (*int64, error)

	// TableRouteID returns the route of a table, resolved through its
	// client when the table itself carries no route.
	TableRouteID(ctx context.Context, tableID int64) (*int64, error)
}
