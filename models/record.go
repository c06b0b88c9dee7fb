package models

// Record is implemented by every entity type the sync engine replicates.
// Identifiers are server-assigned int64 values shared by the local store and
// the remote document store. ModifiedAt returns the last-writer-wins
// timestamp in unix milliseconds.
type Record interface {
	RecordID() int64

	// RouteScope returns the route the record belongs to, or nil for
	// global-scope records that every user may sync.
	RouteScope() *int64

	ModifiedAt() int64
}
