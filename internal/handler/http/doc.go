// Package http implements the local status API of the mesasync daemon.
//
// The API is bound to a loopback address and exposes the observable state of
// the sync engine: the current status snapshot, per-entity replication
// bookmarks, and manual triggers for a full cycle or an upload-only cycle.
// Requests are delegated to the service layer; this package only handles
// transport concerns.
package http
