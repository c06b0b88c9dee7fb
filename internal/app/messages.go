// Package app contains shared application-layer constants used across the
// mesasync daemon.
//
// All Msg* constants are human-readable message strings published through
// the sync status broadcast or written into log entries to describe the
// outcome of an operation. Keeping them in one place ensures consistent
// wording throughout the daemon.
package app

const (
	// MsgSyncStarted is published when a full bidirectional cycle begins.
	MsgSyncStarted = "synchronization started"

	// MsgPushStarted is published when an upload-only cycle begins.
	MsgPushStarted = "uploading pending changes"

	// MsgSyncCompleted is published when a cycle finishes without errors.
	MsgSyncCompleted = "synchronization completed"

	// MsgSyncNotRunning is returned by the status API when a reset
	// arrives with no finished cycle to acknowledge.
	MsgSyncNotRunning = "synchronization is not running"

	// MsgSyncAlreadyRunning is returned by the status API when a manual
	// trigger arrives while a cycle is already in flight.
	MsgSyncAlreadyRunning = "synchronization already in progress"

	// MsgNotLoggedIn is returned when an operation requires an
	// authenticated session and none is available.
	MsgNotLoggedIn = "not logged in"
)
