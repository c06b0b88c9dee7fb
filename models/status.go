package models

// SyncPhase is the coarse state of the sync engine as seen by observers.
type SyncPhase string

const (
	PhaseIdle    SyncPhase = "IDLE"
	PhaseSyncing SyncPhase = "SYNCING"
	PhaseSuccess SyncPhase = "SUCCESS"
	PhaseError   SyncPhase = "ERROR"
)

// SyncStatus is the current-value snapshot published to observers.
// ProgressPercent is 0-100; Message is human-readable (on ERROR it is the
// concatenation of the collected error strings).
type SyncStatus struct {
	Phase           SyncPhase `json:"phase"`
	ProgressPercent int       `json:"progress_percent"`
	Message         string    `json:"message"`
}
