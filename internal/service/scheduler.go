package service

import "time"

// Gate carries every input the background-sync decision needs. The pending
// count is a query rather than a value so it is only evaluated when the
// threshold check actually runs.
type Gate struct {
	// LoggedIn is whether an authenticated session exists right now.
	LoggedIn bool

	// Now is the decision time.
	Now time.Time

	// LastGlobalSync is the completion time of the last full cycle in
	// unix milliseconds, 0 when no cycle ever completed.
	LastGlobalSync int64

	// MaxIdle is the minimum elapsed time since LastGlobalSync before a
	// background cycle may run.
	MaxIdle time.Duration

	// PendingThreshold is the minimum queued-operation count required,
	// 0 disables the check.
	PendingThreshold int

	// PendingCount reports the local push queue depth.
	PendingCount func() (int, error)
}

// ShouldRunBackgroundSync is the pure decision function behind the
// background trigger. It has no side effects.
//
// The answer is true only when the user is logged in, the idle window has
// elapsed, and either no pending threshold is configured or the queue depth
// reaches it. A failing or missing queue-depth query counts as an empty
// queue.
func ShouldRunBackgroundSync(g Gate) bool {
	if !g.LoggedIn {
		return false
	}

	if g.Now.Sub(time.UnixMilli(g.LastGlobalSync)) < g.MaxIdle {
		return false
	}

	if g.PendingThreshold > 0 {
		if g.PendingCount == nil {
			return false
		}
		pending, err := g.PendingCount()
		if err != nil || pending < g.PendingThreshold {
			return false
		}
	}

	return true
}
