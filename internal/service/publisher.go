package service

import (
	"strings"
	"sync"

	"github.com/mbarbosa/mesasync/internal/app"
	"github.com/mbarbosa/mesasync/models"
)

// publisher is the single current-value broadcast of sync state. Phases move
// IDLE -> SYNCING -> SUCCESS|ERROR and stay there until Reset.
type publisher struct {
	mu     sync.RWMutex
	status models.SyncStatus
	subs   []chan models.SyncStatus
}

func NewPublisher() *publisher {
	return &publisher{status: models.SyncStatus{Phase: models.PhaseIdle}}
}

var _ StatusPublisher = (*publisher)(nil)

// StartSyncing enters the SYNCING phase and resets progress to 0.
func (p *publisher) StartSyncing(message string) {
	p.set(models.SyncStatus{Phase: models.PhaseSyncing, ProgressPercent: 0, Message: message})
}

// Progress updates progress within the SYNCING phase. Ignored outside it.
func (p *publisher) Progress(percent int, message string) {
	p.mu.Lock()
	if p.status.Phase != models.PhaseSyncing {
		p.mu.Unlock()
		return
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	p.status.ProgressPercent = percent
	p.status.Message = message
	status := p.status
	p.mu.Unlock()

	p.broadcast(status)
}

// Finish enters SUCCESS with progress forced to 100, or ERROR keeping the
// last observed progress and carrying the concatenated error messages.
func (p *publisher) Finish(result models.SyncResult) {
	p.mu.Lock()
	if result.Success {
		p.status = models.SyncStatus{
			Phase:           models.PhaseSuccess,
			ProgressPercent: 100,
			Message:         app.MsgSyncCompleted,
		}
	} else {
		p.status.Phase = models.PhaseError
		p.status.Message = strings.Join(result.Errors, "; ")
	}
	status := p.status
	p.mu.Unlock()

	p.broadcast(status)
}

// Reset returns to IDLE. The terminal phases are sticky until this is
// called, so observers arriving late still see the last outcome.
func (p *publisher) Reset() {
	p.set(models.SyncStatus{Phase: models.PhaseIdle})
}

func (p *publisher) Snapshot() models.SyncStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// Subscribe returns a channel that receives every subsequent state change.
// The channel holds only the latest value; slow readers see states coalesce
// rather than block the sync cycle.
func (p *publisher) Subscribe() <-chan models.SyncStatus {
	ch := make(chan models.SyncStatus, 1)
	p.mu.Lock()
	p.subs = append(p.subs, ch)
	p.mu.Unlock()
	return ch
}

func (p *publisher) set(status models.SyncStatus) {
	p.mu.Lock()
	p.status = status
	p.mu.Unlock()

	p.broadcast(status)
}

func (p *publisher) broadcast(status models.SyncStatus) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, ch := range p.subs {
		select {
		case ch <- status:
		default:
			// drop the stale value, replace with the fresh one
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- status:
			default:
			}
		}
	}
}
