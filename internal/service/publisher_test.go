package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbarbosa/mesasync/internal/app"
	"github.com/mbarbosa/mesasync/models"
)

func TestPublisher_InitialStateIsIdle(t *testing.T) {
	p := NewPublisher()

	status := p.Snapshot()
	assert.Equal(t, models.PhaseIdle, status.Phase)
	assert.Zero(t, status.ProgressPercent)
}

func TestPublisher_SyncingResetsProgress(t *testing.T) {
	p := NewPublisher()
	p.StartSyncing(app.MsgSyncStarted)
	p.Progress(60, "acertos")

	p.StartSyncing(app.MsgSyncStarted)

	status := p.Snapshot()
	assert.Equal(t, models.PhaseSyncing, status.Phase)
	assert.Zero(t, status.ProgressPercent)
}

func TestPublisher_SuccessForcesFullProgress(t *testing.T) {
	p := NewPublisher()
	p.StartSyncing(app.MsgSyncStarted)
	p.Progress(40, "clientes")

	p.Finish(models.SyncResult{Success: true, SyncedCount: 12})

	status := p.Snapshot()
	assert.Equal(t, models.PhaseSuccess, status.Phase)
	assert.Equal(t, 100, status.ProgressPercent)
	assert.Equal(t, app.MsgSyncCompleted, status.Message)
}

func TestPublisher_ErrorKeepsLastProgressAndJoinsMessages(t *testing.T) {
	p := NewPublisher()
	p.StartSyncing(app.MsgSyncStarted)
	p.Progress(40, "clientes")

	p.Finish(models.SyncResult{Success: false, Errors: []string{"Network error", "Firebase timeout"}})

	status := p.Snapshot()
	assert.Equal(t, models.PhaseError, status.Phase)
	assert.Equal(t, 40, status.ProgressPercent)
	assert.Equal(t, "Network error; Firebase timeout", status.Message)
}

func TestPublisher_TerminalPhasesStickUntilReset(t *testing.T) {
	p := NewPublisher()
	p.StartSyncing(app.MsgSyncStarted)
	p.Finish(models.SyncResult{Success: true})

	// progress updates outside SYNCING are ignored
	p.Progress(10, "late update")
	assert.Equal(t, models.PhaseSuccess, p.Snapshot().Phase)
	assert.Equal(t, 100, p.Snapshot().ProgressPercent)

	p.Reset()
	status := p.Snapshot()
	assert.Equal(t, models.PhaseIdle, status.Phase)
	assert.Zero(t, status.ProgressPercent)
	assert.Empty(t, status.Message)
}

func TestPublisher_ProgressClamped(t *testing.T) {
	p := NewPublisher()
	p.StartSyncing(app.MsgSyncStarted)

	p.Progress(150, "overflow")
	assert.Equal(t, 100, p.Snapshot().ProgressPercent)

	p.Progress(-5, "underflow")
	assert.Zero(t, p.Snapshot().ProgressPercent)
}

func TestPublisher_SubscribeSeesLatestValue(t *testing.T) {
	p := NewPublisher()
	ch := p.Subscribe()

	p.StartSyncing(app.MsgSyncStarted)
	p.Progress(50, "despesas")
	p.Finish(models.SyncResult{Success: true})

	// slow reader: intermediate values coalesce, the latest one wins
	var last models.SyncStatus
	for {
		select {
		case s := <-ch:
			last = s
			continue
		default:
		}
		break
	}

	require.Equal(t, models.PhaseSuccess, last.Phase)
	assert.Equal(t, 100, last.ProgressPercent)
}
