package workers

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mbarbosa/mesasync/internal/config"
	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/internal/service"
)

// SyncTrigger periodically evaluates the background-sync gate and, when it
// opens, runs a full cycle. A failed cycle is retried once per failure after
// the configured backoff; the gate is not consulted again for the retry
// because the failed cycle never advanced the global bookmark.
type SyncTrigger struct {
	runner  SyncRunner
	session service.Session
	meta    service.MetadataStore
	cfg     config.Workers
	logger  *logger.Logger
	now     func() time.Time

	cron *cron.Cron

	mu    sync.Mutex
	retry *time.Timer
}

func NewSyncTrigger(runner SyncRunner, session service.Session, meta service.MetadataStore, cfg config.Workers, log *logger.Logger) *SyncTrigger {
	return &SyncTrigger{
		runner:  runner,
		session: session,
		meta:    meta,
		cfg:     cfg,
		logger:  log.WithComponent("sync_trigger"),
		now:     time.Now,
		cron:    cron.New(),
	}
}

// Run registers the cron entry and starts the scheduler. An invalid schedule
// leaves the trigger idle; the daemon keeps serving manual syncs.
func (t *SyncTrigger) Run() {
	if _, err := t.cron.AddFunc(t.cfg.SyncSchedule, func() { t.tick(context.Background()) }); err != nil {
		t.logger.Err(err).Str("schedule", t.cfg.SyncSchedule).Msg("invalid sync schedule, background trigger disabled")
		return
	}
	t.cron.Start()
	t.logger.Info().Str("schedule", t.cfg.SyncSchedule).Msg("background sync trigger started")
}

// Stop halts the scheduler and cancels any pending retry. Blocks until a
// running cycle finishes.
func (t *SyncTrigger) Stop() {
	<-t.cron.Stop().Done()

	t.mu.Lock()
	if t.retry != nil {
		t.retry.Stop()
		t.retry = nil
	}
	t.mu.Unlock()
}

func (t *SyncTrigger) tick(ctx context.Context) {
	gate := service.Gate{
		LoggedIn:         t.session.LoggedIn(),
		Now:              t.now(),
		MaxIdle:          t.cfg.MaxIdle,
		PendingThreshold: t.cfg.PendingThreshold,
	}
	if gate.LoggedIn {
		actx, err := t.session.Current(ctx)
		if err != nil {
			t.logger.Warn().Err(err).Msg("session unavailable, skipping background sync")
			return
		}
		gate.LastGlobalSync = t.meta.GlobalLastSync(ctx, actx.UserID)
		gate.PendingCount = func() (int, error) { return t.runner.Pending(ctx, actx.UserID) }
	}

	if !service.ShouldRunBackgroundSync(gate) {
		t.logger.Debug().Msg("background sync gate closed")
		return
	}

	t.runCycle(ctx)
}

func (t *SyncTrigger) runCycle(ctx context.Context) {
	result := t.runner.SyncAll(ctx)
	if result.Success {
		return
	}

	t.logger.Warn().
		Int("errors", len(result.Errors)).
		Dur("backoff", t.cfg.RetryBackoff).
		Msg("background sync failed, scheduling retry")

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.retry != nil {
		t.retry.Stop()
	}
	t.retry = time.AfterFunc(t.cfg.RetryBackoff, func() { t.runCycle(context.Background()) })
}
