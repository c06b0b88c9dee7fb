package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mbarbosa/mesasync/internal/app"
	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/models"
)

// Orchestrator owns the fixed handler roster and runs whole sync cycles.
// Handlers execute sequentially in roster order; one handler's failure never
// stops the others, it only contributes an error string to the aggregate
// result.
type Orchestrator struct {
	handlers  []EntityHandler
	session   Session
	meta      MetadataStore
	publisher StatusPublisher
	logger    *logger.Logger
	now       func() time.Time
}

func NewOrchestrator(handlers []EntityHandler, session Session, meta MetadataStore, pub StatusPublisher, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		handlers:  handlers,
		session:   session,
		meta:      meta,
		publisher: pub,
		logger:    log.WithComponent("orchestrator"),
		now:       time.Now,
	}
}

// SyncAll runs pull then push for every handler and aggregates the outcome.
// Within one handler pull always completes before its push is attempted; a
// pull failure does not skip that handler's push.
func (o *Orchestrator) SyncAll(ctx context.Context) models.SyncResult {
	return o.run(ctx, true)
}

// PushAll uploads pending local changes without pulling anything. Handlers
// run in reverse roster order so referenced entities land before their
// dependents.
func (o *Orchestrator) PushAll(ctx context.Context) models.SyncResult {
	return o.run(ctx, false)
}

func (o *Orchestrator) run(ctx context.Context, withPull bool) (result models.SyncResult) {
	start := o.now()
	runID := uuid.NewString()
	log := o.logger.With().Str("run_id", runID).Logger()

	defer func() {
		if r := recover(); r != nil {
			result = models.SyncResult{
				Success:    false,
				DurationMs: o.now().Sub(start).Milliseconds(),
				Errors:     []string{fmt.Sprintf("critical failure: %v", r)},
			}
			log.Error().Interface("panic", r).Msg("sync cycle recovered from critical failure")
			o.publisher.Finish(result)
		}
	}()

	if withPull {
		o.publisher.StartSyncing(app.MsgSyncStarted)
	} else {
		o.publisher.StartSyncing(app.MsgPushStarted)
	}

	actx, err := o.session.Current(ctx)
	if err != nil {
		result = models.SyncResult{
			Success:    false,
			DurationMs: o.now().Sub(start).Milliseconds(),
			Errors:     []string{err.Error()},
		}
		log.Err(err).Msg("sync cycle aborted, no session")
		o.publisher.Finish(result)
		return result
	}

	ordered := o.handlers
	if !withPull {
		ordered = reversed(o.handlers)
	}

	total := 0
	errs := make([]string, 0)

	for i, h := range ordered {
		// cancellation is coarse: only between handlers, never inside
		// one, so a handler's upserts are not cut in half
		if ctxErr := ctx.Err(); ctxErr != nil {
			errs = append(errs, ctxErr.Error())
			log.Warn().Str("entity_type", h.EntityType()).Msg("sync cycle cancelled between handlers")
			break
		}

		if withPull {
			n, pullErr := h.Pull(ctx, actx)
			if pullErr != nil {
				errs = append(errs, pullErr.Error())
				log.Err(pullErr).Str("entity_type", h.EntityType()).Msg("pull failed")
			} else {
				total += n
			}
		}

		n, pushErr := h.Push(ctx, actx)
		if pushErr != nil {
			errs = append(errs, pushErr.Error())
			log.Err(pushErr).Str("entity_type", h.EntityType()).Msg("push failed")
		} else {
			total += n
		}

		o.publisher.Progress((i+1)*100/len(ordered), h.EntityType())
	}

	result = models.SyncResult{
		Success:     len(errs) == 0,
		SyncedCount: total,
		DurationMs:  o.now().Sub(start).Milliseconds(),
		Errors:      errs,
	}

	if withPull && result.Success {
		o.meta.Record(ctx, models.SyncMetadata{
			EntityType:     models.GlobalSyncEntity,
			UserID:         actx.UserID,
			LastTimestamp:  o.now().UnixMilli(),
			LastCount:      result.SyncedCount,
			LastDurationMs: result.DurationMs,
			UpdatedAt:      o.now().UnixMilli(),
		})
	}

	o.publisher.Finish(result)
	log.Info().
		Bool("success", result.Success).
		Int("synced_count", result.SyncedCount).
		Int64("duration_ms", result.DurationMs).
		Int("errors", len(result.Errors)).
		Msg("sync cycle finished")

	return result
}

// Pending sums the push queue depth across all handlers.
func (o *Orchestrator) Pending(ctx context.Context, userID int64) (int, error) {
	total := 0
	for _, h := range o.handlers {
		n, err := h.Pending(ctx, userID)
		if err != nil {
			return 0, fmt.Errorf("pending %s: %w", h.EntityType(), err)
		}
		total += n
	}
	return total, nil
}

func reversed(handlers []EntityHandler) []EntityHandler {
	out := make([]EntityHandler, len(handlers))
	for i, h := range handlers {
		out[len(handlers)-1-i] = h
	}
	return out
}
