package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mbarbosa/mesasync/internal/adapter"
	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/internal/store"
	"github.com/mbarbosa/mesasync/models"
)

// refExtractor returns the client and table references a record carries, for
// the access filter's owning-route double-check. Either may be nil.
type refExtractor[T any] func(rec T) (clientID, tableID *int64)

// entityHandler is the one generic [EntityHandler] implementation; each
// entity type gets an instance parameterised by its record type, repository
// and reference extractors.
type entityHandler[T models.Record] struct {
	entityType string
	repo       store.EntityRepository[T]
	remote     adapter.RemoteStore
	access     *AccessFilter
	meta       MetadataStore
	logger     *logger.Logger
	now        func() time.Time

	recordRefs refExtractor[T]
	docRefs    refExtractor[models.Document]
}

func newEntityHandler[T models.Record](
	entityType string,
	repo store.EntityRepository[T],
	remote adapter.RemoteStore,
	access *AccessFilter,
	meta MetadataStore,
	log *logger.Logger,
) *entityHandler[T] {
	return &entityHandler[T]{
		entityType: entityType,
		repo:       repo,
		remote:     remote,
		access:     access,
		meta:       meta,
		logger:     log.WithComponent(entityType),
		now:        time.Now,
		recordRefs: func(T) (*int64, *int64) { return nil, nil },
		docRefs:    func(models.Document) (*int64, *int64) { return nil, nil },
	}
}

func (h *entityHandler[T]) withRefs(recordRefs refExtractor[T], docRefs refExtractor[models.Document]) *entityHandler[T] {
	h.recordRefs = recordRefs
	h.docRefs = docRefs
	return h
}

func (h *entityHandler[T]) EntityType() string { return h.entityType }

// Pull fetches remote documents modified after the stored bookmark, filters
// them through the access filter, resolves conflicts last-writer-wins (the
// remote copy wins an exact timestamp tie) and upserts the survivors.
func (h *entityHandler[T]) Pull(ctx context.Context, actx models.AccessContext) (int, error) {
	start := h.now()
	since := h.meta.LastTimestamp(ctx, h.entityType, actx.UserID)
	query := adapter.DocumentQuery{UpdatedAfter: since, RouteIDs: actx.RouteList()}

	docs, bytesDown, err := h.remote.FetchDocuments(ctx, h.entityType, query)
	if err != nil && since > 0 {
		// the incremental window can fail on remotes that lost the
		// index for it; a full fetch is still correct, just heavier
		h.logger.Warn().Err(err).Msg("incremental fetch failed, retrying as full fetch")
		query.UpdatedAfter = 0
		docs, bytesDown, err = h.remote.FetchDocuments(ctx, h.entityType, query)
	}
	if err != nil {
		err = fmt.Errorf("fetch %s: %w", h.entityType, err)
		h.recordOutcome(ctx, h.entityType, actx.UserID, since, 0, start, bytesDown, 0, err)
		return 0, err
	}

	bookmark := since
	skippedDenied, skippedOlder := 0, 0
	batch := make([]T, 0, len(docs))

	for _, doc := range docs {
		if ts := doc.LastModified(); ts > bookmark {
			bookmark = ts
		}

		clientID, tableID := h.docRefs(doc)
		if !h.access.ShouldSyncRecord(ctx, doc.RouteID(), clientID, tableID, actx) {
			skippedDenied++
			continue
		}

		rec, mapErr := docToRecord[T](doc)
		if mapErr != nil {
			h.recordOutcome(ctx, h.entityType, actx.UserID, since, 0, start, bytesDown, 0, mapErr)
			return 0, mapErr
		}

		local, getErr := h.repo.Get(ctx, doc.ID())
		if getErr == nil && local.ModifiedAt() > doc.LastModified() {
			skippedOlder++
			continue
		}
		if getErr != nil && !errors.Is(getErr, store.ErrRecordNotFound) {
			getErr = fmt.Errorf("read local %s %d: %w", h.entityType, doc.ID(), getErr)
			h.recordOutcome(ctx, h.entityType, actx.UserID, since, 0, start, bytesDown, 0, getErr)
			return 0, getErr
		}

		batch = append(batch, rec)
	}

	if err = h.repo.Upsert(ctx, batch...); err != nil {
		err = fmt.Errorf("upsert %s: %w", h.entityType, err)
		h.recordOutcome(ctx, h.entityType, actx.UserID, since, 0, start, bytesDown, 0, err)
		return 0, err
	}

	h.recordOutcome(ctx, h.entityType, actx.UserID, bookmark, len(batch), start, bytesDown, 0, nil)
	h.logger.Debug().
		Int("applied", len(batch)).
		Int("skipped_denied", skippedDenied).
		Int("skipped_older", skippedOlder).
		Int64("since", since).
		Msg("pull completed")

	return len(batch), nil
}

// Push uploads local records modified after the push bookmark. Records the
// user cannot access are skipped, never uploaded.
func (h *entityHandler[T]) Push(ctx context.Context, actx models.AccessContext) (int, error) {
	start := h.now()
	pushKey := models.PushKey(h.entityType)
	since := h.meta.LastTimestamp(ctx, pushKey, actx.UserID)

	recs, err := h.repo.ModifiedSince(ctx, since, actx.RouteList())
	if err != nil {
		err = fmt.Errorf("enumerate pending %s: %w", h.entityType, err)
		h.recordOutcome(ctx, pushKey, actx.UserID, since, 0, start, 0, 0, err)
		return 0, err
	}

	bookmark := since
	skippedDenied := 0
	docs := make([]models.Document, 0, len(recs))

	for _, rec := range recs {
		clientID, tableID := h.recordRefs(rec)
		if !h.access.ShouldSyncRecord(ctx, rec.RouteScope(), clientID, tableID, actx) {
			skippedDenied++
			continue
		}

		doc, mapErr := recordToDoc(rec)
		if mapErr != nil {
			h.recordOutcome(ctx, pushKey, actx.UserID, since, 0, start, 0, 0, mapErr)
			return 0, mapErr
		}

		docs = append(docs, doc)
		if ts := rec.ModifiedAt(); ts > bookmark {
			bookmark = ts
		}
	}

	bytesUp, err := h.remote.PushDocuments(ctx, h.entityType, docs)
	if err != nil {
		err = fmt.Errorf("push %s: %w", h.entityType, err)
		h.recordOutcome(ctx, pushKey, actx.UserID, since, 0, start, 0, bytesUp, err)
		return 0, err
	}

	h.recordOutcome(ctx, pushKey, actx.UserID, bookmark, len(docs), start, 0, bytesUp, nil)
	h.logger.Debug().
		Int("uploaded", len(docs)).
		Int("skipped_denied", skippedDenied).
		Int64("since", since).
		Msg("push completed")

	return len(docs), nil
}

// Pending counts records queued for the next push without uploading them.
func (h *entityHandler[T]) Pending(ctx context.Context, userID int64) (int, error) {
	since := h.meta.LastTimestamp(ctx, models.PushKey(h.entityType), userID)
	return h.repo.CountModifiedSince(ctx, since)
}

func (h *entityHandler[T]) recordOutcome(ctx context.Context, key string, userID, bookmark int64, count int, start time.Time, bytesDown, bytesUp int64, opErr error) {
	md := models.SyncMetadata{
		EntityType:      key,
		UserID:          userID,
		LastTimestamp:   bookmark,
		LastCount:       count,
		LastDurationMs:  h.now().Sub(start).Milliseconds(),
		BytesDownloaded: bytesDown,
		BytesUploaded:   bytesUp,
		UpdatedAt:       h.now().UnixMilli(),
	}
	if opErr != nil {
		msg := opErr.Error()
		md.LastError = &msg
	}
	h.meta.Record(ctx, md)
}
