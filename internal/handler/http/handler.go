package http

import (
	"context"

	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/internal/service"
	"github.com/mbarbosa/mesasync/models"
)

// SyncService is the slice of the orchestrator the status API triggers.
type SyncService interface {
	SyncAll(ctx context.Context) models.SyncResult
	PushAll(ctx context.Context) models.SyncResult
}

type Handler struct {
	sync      SyncService
	publisher service.StatusPublisher
	session   service.Session
	meta      service.MetadataStore

	logger *logger.Logger
}

func NewHandler(sync SyncService, publisher service.StatusPublisher, session service.Session, meta service.MetadataStore, log *logger.Logger) *Handler {
	log.Info().Msg("http handler created")
	return &Handler{
		sync:      sync,
		publisher: publisher,
		session:   session,
		meta:      meta,
		logger:    log.WithComponent("http"),
	}
}
