// Package daemon assembles the sync engine into a runnable application:
// local storage, the remote adapter, the orchestrator, the background
// trigger, and the local status API.
package daemon

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mbarbosa/mesasync/internal/adapter"
	"github.com/mbarbosa/mesasync/internal/config"
	synchttp "github.com/mbarbosa/mesasync/internal/handler/http"
	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/internal/service"
	"github.com/mbarbosa/mesasync/internal/store"
	"github.com/mbarbosa/mesasync/internal/workers"
	"github.com/mbarbosa/mesasync/models"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg     *config.StructuredConfig
	db      *store.DB
	workers *workers.Workers
	server  *http.Server

	logger *logger.Logger
}

func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	db, err := store.NewConnectSQLite(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect local database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	storages := store.NewStorages(db, log)

	remote := adapter.NewHTTPRemoteStore(adapter.HTTPClientConfig{
		BaseURL:   cfg.Remote.BaseURL,
		CompanyID: cfg.App.CompanyID,
		Timeout:   cfg.Remote.RequestTimeout,
	})

	session := service.NewRemoteSession(remote, models.Credentials{
		Login:    cfg.App.Login,
		Password: cfg.App.Password,
	}, cfg.App.Token, log)

	access := service.NewAccessFilter(storages.Routing, log)
	meta := service.NewMetadataStore(storages.SyncMetadata, log)
	publisher := service.NewPublisher()

	handlers := service.BuildHandlers(storages, remote, access, meta, log)
	orchestrator := service.NewOrchestrator(handlers, session, meta, publisher, log)

	trigger := workers.NewSyncTrigger(orchestrator, session, meta, cfg.Workers, log)

	a := &App{
		cfg:     cfg,
		db:      db,
		workers: workers.NewWorkers(trigger),
		logger:  log,
	}

	if cfg.Server.StatusAddress != "" {
		handler := synchttp.NewHandler(orchestrator, publisher, session, meta, log)
		a.server = &http.Server{
			Addr:    cfg.Server.StatusAddress,
			Handler: handler.Init(),
		}
	}

	return a, nil
}

// Run starts the background workers and the status API and blocks until ctx
// is cancelled, then shuts everything down in reverse start order.
func (a *App) Run(ctx context.Context) error {
	a.workers.Run()

	serverErr := make(chan error, 1)
	if a.server != nil {
		go func() {
			a.logger.Info().Str("address", a.server.Addr).Msg("status API listening")
			if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				serverErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
	case err := <-serverErr:
		a.shutdown()
		return fmt.Errorf("status API: %w", err)
	}

	a.logger.Info().Msg("shutting down")
	a.shutdown()
	return nil
}

func (a *App) shutdown() {
	if a.server != nil {
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := a.server.Shutdown(ctx); err != nil {
			a.logger.Err(err).Msg("error shutting down status API")
		}
	}

	a.workers.Stop()

	if err := a.db.Close(); err != nil {
		a.logger.Err(err).Msg("error closing local database")
	}
}
