package service

import (
	"context"
	"fmt"

	"github.com/mbarbosa/mesasync/internal/adapter"
	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/models"
)

// remoteSession derives the current AccessContext from the remote store's
// bearer token. The context is re-derived at every Current call, not cached,
// because route grants change when the token is refreshed.
type remoteSession struct {
	remote adapter.RemoteStore
	creds  models.Credentials
	logger *logger.Logger
}

// NewRemoteSession builds a [Session] backed by the remote store's auth. A
// non-empty pre-issued token is installed immediately; otherwise the first
// Current call logs in with the credentials.
func NewRemoteSession(remote adapter.RemoteStore, creds models.Credentials, token string, log *logger.Logger) Session {
	if token != "" {
		remote.SetToken(token)
	}
	return &remoteSession{remote: remote, creds: creds, logger: log.WithComponent("session")}
}

func (s *remoteSession) LoggedIn() bool {
	return s.remote.Token() != ""
}

func (s *remoteSession) Current(ctx context.Context) (models.AccessContext, error) {
	if s.remote.Token() == "" {
		if s.creds.Login == "" {
			return models.AccessContext{}, ErrNotLoggedIn
		}
		if _, err := s.remote.Login(ctx, s.creds); err != nil {
			return models.AccessContext{}, fmt.Errorf("login: %w", err)
		}
		s.logger.Info().Str("login", s.creds.Login).Msg("authenticated against remote store")
	}

	actx, err := adapter.SessionFromToken(s.remote.Token())
	if err != nil {
		return models.AccessContext{}, fmt.Errorf("parse session token: %w", err)
	}
	return actx, nil
}
