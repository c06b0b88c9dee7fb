package http

import (
	"context"
	"net/http"

	"github.com/mbarbosa/mesasync/internal/app"
	"github.com/mbarbosa/mesasync/internal/utils"
	"github.com/mbarbosa/mesasync/models"
)

type messageResponse struct {
	Message string `json:"message"`
}

// runSync starts a full bidirectional cycle in the background and returns
// immediately; callers observe progress through GET /api/sync/status.
func (h *Handler) runSync(w http.ResponseWriter, r *http.Request) {
	h.trigger(w, app.MsgSyncStarted, h.sync.SyncAll)
}

// runPush starts an upload-only cycle in the background.
func (h *Handler) runPush(w http.ResponseWriter, r *http.Request) {
	h.trigger(w, app.MsgPushStarted, h.sync.PushAll)
}

func (h *Handler) trigger(w http.ResponseWriter, message string, cycle func(context.Context) models.SyncResult) {
	if !h.session.LoggedIn() {
		http.Error(w, app.MsgNotLoggedIn, http.StatusUnauthorized)
		return
	}

	if h.publisher.Snapshot().Phase == models.PhaseSyncing {
		http.Error(w, app.MsgSyncAlreadyRunning, http.StatusConflict)
		return
	}

	// not bound to the request context: the cycle outlives the response
	go cycle(context.Background())

	utils.WriteJSON(w, messageResponse{Message: message}, http.StatusAccepted)
}
