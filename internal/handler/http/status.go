package http

import (
	"net/http"

	"github.com/mbarbosa/mesasync/internal/app"
	"github.com/mbarbosa/mesasync/internal/utils"
	"github.com/mbarbosa/mesasync/models"
)

type metadataResponse struct {
	Entries []models.SyncMetadata `json:"entries"`
	Length  int                   `json:"length"`
}

func (h *Handler) getSyncStatus(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.publisher.Snapshot(), http.StatusOK)
}

// resetStatus acknowledges a finished cycle and returns the status to IDLE.
func (h *Handler) resetStatus(w http.ResponseWriter, r *http.Request) {
	switch h.publisher.Snapshot().Phase {
	case models.PhaseSyncing:
		http.Error(w, app.MsgSyncAlreadyRunning, http.StatusConflict)
		return
	case models.PhaseIdle:
		http.Error(w, app.MsgSyncNotRunning, http.StatusConflict)
		return
	}

	h.publisher.Reset()
	utils.WriteJSON(w, h.publisher.Snapshot(), http.StatusOK)
}

func (h *Handler) getSyncMetadata(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if !h.session.LoggedIn() {
		http.Error(w, app.MsgNotLoggedIn, http.StatusUnauthorized)
		return
	}

	actx, err := h.session.Current(ctx)
	if err != nil {
		h.logger.Err(err).Str("func", "*Handler.getSyncMetadata").Msg("error resolving session")
		http.Error(w, app.MsgNotLoggedIn, http.StatusUnauthorized)
		return
	}

	entries, err := h.meta.ForUser(ctx, actx.UserID)
	if err != nil {
		h.logger.Err(err).Str("func", "*Handler.getSyncMetadata").Msg("error reading sync metadata")
		http.Error(w, "error reading sync metadata", http.StatusInternalServerError)
		return
	}

	response := metadataResponse{
		Entries: entries,
		Length:  len(entries),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
