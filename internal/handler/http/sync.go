package http

import (
	"net/http"

	"github.com/adenikin/go-note-keeper/internal/app"
	"github.com/adenikin/go-note-keeper/internal/logger"
	"github.com/adenikin/go-note-keeper/internal/utils"
	"github.com/adenikin/go-note-keeper/models"
)

// getClientServerDiff returns the state descriptor of every note owned by the
// authenticated user. The client compares them with its local states to build
// a sync plan; full note bodies are fetched separately.
func (h *Handler) getClientServerDiff(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.getClientServerDiff").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}

	noteStates, err := h.services.NoteService.FetchAllStates(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getClientServerDiff").Msg("error getting user note states")
		http.Error(w, errorMessageFromError(err), statusFromError(err))
		return
	}

	response := models.SyncResponse{
		NoteStates: noteStates,
		Length:     len(noteStates),
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
