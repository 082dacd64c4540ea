package http

import (
	"encoding/json"
	"net/http"

	"github.com/adenikin/go-note-keeper/internal/app"
	"github.com/adenikin/go-note-keeper/internal/logger"
	"github.com/adenikin/go-note-keeper/internal/utils"
	"github.com/adenikin/go-note-keeper/models"
)

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	userID, ok := h.authorizeRequestUserID(w, r, &req.UserID)
	if !ok {
		return
	}
	for _, note := range req.Notes {
		if note != nil {
			note.UserID = userID
		}
	}

	if err := h.services.NoteService.UploadNotes(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error uploading notes")
		http.Error(w, errorMessageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusCreated)
}

func (h *Handler) fetch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.FetchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.fetch").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, ok := h.authorizeRequestUserID(w, r, &req.UserID); !ok {
		return
	}

	notes, err := h.services.NoteService.FetchNotes(ctx, req)
	if err != nil {
		log.Err(err).Str("func", "*Handler.fetch").Msg("error fetching notes")
		http.Error(w, errorMessageFromError(err), statusFromError(err))
		return
	}

	utils.WriteJSON(w, notes, http.StatusOK)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.update").Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return
	}
	for i := range req.NoteUpdates {
		if req.NoteUpdates[i].UserID != 0 && req.NoteUpdates[i].UserID != userID {
			log.Error().Str("func", "*Handler.update").
				Int64("token user", userID).
				Int64("request user", req.NoteUpdates[i].UserID).
				Msg("attempt to update another user's note")
			http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
			return
		}
		req.NoteUpdates[i].UserID = userID
	}

	if err := h.services.NoteService.UpdateNotes(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.update").Msg("error updating notes")
		http.Error(w, errorMessageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.DeleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.delete").Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	if _, ok := h.authorizeRequestUserID(w, r, &req.UserID); !ok {
		return
	}

	if err := h.services.NoteService.DeleteNotes(ctx, req); err != nil {
		log.Err(err).Str("func", "*Handler.delete").Msg("error deleting notes")
		http.Error(w, errorMessageFromError(err), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusOK)
}

// authorizeRequestUserID resolves the user ID for a request against the
// authenticated token. A body that names a different user is rejected with
// 403; an omitted (zero) body user ID inherits the token's. On failure the
// response has already been written and ok is false.
func (h *Handler) authorizeRequestUserID(w http.ResponseWriter, r *http.Request, reqUserID *int64) (int64, bool) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Msg("no user ID was given")
		http.Error(w, app.MsgNoUserIDProvided, http.StatusBadRequest)
		return 0, false
	}

	if *reqUserID != 0 && *reqUserID != userID {
		log.Error().
			Int64("token user", userID).
			Int64("request user", *reqUserID).
			Msg("attempt to access another user's data")
		http.Error(w, app.MsgAccessDenied, http.StatusForbidden)
		return 0, false
	}

	*reqUserID = userID
	return userID, true
}
