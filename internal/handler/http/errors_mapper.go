package http

import (
	"errors"
	"net/http"

	"github.com/adenikin/go-note-keeper/internal/app"
	"github.com/adenikin/go-note-keeper/internal/service"
	"github.com/adenikin/go-note-keeper/internal/store"
	"github.com/adenikin/go-note-keeper/internal/validators"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:                            http.StatusBadRequest,
	service.ErrWrongPassword:                                  http.StatusUnauthorized,
	service.ErrTokenIsExpired:                                 http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid:                        http.StatusUnauthorized,
	service.ErrValidationNoUserID:                             http.StatusBadRequest,
	service.ErrValidationNoClientIDsProvidedForSyncRequests:   http.StatusBadRequest,
	service.ErrValidationEmptyClientIDProvidedForSyncRequests: http.StatusBadRequest,
	service.ErrUnauthorizedAccessToDifferentUserData:          http.StatusForbidden,
	service.ErrVersionIsNotSpecified:                          http.StatusBadRequest,

	validators.ErrUnsupportedType:      http.StatusBadRequest,
	validators.ErrUnknownField:         http.StatusBadRequest,
	validators.ErrInvalidUserID:        http.StatusBadRequest,
	validators.ErrInvalidClientSideID:  http.StatusBadRequest,
	validators.ErrInvalidHash:          http.StatusBadRequest,
	validators.ErrEmptyTitle:           http.StatusBadRequest,
	validators.ErrEmptyIDs:             http.StatusBadRequest,
	validators.ErrEmptyNotes:           http.StatusBadRequest,
	validators.ErrEmptyUpdates:         http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:     http.StatusBadRequest,
	validators.ErrInvalidVersion:       http.StatusBadRequest,
	validators.ErrInvalidUpdateVersion: http.StatusBadRequest,

	store.ErrLoginAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrNoteNotSaved:       http.StatusInternalServerError,
	store.ErrNoteNotFound:       http.StatusNotFound,
	store.ErrVersionConflict:    http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

// errorMessageMap pins the response bodies the client error mapper matches
// against, so transport messages stay stable even if error texts change.
var errorMessageMap = map[error]string{
	validators.ErrEmptyNotes:      app.MsgNoNotesProvided,
	validators.ErrEmptyUpdates:    app.MsgNoUpdateRequestsProvided,
	validators.ErrEmptyIDs:        app.MsgNoDeleteRequestsProvided,
	validators.ErrInvalidUserID:   app.MsgNoUserIDProvided,
	service.ErrValidationNoUserID: app.MsgNoUserIDProvided,
	store.ErrVersionConflict:      app.MsgVersionConflict,
	store.ErrNoteNotFound:         app.MsgNoteNotFound,
	store.ErrLoginAlreadyExists:   app.MsgLoginAlreadyExists,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func errorMessageFromError(err error) string {
	for target, msg := range errorMessageMap {
		if errors.Is(err, target) {
			return msg
		}
	}
	return err.Error()
}
