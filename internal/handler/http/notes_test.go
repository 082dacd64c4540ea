package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adenikin/go-note-keeper/internal/app"
	"github.com/adenikin/go-note-keeper/internal/logger"
	"github.com/adenikin/go-note-keeper/internal/service"
	"github.com/adenikin/go-note-keeper/internal/store"
	"github.com/adenikin/go-note-keeper/internal/utils"
	"github.com/adenikin/go-note-keeper/models"
	"github.com/adenikin/go-note-keeper/internal/validators"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newNoteHandler returns a *Handler (not http.Handler) so individual handler
// methods can be called directly without going through the router.
func newNoteHandler(t *testing.T, svc service.NoteService) *Handler {
	t.Helper()
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService:    &mockAuthSvc{},
			AppInfoService: &mockAppInfoSvc{},
			NoteService:    svc,
		},
	}
}

// encodeBody serialises v to JSON and returns it as an io.Reader.
func encodeBody(t *testing.T, v any) io.Reader {
	t.Helper()
	buf := &bytes.Buffer{}
	require.NoError(t, json.NewEncoder(buf).Encode(v))
	return buf
}

// ctxWithUser returns a context carrying the given userID, the same way the
// auth middleware stores it.
func ctxWithUser(userID int64) context.Context {
	return context.WithValue(context.Background(), utils.UserIDCtxKey, userID)
}

// ─────────────────────────────────────────────
// upload
// ─────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	called := false
	svc := &mockNoteSvc{
		uploadFn: func(_ context.Context, req models.UploadRequest) error {
			called = true
			assert.Equal(t, int64(1), req.UserID)
			require.Len(t, req.Notes, 1)
			// user ID токена проставляется в каждую заметку
			assert.Equal(t, int64(1), req.Notes[0].UserID)
			return nil
		},
	}

	h := newNoteHandler(t, svc)
	body := models.UploadRequest{
		Notes:  []*models.Note{{ClientSideID: "abc", Title: "groceries"}},
		Length: 1,
	}
	req := httptest.NewRequest(http.MethodPost, "/api/notes/", encodeBody(t, body)).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.True(t, called, "UploadNotes should have been called")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpload_ForeignUserID(t *testing.T) {
	svc := &mockNoteSvc{
		uploadFn: func(_ context.Context, _ models.UploadRequest) error {
			t.Fatal("UploadNotes must not be called for a foreign user ID")
			return nil
		},
	}

	h := newNoteHandler(t, svc)
	body := models.UploadRequest{UserID: 99, Notes: []*models.Note{{ClientSideID: "abc"}}, Length: 1}
	req := httptest.NewRequest(http.MethodPost, "/api/notes/", encodeBody(t, body)).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgAccessDenied)
}

func TestUpload_NoUserIDInContext(t *testing.T) {
	h := newNoteHandler(t, &mockNoteSvc{})
	req := httptest.NewRequest(http.MethodPost, "/api/notes/",
		encodeBody(t, models.UploadRequest{Notes: []*models.Note{{ClientSideID: "abc"}}}))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgNoUserIDProvided)
}

func TestUpload_InvalidJSON(t *testing.T) {
	h := newNoteHandler(t, &mockNoteSvc{})
	req := httptest.NewRequest(http.MethodPost, "/api/notes/", strings.NewReader(`{bad json}`)).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestUpload_ValidationError(t *testing.T) {
	svc := &mockNoteSvc{
		uploadFn: func(_ context.Context, _ models.UploadRequest) error {
			return fmt.Errorf("error during note validation before saving: %w", validators.ErrEmptyNotes)
		},
	}

	h := newNoteHandler(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/notes/", encodeBody(t, models.UploadRequest{})).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	// клиент сопоставляет тело ответа с каноническим сообщением
	assert.Equal(t, app.MsgNoNotesProvided, strings.TrimSpace(rec.Body.String()))
}

func TestUpload_ServiceError(t *testing.T) {
	svc := &mockNoteSvc{
		uploadFn: func(_ context.Context, _ models.UploadRequest) error {
			return errors.New("storage failure")
		},
	}

	h := newNoteHandler(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/notes/",
		encodeBody(t, models.UploadRequest{Notes: []*models.Note{{ClientSideID: "abc"}}})).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.upload(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "storage failure")
}

// ─────────────────────────────────────────────
// fetch
// ─────────────────────────────────────────────

func TestFetch_Success(t *testing.T) {
	expected := []models.Note{{ClientSideID: "id-1", Title: "a"}, {ClientSideID: "id-2", Title: "b"}}
	svc := &mockNoteSvc{
		fetchFn: func(_ context.Context, req models.FetchRequest) ([]models.Note, error) {
			assert.Equal(t, int64(5), req.UserID)
			assert.Equal(t, []string{"id-1", "id-2"}, req.ClientSideIDs)
			return expected, nil
		},
	}

	h := newNoteHandler(t, svc)
	body := models.FetchRequest{
		ClientSideIDs: []string{"id-1", "id-2"},
	}
	req := httptest.NewRequest(http.MethodPost, "/api/notes/fetch", encodeBody(t, body)).
		WithContext(ctxWithUser(5))
	rec := httptest.NewRecorder()

	h.fetch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result []models.Note
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Equal(t, expected, result)
}

func TestFetch_ForeignUserID(t *testing.T) {
	h := newNoteHandler(t, &mockNoteSvc{})
	body := models.FetchRequest{UserID: 2, ClientSideIDs: []string{"id-1"}}
	req := httptest.NewRequest(http.MethodPost, "/api/notes/fetch", encodeBody(t, body)).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.fetch(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFetch_EmptyResult(t *testing.T) {
	svc := &mockNoteSvc{
		fetchFn: func(_ context.Context, _ models.FetchRequest) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	}

	h := newNoteHandler(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/notes/fetch",
		encodeBody(t, models.FetchRequest{})).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.fetch(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var result []models.Note
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&result))
	assert.Empty(t, result)
}

func TestFetch_ServiceError(t *testing.T) {
	svc := &mockNoteSvc{
		fetchFn: func(_ context.Context, _ models.FetchRequest) ([]models.Note, error) {
			return nil, errors.New("db unavailable")
		},
	}

	h := newNoteHandler(t, svc)
	req := httptest.NewRequest(http.MethodPost, "/api/notes/fetch",
		encodeBody(t, models.FetchRequest{})).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.fetch(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// update
// ─────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	content := "new body"
	svc := &mockNoteSvc{
		updateFn: func(_ context.Context, req models.UpdateRequest) error {
			require.Len(t, req.NoteUpdates, 1)
			assert.Equal(t, int64(3), req.NoteUpdates[0].UserID)
			return nil
		},
	}

	h := newNoteHandler(t, svc)
	body := models.UpdateRequest{
		NoteUpdates: []models.NoteUpdate{
			{ClientSideID: "id-1", Content: &content, Version: 2},
		},
	}
	req := httptest.NewRequest(http.MethodPut, "/api/notes/update", encodeBody(t, body)).
		WithContext(ctxWithUser(3))
	rec := httptest.NewRecorder()

	h.update(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdate_ForeignUserID(t *testing.T) {
	content := "x"
	h := newNoteHandler(t, &mockNoteSvc{
		updateFn: func(_ context.Context, _ models.UpdateRequest) error {
			t.Fatal("UpdateNotes must not be called for a foreign user ID")
			return nil
		},
	})
	body := models.UpdateRequest{
		NoteUpdates: []models.NoteUpdate{
			{ClientSideID: "id-1", UserID: 42, Content: &content, Version: 2},
		},
	}
	req := httptest.NewRequest(http.MethodPut, "/api/notes/update", encodeBody(t, body)).
		WithContext(ctxWithUser(3))
	rec := httptest.NewRecorder()

	h.update(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgAccessDenied)
}

func TestUpdate_VersionConflict(t *testing.T) {
	svc := &mockNoteSvc{
		updateFn: func(_ context.Context, _ models.UpdateRequest) error {
			return fmt.Errorf("error updating note: %w", store.ErrVersionConflict)
		},
	}

	h := newNoteHandler(t, svc)
	req := httptest.NewRequest(http.MethodPut, "/api/notes/update",
		encodeBody(t, models.UpdateRequest{NoteUpdates: []models.NoteUpdate{{ClientSideID: "id-1"}}})).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.update(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, app.MsgVersionConflict, strings.TrimSpace(rec.Body.String()))
}

func TestUpdate_NoteNotFound(t *testing.T) {
	svc := &mockNoteSvc{
		updateFn: func(_ context.Context, _ models.UpdateRequest) error {
			return fmt.Errorf("error updating note: %w", store.ErrNoteNotFound)
		},
	}

	h := newNoteHandler(t, svc)
	req := httptest.NewRequest(http.MethodPut, "/api/notes/update",
		encodeBody(t, models.UpdateRequest{NoteUpdates: []models.NoteUpdate{{ClientSideID: "id-1"}}})).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.update(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNoteNotFound, strings.TrimSpace(rec.Body.String()))
}

func TestUpdate_InvalidJSON(t *testing.T) {
	h := newNoteHandler(t, &mockNoteSvc{})
	req := httptest.NewRequest(http.MethodPut, "/api/notes/update", strings.NewReader(`{bad`)).
		WithContext(ctxWithUser(1))
	rec := httptest.NewRecorder()

	h.update(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// delete
// ─────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	called := false
	svc := &mockNoteSvc{
		deleteFn: func(_ context.Context, req models.DeleteRequest) error {
			called = true
			assert.Equal(t, int64(7), req.UserID)
			assert.Equal(t, []string{"id-1"}, req.ClientSideIDs)
			return nil
		},
	}

	h := newNoteHandler(t, svc)
	body := models.DeleteRequest{ClientSideIDs: []string{"id-1"}}
	req := httptest.NewRequest(http.MethodDelete, "/api/notes/delete", encodeBody(t, body)).
		WithContext(ctxWithUser(7))
	rec := httptest.NewRecorder()

	h.delete(rec, req)

	assert.True(t, called, "DeleteNotes should have been called")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDelete_ForeignUserID(t *testing.T) {
	h := newNoteHandler(t, &mockNoteSvc{})
	body := models.DeleteRequest{UserID: 9, ClientSideIDs: []string{"id-1"}}
	req := httptest.NewRequest(http.MethodDelete, "/api/notes/delete", encodeBody(t, body)).
		WithContext(ctxWithUser(7))
	rec := httptest.NewRecorder()

	h.delete(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDelete_ServiceError(t *testing.T) {
	svc := &mockNoteSvc{
		deleteFn: func(_ context.Context, _ models.DeleteRequest) error {
			return fmt.Errorf("error deleting notes: %w", store.ErrNoteNotFound)
		},
	}

	h := newNoteHandler(t, svc)
	req := httptest.NewRequest(http.MethodDelete, "/api/notes/delete",
		encodeBody(t, models.DeleteRequest{ClientSideIDs: []string{"id-1"}})).
		WithContext(ctxWithUser(7))
	rec := httptest.NewRecorder()

	h.delete(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, app.MsgNoteNotFound, strings.TrimSpace(rec.Body.String()))
}
