// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/adenikin/go-note-keeper/internal/config"
	"github.com/adenikin/go-note-keeper/internal/logger"
	"github.com/adenikin/go-note-keeper/internal/utils"
	"github.com/adenikin/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	log := logger.NewClientLogger("test")
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL}
	appCfg := config.ClientApp{HashKey: "testhashkey"}

	a, err := NewHTTPServerAdapter(adapterCfg, appCfg, log)
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

const testBearer = "Bearer eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoxfQ.signature"

// ── Register ────────────────────────────────────────────────────────────────

func TestRegister_Success(t *testing.T) {
	user := models.User{Login: "alice", Name: "Alice"}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/register", r.URL.Path)

		w.Header().Set("Authorization", testBearer)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.User{UserID: 1, Login: user.Login, Name: user.Name})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Register(context.Background(), user)

	require.NoError(t, err)
	assert.Equal(t, user.Login, got.Login)
	assert.NotEmpty(t, a.Token())
}

func TestRegister_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("login already exists"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestRegister_InternalServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Register(context.Background(), models.User{Login: "alice"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternalServerError)
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		w.Header().Set("Authorization", testBearer)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.User{UserID: 7, Login: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(7), got.UserID)
	assert.NotEmpty(t, a.Token())
}

// TestLogin_UserIDFromTokenSubject verifies the fallback for servers that
// omit user_id from the login body: the adapter recovers the account ID from
// the bearer token's subject claim.
func TestLogin_UserIDFromTokenSubject(t *testing.T) {
	issued, err := utils.GenerateJWTToken("go-note-keeper", 9, time.Hour, "sign-key")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Authorization", "Bearer "+issued.SignedString)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(models.User{Login: "alice"})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, int64(9), got.UserID)
}

func TestLogin_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("invalid login/password"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestLogin_BadGateway(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.User{Login: "alice", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadGateway)
}

// ── Upload ──────────────────────────────────────────────────────────────────

func TestUpload_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes/", r.URL.Path)
		assert.Equal(t, testBearer, r.Header.Get("Authorization"))

		var req models.UploadRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, 1, req.Length)
		assert.NotEmpty(t, req.Hash)

		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJ1c2VyX2lkIjoxfQ.signature")

	err := a.Upload(context.Background(), models.UploadRequest{
		UserID: 1,
		Notes:  []*models.Note{{ClientSideID: "uuid-1", Title: "t", Content: "c", Version: 1, Hash: "h"}},
	})
	require.NoError(t, err)
}

func TestUpload_Forbidden(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte("access denied"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Upload(context.Background(), models.UploadRequest{UserID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpload_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("version conflict, please sync"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Upload(context.Background(), models.UploadRequest{UserID: 1})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

// ── Fetch ───────────────────────────────────────────────────────────────────

func TestFetch_Success(t *testing.T) {
	want := []models.Note{
		{ClientSideID: "uuid-1", Title: "plain", Content: "body", Version: 2},
		{ClientSideID: "uuid-2", Title: "locked", Content: "ENC:AAAA", Version: 1},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/notes/fetch", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(want)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Fetch(context.Background(), models.FetchRequest{UserID: 1, ClientSideIDs: []string{"uuid-1", "uuid-2"}})

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "ENC:AAAA", got[1].Content)
}

func TestFetch_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("note not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Fetch(context.Background(), models.FetchRequest{UserID: 1, ClientSideIDs: []string{"missing"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── Update ──────────────────────────────────────────────────────────────────

func TestUpdate_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/notes/update", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	title := "renamed"
	a := newTestAdapter(t, srv.URL)
	err := a.Update(context.Background(), models.UpdateRequest{
		NoteUpdates: []models.NoteUpdate{{ClientSideID: "uuid-1", Version: 2, Title: &title}},
	})
	require.NoError(t, err)
}

func TestUpdate_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte("version conflict, please sync"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Update(context.Background(), models.UpdateRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConflict)
}

func TestUpdate_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("no update requests provided"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Update(context.Background(), models.UpdateRequest{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBadRequest)
}

// ── Delete ──────────────────────────────────────────────────────────────────

func TestDelete_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/notes/delete", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Delete(context.Background(), models.DeleteRequest{UserID: 1, ClientSideIDs: []string{"uuid-1"}})
	require.NoError(t, err)
}

func TestDelete_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("note not found"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	err := a.Delete(context.Background(), models.DeleteRequest{UserID: 1, ClientSideIDs: []string{"missing"}})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

// ── GetServerStates ─────────────────────────────────────────────────────────

func TestGetServerStates_Success(t *testing.T) {
	states := []models.NoteState{
		{ClientSideID: "uuid-1", Hash: "h1", Version: 3},
		{ClientSideID: "uuid-2", Hash: "h2", Version: 1, Deleted: true},
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/sync/", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SyncResponse{NoteStates: states, Length: len(states)})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetServerStates(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[1].Deleted)
}

func TestGetServerStates_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("token is expired"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.GetServerStates(context.Background(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── GetAppVersion ───────────────────────────────────────────────────────────

func TestGetAppVersion_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"1.2.3"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.GetAppVersion(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.2.3", got)
}

// ── normalizeBaseURL ────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"full url", "http://localhost:8080", "http://localhost:8080", false},
		{"host only gets scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash stripped", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"whitespace", "   ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
