// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/adenikin/go-note-keeper/internal/crypto"
	"github.com/adenikin/go-note-keeper/internal/mock"
	"github.com/adenikin/go-note-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestNoteSvc(
	t *testing.T,
	ctrl *gomock.Controller,
) (
	*clientNoteService,
	*mock.MockLocalNoteRepository,
	*mock.MockServerAdapter,
) {
	t.Helper()
	mockRepo := mock.NewMockLocalNoteRepository(ctrl)
	mockAdapter := mock.NewMockServerAdapter(ctrl)

	svc := NewClientNoteService(mockRepo, mockAdapter, crypto.NewContentCipher()).(*clientNoteService)

	return svc, mockRepo, mockAdapter
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestClientNoteService_Create_Plain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(1)

	mockRepo.EXPECT().
		SaveNotes(ctx, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, notes ...*models.Note) error {
			require.Len(t, notes, 1)
			n := notes[0]
			assert.NotEmpty(t, n.ClientSideID)
			assert.Equal(t, "groceries", n.Title)
			assert.Equal(t, "milk, bread", n.Content)
			assert.Equal(t, int64(1), n.Version)
			assert.NotEmpty(t, n.Hash)
			return nil
		})
	mockAdapter.EXPECT().Upload(ctx, gomock.Any()).Return(nil)

	note, err := svc.Create(ctx, userID, "groceries", "milk, bread", "")
	require.NoError(t, err)
	assert.Equal(t, "milk, bread", note.Content, "plain note stored as-is")
}

func TestClientNoteService_Create_Protected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestNoteSvc(t, ctrl)
	ctx := context.Background()
	userID := int64(1)

	mockRepo.EXPECT().
		SaveNotes(ctx, userID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, notes ...*models.Note) error {
			require.Len(t, notes, 1)
			// тело заметки шифруется на клиенте и хранится только как ENC:-блоб
			assert.True(t, strings.HasPrefix(notes[0].Content, "ENC:"))
			assert.NotContains(t, notes[0].Content, "top secret")
			return nil
		})
	mockAdapter.EXPECT().
		Upload(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.UploadRequest) error {
			require.Len(t, req.Notes, 1)
			assert.True(t, strings.HasPrefix(req.Notes[0].Content, "ENC:"))
			return nil
		})

	note, err := svc.Create(ctx, userID, "secret", "top secret", "passphrase1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(note.Content, "ENC:"))
}

func TestClientNoteService_Create_LocalSaveError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().SaveNotes(ctx, int64(1), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.Create(ctx, 1, "t", "c", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save created note to local store")
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestClientNoteService_Get_DecryptsProtectedNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	cipher := crypto.NewContentCipher()
	encrypted, err := cipher.EncryptContent("plain body", "correct horse")
	require.NoError(t, err)

	mockRepo.EXPECT().GetNote(ctx, "n1", int64(1)).Return(models.Note{
		ClientSideID: "n1", UserID: 1, Title: "t", Content: encrypted, Version: 2,
	}, nil)

	note, err := svc.Get(ctx, "n1", 1, "correct horse")
	require.NoError(t, err)
	assert.Equal(t, "plain body", note.Content)
}

func TestClientNoteService_Get_WrongPassphrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	cipher := crypto.NewContentCipher()
	encrypted, err := cipher.EncryptContent("plain body", "correct horse")
	require.NoError(t, err)

	mockRepo.EXPECT().GetNote(ctx, "n1", int64(1)).Return(models.Note{
		ClientSideID: "n1", UserID: 1, Content: encrypted,
	}, nil)

	_, err = svc.Get(ctx, "n1", 1, "wrong horse")
	require.ErrorIs(t, err, ErrCannotDecrypt)
}

func TestClientNoteService_Get_PlainNotePassphraseIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetNote(ctx, "n1", int64(1)).Return(models.Note{
		ClientSideID: "n1", UserID: 1, Content: "just text",
	}, nil)

	note, err := svc.Get(ctx, "n1", 1, "whatever")
	require.NoError(t, err)
	assert.Equal(t, "just text", note.Content)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestClientNoteService_Update_BumpsVersionAndPushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	prev := models.Note{ClientSideID: "n1", UserID: 1, Title: "old", Content: "old body", Version: 3}
	mockRepo.EXPECT().GetNote(ctx, "n1", int64(1)).Return(prev, nil)

	mockRepo.EXPECT().
		UpdateNote(ctx, gomock.AssignableToTypeOf(models.Note{})).
		DoAndReturn(func(_ context.Context, n models.Note) error {
			assert.Equal(t, "new", n.Title)
			assert.Equal(t, "new body", n.Content)
			assert.Equal(t, int64(4), n.Version)
			return nil
		})

	mockAdapter.EXPECT().
		Update(ctx, gomock.AssignableToTypeOf(models.UpdateRequest{})).
		DoAndReturn(func(_ context.Context, req models.UpdateRequest) error {
			require.Len(t, req.NoteUpdates, 1)
			upd := req.NoteUpdates[0]
			// сервер сверяет версию, которую клиент видел последней
			assert.Equal(t, int64(3), upd.Version)
			require.NotNil(t, upd.Title)
			assert.Equal(t, "new", *upd.Title)
			return nil
		})

	err := svc.Update(ctx, models.Note{ClientSideID: "n1", UserID: 1, Title: "new", Content: "new body"}, "")
	require.NoError(t, err)
}

func TestClientNoteService_Update_ReencryptsWithPassphrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	prev := models.Note{ClientSideID: "n1", UserID: 1, Version: 1}
	mockRepo.EXPECT().GetNote(ctx, "n1", int64(1)).Return(prev, nil)
	mockRepo.EXPECT().
		UpdateNote(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, n models.Note) error {
			assert.True(t, strings.HasPrefix(n.Content, "ENC:"))
			return nil
		})
	mockAdapter.EXPECT().Update(ctx, gomock.Any()).Return(nil)

	err := svc.Update(ctx, models.Note{ClientSideID: "n1", UserID: 1, Content: "secret edit"}, "passphrase1")
	require.NoError(t, err)
}

func TestClientNoteService_Update_MissingNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().GetNote(ctx, "ghost", int64(1)).Return(models.Note{}, errors.New("note not found"))

	err := svc.Update(ctx, models.Note{ClientSideID: "ghost", UserID: 1}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load existing local note")
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientNoteService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockAdapter := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteNote(ctx, "n1", int64(1)).Return(nil)
	mockAdapter.EXPECT().
		Delete(ctx, models.DeleteRequest{UserID: 1, ClientSideIDs: []string{"n1"}}).
		Return(nil)

	require.NoError(t, svc.Delete(ctx, "n1", 1))
}

func TestClientNoteService_Delete_LocalError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newTestNoteSvc(t, ctrl)
	ctx := context.Background()

	mockRepo.EXPECT().DeleteNote(ctx, "n1", int64(1)).Return(errors.New("db locked"))

	err := svc.Delete(ctx, "n1", 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soft delete local note")
}

// ── ValidatePassphrase ───────────────────────────────────────────────────────

func TestClientNoteService_ValidatePassphrase(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestNoteSvc(t, ctrl)

	ok, msg := svc.ValidatePassphrase("abcd")
	assert.True(t, ok)
	assert.Empty(t, msg)

	ok, msg = svc.ValidatePassphrase("abc")
	assert.False(t, ok)
	assert.NotEmpty(t, msg)
}
