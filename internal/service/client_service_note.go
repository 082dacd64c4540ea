package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/adenikin/go-note-keeper/internal/adapter"
	"github.com/adenikin/go-note-keeper/internal/crypto"
	"github.com/adenikin/go-note-keeper/internal/store"
	"github.com/adenikin/go-note-keeper/internal/utils"
	"github.com/adenikin/go-note-keeper/models"
)

type clientNoteService struct {
	localStore store.LocalNoteRepository
	adapter    adapter.ServerAdapter
	cipher     crypto.ContentCipher
	uuidGen    *utils.UUIDGenerator
}

func NewClientNoteService(localStore store.LocalNoteRepository, serverAdapter adapter.ServerAdapter, cipher crypto.ContentCipher) ClientNoteService {
	return &clientNoteService{
		localStore: localStore,
		adapter:    serverAdapter,
		cipher:     cipher,
		uuidGen:    utils.NewUUIDGenerator(),
	}
}

// Create implements ClientNoteService. The passphrase never leaves this
// method: only the resulting "ENC:"-tagged blob is stored and uploaded.
func (p *clientNoteService) Create(ctx context.Context, userID int64, title, content, passphrase string) (models.Note, error) {
	storedContent := content
	if passphrase != "" {
		encrypted, err := p.cipher.EncryptContent(content, passphrase)
		if err != nil {
			return models.Note{}, fmt.Errorf("encrypt note content: %w", err)
		}
		storedContent = encrypted
	}

	now := time.Now().UTC()
	note := &models.Note{
		ClientSideID: p.uuidGen.Generate(),
		UserID:       userID,
		Title:        title,
		Content:      storedContent,
		Hash:         computeNoteHash(title, storedContent),
		Version:      1,
		CreatedAt:    &now,
		UpdatedAt:    &now,
	}

	if err := p.localStore.SaveNotes(ctx, userID, note); err != nil {
		return models.Note{}, fmt.Errorf("save created note to local store: %w", err)
	}

	if err := p.adapter.Upload(ctx, models.UploadRequest{UserID: userID, Notes: []*models.Note{note}}); err != nil {
		return models.Note{}, fmt.Errorf("upload created note to server: %w", mapAdapterError(err))
	}

	return *note, nil
}

// GetAll implements ClientNoteService. Bodies are not decrypted here; the
// caller can check cipher.IsEncryptedContent to render a lock marker.
func (p *clientNoteService) GetAll(ctx context.Context, userID int64) ([]models.Note, error) {
	notes, err := p.localStore.GetAllNotes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get all local notes: %w", err)
	}

	return notes, nil
}

// Get implements ClientNoteService.
func (p *clientNoteService) Get(ctx context.Context, clientSideID string, userID int64, passphrase string) (models.Note, error) {
	note, err := p.localStore.GetNote(ctx, clientSideID, userID)
	if err != nil {
		return models.Note{}, fmt.Errorf("get local note: %w", err)
	}

	plain, ok := p.cipher.DecryptContent(note.Content, passphrase)
	if !ok {
		return models.Note{}, ErrCannotDecrypt
	}
	note.Content = plain

	return note, nil
}

// Update implements ClientNoteService. note carries the plaintext body; the
// stored and uploaded copy is re-encrypted when passphrase is non-empty.
func (p *clientNoteService) Update(ctx context.Context, note models.Note, passphrase string) error {
	prev, err := p.localStore.GetNote(ctx, note.ClientSideID, note.UserID)
	if err != nil {
		return fmt.Errorf("load existing local note: %w", err)
	}

	storedContent := note.Content
	if passphrase != "" {
		encrypted, encErr := p.cipher.EncryptContent(note.Content, passphrase)
		if encErr != nil {
			return fmt.Errorf("encrypt note content for update: %w", encErr)
		}
		storedContent = encrypted
	}

	now := time.Now().UTC()
	updated := prev
	updated.Title = note.Title
	updated.Content = storedContent
	updated.Hash = computeNoteHash(note.Title, storedContent)
	updated.Version = prev.Version + 1
	updated.UpdatedAt = &now

	if err = p.localStore.UpdateNote(ctx, updated); err != nil {
		return fmt.Errorf("update local note: %w", err)
	}

	title := updated.Title
	content := updated.Content
	hash := updated.Hash
	req := models.UpdateRequest{
		NoteUpdates: []models.NoteUpdate{{
			ClientSideID: updated.ClientSideID,
			UserID:       updated.UserID,
			Title:        &title,
			Content:      &content,
			Hash:         &hash,
			Version:      prev.Version,
		}},
	}

	if err = p.adapter.Update(ctx, req); err != nil {
		return fmt.Errorf("update note on server: %w", mapAdapterError(err))
	}

	return nil
}

// Delete implements ClientNoteService.
func (p *clientNoteService) Delete(ctx context.Context, clientSideID string, userID int64) error {
	if err := p.localStore.DeleteNote(ctx, clientSideID, userID); err != nil {
		return fmt.Errorf("soft delete local note: %w", err)
	}

	req := models.DeleteRequest{
		UserID:        userID,
		ClientSideIDs: []string{clientSideID},
	}

	if err := p.adapter.Delete(ctx, req); err != nil {
		return fmt.Errorf("delete note on server: %w", mapAdapterError(err))
	}

	return nil
}

// ValidatePassphrase implements ClientNoteService.
func (p *clientNoteService) ValidatePassphrase(passphrase string) (bool, string) {
	return p.cipher.ValidatePassword(passphrase)
}

// computeNoteHash fingerprints a note for the sync protocol. The hash covers
// the stored (possibly encrypted) body, so re-encrypting with a fresh salt
// counts as a change.
func computeNoteHash(title, storedContent string) string {
	h := sha256.New()
	h.Write([]byte(title))
	h.Write([]byte{0})
	h.Write([]byte(storedContent))
	return hex.EncodeToString(h.Sum(nil))
}
