package store

import (
	"context"

	"github.com/adenikin/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalNoteRepository is the device-local note cache backed by SQLite.
// It mirrors the server-side note set for one user so the client stays
// usable offline; the sync worker reconciles the two sides.
type LocalNoteRepository interface {
	SaveNotes(ctx context.Context, userID int64, notes ...*models.Note) error
	GetNote(ctx context.Context, clientSideID string, userID int64) (models.Note, error)
	GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetAllStates(ctx context.Context, userID int64) ([]models.NoteState, error)
	UpdateNote(ctx context.Context, note models.Note) error
	DeleteNote(ctx context.Context, clientSideID string, userID int64) error
	IncrementVersion(ctx context.Context, clientSideID string, userID int64) error
}
