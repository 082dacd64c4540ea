package store

import (
	"context"

	"github.com/adenikin/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock -exclude_interfaces=ErrorClassificator

// UserRepository persists user accounts on the server side.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByLogin(ctx context.Context, user models.User) (models.User, error)
}

// NoteRepository persists notes on the server side. Note content is opaque
// to this layer: plain or "ENC:"-tagged strings pass through unmodified.
type NoteRepository interface {
	SaveNotes(ctx context.Context, userID int64, notes ...*models.Note) error
	GetNotes(ctx context.Context, req models.FetchRequest) ([]models.Note, error)
	GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error)
	GetAllStates(ctx context.Context, userID int64) ([]models.NoteState, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) error
	DeleteNotes(ctx context.Context, userID int64, clientSideIDs ...string) error
	IncrementVersion(ctx context.Context, clientSideID string, userID int64) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
