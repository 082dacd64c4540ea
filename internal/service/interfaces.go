package service

import (
	"context"

	"github.com/adenikin/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NoteServiceWrapper

// NoteService is the server-side business layer over the note repository.
// Note bodies are opaque here: the server never inspects whether content is
// plain text or an encrypted blob.
type NoteService interface {
	UploadNotes(ctx context.Context, req models.UploadRequest) error

	FetchNotes(ctx context.Context, req models.FetchRequest) ([]models.Note, error)
	FetchAllNotes(ctx context.Context, userID int64) ([]models.Note, error)
	FetchAllStates(ctx context.Context, userID int64) ([]models.NoteState, error)

	UpdateNotes(ctx context.Context, req models.UpdateRequest) error
	DeleteNotes(ctx context.Context, req models.DeleteRequest) error
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SyncService builds a reconciliation plan out of server and client note
// state descriptors. It is stateless: callers fetch the states, the service
// only classifies them.
type SyncService interface {
	BuildSyncPlan(ctx context.Context, serverStates, clientStates []models.NoteState) (models.SyncPlan, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}
