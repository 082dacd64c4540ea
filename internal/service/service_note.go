package service

import (
	"context"

	"github.com/adenikin/go-note-keeper/internal/logger"
	"github.com/adenikin/go-note-keeper/internal/store"
	"github.com/adenikin/go-note-keeper/models"
)

// noteService is the concrete implementation of NoteService. It is a thin
// orchestration layer: all validation happens in the wrapping
// NoteValidationService, all persistence in the NoteRepository.
type noteService struct {
	noteRepository store.NoteRepository

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		logger:         logger,
	}
}

func (p *noteService) UploadNotes(ctx context.Context, req models.UploadRequest) error {
	return p.noteRepository.SaveNotes(ctx, req.UserID, req.Notes...)
}

func (p *noteService) FetchNotes(ctx context.Context, req models.FetchRequest) ([]models.Note, error) {
	return p.noteRepository.GetNotes(ctx, req)
}

func (p *noteService) FetchAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	return p.noteRepository.GetAllNotes(ctx, userID)
}

func (p *noteService) FetchAllStates(ctx context.Context, userID int64) ([]models.NoteState, error) {
	return p.noteRepository.GetAllStates(ctx, userID)
}

func (p *noteService) UpdateNotes(ctx context.Context, req models.UpdateRequest) error {
	for _, update := range req.NoteUpdates {
		if err := p.noteRepository.UpdateNote(ctx, update); err != nil {
			return err
		}
	}
	return nil
}

func (p *noteService) DeleteNotes(ctx context.Context, req models.DeleteRequest) error {
	return p.noteRepository.DeleteNotes(ctx, req.UserID, req.ClientSideIDs...)
}
