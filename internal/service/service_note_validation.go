package service

import (
	"context"
	"fmt"

	"github.com/adenikin/go-note-keeper/internal/validators"
	"github.com/adenikin/go-note-keeper/models"
)

// NoteValidationService decorates a NoteService with request validation.
// Invalid requests are rejected before they reach the storage layer.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) UploadNotes(ctx context.Context, req models.UploadRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during note validation before saving: %w", err)
	}

	return v.inner.UploadNotes(ctx, req)
}

func (v *NoteValidationService) FetchNotes(ctx context.Context, req models.FetchRequest) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error during fetch request validation: %w", err)
	}

	return v.inner.FetchNotes(ctx, req)
}

func (v *NoteValidationService) FetchAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}

	return v.inner.FetchAllNotes(ctx, userID)
}

func (v *NoteValidationService) FetchAllStates(ctx context.Context, userID int64) ([]models.NoteState, error) {
	if userID <= 0 {
		return nil, ErrValidationNoUserID
	}

	return v.inner.FetchAllStates(ctx, userID)
}

func (v *NoteValidationService) UpdateNotes(ctx context.Context, req models.UpdateRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during update request validation: %w", err)
	}

	return v.inner.UpdateNotes(ctx, req)
}

func (v *NoteValidationService) DeleteNotes(ctx context.Context, req models.DeleteRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("error during delete request validation: %w", err)
	}

	return v.inner.DeleteNotes(ctx, req)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}
