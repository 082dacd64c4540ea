package validators

import (
	"context"
	"fmt"

	"github.com/adenikin/go-note-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate or internal validation methods
// to restrict validation to a subset of fields (field-level scoping).
const (
	// FieldClientSideID targets the client-generated unique identifier of a note.
	FieldClientSideID = "client_side_id"

	// FieldUserID targets the owner identifier of a note or request.
	FieldUserID = "user_id"

	// FieldTitle targets the display title of a note.
	FieldTitle = "title"

	// FieldHash targets the integrity checksum field of a note.
	FieldHash = "hash"

	// FieldVersion targets the optimistic concurrency version field of a note.
	FieldVersion = "version"

	// FieldClientSideIDs targets the array of client-side identifiers in bulk requests.
	FieldClientSideIDs = "client_side_ids"

	// FieldNotes targets the list of notes in an upload request.
	FieldNotes = "notes"

	// FieldVersionForUpload enforces that version must be zero or one for
	// newly uploaded notes (initial creation).
	FieldVersionForUpload = "version for upload"

	// FieldNoteUpdates targets the list of update descriptors in a batch update request.
	FieldNoteUpdates = "note_updates"
)

// NoteValidator implements the Validator interface for all note-related
// domain models: Note, UploadRequest, UpdateRequest, NoteUpdate,
// DeleteRequest, and FetchRequest.
//
// It supports both value and pointer receivers for every model type
// and allows optional field-level scoping via variadic field name arguments.
type NoteValidator struct {
}

// NewNoteValidator constructs a new NoteValidator
// and returns it as the Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Unknown types yield ErrUnsupportedType.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(ctx, value, fields...)
	case *models.Note:
		return v.validateNote(ctx, *value, fields...)

	case models.UploadRequest:
		return v.validateUploadRequest(ctx, value, fields...)
	case *models.UploadRequest:
		return v.validateUploadRequest(ctx, *value, fields...)

	case models.UpdateRequest:
		return v.validateUpdateRequest(ctx, value, fields...)
	case *models.UpdateRequest:
		return v.validateUpdateRequest(ctx, *value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(ctx, value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(ctx, *value, fields...)

	case models.DeleteRequest:
		return v.validateDeleteRequest(ctx, value, fields...)
	case *models.DeleteRequest:
		return v.validateDeleteRequest(ctx, *value, fields...)

	case models.FetchRequest:
		return v.validateFetchRequest(ctx, value, fields...)
	case *models.FetchRequest:
		return v.validateFetchRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(_ context.Context, note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientSideID, FieldUserID, FieldTitle, FieldHash, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldClientSideID:
			if note.ClientSideID == "" {
				return ErrInvalidClientSideID
			}
		case FieldUserID:
			if note.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if note.Title == "" {
				return ErrEmptyTitle
			}
		case FieldHash:
			if note.Hash == "" {
				return ErrInvalidHash
			}
		case FieldVersion:
			if note.Version < 0 {
				return ErrInvalidVersion
			}
		case FieldVersionForUpload:
			// New records start life at version 1; anything else means the
			// client is trying to upload an already-synced record.
			if note.Version > 1 {
				return ErrInvalidVersion
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateUploadRequest(ctx context.Context, request models.UploadRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldNotes}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldNotes:
			if len(request.Notes) == 0 {
				return ErrEmptyNotes
			}
			for i, note := range request.Notes {
				if err := v.validateNote(ctx, *note, FieldClientSideID, FieldTitle, FieldHash, FieldVersionForUpload); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateUpdateRequest(ctx context.Context, request models.UpdateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteUpdates}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteUpdates:
			if len(request.NoteUpdates) == 0 {
				return ErrEmptyUpdates
			}
			for i, update := range request.NoteUpdates {
				if err := v.validateNoteUpdate(ctx, update); err != nil {
					return fmt.Errorf("validation error at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(_ context.Context, update models.NoteUpdate, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldClientSideID, FieldVersion}
	}

	for _, f := range fields {
		switch f {
		case FieldClientSideID:
			if update.ClientSideID == "" {
				return ErrInvalidClientSideID
			}
		case FieldVersion:
			if update.Version <= 0 {
				return ErrInvalidUpdateVersion
			}
		default:
			return ErrUnknownField
		}
	}

	// A partial update that changes nothing is a client bug.
	if update.Title == nil && update.Content == nil && update.Hash == nil {
		return ErrNoFieldsToUpdate
	}

	return nil
}

func (v *NoteValidator) validateDeleteRequest(_ context.Context, request models.DeleteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldClientSideIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldClientSideIDs:
			if len(request.ClientSideIDs) == 0 {
				return ErrEmptyIDs
			}
			for _, id := range request.ClientSideIDs {
				if id == "" {
					return ErrInvalidClientSideID
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateFetchRequest(_ context.Context, request models.FetchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldClientSideIDs}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if request.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldClientSideIDs:
			// An empty list means "fetch everything"; individual entries
			// must still be non-blank.
			for _, id := range request.ClientSideIDs {
				if id == "" {
					return ErrInvalidClientSideID
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
