// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/adenikin/go-note-keeper/internal/logger"
	"github.com/adenikin/go-note-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations directly against the "notes" table
// using the embedded [*DB] connection.
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that all database interactions are traced
// with structured fields (user_id, client_side_id, etc.).
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
//
// The logger parameter is stored for fallback logging; most methods prefer
// the context-scoped logger obtained via [logger.FromContext].
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveNotes inserts the given notes for the user inside a single transaction.
// All inserts succeed or none do; a failure on any row rolls the whole batch
// back so a partially uploaded sync batch never becomes visible.
func (p *noteRepository) SaveNotes(ctx context.Context, userID int64, notes ...*models.Note) error {
	log := logger.FromContext(ctx)

	if len(notes) == 0 {
		return nil
	}

	tx, err := p.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.SaveNotes").
			Int64("user_id", userID).
			Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	now := time.Now()

	for _, note := range notes {
		createdAt := now
		if note.CreatedAt != nil {
			createdAt = *note.CreatedAt
		}
		updatedAt := now
		if note.UpdatedAt != nil {
			updatedAt = *note.UpdatedAt
		}

		res, execErr := tx.ExecContext(ctx, saveSingleNote,
			userID,
			note.ClientSideID,
			note.Title,
			note.Content,
			createdAt,
			updatedAt,
			note.Version,
			note.Hash,
			note.Deleted,
		)
		if execErr != nil {
			log.Err(execErr).
				Str("func", "noteRepository.SaveNotes").
				Int64("user_id", userID).
				Str("client_side_id", note.ClientSideID).
				Msg("failed to insert note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, affErr := res.RowsAffected()
		if affErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
		}
		if affected == 0 {
			return ErrNoteNotSaved
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).
			Str("func", "noteRepository.SaveNotes").
			Int64("user_id", userID).
			Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetNotes retrieves notes that match the criteria in req.
//
// Filtering is always applied by UserID. When req.ClientSideIDs is non-empty,
// an additional IN-clause narrows the result to those identifiers only.
//
// Returns the matched notes or an error if the query fails, a row cannot be
// scanned, or an iteration error is detected after the result set is
// exhausted.
func (p *noteRepository) GetNotes(ctx context.Context, req models.FetchRequest) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetNotesQuery(ctx, req)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNotes").
			Int64("user_id", req.UserID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.GetNotes").
			Int64("user_id", req.UserID).
			Int("client side ids count", len(req.ClientSideIDs)).
			Msg("failed to execute query for getting requested notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanNotes(ctx, rows)
}

// GetAllNotes retrieves every note owned by the given user, including
// soft-deleted records.
//
// Returns an empty slice when no records are found.
func (p *noteRepository) GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, getAllUserNotes, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "noteRepository.GetAllNotes").
			Int64("user_id", userID).
			Msg("failed to execute query for getting all user notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	return scanNotes(ctx, rows)
}

// GetAllStates retrieves the sync state descriptor of every note owned by
// the user, including soft-deleted records.
func (p *noteRepository) GetAllStates(ctx context.Context, userID int64) ([]models.NoteState, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := p.DB.QueryContext(ctx, getAllNoteStates, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "noteRepository.GetAllStates").
			Int64("user_id", userID).
			Msg("failed to execute query for getting note states")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	states := make([]models.NoteState, 0, 50)

	for rows.Next() {
		var state models.NoteState

		if scanErr := rows.Scan(
			&state.ClientSideID,
			&state.Hash,
			&state.Version,
			&state.Deleted,
			&state.UpdatedAt,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "noteRepository.GetAllStates").
				Int64("user_id", userID).
				Msg("failed to scan note state row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		states = append(states, state)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return states, nil
}

// UpdateNote applies a partial update to a single note with an
// optimistic-locking check on the supplied version.
//
// Error handling:
//   - zero rows affected and the note exists → [ErrVersionConflict]
//   - zero rows affected and the note does not exist → [ErrNoteNotFound]
func (p *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateNoteQuery(update)
	if err != nil {
		log.Err(err).
			Str("func", "noteRepository.UpdateNote").
			Str("client_side_id", update.ClientSideID).
			Msg("failed to build update query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, execErr := p.DB.ExecContext(ctx, query, args...)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "noteRepository.UpdateNote").
			Str("client_side_id", update.ClientSideID).
			Msg("failed to execute update")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affErr := res.RowsAffected()
	if affErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
	}
	if affected > 0 {
		return nil
	}

	// Zero rows: either the version moved on or the note never existed.
	// One extra lookup distinguishes the two for the caller.
	var exists bool
	row := p.DB.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM notes WHERE client_side_id = $1 AND user_id = $2);`,
		update.ClientSideID, update.UserID,
	)
	if scanErr := row.Scan(&exists); scanErr != nil && !errors.Is(scanErr, sql.ErrNoRows) {
		return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
	}

	if exists {
		return ErrVersionConflict
	}
	return ErrNoteNotFound
}

// DeleteNotes soft-deletes the given notes so the deletion can propagate to
// other devices during sync.
func (p *noteRepository) DeleteNotes(ctx context.Context, userID int64, clientSideIDs ...string) error {
	log := logger.FromContext(ctx)

	if len(clientSideIDs) == 0 {
		return nil
	}

	res, execErr := p.DB.ExecContext(ctx, deleteNotes, userID, clientSideIDs)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "noteRepository.DeleteNotes").
			Int64("user_id", userID).
			Msg("failed to execute delete")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affErr := res.RowsAffected()
	if affErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// IncrementVersion bumps the version counter of a single note.
func (p *noteRepository) IncrementVersion(ctx context.Context, clientSideID string, userID int64) error {
	log := logger.FromContext(ctx)

	res, execErr := p.DB.ExecContext(ctx, incrementNoteVersion, clientSideID, userID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "noteRepository.IncrementVersion").
			Str("client_side_id", clientSideID).
			Msg("failed to increment version")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
	}

	affected, affErr := res.RowsAffected()
	if affErr != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, affErr)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// scanNotes drains rows into a slice of [models.Note].
func scanNotes(ctx context.Context, rows *sql.Rows) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	results := make([]models.Note, 0, 50)

	for rows.Next() {
		var note models.Note

		if scanErr := rows.Scan(
			&note.ID,
			&note.UserID,
			&note.ClientSideID,
			&note.Title,
			&note.Content,
			&note.CreatedAt,
			&note.UpdatedAt,
			&note.Version,
			&note.Hash,
			&note.Deleted,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "scanNotes").
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "scanNotes").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
