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

// localNoteRepository is the SQLite-backed implementation of
// [LocalNoteRepository].
type localNoteRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalNoteRepository constructs a [LocalNoteRepository] backed by the
// local SQLite database.
func NewLocalNoteRepository(db *DB, logger *logger.Logger) LocalNoteRepository {
	return &localNoteRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveNotes upserts the given notes into the local cache. Records that
// already exist (same user and client-side id) are replaced so that sync
// results from the server can be applied with the same call.
func (s *localNoteRepository) SaveNotes(ctx context.Context, userID int64, notes ...*models.Note) error {
	log := logger.FromContext(ctx)

	if len(notes) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localNoteRepository.SaveNotes").Msg("failed to begin transaction")
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

		if _, execErr := tx.ExecContext(ctx, saveLocalNote,
			userID,
			note.ClientSideID,
			note.Title,
			note.Content,
			createdAt,
			updatedAt,
			note.Version,
			note.Hash,
			note.Deleted,
		); execErr != nil {
			log.Err(execErr).
				Str("func", "localNoteRepository.SaveNotes").
				Str("client_side_id", note.ClientSideID).
				Msg("failed to upsert local note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "localNoteRepository.SaveNotes").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// GetNote retrieves one note from the local cache.
// Returns [ErrNoteNotFound] when no record matches.
func (s *localNoteRepository) GetNote(ctx context.Context, clientSideID string, userID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := s.DB.QueryRowContext(ctx, getLocalNote, userID, clientSideID)

	if err := row.Scan(
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
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}
		log.Err(err).
			Str("func", "localNoteRepository.GetNote").
			Str("client_side_id", clientSideID).
			Msg("failed to scan local note")
		return models.Note{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

// GetAllNotes retrieves every live (not soft-deleted) note from the local
// cache. Soft-deleted records stay out of the listing but are still reported
// by [localNoteRepository.GetAllStates] so their removal can reach the server.
func (s *localNoteRepository) GetAllNotes(ctx context.Context, userID int64) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := s.DB.QueryContext(ctx, getAllLocalNotes, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "localNoteRepository.GetAllNotes").
			Int64("user_id", userID).
			Msg("failed to query local notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
	}
	defer rows.Close()

	return scanNotes(ctx, rows)
}

// GetAllStates retrieves the sync state descriptor of every locally cached
// note, including soft-deleted records.
func (s *localNoteRepository) GetAllStates(ctx context.Context, userID int64) ([]models.NoteState, error) {
	log := logger.FromContext(ctx)

	rows, queryErr := s.DB.QueryContext(ctx, getAllLocalStates, userID)
	if queryErr != nil {
		log.Err(queryErr).
			Str("func", "localNoteRepository.GetAllStates").
			Int64("user_id", userID).
			Msg("failed to query local note states")
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
				Str("func", "localNoteRepository.GetAllStates").
				Msg("failed to scan local note state")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		states = append(states, state)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return states, nil
}

// UpdateNote replaces the stored row with the given note. Unlike the server
// repository there is no optimistic-locking check: the local cache is
// single-writer, and conflicts are resolved during sync instead.
func (s *localNoteRepository) UpdateNote(ctx context.Context, note models.Note) error {
	log := logger.FromContext(ctx)

	updatedAt := time.Now()
	if note.UpdatedAt != nil {
		updatedAt = *note.UpdatedAt
	}

	res, execErr := s.DB.ExecContext(ctx, updateLocalNote,
		note.Title,
		note.Content,
		updatedAt,
		note.Version,
		note.Hash,
		note.Deleted,
		note.UserID,
		note.ClientSideID,
	)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "localNoteRepository.UpdateNote").
			Str("client_side_id", note.ClientSideID).
			Msg("failed to update local note")
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

// DeleteNote soft-deletes one locally cached note.
func (s *localNoteRepository) DeleteNote(ctx context.Context, clientSideID string, userID int64) error {
	log := logger.FromContext(ctx)

	res, execErr := s.DB.ExecContext(ctx, deleteLocalNote, userID, clientSideID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "localNoteRepository.DeleteNote").
			Str("client_side_id", clientSideID).
			Msg("failed to delete local note")
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

// IncrementVersion bumps the version counter of one locally cached note.
func (s *localNoteRepository) IncrementVersion(ctx context.Context, clientSideID string, userID int64) error {
	log := logger.FromContext(ctx)

	res, execErr := s.DB.ExecContext(ctx, incrementLocalVersion, clientSideID, userID)
	if execErr != nil {
		log.Err(execErr).
			Str("func", "localNoteRepository.IncrementVersion").
			Str("client_side_id", clientSideID).
			Msg("failed to increment local version")
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
