// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/adenikin/go-note-keeper/models"
)

const (
	createUser = `INSERT INTO users (login, password, name)
    VALUES ($1, $2, $3)
    RETURNING user_id, login, password, name, created_at;`

	findUserByLogin = `SELECT user_id, login, password, name, created_at
    FROM users
    WHERE login = $1;`

	saveSingleNote = `
		INSERT INTO notes (
			user_id,
			client_side_id,
			title,
			content,
			created_at,
			updated_at,
			version,
			hash,
			deleted
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`

	getAllUserNotes = `
		SELECT
			id,
			user_id,
			client_side_id,
			title,
			content,
			created_at,
			updated_at,
			version,
			hash,
			deleted
		FROM notes
		WHERE user_id = $1;`

	getAllNoteStates = `
		SELECT
			client_side_id,
			hash,
			version,
			deleted,
			updated_at
		FROM notes
		WHERE user_id = $1;`

	deleteNotes = `
		UPDATE notes SET
			deleted    = true,
			updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $1 AND client_side_id = ANY($2);`

	incrementNoteVersion = `
		UPDATE notes
		SET version = version + 1
		WHERE client_side_id = $1
		  AND user_id = $2;`
)

// buildGetNotesQuery constructs the SELECT for [NoteRepository.GetNotes].
// Filtering is always applied by user_id; a non-empty ClientSideIDs list adds
// an IN clause. squirrel is used because the IN clause arity is only known at
// run time.
func buildGetNotesQuery(_ context.Context, req models.FetchRequest) (string, []any, error) {
	builder := sq.
		Select(
			"id",
			"user_id",
			"client_side_id",
			"title",
			"content",
			"created_at",
			"updated_at",
			"version",
			"hash",
			"deleted",
		).
		From("notes").
		Where(sq.Eq{"user_id": req.UserID}).
		PlaceholderFormat(sq.Dollar)

	if len(req.ClientSideIDs) > 0 {
		builder = builder.Where(sq.Eq{"client_side_id": req.ClientSideIDs})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}

// buildUpdateNoteQuery constructs the partial UPDATE for
// [NoteRepository.UpdateNote]. Only non-nil fields are included in the SET
// list; version and updated_at always advance.
func buildUpdateNoteQuery(update models.NoteUpdate) (string, []any, error) {
	builder := sq.
		Update("notes").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{
			"client_side_id": update.ClientSideID,
			"user_id":        update.UserID,
			"version":        update.Version,
		}).
		PlaceholderFormat(sq.Dollar)

	if update.Title != nil {
		builder = builder.Set("title", *update.Title)
	}
	if update.Content != nil {
		builder = builder.Set("content", *update.Content)
	}
	if update.Hash != nil {
		builder = builder.Set("hash", *update.Hash)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, err
	}

	return query, args, nil
}
