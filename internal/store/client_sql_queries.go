// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package store

const (
	// Upsert so that records arriving from the server during sync replace
	// the local copy in place.
	saveLocalNote = `
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
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, client_side_id) DO UPDATE SET
			title      = excluded.title,
			content    = excluded.content,
			updated_at = excluded.updated_at,
			version    = excluded.version,
			hash       = excluded.hash,
			deleted    = excluded.deleted;`

	getLocalNote = `
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
		WHERE user_id = $1 AND client_side_id = $2;`

	getAllLocalNotes = `
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
		WHERE user_id = $1 AND deleted = 0;`

	getAllLocalStates = `
		SELECT
			client_side_id,
			hash,
			version,
			deleted,
			updated_at
		FROM notes
		WHERE user_id = $1;`

	updateLocalNote = `
		UPDATE notes SET
			title      = $1,
			content    = $2,
			updated_at = $3,
			version    = $4,
			hash       = $5,
			deleted    = $6
		WHERE user_id = $7 AND client_side_id = $8;`

	deleteLocalNote = `
		UPDATE notes SET
			deleted    = 1,
			updated_at = CURRENT_TIMESTAMP
		WHERE user_id = $1 AND client_side_id = $2;`

	incrementLocalVersion = `
		UPDATE notes
		SET version = version + 1
		WHERE client_side_id = $1
		  AND user_id = $2;`
)
