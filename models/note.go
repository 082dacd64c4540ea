// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package models

import "time"

// Note represents a single note record.
// The Content field is opaque to every layer below the client: it holds
// either plain text or an "ENC:"-prefixed ciphertext produced by the
// client-side content cipher. The server and both databases never inspect,
// index, or transform it.
type Note struct {
	// ID is the unique identifier of the record in the server database.
	ID int64 `json:"id"`

	// UserID is the owner of this note.
	UserID int64 `json:"user_id"`

	// ClientSideID is the UUID assigned by the client that created the
	// note. It is stable across devices and is the identifier used for
	// synchronization.
	ClientSideID string `json:"client_side_id"`

	// Title is the human-readable display name of the note.
	// Titles are never encrypted so that lists can be rendered without
	// the passphrase.
	Title string `json:"title"`

	// Content holds the note body. Plain text, or an "ENC:"-tagged
	// blob when the note is passphrase-protected.
	Content string `json:"content"`

	// Version is the optimistic-concurrency counter. Incremented by the
	// server on every accepted update.
	Version int64 `json:"version"`

	// Hash is the content fingerprint used by the sync protocol to skip
	// unchanged records.
	Hash string `json:"hash"`

	// Deleted marks the note as soft-deleted. Deleted notes are kept so
	// that deletions propagate to other devices during sync.
	Deleted bool `json:"deleted"`

	// CreatedAt is the timestamp when the record was created.
	CreatedAt *time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt *time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n *Note) TableName() string {
	return "notes"
}

// NoteUpdate represents criteria for updating a single note.
// Only non-nil fields will be updated (partial update support).
type NoteUpdate struct {
	// ClientSideID identifies the note to update. Required.
	ClientSideID string `json:"client_side_id"`

	// UserID is the owner of the note. Required for data isolation.
	UserID int64 `json:"user_id"`

	// Title is the updated display name. If nil, the field is not updated.
	Title *string `json:"title,omitempty"`

	// Content is the updated body (opaque, possibly "ENC:"-tagged).
	// If nil, the field is not updated.
	Content *string `json:"content,omitempty"`

	// Hash is the updated content fingerprint. If nil, the field is not
	// updated.
	Hash *string `json:"hash,omitempty"`

	// Version is the version the client last saw. The server rejects the
	// update with a conflict when it no longer matches.
	Version int64 `json:"version"`
}
