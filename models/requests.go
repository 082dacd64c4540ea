// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package models

// FetchRequest represents search criteria for querying notes.
// Only unencrypted columns can be used for database-level filtering;
// note bodies are opaque and never filterable.
type FetchRequest struct {
	// UserID filters records by owner. Required to ensure data isolation.
	UserID int64 `json:"user_id,omitempty"`

	// ClientSideIDs filters by specific note identifiers.
	// Empty means "all notes of the user".
	ClientSideIDs []string `json:"client_side_ids,omitempty"`
}

// UploadRequest represents a batch upload for storing notes.
// Used to insert multiple records in a single operation during sync.
type UploadRequest struct {
	// UserID is the owner of the uploaded notes.
	UserID int64 `json:"user_id"`

	// Notes contains one or more notes to be stored.
	Notes []*Note `json:"notes"`

	// Hash of the serialized Notes slice — transport integrity check.
	Hash string `json:"hash"`

	// Length is the total number of entries in Notes.
	Length int `json:"length"`
}

// UpdateRequest represents a batch update for notes.
type UpdateRequest struct {
	NoteUpdates []NoteUpdate `json:"note_updates"`
}

// DeleteRequest represents criteria for deleting notes.
// Deletion is always soft so it can propagate through sync.
type DeleteRequest struct {
	// UserID is the owner of the notes to delete.
	UserID int64 `json:"user_id"`

	// ClientSideIDs contains the identifiers of the notes to delete.
	ClientSideIDs []string `json:"client_side_ids"`
}
