// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package models

import "time"

// NoteState is the lightweight descriptor of one note used by the sync
// protocol. It carries just enough (hash, version, deletion flag) for a
// client to decide whether a full fetch or push is needed.
type NoteState struct {
	ClientSideID string     `json:"client_side_id"`
	Hash         string     `json:"hash"`
	Version      int64      `json:"version"`
	Deleted      bool       `json:"deleted"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// SyncPlan is the result of comparing server and client note states. Each
// field lists the states that require one category of action; a state appears
// in at most one list.
type SyncPlan struct {
	// Download lists notes the client must fetch from the server.
	Download []NoteState `json:"download,omitempty"`

	// Upload lists notes the client must push to the server for the
	// first time.
	Upload []NoteState `json:"upload,omitempty"`

	// Update lists notes whose client-side copy must overwrite the
	// server-side one.
	Update []NoteState `json:"update,omitempty"`

	// DeleteServer lists notes to soft-delete on the server.
	DeleteServer []NoteState `json:"delete_server,omitempty"`

	// DeleteClient lists notes to soft-delete in the local cache.
	DeleteClient []NoteState `json:"delete_client,omitempty"`
}

// IsEmpty reports whether the plan contains no actions at all.
func (p SyncPlan) IsEmpty() bool {
	return len(p.Download) == 0 &&
		len(p.Upload) == 0 &&
		len(p.Update) == 0 &&
		len(p.DeleteServer) == 0 &&
		len(p.DeleteClient) == 0
}

// SyncResponse contains the server-side state of every note that belongs
// to the user. The client reconciles its local database against it:
// download missing notes, push local changes, drop soft-deleted records.
type SyncResponse struct {
	// NoteStates is the list of state descriptors, one per note.
	NoteStates []NoteState `json:"note_states"`

	// Length is the total number of entries in NoteStates.
	Length int `json:"length"`
}
