// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

// Package adapter provides transport-layer abstractions for communicating with
// the note-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/adenikin/go-note-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the note-keeper
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request to the server with the provided
	// user credentials. On success it stores the returned bearer token via
	// SetToken and returns the server-side user record. Returns an error if
	// the request fails or the server responds with a non-2xx status.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken and returns the server-side user
	// record. Returns an error if the request fails or the server responds
	// with a non-2xx status.
	Login(ctx context.Context, user models.User) (models.User, error)

	// Upload sends one or more new notes to the server in a single request.
	// A transport integrity hash covering the payload is computed and attached
	// to the request automatically. Note content travels as-is: plain text or
	// an "ENC:"-tagged blob, the transport does not care. Returns an error if
	// the request or the server response indicates failure.
	Upload(ctx context.Context, req models.UploadRequest) error

	// Fetch retrieves the notes identified by req.ClientSideIDs from the
	// server; an empty list fetches all of the user's notes. Returns an error
	// if the request fails or the response cannot be decoded.
	Fetch(ctx context.Context, req models.FetchRequest) ([]models.Note, error)

	// Update pushes a batch of partial note updates to the server. Returns
	// [ErrConflict] (wrapped) if the server detects an optimistic-locking
	// conflict, or another error if the request fails.
	Update(ctx context.Context, req models.UpdateRequest) error

	// Delete sends a soft-delete request for one or more notes to the server.
	// Returns [ErrConflict] (wrapped) on a version conflict, or another error
	// if the request fails.
	Delete(ctx context.Context, req models.DeleteRequest) error

	// GetServerStates fetches lightweight state descriptors
	// (ClientSideID, Hash, Version, Deleted, UpdatedAt) for all notes owned
	// by userID from the server. Used by the sync planner to compare server
	// and client state without downloading full note bodies.
	GetServerStates(ctx context.Context, userID int64) ([]models.NoteState, error)

	// GetAppVersion asks the server for its build version string. The
	// endpoint requires no authentication.
	GetAppVersion(ctx context.Context) (string, error)
}
