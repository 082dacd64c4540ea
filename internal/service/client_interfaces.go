package service

import (
	"context"
	"time"

	"github.com/adenikin/go-note-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService defines the client-side contract for user registration and
// authentication. Implementations communicate with the remote server through a
// ServerAdapter; on success the adapter holds the session bearer token.
type ClientAuthService interface {
	// Register creates a new account on the server for the given user and
	// stores the session token in the adapter.
	// Returns the server-side user record or an error if the call fails.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user against the server and stores the session
	// token in the adapter.
	// Returns the server-side user record or an error if the call fails.
	Login(ctx context.Context, user models.User) (models.User, error)
}

// ClientNoteService defines the client-side contract for managing notes.
// All CRUD operations work against the local database and propagate changes to
// the server in the same call.
//
// Passphrase handling: an empty passphrase means the note is stored as plain
// text. A non-empty passphrase encrypts the note body before it leaves the
// service; titles are never encrypted so that lists render without unlocking.
type ClientNoteService interface {
	// Create encrypts content when passphrase is non-empty, assigns a new
	// client-side UUID, saves the note to the local store, and uploads it to
	// the server. Returns the stored note (with opaque content).
	Create(ctx context.Context, userID int64, title, content, passphrase string) (models.Note, error)

	// GetAll loads every non-deleted note for userID from the local store.
	// Note bodies stay opaque; encrypted ones keep their "ENC:" tag.
	GetAll(ctx context.Context, userID int64) ([]models.Note, error)

	// Get loads a single note and reveals its body: encrypted content is
	// decrypted with passphrase, plain content is returned as-is.
	// Returns ErrCannotDecrypt when the passphrase does not fit.
	Get(ctx context.Context, clientSideID string, userID int64, passphrase string) (models.Note, error)

	// Update re-encrypts the body when passphrase is non-empty, persists the
	// change to the local store, and pushes the update to the server.
	Update(ctx context.Context, note models.Note, passphrase string) error

	// Delete soft-deletes the note in the local store and sends a delete
	// request to the server.
	Delete(ctx context.Context, clientSideID string, userID int64) error

	// ValidatePassphrase reports whether the passphrase satisfies the
	// advisory strength policy; the second value is a human-readable reason
	// when it does not. A weak passphrase is still usable.
	ValidatePassphrase(passphrase string) (bool, string)
}

// ClientSyncService defines the client-side contract for synchronising the
// local note cache with the remote server.
type ClientSyncService interface {
	// FullSync performs a complete bidirectional synchronisation for the given
	// user: it fetches server and client state descriptors, builds a sync plan,
	// and executes all required download, upload, update, and delete operations.
	// Returns an error if any step of the sync fails.
	FullSync(ctx context.Context, userID int64) error

	// ExecutePlan carries out the actions described in plan for the given user.
	// Each action category (Download, Upload, Update, DeleteClient, DeleteServer)
	// is executed in order. Returns the first error encountered, if any.
	ExecutePlan(ctx context.Context, plan models.SyncPlan, userID int64) error
}

// ClientSyncJob defines the contract for a background sync worker that
// periodically calls FullSync for the authenticated user.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, userID int64, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}
