// Package utils holds the small shared helpers of go-note-keeper: context
// keys for the authenticated user, HMAC digests for note payloads and stored
// credentials, JWT issuing and validation, JSON response writing and resty
// client construction.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents collisions with
// other packages that store string-keyed values in the same context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey keys the authenticated user's identifier in a request context.
// The auth middleware stores the ID here after validating the bearer token;
// note handlers read it back with GetUserIDFromContext so a client can never
// address another user's notes.
var UserIDCtxKey = contextKey("userID")

// GetUserIDFromContext returns the authenticated user's ID stored under
// UserIDCtxKey. ok is false when the value is missing or not an int64, which
// on a guarded route means the auth middleware did not run.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
