// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Andrei Denikin

package models

import "time"

// User represents an account entity used for authentication and authorization.
// The account password is unrelated to the notebook passphrase: the former
// authenticates against the server, the latter never leaves the client.
type User struct {
	// UserID is the unique identifier of the user. The server returns it in
	// register/login responses; the client keys its local note cache by it.
	UserID int64 `json:"user_id"`

	// Login is the unique user login identifier.
	Login string `json:"login"`

	// Name is the display name of the user.
	// It is non-sensitive and may be shown in UI.
	Name string `json:"name"`

	// Password stores the user's account password representation.
	// On the wire during register/login it is the raw password; at the
	// persistence layer it MUST be the HMAC-SHA256 derived value, never
	// plaintext.
	Password string `json:"password"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
