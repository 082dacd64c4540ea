package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID        = errors.New("invalid user ID")
	ErrInvalidClientSideID  = errors.New("invalid client side id")
	ErrInvalidHash          = errors.New("invalid hash")
	ErrEmptyTitle           = errors.New("title is required")
	ErrEmptyIDs             = errors.New("IDs list cannot be empty")
	ErrEmptyNotes           = errors.New("notes list cannot be empty")
	ErrEmptyUpdates         = errors.New("updates list cannot be empty")
	ErrNoFieldsToUpdate     = errors.New("at least one field must be provided for update")
	ErrInvalidVersion       = errors.New("invalid Version")
	ErrInvalidUpdateVersion = errors.New("invalid Update Version")
)
