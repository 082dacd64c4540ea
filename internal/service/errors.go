package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpired          = errors.New("token is expired")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("version is not specified")

	ErrValidationNoNotesProvided          = errors.New("no notes provided")
	ErrValidationNoFetchRequestsProvided  = errors.New("no fetch requests provided")
	ErrValidationNoUpdateRequestsProvided = errors.New("no update requests provided")
	ErrValidationNoDeleteRequestsProvided = errors.New("no delete requests provided")
	ErrValidationNoUserID                 = errors.New("no user ID for note was given")

	ErrValidationNoClientIDsProvidedForSyncRequests   = errors.New("no client IDs provided for sync")
	ErrValidationEmptyClientIDProvidedForSyncRequests = errors.New("empty client ID provided for sync")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")

	ErrRegisterOnServer = errors.New("registration failed on server")
	ErrLoginOnServer    = errors.New("login failed on server")

	ErrCannotDecrypt = errors.New("cannot decrypt note content")
)
