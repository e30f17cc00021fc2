package service

import "errors"

// Sentinel errors returned by the services. Handlers translate them into the
// {message, status} wire responses; anything unlisted surfaces as a 500.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrForbidden        = errors.New("forbidden")
	ErrNotFound         = errors.New("not found")
	ErrConflict         = errors.New("already exists")
	ErrEmailInUse       = errors.New("email is already in use")
	ErrUnconfirmed      = errors.New("account not confirmed")
	ErrAlreadyConfirmed = errors.New("account already confirmed")
	ErrMisconfigured    = errors.New("auth config invalid")
)
