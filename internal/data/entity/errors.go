package entity

import "errors"

// Expected failure kinds. The request layer branches on these with errors.Is,
// everything else is treated as an internal error.
var (
	ErrOfferingNotFound     = errors.New("offering not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrValidation           = errors.New("validation error")
	ErrInsufficientCapacity = errors.New("insufficient capacity")
	ErrInvalidTransition    = errors.New("invalid booking status transition")
	ErrUnauthorized         = errors.New("unauthorized")
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ErrCompensationFailed marks a reservation that could not be rolled back
// after a failed booking insert. Capacity is under-counted until someone
// reconciles it manually, so this must be surfaced loudly, never swallowed.
var ErrCompensationFailed = errors.New("reservation compensation failed")
