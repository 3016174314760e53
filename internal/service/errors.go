package service

import "errors"

// Error kinds.  Every business error returned by this package wraps one of
// these, so callers branch with errors.Is(err, ErrNotFound) and friends.
var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	ErrInvalid  = errors.New("invalid")
)

// Error is a business failure with a client-facing message.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }
func (e *Error) Unwrap() error { return e.Kind }

func notFound(msg string) *Error { return &Error{Kind: ErrNotFound, Msg: msg} }
func conflict(msg string) *Error { return &Error{Kind: ErrConflict, Msg: msg} }
func invalid(msg string) *Error  { return &Error{Kind: ErrInvalid, Msg: msg} }

var (
	ErrSlotNotFound         = notFound("Slot not found")
	ErrSlotNotForExperience = notFound("Slot not found for experience")
	ErrSlotFullyBooked      = conflict("Slot is fully booked")
	ErrExperienceNotFound   = notFound("Experience not found")
	ErrBookingNotFound      = notFound("Booking not found")

	ErrPromoRequired = invalid("Promo code is required")
	ErrPromoNotFound = notFound("Invalid promo code")
	ErrPromoInactive = invalid("Promo code is inactive")
	ErrPromoExpired  = invalid("Promo code has expired")

	ErrEmailTaken         = conflict("User with this email already exists")
	ErrInvalidCredentials = invalid("Invalid email or password")
	ErrPasswordTooLong    = invalid("Password must be at most 72 bytes")
	ErrUserNotFound       = notFound("User not found")
)
