package service

import "errors"

// Sentinel errors forming the failure taxonomy of the core. The HTTP layer
// maps these to statuses with errors.Is; services wrap them with context
// via fmt.Errorf("...: %w", ...).
//
// Absence on reads is deliberately NOT in this list: queries with zero
// matches return empty sequences or zero-filled defaults, never an error.
// ErrNotFound exists only for lookups whose contract promises exactly one
// record (participant by country, user by apikey, participants of a round).
var (
	// ErrUnauthorized signals an admin-gated action attempted without a
	// valid admin credential. State is never mutated.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict signals a uniqueness violation: a username already
	// registered, or a country held by more than one participant.
	ErrConflict = errors.New("conflict")

	// ErrNotFound signals a lookup whose contract promises a single record
	// finding none.
	ErrNotFound = errors.New("not found")

	// ErrValidation signals out-of-range input. Callers pre-validate, but
	// the services reject bad values anyway rather than silently storing
	// them and masking upstream bugs.
	ErrValidation = errors.New("invalid input")
)
