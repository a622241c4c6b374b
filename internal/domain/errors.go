package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Lookup errors
	ErrMsgEventNotFound      = "event not found"
	ErrMsgFightNotFound      = "fight not found"
	ErrMsgUserNotFound       = "user not found"
	ErrMsgPlayercardNotFound = "playercard not found"

	// Fight state errors
	ErrMsgFightCompleted     = "fight is already completed"
	ErrMsgFightCanceled      = "fight is canceled"
	ErrMsgMissingParticipant = "missing participant data"
	ErrMsgUnknownWinner      = "winner is not a participant of this fight"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Lookup errors
	ErrEventNotFound      = errors.New(ErrMsgEventNotFound)
	ErrFightNotFound      = errors.New(ErrMsgFightNotFound)
	ErrUserNotFound       = errors.New(ErrMsgUserNotFound)
	ErrPlayercardNotFound = errors.New(ErrMsgPlayercardNotFound)

	// Fight state errors
	ErrFightCompleted     = errors.New(ErrMsgFightCompleted)
	ErrFightCanceled      = errors.New(ErrMsgFightCanceled)
	ErrMissingParticipant = errors.New(ErrMsgMissingParticipant)
	ErrUnknownWinner      = errors.New(ErrMsgUnknownWinner)

	// Input errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
