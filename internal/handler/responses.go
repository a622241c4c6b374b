package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// DataResponse represents a response with data payload
type DataResponse struct {
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	// Get a buffer from the pool to reduce allocations
	buf := getBuffer()
	defer putBuffer(buf)

	// Encode to the buffer first
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		// Log the error - we can't write to response at this point since headers are sent
		slog.Error("Failed to encode JSON response", "error", err)
		return
	}

	// Write the buffer to the response
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid request. Please check your inputs."
	ErrMsgResourceNotFoundErr = "Resource not found."

	// Lookup messages
	ErrMsgEventNotFoundError      = "Event not found"
	ErrMsgFightNotFoundError      = "Fight not found"
	ErrMsgUserNotFoundError       = "User not found"
	ErrMsgPlayercardNotFoundError = "Playercard not found"

	// Fight state messages
	ErrMsgFightCompletedError     = "That fight is already over"
	ErrMsgFightCanceledError      = "That fight was canceled"
	ErrMsgMissingParticipantError = "Fight card data is incomplete"
	ErrMsgUnknownWinnerError      = "Winner must be one of the fight's two participants"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses
// This function converts internal service errors to appropriate HTTP status codes and messages
// that users can understand and act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	// Check for specific domain errors
	switch {
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, ErrMsgEventNotFoundError
	case errors.Is(err, domain.ErrFightNotFound):
		return http.StatusNotFound, ErrMsgFightNotFoundError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrPlayercardNotFound):
		return http.StatusNotFound, ErrMsgPlayercardNotFoundError
	case errors.Is(err, domain.ErrFightCompleted):
		return http.StatusConflict, ErrMsgFightCompletedError
	case errors.Is(err, domain.ErrFightCanceled):
		return http.StatusConflict, ErrMsgFightCanceledError
	case errors.Is(err, domain.ErrMissingParticipant):
		return http.StatusConflict, ErrMsgMissingParticipantError
	case errors.Is(err, domain.ErrUnknownWinner):
		return http.StatusBadRequest, ErrMsgUnknownWinnerError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	}

	// Everything else is a store or infrastructure failure; the details stay
	// in the logs.
	return http.StatusInternalServerError, ErrMsgGenericServerError
}
