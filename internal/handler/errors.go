package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Path and query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s path parameter"

	// Event error messages
	ErrMsgListEventsFailed   = "Failed to retrieve events"
	ErrMsgGetEventFailed     = "Failed to retrieve event"
	ErrMsgGetFightCardFailed = "Failed to retrieve fight card"

	// Prediction error messages
	ErrMsgSubmitPredictionFailed = "Failed to submit prediction"
	ErrMsgListPredictionsFailed  = "Failed to retrieve predictions"

	// Leaderboard error messages
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgInvalidScope         = "Invalid scope parameter"
	ErrMsgInvalidYear          = "Invalid year parameter"
	ErrMsgInvalidMonth         = "Invalid month parameter"

	// User error messages
	ErrMsgGetUserFailed         = "Failed to retrieve user"
	ErrMsgLookupUserFailed      = "Failed to look up user"
	ErrMsgSetPlayercardFailed   = "Failed to update playercard"
	ErrMsgListPlayercardsFailed = "Failed to retrieve playercards"

	// Admin error messages
	ErrMsgSetResultFailed   = "Failed to set fight result"
	ErrMsgCancelFightFailed = "Failed to cancel fight"
	ErrMsgFinalizeFailed    = "Failed to finalize event"
	ErrMsgBackfillFailed    = "Failed to backfill event winners"
)

// Success messages for API responses
// These are user-facing success messages returned in JSON responses
const (
	MsgPredictionRecordedSuccess = "Prediction recorded successfully"
	MsgPlayercardUpdatedSuccess  = "Playercard updated successfully"
	MsgFightResultSetSuccess     = "Fight result set successfully"
	MsgFightResultClearedSuccess = "Fight result cleared successfully"
	MsgFightCanceledSuccess      = "Fight canceled successfully"
	MsgEventFinalizedSuccess     = "Event finalized successfully"
)
