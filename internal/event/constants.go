package event

// Log Messages
const (
	LogMsgEventFinalized = "Event finalized"
	LogMsgNoWinners      = "Event has no prediction results, winner set is empty"
	LogMsgBackfillSkip   = "Backfill skipped event"
	LogMsgBackfillDone   = "Backfill complete"
)
