package scoring

// FallbackPoints is awarded for a correct pick whose recorded odds are
// missing or unusable. A zero odds value counts as unusable: the favorite
// formula divides by the odds magnitude.
const FallbackPoints = 1

// Log Messages
const (
	LogMsgWinnerSet          = "Fight winner set, results replaced"
	LogMsgWinnerCleared      = "Fight winner cleared, results deleted"
	LogMsgFightCanceled      = "Fight canceled"
	LogMsgStaleResultCleanup = "Failed to clean up stale results after cancellation"
)
