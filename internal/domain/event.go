package domain

import "time"

// Event is a single UFC event: a dated card of fights.
type Event struct {
	ID         EventID   `json:"event_id"`
	Name       string    `json:"name"`
	EventDate  time.Time `json:"event_date"`
	IsComplete bool      `json:"is_complete"`
}

// EventWinner records one member of the tied-top-score winner set for a
// finalized event, with their points at finalization time.
type EventWinner struct {
	EventID EventID `json:"event_id"`
	UserID  UserID  `json:"user_id"`
	Points  int     `json:"points"`
}

// BackfillReport summarizes a backfill run over completed events. Per-event
// failures are isolated; each skipped event carries its reason.
type BackfillReport struct {
	Processed int            `json:"processed"`
	Winners   int            `json:"winners"`
	Skipped   []SkippedEvent `json:"skipped"`
}

// SkippedEvent names an event the backfill could not finalize and why.
type SkippedEvent struct {
	EventID EventID `json:"event_id"`
	Reason  string  `json:"reason"`
}
