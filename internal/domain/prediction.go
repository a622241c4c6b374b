package domain

import "time"

// Prediction is a user's pick for a fight. Odds are captured at submission
// time and never re-derived, so scoring stays reproducible when lines move.
// At most one prediction exists per (fight, user); submissions upsert.
type Prediction struct {
	FightID   FightID   `json:"fight_id"`
	EventID   EventID   `json:"event_id"`
	UserID    UserID    `json:"user_id"`
	FighterID FighterID `json:"fighter_id"`
	Odds      *int      `json:"odds,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// PredictionResult is the derived correctness/points record for a
// (fight, user) pair. Results are a pure function of the fight's winner and
// the predictions on the fight; they are replaced in bulk when a winner is
// set and deleted when it is cleared. "No result yet" and "result is zero
// points" are distinct states.
type PredictionResult struct {
	FightID            FightID   `json:"fight_id"`
	UserID             UserID    `json:"user_id"`
	EventID            EventID   `json:"event_id"`
	PredictedCorrectly bool      `json:"predicted_correctly"`
	Points             int       `json:"points"`
	CreatedAt          time.Time `json:"created_at"`
}

// ResultFilter scopes a prediction-result query. Zero values mean unscoped.
type ResultFilter struct {
	EventID EventID
	UserID  UserID
	Since   time.Time
	Until   time.Time
}
