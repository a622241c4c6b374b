package domain

// StreakType classifies a run of consecutive results.
type StreakType string

const (
	StreakWin  StreakType = "win"
	StreakLoss StreakType = "loss"
)

// Streak is a user's current run of consecutive wins or losses, computed over
// their full all-time history. Runs shorter than two results are absent (nil),
// never reported as a streak of one.
type Streak struct {
	Type  StreakType `json:"type"`
	Count int        `json:"count"`
}

// LeaderboardEntry is one ranked row of a leaderboard. Entirely derived;
// never persisted.
type LeaderboardEntry struct {
	UserID             UserID        `json:"user_id"`
	Username           string        `json:"username"`
	IsBot              bool          `json:"is_bot"`
	TotalPredictions   int           `json:"total_predictions"`
	CorrectPredictions int           `json:"correct_predictions"`
	TotalPoints        int           `json:"total_points"`
	Accuracy           float64       `json:"accuracy"`
	Streak             *Streak       `json:"streak,omitempty"`
	EventWins          int           `json:"event_win_count"`
	EventWinsHuman     int           `json:"event_win_count_human"`
	PlayercardID       *PlayercardID `json:"playercard_id,omitempty"`
}

// LeaderboardScope selects which results feed an aggregation. Streaks are
// always computed over full history regardless of scope.
type LeaderboardScope struct {
	Type    ScopeType `json:"type"`
	EventID EventID   `json:"event_id,omitempty"`
	Year    int       `json:"year,omitempty"`
	Month   int       `json:"month,omitempty"`
}

// ScopeType enumerates the supported leaderboard scopes.
type ScopeType string

const (
	ScopeOverall ScopeType = "overall"
	ScopeEvent   ScopeType = "event"
	ScopeMonth   ScopeType = "month"
	ScopeYear    ScopeType = "year"
)
