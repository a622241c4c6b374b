package domain

import "time"

// User is an account as stored. Phone is the only credential in scope: the
// client looks accounts up by phone number, nothing more.
type User struct {
	ID           UserID        `json:"user_id"`
	Username     string        `json:"username"`
	Phone        string        `json:"phone,omitempty"`
	IsBot        bool          `json:"is_bot"`
	PlayercardID *PlayercardID `json:"playercard_id,omitempty"`
	CreatedAt    time.Time     `json:"created_at"`
}

// Playercard is a selectable display card shown next to a user on the
// leaderboard.
type Playercard struct {
	ID       PlayercardID `json:"playercard_id"`
	Name     string       `json:"name"`
	ImageURL string       `json:"image_url"`
}
