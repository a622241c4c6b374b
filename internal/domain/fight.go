package domain

// Corner identifies which side of the cage a card entry belongs to.
type Corner string

const (
	CornerRed  Corner = "red"
	CornerBlue Corner = "blue"
)

// FightCardEntry is a raw card row as stored: one fighter on one side of one
// fight. Two entries make a fight.
type FightCardEntry struct {
	FightID     FightID   `json:"fight_id"`
	EventID     EventID   `json:"event_id"`
	Corner      Corner    `json:"corner"`
	FighterID   FighterID `json:"fighter_id"`
	FighterName string    `json:"fighter_name"`
	Record      string    `json:"record,omitempty"`
	Odds        *int      `json:"odds,omitempty"`
}

// Fighter is one participant of a fight as presented to clients.
type Fighter struct {
	ID     FighterID `json:"fighter_id"`
	Name   string    `json:"name"`
	Record string    `json:"record,omitempty"`
	Odds   *int      `json:"odds,omitempty"`
}

// Fight is the merged view of a matchup: two card entries folded into one
// object. Invariant: a fight has a winner only if completed; a canceled fight
// has neither winner nor completion.
type Fight struct {
	ID          FightID    `json:"fight_id"`
	EventID     EventID    `json:"event_id"`
	BoutOrder   int        `json:"bout_order"`
	RedCorner   Fighter    `json:"red_corner"`
	BlueCorner  Fighter    `json:"blue_corner"`
	WinnerID    *FighterID `json:"winner_id,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	IsCanceled  bool       `json:"is_canceled"`
}

// HasParticipant reports whether the given fighter is one of the fight's two corners.
func (f *Fight) HasParticipant(id FighterID) bool {
	return f.RedCorner.ID == id || f.BlueCorner.ID == id
}

// OddsFor returns the recorded odds for the given fighter, or nil when the
// fighter is not on the card or no odds were published.
func (f *Fight) OddsFor(id FighterID) *int {
	switch id {
	case f.RedCorner.ID:
		return f.RedCorner.Odds
	case f.BlueCorner.ID:
		return f.BlueCorner.Odds
	}
	return nil
}
