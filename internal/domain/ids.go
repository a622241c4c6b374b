package domain

import (
	"fmt"
	"strconv"
)

// Typed identifiers for every entity. All IDs are 64-bit integers assigned by
// the database; parsing happens once at the HTTP/store boundary so the rest of
// the code never compares stringified IDs.
type (
	EventID      int64
	FightID      int64
	FighterID    int64
	UserID       int64
	PlayercardID int64
)

func (id EventID) String() string      { return strconv.FormatInt(int64(id), 10) }
func (id FightID) String() string      { return strconv.FormatInt(int64(id), 10) }
func (id FighterID) String() string    { return strconv.FormatInt(int64(id), 10) }
func (id UserID) String() string       { return strconv.FormatInt(int64(id), 10) }
func (id PlayercardID) String() string { return strconv.FormatInt(int64(id), 10) }

// ParseEventID parses a decimal event identifier.
func ParseEventID(s string) (EventID, error) {
	v, err := parseID(s, "event id")
	return EventID(v), err
}

// ParseFightID parses a decimal fight identifier.
func ParseFightID(s string) (FightID, error) {
	v, err := parseID(s, "fight id")
	return FightID(v), err
}

// ParseFighterID parses a decimal fighter identifier.
func ParseFighterID(s string) (FighterID, error) {
	v, err := parseID(s, "fighter id")
	return FighterID(v), err
}

// ParseUserID parses a decimal user identifier.
func ParseUserID(s string) (UserID, error) {
	v, err := parseID(s, "user id")
	return UserID(v), err
}

func parseID(s, kind string) (int64, error) {
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil || v <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrInvalidInput, kind, s)
	}
	return v, nil
}
