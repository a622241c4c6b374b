package leaderboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fightpicks/fightpicks/internal/domain"
)

func res(eventID int64, userID int64, correct bool, points int, at time.Time) domain.PredictionResult {
	return domain.PredictionResult{
		EventID:            domain.EventID(eventID),
		UserID:             domain.UserID(userID),
		PredictedCorrectly: correct,
		Points:             points,
		CreatedAt:          at,
	}
}

func TestBuild_GroupsAndTotals(t *testing.T) {
	now := time.Now()
	scoped := []domain.PredictionResult{
		res(1, 10, true, 3, now.Add(-2*time.Hour)),
		res(1, 10, false, 0, now.Add(-1*time.Hour)),
		res(1, 11, true, 2, now),
	}
	users := map[domain.UserID]domain.User{
		10: {ID: 10, Username: "ana"},
		11: {ID: 11, Username: "ben"},
	}

	entries := Build(scoped, scoped, scoped, users, nil)

	require.Len(t, entries, 2)

	top := entries[0]
	assert.Equal(t, domain.UserID(10), top.UserID)
	assert.Equal(t, "ana", top.Username)
	assert.Equal(t, 2, top.TotalPredictions)
	assert.Equal(t, 1, top.CorrectPredictions)
	assert.Equal(t, 3, top.TotalPoints)
	assert.Equal(t, 50.0, top.Accuracy)

	assert.Equal(t, domain.UserID(11), entries[1].UserID)
	assert.Equal(t, 100.0, entries[1].Accuracy)
}

func TestBuild_AccuracyRoundsToTwoDecimals(t *testing.T) {
	now := time.Now()
	// 1 of 3 correct: 33.333...% rounds to 33.33
	scoped := []domain.PredictionResult{
		res(1, 10, true, 2, now),
		res(1, 10, false, 0, now),
		res(1, 10, false, 0, now),
	}

	entries := Build(scoped, scoped, scoped, nil, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, 33.33, entries[0].Accuracy)
}

func TestBuild_ThreeLevelSort(t *testing.T) {
	now := time.Now()
	scoped := []domain.PredictionResult{
		// user 10: 4 points, 2 correct of 3 (66.67%)
		res(1, 10, true, 2, now),
		res(1, 10, true, 2, now),
		res(1, 10, false, 0, now),
		// user 11: 4 points, 2 correct of 2 (100%) - wins accuracy tiebreak
		res(1, 11, true, 2, now),
		res(1, 11, true, 2, now),
		// user 12: 5 points - wins on points outright
		res(1, 12, true, 5, now),
		// user 13: 4 points, 1 correct - loses correct-count tiebreak
		res(1, 13, true, 4, now),
	}

	entries := Build(scoped, scoped, scoped, nil, nil)

	require.Len(t, entries, 4)
	assert.Equal(t, domain.UserID(12), entries[0].UserID)
	assert.Equal(t, domain.UserID(11), entries[1].UserID)
	assert.Equal(t, domain.UserID(10), entries[2].UserID)
	assert.Equal(t, domain.UserID(13), entries[3].UserID)
}

func TestBuild_StreaksUseFullHistory(t *testing.T) {
	now := time.Now()
	// Scoped to event 2, but the streak spans both events.
	scoped := []domain.PredictionResult{
		res(2, 10, true, 2, now),
	}
	history := []domain.PredictionResult{
		res(1, 10, true, 3, now.Add(-time.Hour)),
		res(2, 10, true, 2, now),
	}

	entries := Build(scoped, history, history, nil, nil)

	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].Streak)
	assert.Equal(t, domain.StreakWin, entries[0].Streak.Type)
	assert.Equal(t, 2, entries[0].Streak.Count)
}

func TestBuild_CrownCounts(t *testing.T) {
	now := time.Now()
	scoped := []domain.PredictionResult{
		res(1, 10, true, 3, now),
		res(1, 11, false, 0, now),
	}
	winners := []domain.EventWinner{
		{EventID: 1, UserID: 10, Points: 3},
		{EventID: 2, UserID: 10, Points: 5},
	}

	entries := Build(scoped, scoped, scoped, nil, winners)

	require.Len(t, entries, 2)
	assert.Equal(t, domain.UserID(10), entries[0].UserID)
	assert.Equal(t, 2, entries[0].EventWins)
	assert.Equal(t, 0, entries[1].EventWins)
}

func TestHumanEventWins_BotsExcludedFromContention(t *testing.T) {
	now := time.Now()
	history := []domain.PredictionResult{
		res(1, 10, true, 10, now), // bot, outscores everyone
		res(1, 11, true, 3, now),  // best human
		res(1, 12, true, 1, now),
	}
	users := map[domain.UserID]domain.User{
		10: {ID: 10, Username: "oddsbot", IsBot: true},
		11: {ID: 11, Username: "ana"},
		12: {ID: 12, Username: "ben"},
	}

	wins := HumanEventWins(history, users)

	// The bot does not displace the human winner; it simply isn't in the race.
	assert.Equal(t, 0, wins[10])
	assert.Equal(t, 1, wins[11])
	assert.Equal(t, 0, wins[12])
}

func TestHumanEventWins_HumanTieSharesCrown(t *testing.T) {
	now := time.Now()
	history := []domain.PredictionResult{
		res(1, 11, true, 3, now),
		res(1, 12, true, 3, now),
	}
	users := map[domain.UserID]domain.User{
		11: {ID: 11, Username: "ana"},
		12: {ID: 12, Username: "ben"},
	}

	wins := HumanEventWins(history, users)

	assert.Equal(t, 1, wins[11])
	assert.Equal(t, 1, wins[12])
}

func TestBuild_HumanCrownsFollowCrownHistory(t *testing.T) {
	now := time.Now()
	scoped := []domain.PredictionResult{res(2, 10, true, 2, now)}
	history := []domain.PredictionResult{
		res(1, 10, true, 3, now.Add(-time.Hour)),
		res(2, 10, true, 2, now),
	}
	users := map[domain.UserID]domain.User{
		10: {ID: 10, Username: "ana"},
	}

	// Crown history drops event 1; the streak still spans the full history.
	entries := Build(scoped, history, history[1:], users, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].EventWinsHuman)
	require.NotNil(t, entries[0].Streak)
	assert.Equal(t, 2, entries[0].Streak.Count)
}

func TestBuild_Empty(t *testing.T) {
	entries := Build(nil, nil, nil, nil, nil)
	assert.Empty(t, entries)
}

func TestBuild_UnknownUserStillRanked(t *testing.T) {
	now := time.Now()
	scoped := []domain.PredictionResult{res(1, 99, true, 2, now)}

	entries := Build(scoped, scoped, scoped, map[domain.UserID]domain.User{}, nil)

	require.Len(t, entries, 1)
	assert.Equal(t, domain.UserID(99), entries[0].UserID)
	assert.Empty(t, entries[0].Username)
}
