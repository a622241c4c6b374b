package leaderboard

import (
	"sort"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// MinStreakLength is the shortest run reported as a streak. A single result
// is "no streak", not a streak of one.
const MinStreakLength = 2

// ComputeStreak returns the user's current win or loss streak from their full
// result history, or nil when no streak exists. The input order does not
// matter; results are sorted newest-first and the most recent result sets the
// streak type. Timestamp ties keep their input order (stable sort).
func ComputeStreak(history []domain.PredictionResult) *domain.Streak {
	if len(history) < MinStreakLength {
		return nil
	}

	sorted := make([]domain.PredictionResult, len(history))
	copy(sorted, history)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	streakType := domain.StreakLoss
	if sorted[0].PredictedCorrectly {
		streakType = domain.StreakWin
	}

	count := 0
	for _, res := range sorted {
		if res.PredictedCorrectly != (streakType == domain.StreakWin) {
			break
		}
		count++
	}

	if count < MinStreakLength {
		return nil
	}
	return &domain.Streak{Type: streakType, Count: count}
}
