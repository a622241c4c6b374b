package leaderboard

import (
	"math"
	"sort"

	"github.com/fightpicks/fightpicks/internal/domain"
)

// Build produces the ranked leaderboard for a set of scoped result rows.
// Pure: everything it needs arrives as arguments.
//
// scoped drives the totals; history is the unscoped all-time result set used
// for streaks (a monthly board still shows a user's real current streak);
// crownHistory feeds the human-only crown recomputation and carries the same
// year restriction as the persisted winners; users supplies display metadata;
// winners is the persisted event-winner set for crown counts.
func Build(scoped, history, crownHistory []domain.PredictionResult, users map[domain.UserID]domain.User, winners []domain.EventWinner) []domain.LeaderboardEntry {
	if len(scoped) == 0 {
		return []domain.LeaderboardEntry{}
	}

	byUser := make(map[domain.UserID]*domain.LeaderboardEntry)
	for _, res := range scoped {
		entry, ok := byUser[res.UserID]
		if !ok {
			entry = &domain.LeaderboardEntry{UserID: res.UserID}
			byUser[res.UserID] = entry
		}
		entry.TotalPredictions++
		if res.PredictedCorrectly {
			entry.CorrectPredictions++
		}
		entry.TotalPoints += res.Points
	}

	historyByUser := make(map[domain.UserID][]domain.PredictionResult)
	for _, res := range history {
		historyByUser[res.UserID] = append(historyByUser[res.UserID], res)
	}

	crowns := make(map[domain.UserID]int)
	for _, w := range winners {
		crowns[w.UserID]++
	}
	humanCrowns := HumanEventWins(crownHistory, users)

	entries := make([]domain.LeaderboardEntry, 0, len(byUser))
	for id, entry := range byUser {
		entry.Accuracy = roundAccuracy(entry.CorrectPredictions, entry.TotalPredictions)
		entry.Streak = ComputeStreak(historyByUser[id])
		entry.EventWins = crowns[id]
		entry.EventWinsHuman = humanCrowns[id]
		if u, ok := users[id]; ok {
			entry.Username = u.Username
			entry.IsBot = u.IsBot
			entry.PlayercardID = u.PlayercardID
		}
		entries = append(entries, *entry)
	}

	// Rank order shown to users and used for winner resolution: preserve exactly.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TotalPoints != entries[j].TotalPoints {
			return entries[i].TotalPoints > entries[j].TotalPoints
		}
		if entries[i].CorrectPredictions != entries[j].CorrectPredictions {
			return entries[i].CorrectPredictions > entries[j].CorrectPredictions
		}
		return entries[i].Accuracy > entries[j].Accuracy
	})

	return entries
}

// HumanEventWins recomputes per-event winners with bot users removed from
// contention entirely, not merely hidden. This can differ from "top human
// among all winners": a bot outscoring every human does not displace the
// human winner here.
func HumanEventWins(history []domain.PredictionResult, users map[domain.UserID]domain.User) map[domain.UserID]int {
	pointsByEvent := make(map[domain.EventID]map[domain.UserID]int)
	for _, res := range history {
		if u, ok := users[res.UserID]; !ok || u.IsBot {
			continue
		}
		if pointsByEvent[res.EventID] == nil {
			pointsByEvent[res.EventID] = make(map[domain.UserID]int)
		}
		pointsByEvent[res.EventID][res.UserID] += res.Points
	}

	wins := make(map[domain.UserID]int)
	for _, totals := range pointsByEvent {
		top := math.MinInt
		for _, pts := range totals {
			if pts > top {
				top = pts
			}
		}
		for id, pts := range totals {
			if pts == top {
				wins[id]++
			}
		}
	}
	return wins
}

// roundAccuracy computes correct/total as a percentage rounded to two
// decimal places.
func roundAccuracy(correct, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}
