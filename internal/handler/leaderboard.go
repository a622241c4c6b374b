package handler

import (
	"net/http"
	"strconv"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/leaderboard"
	"github.com/fightpicks/fightpicks/internal/logger"
)

// HandleGetLeaderboard handles GET requests for leaderboards
// @Summary Get leaderboard
// @Description Get the ranked leaderboard for a scope (overall, event, month, year)
// @Tags leaderboard
// @Produce json
// @Param scope query string false "Scope (overall, event, month, year; default overall)"
// @Param event_id query int false "Event ID (required for event scope)"
// @Param year query int false "Year (required for month and year scopes)"
// @Param month query int false "Month 1-12 (required for month scope)"
// @Success 200 {array} domain.LeaderboardEntry
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /leaderboard [get]
func HandleGetLeaderboard(svc leaderboard.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		scope, err := scopeFromQuery(r)
		if err != nil {
			log.Warn("Invalid leaderboard scope", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Debug("Get leaderboard request", "scope", scope.Type, "event_id", scope.EventID, "year", scope.Year, "month", scope.Month)

		entries, err := svc.GetLeaderboard(r.Context(), scope)
		if err != nil {
			log.Error("Failed to get leaderboard", "error", err, "scope", scope.Type)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, entries)
	}
}

// scopeFromQuery builds a leaderboard scope from query parameters. The scope
// defaults to overall; per-scope requirements are enforced by the service.
func scopeFromQuery(r *http.Request) (domain.LeaderboardScope, error) {
	scope := domain.LeaderboardScope{Type: domain.ScopeOverall}

	if raw := r.URL.Query().Get("scope"); raw != "" {
		scope.Type = domain.ScopeType(raw)
	}

	if raw := r.URL.Query().Get("event_id"); raw != "" {
		eventID, err := domain.ParseEventID(raw)
		if err != nil {
			return scope, err
		}
		scope.EventID = eventID
	}

	if raw := r.URL.Query().Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 1 {
			return scope, domain.ErrInvalidInput
		}
		scope.Year = year
	}

	if raw := r.URL.Query().Get("month"); raw != "" {
		month, err := strconv.Atoi(raw)
		if err != nil || month < 1 || month > 12 {
			return scope, domain.ErrInvalidInput
		}
		scope.Month = month
	}

	return scope, nil
}
