package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/event"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/scoring"
)

// SetFightResultRequest represents a request to set or clear a fight's winner.
// A null (or absent) winner_id clears the result.
type SetFightResultRequest struct {
	WinnerID *int64 `json:"winner_id"`
}

// SetFightResultResponse represents the outcome of resolving a fight
type SetFightResultResponse struct {
	Message string                    `json:"message"`
	Results []domain.PredictionResult `json:"results"`
}

// HandleSetFightResult handles POST requests to resolve a fight
// @Summary Set fight result
// @Description Set the winner of a fight and rescore every pick on it. A null winner_id clears the result.
// @Tags admin
// @Accept json
// @Produce json
// @Param fightID path int true "Fight ID"
// @Param request body SetFightResultRequest true "Winner (null to clear)"
// @Success 200 {object} SetFightResultResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/fights/{fightID}/result [post]
func HandleSetFightResult(svc scoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		fightID, err := domain.ParseFightID(chi.URLParam(r, "fightID"))
		if err != nil {
			log.Warn("Invalid fight ID", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		var req SetFightResultRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode fight result request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		var winnerID *domain.FighterID
		if req.WinnerID != nil {
			id := domain.FighterID(*req.WinnerID)
			winnerID = &id
		}

		log.Debug("Set fight result request", "fight_id", fightID, "winner_id", req.WinnerID)

		results, err := svc.SetFightWinner(r.Context(), fightID, winnerID)
		if err != nil {
			log.Error("Failed to set fight result", "error", err, "fight_id", fightID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if winnerID == nil {
			respondJSON(w, http.StatusOK, SetFightResultResponse{
				Message: MsgFightResultClearedSuccess,
				Results: []domain.PredictionResult{},
			})
			return
		}

		respondJSON(w, http.StatusOK, SetFightResultResponse{
			Message: MsgFightResultSetSuccess,
			Results: results,
		})
	}
}

// HandleCancelFight handles POST requests to cancel a fight
// @Summary Cancel fight
// @Description Mark a fight canceled and drop any derived results
// @Tags admin
// @Produce json
// @Param fightID path int true "Fight ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/fights/{fightID}/cancel [post]
func HandleCancelFight(svc scoring.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		fightID, err := domain.ParseFightID(chi.URLParam(r, "fightID"))
		if err != nil {
			log.Warn("Invalid fight ID", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		if err := svc.CancelFight(r.Context(), fightID); err != nil {
			log.Error("Failed to cancel fight", "error", err, "fight_id", fightID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgFightCanceledSuccess})
	}
}

// FinalizeEventResponse represents the outcome of finalizing an event
type FinalizeEventResponse struct {
	Message string               `json:"message"`
	Winners []domain.EventWinner `json:"winners"`
}

// HandleFinalizeEvent handles POST requests to resolve an event's winner set
// @Summary Finalize event
// @Description Compute and persist the tied-top-score winner set for an event
// @Tags admin
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} FinalizeEventResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/events/{eventID}/finalize [post]
func HandleFinalizeEvent(svc event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		eventID, err := domain.ParseEventID(chi.URLParam(r, "eventID"))
		if err != nil {
			log.Warn("Invalid event ID", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		winners, err := svc.FinalizeEvent(r.Context(), eventID)
		if err != nil {
			log.Error("Failed to finalize event", "error", err, "event_id", eventID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, FinalizeEventResponse{
			Message: MsgEventFinalizedSuccess,
			Winners: winners,
		})
	}
}

// HandleBackfillWinners handles POST requests to re-finalize all completed events
// @Summary Backfill event winners
// @Description Re-run winner finalization over every completed event
// @Tags admin
// @Produce json
// @Success 200 {object} domain.BackfillReport
// @Failure 500 {object} ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/events/backfill [post]
func HandleBackfillWinners(svc event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		report, err := svc.BackfillWinners(r.Context())
		if err != nil {
			log.Error("Failed to backfill event winners", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, report)
	}
}
