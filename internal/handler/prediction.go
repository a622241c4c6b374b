package handler

import (
	"encoding/json"
	"net/http"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/prediction"
)

// SubmitPredictionRequest represents a request to submit a fight pick
type SubmitPredictionRequest struct {
	FightID   int64 `json:"fight_id" validate:"required,gt=0"`
	UserID    int64 `json:"user_id" validate:"required,gt=0"`
	FighterID int64 `json:"fighter_id" validate:"required,gt=0"`
	Odds      *int  `json:"odds,omitempty"`
}

// HandleSubmitPrediction handles POST requests to submit a pick for a fight
// @Summary Submit prediction
// @Description Submit or replace a user's pick for a fight. Odds are frozen at submission time.
// @Tags predictions
// @Accept json
// @Produce json
// @Param request body SubmitPredictionRequest true "Pick details"
// @Success 200 {object} domain.Prediction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /predictions [post]
func HandleSubmitPrediction(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		var req SubmitPredictionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode prediction request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid prediction request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestSummary,
				"fields": FormatValidationError(err),
			})
			return
		}

		log.Debug("Submit prediction request", "fight_id", req.FightID, "user_id", req.UserID, "fighter_id", req.FighterID)

		p, err := svc.SubmitPrediction(r.Context(),
			domain.FightID(req.FightID),
			domain.UserID(req.UserID),
			domain.FighterID(req.FighterID),
			req.Odds)
		if err != nil {
			log.Error("Failed to submit prediction", "error", err, "fight_id", req.FightID, "user_id", req.UserID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, p)
	}
}

// HandleListUserPredictions handles GET requests for a user's picks
// @Summary List user predictions
// @Description List a user's picks, optionally scoped to one event
// @Tags predictions
// @Produce json
// @Param user_id query int true "User ID"
// @Param event_id query int false "Event ID"
// @Success 200 {array} domain.Prediction
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /predictions [get]
func HandleListUserPredictions(svc prediction.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		userID, err := domain.ParseUserID(r.URL.Query().Get("user_id"))
		if err != nil {
			log.Warn("Invalid user_id query parameter", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		var eventID domain.EventID
		if raw := r.URL.Query().Get("event_id"); raw != "" {
			eventID, err = domain.ParseEventID(raw)
			if err != nil {
				log.Warn("Invalid event_id query parameter", "error", err)
				status, msg := mapServiceErrorToUserMessage(err)
				respondError(w, status, msg)
				return
			}
		}

		predictions, err := svc.ListUserPredictions(r.Context(), userID, eventID)
		if err != nil {
			log.Error("Failed to list predictions", "error", err, "user_id", userID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, predictions)
	}
}
