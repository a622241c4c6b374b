package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/logger"
	"github.com/fightpicks/fightpicks/internal/user"
)

// SetPlayercardRequest represents a request to change a user's playercard
type SetPlayercardRequest struct {
	PlayercardID int64 `json:"playercard_id" validate:"required,gt=0"`
}

// HandleGetUser handles GET requests for a single user
// @Summary Get user
// @Description Get a user by ID
// @Tags users
// @Produce json
// @Param userID path int true "User ID"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID} [get]
func HandleGetUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, err := domain.ParseUserID(chi.URLParam(r, "userID"))
		if err != nil {
			log.Warn("Invalid user ID", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		u, err := svc.GetUser(r.Context(), id)
		if err != nil {
			log.Error("Failed to get user", "error", err, "user_id", id)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}

// HandleLookupUserByPhone handles GET requests to find an account by phone number
// @Summary Look up user by phone
// @Description Find the account registered to a phone number
// @Tags users
// @Produce json
// @Param phone query string true "Phone number"
// @Success 200 {object} domain.User
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/lookup [get]
func HandleLookupUserByPhone(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		phone := r.URL.Query().Get("phone")
		if phone == "" {
			log.Warn("Missing phone query parameter")
			respondError(w, http.StatusBadRequest, fmt.Sprintf(ErrMsgMissingQueryParam, "phone"))
			return
		}

		u, err := svc.LookupByPhone(r.Context(), phone)
		if err != nil {
			log.Warn("Phone lookup failed", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, u)
	}
}

// HandleSetPlayercard handles PUT requests to change a user's playercard
// @Summary Set playercard
// @Description Update the playercard a user displays on the leaderboard
// @Tags users
// @Accept json
// @Produce json
// @Param userID path int true "User ID"
// @Param request body SetPlayercardRequest true "Playercard selection"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /users/{userID}/playercard [put]
func HandleSetPlayercard(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, err := domain.ParseUserID(chi.URLParam(r, "userID"))
		if err != nil {
			log.Warn("Invalid user ID", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		var req SetPlayercardRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Error("Failed to decode playercard request", "error", err)
			respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
			return
		}

		if err := GetValidator().ValidateStruct(req); err != nil {
			log.Warn("Invalid playercard request", "error", err)
			respondJSON(w, http.StatusBadRequest, map[string]interface{}{
				"error":  ErrMsgInvalidRequestSummary,
				"fields": FormatValidationError(err),
			})
			return
		}

		if err := svc.SetPlayercard(r.Context(), id, domain.PlayercardID(req.PlayercardID)); err != nil {
			log.Error("Failed to set playercard", "error", err, "user_id", id, "playercard_id", req.PlayercardID)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgPlayercardUpdatedSuccess})
	}
}

// HandleListPlayercards handles GET requests for the selectable playercards
// @Summary List playercards
// @Description List all selectable playercards
// @Tags users
// @Produce json
// @Success 200 {array} domain.Playercard
// @Failure 500 {object} ErrorResponse
// @Router /playercards [get]
func HandleListPlayercards(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		cards, err := svc.ListPlayercards(r.Context())
		if err != nil {
			log.Error("Failed to list playercards", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, cards)
	}
}
