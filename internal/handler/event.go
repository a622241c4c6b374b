package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fightpicks/fightpicks/internal/domain"
	"github.com/fightpicks/fightpicks/internal/event"
	"github.com/fightpicks/fightpicks/internal/fight"
	"github.com/fightpicks/fightpicks/internal/logger"
)

// HandleListEvents handles GET requests for the event list
// @Summary List events
// @Description List all events, newest first. Pass upcoming=true to restrict to events not yet completed.
// @Tags events
// @Produce json
// @Param upcoming query bool false "Only events not yet completed"
// @Success 200 {array} domain.Event
// @Failure 500 {object} ErrorResponse
// @Router /events [get]
func HandleListEvents(svc event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		upcoming := r.URL.Query().Get("upcoming") == "true"

		events, err := svc.ListEvents(r.Context(), upcoming)
		if err != nil {
			log.Error("Failed to list events", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, events)
	}
}

// HandleGetEvent handles GET requests for a single event
// @Summary Get event
// @Description Get a single event by ID
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {object} domain.Event
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{eventID} [get]
func HandleGetEvent(svc event.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, err := domain.ParseEventID(chi.URLParam(r, "eventID"))
		if err != nil {
			log.Warn("Invalid event ID", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		e, err := svc.GetEvent(r.Context(), id)
		if err != nil {
			log.Error("Failed to get event", "error", err, "event_id", id)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		respondJSON(w, http.StatusOK, e)
	}
}

// HandleGetFightCard handles GET requests for an event's fight card
// @Summary Get fight card
// @Description Get the assembled fight card for an event in bout order
// @Tags events
// @Produce json
// @Param eventID path int true "Event ID"
// @Success 200 {array} domain.Fight
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /events/{eventID}/fights [get]
func HandleGetFightCard(svc fight.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		id, err := domain.ParseEventID(chi.URLParam(r, "eventID"))
		if err != nil {
			log.Warn("Invalid event ID", "error", err)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		card, err := svc.GetFightCard(r.Context(), id)
		if err != nil {
			log.Error("Failed to get fight card", "error", err, "event_id", id)
			status, msg := mapServiceErrorToUserMessage(err)
			respondError(w, status, msg)
			return
		}

		log.Debug("Fight card retrieved", "event_id", id, "fights", len(card))
		respondJSON(w, http.StatusOK, card)
	}
}
