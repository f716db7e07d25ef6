package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"radost_server/models"
	"radost_server/services"

	"github.com/gorilla/mux"
)

// InteractionController exposes the interaction recorder over HTTP.
type InteractionController struct {
	InteractionService *services.InteractionService
}

// NewInteractionController initializes the controller
func NewInteractionController(service *services.InteractionService) *InteractionController {
	return &InteractionController{InteractionService: service}
}

// HandleRecordInteraction records a verified meeting and awards points.
func (c *InteractionController) HandleRecordInteraction(w http.ResponseWriter, r *http.Request) {
	var request struct {
		UserID          string                     `json:"userId"`
		CounterpartID   string                     `json:"counterpartId,omitempty"`
		InteractionType string                     `json:"interactionType"`
		LevelType       string                     `json:"levelType"`
		Metadata        models.InteractionMetadata `json:"metadata,omitempty"`
	}

	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	result, err := c.InteractionService.RecordInteraction(r.Context(), services.RecordInteractionInput{
		UserID:          request.UserID,
		CounterpartID:   request.CounterpartID,
		InteractionType: request.InteractionType,
		LevelType:       request.LevelType,
		Metadata:        request.Metadata,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// HandleGetInteractions returns a user's ledger, newest first.
func (c *InteractionController) HandleGetInteractions(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			http.Error(w, `{"error": "Invalid limit"}`, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	interactions, err := c.InteractionService.GetUserInteractions(r.Context(), userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}
	if interactions == nil {
		interactions = []models.Interaction{}
	}

	writeJSON(w, http.StatusOK, interactions)
}

// HandleGetProgression returns the derived progression projection.
func (c *InteractionController) HandleGetProgression(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	progression, err := c.InteractionService.GetUserProgression(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, progression)
}
