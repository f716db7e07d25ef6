package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"radost_server/models"
	"radost_server/services"

	"github.com/gorilla/mux"
)

// MeetingRequestController exposes the meeting-request lifecycle over HTTP.
type MeetingRequestController struct {
	RequestService *services.MeetingRequestService
}

// NewMeetingRequestController initializes the controller
func NewMeetingRequestController(service *services.MeetingRequestService) *MeetingRequestController {
	return &MeetingRequestController{RequestService: service}
}

// HandleCreateRequest opens a pending meeting request.
func (c *MeetingRequestController) HandleCreateRequest(w http.ResponseWriter, r *http.Request) {
	var request struct {
		FromUserID string            `json:"fromUserId"`
		ToUserID   string            `json:"toUserId"`
		Method     string            `json:"method"`
		Distance   float64           `json:"distance,omitempty"`
		Metadata   map[string]string `json:"metadata,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	requestID, err := c.RequestService.CreateRequest(r.Context(), request.FromUserID, request.ToUserID, request.Method, request.Distance, request.Metadata)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true, "requestId": requestID})
}

// HandleGetPending lists the requests awaiting the user's decision.
func (c *MeetingRequestController) HandleGetPending(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	requests, err := c.RequestService.GetPendingRequests(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []models.MeetingRequest{}
	}

	writeJSON(w, http.StatusOK, requests)
}

// HandleGetSent lists the user's own still-pending requests.
func (c *MeetingRequestController) HandleGetSent(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	requests, err := c.RequestService.GetSentRequests(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []models.MeetingRequest{}
	}

	writeJSON(w, http.StatusOK, requests)
}

// HandleConfirm confirms a pending request. The actor must be the recipient.
func (c *MeetingRequestController) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	c.handleResolve(w, r, c.RequestService.ConfirmRequest)
}

// HandleReject rejects a pending request. The actor must be the recipient.
func (c *MeetingRequestController) HandleReject(w http.ResponseWriter, r *http.Request) {
	c.handleResolve(w, r, c.RequestService.RejectRequest)
}

func (c *MeetingRequestController) handleResolve(w http.ResponseWriter, r *http.Request, resolve func(ctx context.Context, requestID, actorID string) error) {
	requestID := mux.Vars(r)["requestId"]

	var request struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if request.UserID == "" {
		http.Error(w, `{"error": "userId is required"}`, http.StatusBadRequest)
		return
	}

	if err := resolve(r.Context(), requestID, request.UserID); err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}
