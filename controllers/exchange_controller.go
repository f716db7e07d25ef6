package controllers

import (
	"encoding/json"
	"net/http"

	"radost_server/services"
)

// ExchangeController is the rate-limited submission gateway: bearer auth,
// input validation, sliding-window quota, then a flat-rate award.
type ExchangeController struct {
	Verifier        services.TokenVerifier
	ExchangeService *services.ExchangeService
}

// NewExchangeController initializes the controller
func NewExchangeController(verifier services.TokenVerifier, service *services.ExchangeService) *ExchangeController {
	return &ExchangeController{Verifier: verifier, ExchangeService: service}
}

// HandleSubmit accepts a free-text exchange from an authenticated user.
func (c *ExchangeController) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	token, err := services.BearerToken(r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, err)
		return
	}
	userID, err := c.Verifier.Verify(token)
	if err != nil {
		writeError(w, err)
		return
	}

	var request struct {
		WhatIGave string `json:"whatIGave"`
		WhatIGot  string `json:"whatIGot"`
	}
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, `{"error": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	ipAddress := r.Header.Get("X-Forwarded-For")
	if ipAddress == "" {
		ipAddress = r.RemoteAddr
	}

	result, err := c.ExchangeService.Submit(r.Context(), services.ExchangeInput{
		UserID:    userID,
		WhatIGave: request.WhatIGave,
		WhatIGot:  request.WhatIGot,
		IPAddress: ipAddress,
		UserAgent: r.Header.Get("User-Agent"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"interaction": result.Interaction,
		"newPoints":   result.NewPoints,
	})
}
