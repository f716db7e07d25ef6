package controllers

import (
	"net/http"
	"strconv"

	"radost_server/services"

	"github.com/gorilla/mux"
)

// LeaderboardController serves competition standings.
type LeaderboardController struct {
	LeaderboardService *services.LeaderboardService
}

// NewLeaderboardController initializes the controller
func NewLeaderboardController(service *services.LeaderboardService) *LeaderboardController {
	return &LeaderboardController{LeaderboardService: service}
}

// HandleGetLeaderboard returns the ranked standings for one competition
// type. Optional query params: userId (include caller's ranking), limit.
func (c *LeaderboardController) HandleGetLeaderboard(w http.ResponseWriter, r *http.Request) {
	competitionType := mux.Vars(r)["type"]
	userID := r.URL.Query().Get("userId")

	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			http.Error(w, `{"error": "Invalid limit"}`, http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	data, err := c.LeaderboardService.GetLeaderboard(r.Context(), competitionType, userID, limit)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, data)
}
