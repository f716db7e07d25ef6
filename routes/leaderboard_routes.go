package routes

import (
	"radost_server/controllers"
	"radost_server/services"

	"github.com/gorilla/mux"
)

// RegisterLeaderboardRoutes sets up leaderboard reads under /api/leaderboard
func RegisterLeaderboardRoutes(r *mux.Router, leaderboardService *services.LeaderboardService) {
	controller := controllers.NewLeaderboardController(leaderboardService)

	leaderboardRouter := r.PathPrefix("/api/leaderboard").Subrouter()
	leaderboardRouter.HandleFunc("/{type}", controller.HandleGetLeaderboard).Methods("GET")
}
