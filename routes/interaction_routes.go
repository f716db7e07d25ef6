package routes

import (
	"radost_server/controllers"
	"radost_server/services"

	"github.com/gorilla/mux"
)

// RegisterInteractionRoutes sets up routes for the interaction recorder
// under /api/interactions
func RegisterInteractionRoutes(r *mux.Router, interactionService *services.InteractionService) {
	controller := controllers.NewInteractionController(interactionService)

	interactionRouter := r.PathPrefix("/api/interactions").Subrouter()
	interactionRouter.HandleFunc("/record", controller.HandleRecordInteraction).Methods("POST")
	interactionRouter.HandleFunc("/{userId}", controller.HandleGetInteractions).Methods("GET")

	progressionRouter := r.PathPrefix("/api/progression").Subrouter()
	progressionRouter.HandleFunc("/{userId}", controller.HandleGetProgression).Methods("GET")
}
