package routes

import (
	"radost_server/controllers"
	"radost_server/services"

	"github.com/gorilla/mux"
)

// RegisterMeetingRequestRoutes sets up routes for the meeting request
// lifecycle under /api/meeting-requests
func RegisterMeetingRequestRoutes(r *mux.Router, requestService *services.MeetingRequestService) {
	controller := controllers.NewMeetingRequestController(requestService)

	requestRouter := r.PathPrefix("/api/meeting-requests").Subrouter()
	requestRouter.HandleFunc("", controller.HandleCreateRequest).Methods("POST")
	requestRouter.HandleFunc("/pending/{userId}", controller.HandleGetPending).Methods("GET")
	requestRouter.HandleFunc("/sent/{userId}", controller.HandleGetSent).Methods("GET")
	requestRouter.HandleFunc("/{requestId}/confirm", controller.HandleConfirm).Methods("POST")
	requestRouter.HandleFunc("/{requestId}/reject", controller.HandleReject).Methods("POST")
}
