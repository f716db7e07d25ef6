package routes

import (
	"radost_server/controllers"
	"radost_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes sets up profile CRUD under /api/users
func RegisterUserProfileRoutes(r *mux.Router, profileService *services.UserProfileService) {
	controller := controllers.NewUserProfileController(profileService)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.HandleFunc("", controller.HandleRegister).Methods("POST")
	userRouter.HandleFunc("/{userId}", controller.HandleGetProfile).Methods("GET")
	userRouter.HandleFunc("/{userId}", controller.HandleUpdateProfile).Methods("PUT")
}
