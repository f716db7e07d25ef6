package routes

import (
	"radost_server/controllers"
	"radost_server/services"

	"github.com/gorilla/mux"
)

// RegisterExchangeRoutes sets up the rate-limited submission gateway under
// /api/exchange
func RegisterExchangeRoutes(r *mux.Router, verifier services.TokenVerifier, exchangeService *services.ExchangeService) {
	controller := controllers.NewExchangeController(verifier, exchangeService)

	exchangeRouter := r.PathPrefix("/api/exchange").Subrouter()
	exchangeRouter.HandleFunc("/submit", controller.HandleSubmit).Methods("POST")
}
