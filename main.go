package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"radost_server/routes"
	"radost_server/services"
	"radost_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Select the storage backend. STORAGE=memory runs the whole game in
	// process (demo mode); anything else uses DynamoDB.
	var store services.Store
	if os.Getenv("STORAGE") == "memory" {
		log.Println("Using in-memory store (demo mode)")
		store = services.NewMemoryStore()
	} else {
		log.Println("Initializing DynamoDB client...")
		dynamoClient := services.InitializeDynamoDBClient()
		store = services.NewDynamoStore(&services.DynamoService{Client: dynamoClient})
		log.Println("DynamoDB client initialized.")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	// Realtime notifier
	socketServer := socket.NewServer()

	// Initialize Services
	authService := services.NewAuthService(jwtSecret)
	profileService := &services.UserProfileService{Store: store}
	interactionService := &services.InteractionService{
		Store:  store,
		Config: services.InteractionConfig{PermissivePoints: true},
	}
	requestService := &services.MeetingRequestService{Store: store, Notifier: socketServer}
	exchangeService := &services.ExchangeService{
		Store:     store,
		RateLimit: services.NewRateLimitService(store),
		Config:    services.ExchangeConfig{RecomputeLevel: true},
	}
	leaderboardService := &services.LeaderboardService{Store: store}

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Using server port: %s\n", port)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Hra na radosť zo života")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Mount the realtime channel
	r.Handle("/socket.io/", socketServer.IO())

	// Register routes
	routes.RegisterUserProfileRoutes(r, profileService)
	routes.RegisterInteractionRoutes(r, interactionService)
	routes.RegisterMeetingRequestRoutes(r, requestService)
	routes.RegisterExchangeRoutes(r, authService, exchangeService)
	routes.RegisterLeaderboardRoutes(r, leaderboardService)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
