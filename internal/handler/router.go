package handler

import (
	"net/http"

	"stylesensai-server/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	// API prefix
	api := router.PathPrefix("/api/v1").Subrouter()

	// Health check endpoint (no auth required)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"stylesensai-server"}`))
	}).Methods("GET")

	// Initialize handlers
	meHandler := NewMeHandler(container.AccessResolver, container.Logger)
	usageHandler := NewUsageHandler(container.AccessResolver, container.UsageRepository, container.Logger)
	rewriteHandler := NewRewriteHandler(container.RewriteService, container.Logger)
	billingHandler := NewBillingHandler(container.BillingService, container.Logger)
	historyHandler := NewHistoryHandler(container.HistoryService, container.Logger)
	profileHandler := NewProfileHandler(container.ProfileRepository, container.Logger)

	authMiddleware := NewAuthMiddleware(container.AuthService, container.Logger)

	// /me serves guests with free-tier defaults, so auth is optional there
	api.Handle("/me", authMiddleware.Optional(http.HandlerFunc(meHandler.Me))).Methods("GET")

	// Protected routes (require authentication)
	protected := api.PathPrefix("").Subrouter()
	protected.Use(authMiddleware.Middleware)

	// Usage gate routes (protected)
	protected.HandleFunc("/usage/check", usageHandler.Check).Methods("POST")
	protected.HandleFunc("/usage/increment", usageHandler.Increment).Methods("POST")

	// Rewrite route (protected)
	protected.HandleFunc("/rewrite", rewriteHandler.Rewrite).Methods("POST")

	// Billing routes (protected)
	protected.HandleFunc("/billing/checkout", billingHandler.Checkout).Methods("POST")
	protected.HandleFunc("/billing/confirm", billingHandler.Confirm).Methods("POST")

	// History routes (protected)
	protected.HandleFunc("/history", historyHandler.List).Methods("GET")
	protected.HandleFunc("/history", historyHandler.Save).Methods("POST")
	protected.HandleFunc("/history/{id}", historyHandler.Get).Methods("GET")
	protected.HandleFunc("/history/{id}", historyHandler.Delete).Methods("DELETE")

	// Profile routes (protected)
	protected.HandleFunc("/profile", profileHandler.Get).Methods("GET")
	protected.HandleFunc("/profile", profileHandler.Update).Methods("PUT")

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: container.Config.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Authorization",
			"Content-Type",
			"X-CSRF-Token",
		},
		ExposedHeaders: []string{
			"Link",
		},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
