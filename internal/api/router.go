package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jsoler/finplan-be/internal/api/handlers"
	"github.com/jsoler/finplan-be/internal/auth"
	"github.com/jsoler/finplan-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	corsOrigin string,
	tokens *auth.TokenManager,
	userService services.UserServiceProvider,
	financeService services.FinanceServiceProvider,
	settingsService services.SettingsServiceProvider,
	planService services.PlanServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokens)
	financeHandler := handlers.NewFinanceHandler(financeService)
	settingsHandler := handlers.NewSettingsHandler(settingsService)
	planHandler := handlers.NewPlanHandler(planService)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", userHandler.Register)
		r.Post("/login", userHandler.Login)

		// Everything else requires a valid bearer token.
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())
			r.Post("/save-financial-data", financeHandler.Save)
			r.Get("/financial-history", financeHandler.History)
			r.Post("/save-settings", settingsHandler.Save)
			r.Get("/get-settings", settingsHandler.Get)
			r.Post("/generate-plan", planHandler.Generate)
		})
	})

	return r
}
