package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventsportal/internal/delivery/http/controllers"
	"eventsportal/internal/delivery/http/middleware"
	"eventsportal/internal/domain"
)

// RouterConfig carries what NewRouter needs besides the controllers.
type RouterConfig struct {
	Verifier       domain.TokenVerifier
	Logger         *slog.Logger
	AllowedOrigins []string
}

// NewRouter initializes the HTTP handler with all application routes.
// /events routes require a bearer token; auth and swagger are public.
func NewRouter(eventController *controllers.EventController, authController *controllers.AuthController, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	requireAuth := middleware.RequireAuth(cfg.Verifier, cfg.Logger)

	// Events
	mux.Handle("GET /events", requireAuth(http.HandlerFunc(eventController.ListEvents)))
	mux.Handle("POST /events", requireAuth(http.HandlerFunc(eventController.CreateEvent)))
	mux.Handle("GET /events/{id}", requireAuth(http.HandlerFunc(eventController.GetEvent)))
	mux.Handle("PUT /events/{id}", requireAuth(http.HandlerFunc(eventController.UpdateEvent)))
	mux.Handle("DELETE /events/{id}", requireAuth(http.HandlerFunc(eventController.DeleteEvent)))

	// Auth
	mux.HandleFunc("POST /auth/register", authController.Register)
	mux.HandleFunc("POST /auth/login", authController.Login)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.LoggingMiddleware(cfg.Logger, middleware.CORS(cfg.AllowedOrigins, mux))
}
