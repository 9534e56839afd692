package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/crypto/bcrypt"

	"eventsportal/config"
	_ "eventsportal/docs"
	"eventsportal/internal/adapters/auth"
	deliveryhttp "eventsportal/internal/delivery/http"
	"eventsportal/internal/delivery/http/controllers"
	"eventsportal/internal/domain"
	"eventsportal/internal/repository/memory"
	"eventsportal/internal/repository/postgres"
	"eventsportal/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title Events Portal mock API
// @version 1.0
// @description Local stand-in for the events API consumed by eventsctl.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(cfg, os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	eventStorage, userStorage, closeStorage, err := openStorage(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to open storage", "err", err)
		os.Exit(1)
	}
	defer closeStorage()

	eventService := services.NewEventService(eventStorage, serviceTimeout)
	authService := services.NewAuthService(userStorage, auth.NewBcryptHasher(bcrypt.DefaultCost), auth.NewJWTIssuer(cfg.JWTSecret), cfg.JWTExpiry)

	handler := deliveryhttp.NewRouter(
		controllers.NewEventController(logger, eventService),
		controllers.NewAuthController(logger, authService),
		deliveryhttp.RouterConfig{
			Verifier:       auth.NewJWTVerifier(cfg.JWTSecret),
			Logger:         logger,
			AllowedOrigins: cfg.CORSAllowedOrigins,
		},
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown failed", "err", err)
		}
	}()

	logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "swagger", "/swagger/index.html")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}

// openStorage uses postgres when DATABASE_URL is set and in-memory maps otherwise.
func openStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (domain.EventStorage, domain.UserStorage, func(), error) {
	if cfg.DBUrl == "" {
		logger.Info("using in-memory storage")
		return memory.NewEventRepository(), memory.NewUserRepository(), func() {}, nil
	}
	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return nil, nil, nil, err
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, nil, nil, err
	}
	logger.Info("using postgres storage")
	return postgres.NewEventRepository(db), postgres.NewUserRepository(db), func() { db.Close() }, nil
}
