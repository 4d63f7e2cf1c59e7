package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/clubdeck/api/internal/config"
	"github.com/clubdeck/api/internal/database"
	"github.com/clubdeck/api/internal/handler"
	"github.com/clubdeck/api/internal/middleware"
	"github.com/clubdeck/api/internal/repository"
	"github.com/clubdeck/api/internal/service"
	"github.com/clubdeck/api/pkg/jwt"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize database connection
	db := database.NewSurrealDB(database.Config{
		Host:      cfg.Database.Host,
		Port:      cfg.Database.Port,
		User:      cfg.Database.User,
		Password:  cfg.Database.Password,
		Namespace: cfg.Database.Namespace,
		Database:  cfg.Database.Database,
	})

	ctx := context.Background()
	if err := db.Connect(ctx); err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() { _ = db.Close() }()

	slog.Info("connected to database",
		slog.String("host", cfg.Database.Host),
		slog.String("database", cfg.Database.Database),
	)

	// Initialize JWT service
	jwtService, err := jwt.NewService(jwt.Config{
		PrivateKeyPath: cfg.JWT.PrivateKeyPath,
		PublicKeyPath:  cfg.JWT.PublicKeyPath,
		Issuer:         cfg.JWT.Issuer,
		ExpirationMins: cfg.JWT.ExpirationMins,
	})
	if err != nil {
		slog.Error("failed to initialize JWT service", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	clubRepo := repository.NewClubRepository(db)
	eventRepo := repository.NewEventRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	membershipService := service.NewMembershipService(userRepo, clubRepo)
	eventService := service.NewEventService(eventRepo, clubRepo, userRepo, logger)
	clubService := service.NewClubService(clubRepo, userRepo, eventService, logger)

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter(middleware.RateLimitConfig{
		Rate:   cfg.RateLimit.Rate,
		Window: cfg.RateLimit.Window,
		Burst:  cfg.RateLimit.Burst,
	})
	defer rateLimiter.Stop()

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	clubHandler := handler.NewClubHandler(clubService, membershipService)
	eventHandler := handler.NewEventHandler(eventService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Auth endpoints (public)
	mux.HandleFunc("POST /v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)

	// Protected endpoints
	authMiddleware := middleware.Auth(authService)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	// Club endpoints
	mux.Handle("GET /v1/clubs", authMiddleware(http.HandlerFunc(clubHandler.List)))
	mux.Handle("POST /v1/clubs", authMiddleware(http.HandlerFunc(clubHandler.Create)))
	mux.Handle("GET /v1/clubs/managed", authMiddleware(http.HandlerFunc(clubHandler.ListManaged)))
	mux.Handle("GET /v1/clubs/{clubId}", authMiddleware(http.HandlerFunc(clubHandler.Get)))
	mux.Handle("PATCH /v1/clubs/{clubId}", authMiddleware(http.HandlerFunc(clubHandler.Update)))
	mux.Handle("DELETE /v1/clubs/{clubId}", authMiddleware(http.HandlerFunc(clubHandler.Delete)))

	// Membership endpoints
	mux.Handle("POST /v1/clubs/{clubId}/join", authMiddleware(http.HandlerFunc(clubHandler.Join)))
	mux.Handle("DELETE /v1/clubs/{clubId}/join", authMiddleware(http.HandlerFunc(clubHandler.CancelJoin)))
	mux.Handle("POST /v1/clubs/{clubId}/leave", authMiddleware(http.HandlerFunc(clubHandler.Leave)))
	mux.Handle("POST /v1/clubs/{clubId}/requests/{userId}/approve", authMiddleware(http.HandlerFunc(clubHandler.Approve)))
	mux.Handle("DELETE /v1/clubs/{clubId}/requests/{userId}", authMiddleware(http.HandlerFunc(clubHandler.Decline)))
	mux.Handle("DELETE /v1/clubs/{clubId}/members/{userId}", authMiddleware(http.HandlerFunc(clubHandler.RemoveMember)))

	// Event endpoints
	mux.Handle("GET /v1/events", authMiddleware(http.HandlerFunc(eventHandler.List)))
	mux.Handle("POST /v1/clubs/{clubId}/events", authMiddleware(http.HandlerFunc(eventHandler.Create)))
	mux.Handle("GET /v1/clubs/{clubId}/events", authMiddleware(http.HandlerFunc(eventHandler.ListByClub)))
	mux.Handle("GET /v1/events/{eventId}", authMiddleware(http.HandlerFunc(eventHandler.Get)))
	mux.Handle("PATCH /v1/events/{eventId}", authMiddleware(http.HandlerFunc(eventHandler.Update)))
	mux.Handle("DELETE /v1/events/{eventId}", authMiddleware(http.HandlerFunc(eventHandler.Delete)))
	mux.Handle("POST /v1/events/{eventId}/register", authMiddleware(http.HandlerFunc(eventHandler.Register)))
	mux.Handle("DELETE /v1/events/{eventId}/register", authMiddleware(http.HandlerFunc(eventHandler.Unregister)))

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.RateLimit(rateLimiter),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
