// cmd/server/main.go
package main

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/maheshk/campusconnect-backend/internal/auth"
	"github.com/maheshk/campusconnect-backend/internal/config"
	"github.com/maheshk/campusconnect-backend/internal/controller"
	"github.com/maheshk/campusconnect-backend/internal/db"
	"github.com/maheshk/campusconnect-backend/internal/mailer"
	"github.com/maheshk/campusconnect-backend/internal/repository"
	"github.com/maheshk/campusconnect-backend/internal/service"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on OS environment variables")
	}

	cfg := config.Load()

	conn, err := db.Open(cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer conn.Close()
	log.Info().Str("db", cfg.DB.Name).Msg("✅ connected to database")

	brevoClient := mailer.NewClient(cfg.Brevo)
	if !brevoClient.IsConfigured() {
		log.Warn().Msg("⚠️ BREVO_API_KEY is not set, email delivery will fail")
	}

	subscriberRepo := &repository.SubscriberRepository{DB: conn}
	notificationRepo := &repository.NotificationRepository{DB: conn}

	notificationService := &service.NotificationService{
		SubscriberRepo:   subscriberRepo,
		NotificationRepo: notificationRepo,
		Mailer:           brevoClient,
	}

	authManager := auth.NewManager(cfg.Admin)

	notificationController := &controller.NotificationController{
		NotificationService: notificationService,
		AuthManager:         authManager,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	// Public waitlist endpoint
	r.Post("/subscribe", notificationController.Subscribe)

	// Admin endpoints
	r.Post("/admin/login", notificationController.Login)
	r.Group(func(r chi.Router) {
		r.Use(authManager.RequireAuth)
		r.Post("/admin/launch", notificationController.BroadcastLaunch)
		r.Post("/admin/updates", notificationController.SendUpdate)
		r.Get("/admin/subscribers", notificationController.ListSubscribers)
		r.Get("/admin/stats", notificationController.GetStats)
		r.Get("/admin/notifications", notificationController.ListNotifications)
	})

	log.Info().Str("addr", cfg.ServerAddr).Msg("🚀 server running")
	if err := http.ListenAndServe(cfg.ServerAddr, r); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
