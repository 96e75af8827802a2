package api

import (
	"github.com/gorilla/mux"
	"github.com/maneomkar369/saheli-connect-2.0/internal/config"
	"github.com/maneomkar369/saheli-connect-2.0/internal/db"
	"github.com/maneomkar369/saheli-connect-2.0/internal/repository/sqlite"
)

func SetupRoutes(cfg *config.Config, version, buildTime string, database *db.DB) *mux.Router {
	SetDevMode(cfg.Dev)

	r := mux.NewRouter()

	// Middleware chain
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware)
	r.Use(CORSMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(MetricsMiddleware)

	// Repository
	repo := sqlite.New(database, logger)

	// Create handlers
	systemHandler := &SystemHandler{}
	authHandler := NewAuthHandler(repo, repo, cfg.JWTSecret, cfg.TokenDuration, cfg.AdminTokenDuration, cfg.AdminUsername, cfg.AdminPassword)
	userHandler := NewUserHandler(repo, repo, repo, repo, repo, repo)
	connectionHandler := NewConnectionHandler(repo, repo, repo)
	messageHandler := NewMessageHandler(repo, repo, repo)
	jobHandler := NewJobHandler(repo, repo, repo)
	adminHandler := NewAdminHandler(repo, repo, repo, repo, repo, repo)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(version, buildTime)).Methods("GET")
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods("GET")
	r.Handle("/metrics", MetricsHandler()).Methods("GET")
	r.HandleFunc("/api/auth/register", authHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", authHandler.Login).Methods("POST")
	r.HandleFunc("/api/auth/admin-login", authHandler.AdminLogin).Methods("POST")
	r.HandleFunc("/api/jobs", jobHandler.List).Methods("GET")
	r.HandleFunc("/api/jobs/{id:[0-9]+}", jobHandler.Get).Methods("GET")

	// Protected routes
	protected := r.PathPrefix("/api").Subrouter()
	protected.Use(JWTAuthMiddlewareWithSecret(cfg.JWTSecret))

	// Users endpoints
	users := protected.PathPrefix("/users").Subrouter()
	users.HandleFunc("/profile", userHandler.GetOwnProfile).Methods("GET")
	users.HandleFunc("/profile", userHandler.UpdateProfile).Methods("PUT")
	users.HandleFunc("/profile/helper", userHandler.UpdateHelperProfile).Methods("PUT")
	users.HandleFunc("/search", userHandler.Search).Methods("GET")
	users.HandleFunc("/stats", userHandler.Stats).Methods("GET")
	users.HandleFunc("/notifications", userHandler.ListNotifications).Methods("GET")
	users.HandleFunc("/notifications/unread/count", userHandler.UnreadNotificationCount).Methods("GET")
	users.HandleFunc("/notifications/{id:[0-9]+}/read", userHandler.MarkNotificationRead).Methods("PUT")
	users.HandleFunc("/saved/list", userHandler.ListSaved).Methods("GET")
	users.HandleFunc("/saved/{userId:[0-9]+}", userHandler.ToggleSaved).Methods("POST")
	users.HandleFunc("/reviews", userHandler.CreateReview).Methods("POST")
	users.HandleFunc("/reports", userHandler.CreateReport).Methods("POST")
	users.HandleFunc("/{userId:[0-9]+}/reviews", userHandler.ListReviews).Methods("GET")
	users.HandleFunc("/{id:[0-9]+}", userHandler.GetUserByID).Methods("GET")

	// Connections endpoints
	connections := protected.PathPrefix("/connections").Subrouter()
	connections.HandleFunc("", connectionHandler.List).Methods("GET")
	connections.HandleFunc("", connectionHandler.Create).Methods("POST")
	connections.HandleFunc("/{id:[0-9]+}", connectionHandler.UpdateStatus).Methods("PUT")
	connections.HandleFunc("/{id:[0-9]+}", connectionHandler.Delete).Methods("DELETE")

	// Messages endpoints
	messages := protected.PathPrefix("/messages").Subrouter()
	messages.HandleFunc("", messageHandler.Send).Methods("POST")
	messages.HandleFunc("/conversations", messageHandler.Conversations).Methods("GET")
	messages.HandleFunc("/unread/count", messageHandler.UnreadCount).Methods("GET")
	messages.HandleFunc("/mark-read/{userId:[0-9]+}", messageHandler.MarkRead).Methods("PUT")
	messages.HandleFunc("/{userId:[0-9]+}", messageHandler.Conversation).Methods("GET")

	// Jobs endpoints
	jobs := protected.PathPrefix("/jobs").Subrouter()
	jobs.HandleFunc("", jobHandler.Create).Methods("POST")
	jobs.HandleFunc("/my/applications", jobHandler.MyApplications).Methods("GET")
	jobs.HandleFunc("/applications/{applicationId:[0-9]+}", jobHandler.UpdateApplication).Methods("PUT")
	jobs.HandleFunc("/{id:[0-9]+}", jobHandler.Update).Methods("PUT")
	jobs.HandleFunc("/{id:[0-9]+}", jobHandler.Delete).Methods("DELETE")
	jobs.HandleFunc("/{id:[0-9]+}/apply", jobHandler.Apply).Methods("POST")
	jobs.HandleFunc("/{id:[0-9]+}/applications", jobHandler.ListApplications).Methods("GET")

	// Admin endpoints
	admin := protected.PathPrefix("/admin").Subrouter()
	admin.Use(AdminOnlyMiddleware)
	admin.HandleFunc("/stats", adminHandler.Stats).Methods("GET")
	admin.HandleFunc("/users", adminHandler.ListUsers).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}", adminHandler.GetUser).Methods("GET")
	admin.HandleFunc("/users/{id:[0-9]+}/status", adminHandler.UpdateUserStatus).Methods("PUT")
	admin.HandleFunc("/users/{id:[0-9]+}", adminHandler.DeleteUser).Methods("DELETE")
	admin.HandleFunc("/connections", adminHandler.ListConnections).Methods("GET")
	admin.HandleFunc("/reports", adminHandler.ListReports).Methods("GET")
	admin.HandleFunc("/reports/{id:[0-9]+}", adminHandler.UpdateReport).Methods("PUT")
	admin.HandleFunc("/jobs", adminHandler.ListJobs).Methods("GET")
	admin.HandleFunc("/jobs/{id:[0-9]+}", adminHandler.DeleteJob).Methods("DELETE")

	return r
}
