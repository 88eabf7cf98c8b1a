package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/sanjulagihan/portfolio-backend/auth"
	"github.com/sanjulagihan/portfolio-backend/config"
	"github.com/sanjulagihan/portfolio-backend/database"
	"github.com/sanjulagihan/portfolio-backend/services"
	"github.com/sanjulagihan/portfolio-backend/storage"
)

type Server struct {
	*http.Server
	startupTime time.Time
}

func NewServer(database database.Database) (Server, error) {
	c := config.New()

	// Ensure correct port is set
	port := config.GetString(c, "PORT", "8080")
	address := fmt.Sprintf("0.0.0.0:%s", port) // Bind to 0.0.0.0 for external access

	// Capture startup time
	startupTime := time.Now()

	router, err := newRouter(database, withConfig(c), withStartupTime(startupTime))
	if err != nil {
		return Server{}, err
	}

	// Get timeout values from config with sensible defaults
	readTimeout := time.Duration(config.GetInt(c, "READ_TIMEOUT_SECONDS", 180)) * time.Second
	writeTimeout := time.Duration(config.GetInt(c, "WRITE_TIMEOUT_SECONDS", 180)) * time.Second
	idleTimeout := time.Duration(config.GetInt(c, "IDLE_TIMEOUT_SECONDS", 180)) * time.Second

	server := &http.Server{
		Addr:         address,
		Handler:      router,
		ReadTimeout:  readTimeout,  // Timeout for reading the entire request
		WriteTimeout: writeTimeout, // Timeout for writing the response
		IdleTimeout:  idleTimeout,  // Timeout for idle connections
	}

	return Server{server, startupTime}, nil
}

type router struct {
	config      map[string]string
	startupTime time.Time
}

func withConfig(c map[string]string) func(*router) {
	return func(r *router) {
		r.config = c
	}
}

func withStartupTime(startupTime time.Time) func(*router) {
	return func(r *router) {
		r.startupTime = startupTime
	}
}

func newRouter(database database.Database, opts ...func(*router)) (*chi.Mux, error) {
	var router router
	for _, opt := range opts {
		opt(&router)
	}

	chiRouter := chi.NewRouter()
	chiRouter.Use(LogInternalServerErrors)

	gate, err := newGate(router.config)
	if err != nil {
		return nil, err
	}

	mailer := services.NewResendClient(
		config.GetString(router.config, "RESEND_API_KEY", ""),
		config.GetString(router.config, "RESEND_FROM_EMAIL", "onboarding@resend.dev"),
		config.GetString(router.config, "CONTACT_RECIPIENT", ""),
	)

	store, err := newStorageClient(router.config)
	if err != nil {
		return nil, err
	}

	// Initialize all handlers
	handlers := initializeHandlers(database, gate, mailer, store)

	// Initialize auth middleware
	authMiddleware := newAuthMiddleware(gate)

	// Apply CORS middleware
	acceptedOrigins := strings.Split(config.GetString(router.config, "ACCEPTED_ORIGINS", "*"), ",")
	chiRouter.Use(cors.Handler(cors.Options{
		AllowedOrigins:   acceptedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Setup all route types
	setupPublicRoutes(chiRouter, handlers)
	setupAdminRoutes(chiRouter, handlers, authMiddleware)

	return chiRouter, nil
}

func newGate(c map[string]string) (*auth.Gate, error) {
	password, err := config.RequireString(c, "ADMIN_PASSWORD")
	if err != nil {
		return nil, err
	}
	secret, err := config.RequireString(c, "SESSION_SECRET")
	if err != nil {
		return nil, err
	}

	ttl := time.Duration(config.GetInt(c, "SESSION_TTL_HOURS", 24)) * time.Hour

	return auth.NewGate(password, []byte(secret), ttl), nil
}

func newStorageClient(c map[string]string) (*storage.Client, error) {
	projectURL, err := config.RequireString(c, "SUPABASE_PROJECT_URL")
	if err != nil {
		return nil, err
	}
	accessKey, err := config.RequireString(c, "STORAGE_ACCESS_KEY")
	if err != nil {
		return nil, err
	}
	secretKey, err := config.RequireString(c, "STORAGE_SECRET_KEY")
	if err != nil {
		return nil, err
	}

	endpoint := config.GetString(c, "STORAGE_ENDPOINT", projectURL+"/storage/v1/s3")
	region := config.GetString(c, "STORAGE_REGION", "us-east-1")

	return storage.New(endpoint, region, accessKey, secretKey, projectURL)
}

func (s Server) Start(errChannel chan<- error) {
	log.Info().Msgf("Server started on: %s", s.Addr)
	errChannel <- s.ListenAndServe()
}

func (s Server) ShutdownGracefully(timeout time.Duration) {
	log.Info().Msg("Gracefully shutting down...")

	gracefullCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := s.Shutdown(gracefullCtx); err != nil {
		log.Error().Msgf("Error shutting down the server: %v", err)
	} else {
		log.Info().Msg("HttpServer gracefully shut down")
	}
}
