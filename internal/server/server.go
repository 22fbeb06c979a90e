// Package server provides the HTTP REST API for the profile extractor.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonathan/cv-profiler/internal/config"
	"github.com/jonathan/cv-profiler/internal/db"
	"github.com/jonathan/cv-profiler/internal/enrich"
	"github.com/jonathan/cv-profiler/internal/profile"
	"github.com/jonathan/cv-profiler/internal/server/middleware"
)

// Server represents the HTTP server
type Server struct {
	httpServer     *http.Server
	db             *db.DB
	builder        *profile.Builder
	enrichClient   enrich.Client
	jwtService     *JWTService
	passwordConfig *config.PasswordConfig
	tokenLimiter   *middleware.RateLimiter
}

// Config holds server configuration
type Config struct {
	Port        int
	DatabaseURL string
	APIKey      string
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	s := &Server{}

	// Database is optional; without it extraction still works but
	// snapshots cannot be saved or fetched.
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		s.db = database
	}

	// Enrichment is optional too; without an API key the heuristic
	// extraction stands alone.
	var enricher profile.Enricher
	if cfg.APIKey != "" {
		client, err := enrich.NewGeminiClient(context.Background(), cfg.APIKey, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create enrichment client: %w", err)
		}
		s.enrichClient = client
		enricher = enrich.New(client)
	}
	s.builder = profile.New(enricher)

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.passwordConfig = passwordConfig

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)

	// Token issuance is throttled per client to slow down password
	// guessing; the other endpoints are protected by the JWT instead.
	s.tokenLimiter = middleware.NewRateLimiter(10, time.Minute)

	// Setup router
	mux := http.NewServeMux()
	mux.Handle("POST /extract", s.requireAuth(http.HandlerFunc(s.handleExtract)))
	mux.HandleFunc("GET /profile/{id}", s.handleGetProfile)
	mux.HandleFunc("GET /runs", s.handleListRuns)
	mux.Handle("POST /token", s.tokenLimiter.Middleware(http.HandlerFunc(s.handleToken)))
	mux.HandleFunc("GET /health", s.handleHealth)

	// Create HTTP server
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(mux)),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // Enrichment round-trips can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.enrichClient != nil {
		if err := s.enrichClient.Close(); err != nil {
			log.Printf("Error closing enrichment client: %v", err)
		}
	}
	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// requireAuth wraps a handler with JWT bearer validation.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(next)
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":             "ok",
		"database_available": s.db != nil,
		"llm_available":      s.enrichClient != nil,
	})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
