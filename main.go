// Command postboard runs the posts/auth REST API. Bootstrap order: load
// environment, build the connection pool, construct services and handlers
// with explicit injection, assemble the chi router, serve with graceful
// shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/user/postboard-go/auth"
	"github.com/user/postboard-go/config"
	"github.com/user/postboard-go/db"
	"github.com/user/postboard-go/health"
	"github.com/user/postboard-go/logger"
	"github.com/user/postboard-go/posts"
	"github.com/user/postboard-go/validate"
	"github.com/user/postboard-go/web"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: .env file not loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	appLog := logger.New(cfg.LogLevel, cfg.EnableLogging)
	web.SetDebug(cfg.IsDevelopment())

	pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to create database pool")
	}
	defer pool.Close()

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL())
	if err != nil {
		appLog.Fatal().Err(err).Msg("failed to create token service")
	}

	authService := auth.NewService(pool, tokens)
	authHandlers := auth.NewHandlers(authService)

	postService := posts.NewService(pool)
	postHandlers := posts.NewHandlers(postService)

	healthHandler := health.NewHandler(pool, cfg.Env)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(web.RequestLogger(appLog))
	r.Use(web.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.NotFound(web.NotFoundHandler)
	r.MethodNotAllowed(web.MethodNotAllowedHandler)

	r.Get("/health", healthHandler.HandleCheck())

	r.Route("/api/auth", func(r chi.Router) {
		r.With(validate.Request[auth.RegisterRequest]()).Post("/register", authHandlers.HandleRegister())
		r.With(validate.Request[auth.LoginRequest]()).Post("/login", authHandlers.HandleLogin())
	})

	r.Route("/api/posts", func(r chi.Router) {
		// Reads are public; a valid token only enriches the request.
		r.Group(func(r chi.Router) {
			r.Use(auth.Optional(tokens, authService))
			r.Get("/", postHandlers.HandleList())
			r.With(validate.Params(posts.IDParam)).Get("/{id}", postHandlers.HandleGet())
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Require(tokens, authService))
			r.With(validate.Request[posts.CreatePostRequest]()).Post("/", postHandlers.HandleCreate())
			r.With(validate.Request[posts.UpdatePostRequest](posts.IDParam)).Put("/{id}", postHandlers.HandleUpdate())
			r.With(validate.Params(posts.IDParam)).Delete("/{id}", postHandlers.HandleDelete())
		})
	})

	addr := fmt.Sprintf(":%s", cfg.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		appLog.Info().Str("addr", addr).Str("environment", cfg.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info().Msg("server shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		appLog.Fatal().Err(err).Msg("server shutdown failed")
	}
	appLog.Info().Msg("server stopped gracefully")
}
