package api

import (
	"net/http"
	"time"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/api/handler"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func NewRouter(
	userHandler *handler.UserHandler,
	problemHandler *handler.ProblemHandler,
	prHandler *handler.PullRequestHandler,
	rankingHandler *handler.RankingHandler,
	webhookHandler *handler.WebhookHandler,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))
	// The scoreboard frontend is served from a different origin.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Hub-Signature-256"},
	}))

	r.Get("/api/hello", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"server_status": "online"}`))
	})

	r.Get("/servertime", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"datetime": "` + time.Now().UTC().Format(time.RFC3339) + `"}`))
	})

	r.Route("/api/user", userHandler.RegisterRoutes)
	r.Route("/api/problem", problemHandler.RegisterRoutes)
	r.Route("/api/pr", prHandler.RegisterRoutes)
	r.Route("/public", rankingHandler.RegisterRoutes)
	r.Route("/github", webhookHandler.RegisterRoutes)

	return r
}
