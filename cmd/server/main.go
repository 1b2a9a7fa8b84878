package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/api"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/api/handler"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/app/service"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/domain/repository"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/platform/cache"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/platform/config"
	"github.com/hacktoberfest-unicam/hacktoberfest-2021-backend/internal/platform/database"
)

func main() {
	cfg := config.Load()
	log.Println("Configuration loaded.")

	db, err := database.Connect(cfg.DBConnStr)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	defer db.Close()
	log.Println("Database connected.")

	rankingCache, err := cache.NewRankingCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.RankingCacheTTL)
	if err != nil {
		log.Fatalf("Redis connection failed: %v", err)
	}
	defer rankingCache.Close()
	log.Println("Redis connected.")

	userRepo := repository.NewPgUserRepository(db)
	problemRepo := repository.NewPgProblemRepository(db)
	prRepo := repository.NewPgPullRequestRepository(db)

	userService := service.NewUserService(userRepo, rankingCache)
	problemService := service.NewProblemService(problemRepo, rankingCache)
	prService := service.NewPullRequestService(prRepo, userRepo, problemRepo, rankingCache)
	rankingService := service.NewRankingService(userRepo, problemRepo, prRepo, rankingCache)
	webhookService := service.NewWebhookService(
		userRepo, prRepo, rankingCache,
		cfg.GithubRepo, cfg.AcceptedLabel, cfg.ClosedAction,
	)

	router := api.NewRouter(
		handler.NewUserHandler(userService),
		handler.NewProblemHandler(problemService),
		handler.NewPullRequestHandler(prService),
		handler.NewRankingHandler(rankingService),
		handler.NewWebhookHandler(webhookService, cfg.WebhookSecret),
	)

	server := &http.Server{
		Addr:         ":" + cfg.APIPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on port %s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Could not listen on %s: %v\n", cfg.APIPort, err)
		}
	}()

	<-stop

	log.Println("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Server stopped gracefully.")
}
