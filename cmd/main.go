// jobboard-api-service
//
// REST backend for the job board: role-gated CRUD over companies and
// jobs, filtered list queries, plus auth (register/login with session
// tokens) and a cron-refreshed /stats aggregate.
package main

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

	"github.com/joho/godotenv"

	"jobboard/api-service/internal/auth"
	"jobboard/api-service/internal/company"
	"jobboard/api-service/internal/config"
	"jobboard/api-service/internal/db"
	"jobboard/api-service/internal/job"
	"jobboard/api-service/internal/stats"
)

const version = "1.0.0"

func main() {
	// ── Config ──────────────────────────────────────────────────────────────
	if err := godotenv.Load(); err != nil {
		log.Println("[api-service] No .env file — using process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("[api-service] Config error: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ── PostgreSQL ───────────────────────────────────────────────────────────
	log.Println("[api-service] Connecting to PostgreSQL…")
	pool, err := db.NewPostgresPool(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("[api-service] PostgreSQL: %v", err)
	}
	defer pool.Close()
	log.Println("[api-service] PostgreSQL connected ✓")

	// ── Redis ────────────────────────────────────────────────────────────────
	log.Println("[api-service] Connecting to Redis…")
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatalf("[api-service] Redis: %v", err)
	}
	defer rdb.Close()
	log.Println("[api-service] Redis connected ✓")

	// ── Services ─────────────────────────────────────────────────────────────
	authSvc := auth.NewService(pool, rdb, time.Duration(cfg.SessionTTLHours)*time.Hour)
	companySvc := company.NewService(pool)
	jobSvc := job.NewService(pool)
	collector := stats.NewCollector(pool, rdb)

	// ── Stats scheduler ──────────────────────────────────────────────────────
	scheduler := stats.NewScheduler(collector, cfg.StatsIntervalHours)
	if err := scheduler.Start(ctx); err != nil {
		log.Fatalf("[api-service] Scheduler: %v", err)
	}
	defer scheduler.Stop()

	// ── HTTP server ──────────────────────────────────────────────────────────
	mux := http.NewServeMux()
	mux.HandleFunc("/health", healthHandler)

	auth.NewHandler(authSvc).RegisterRoutes(mux)
	company.NewHandler(companySvc, authSvc).RegisterRoutes(mux)
	job.NewHandler(jobSvc, authSvc).RegisterRoutes(mux)
	stats.NewHandler(collector).RegisterRoutes(mux)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("[api-service] v%s listening on :%s", version, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[api-service] HTTP server error: %v", err)
		}
	}()

	// ── Graceful shutdown ────────────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("[api-service] Shutting down…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[api-service] Shutdown error: %v", err)
	}
	log.Println("[api-service] Stopped.")
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"service": "api-service",
		"version": version,
	})
}
