// Package stats computes board-wide aggregates (company/job counts,
// average salary) on a cron schedule and caches the result in Redis.
// GET /stats serves the cached document, recomputing on a cache miss.
package stats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"

	"jobboard/api-service/internal/db"
	"jobboard/api-service/internal/web"
)

const cacheKey = "stats:overview"

// Overview is the cached aggregate document.
type Overview struct {
	Companies   int64     `json:"companies"`
	Jobs        int64     `json:"jobs"`
	AvgSalary   *float64  `json:"avgSalary"`
	RefreshedAt time.Time `json:"refreshedAt"`
}

// Collector computes and caches the overview.
type Collector struct {
	db  db.Querier
	rdb *redis.Client
}

// NewCollector returns a configured Collector.
func NewCollector(q db.Querier, rdb *redis.Client) *Collector {
	return &Collector{db: q, rdb: rdb}
}

// Refresh recomputes the overview and writes it to the cache.
func (c *Collector) Refresh(ctx context.Context) (*Overview, error) {
	var o Overview
	err := c.db.QueryRow(ctx,
		`SELECT (SELECT COUNT(*) FROM companies),
		        (SELECT COUNT(*) FROM jobs),
		        (SELECT AVG(salary)::float8 FROM jobs)`,
	).Scan(&o.Companies, &o.Jobs, &o.AvgSalary)
	if err != nil {
		return nil, fmt.Errorf("stats query: %w", err)
	}
	o.RefreshedAt = time.Now().UTC()

	payload, err := json.Marshal(&o)
	if err != nil {
		return nil, fmt.Errorf("stats encode: %w", err)
	}
	if err := c.rdb.Set(ctx, cacheKey, payload, 0).Err(); err != nil {
		return nil, fmt.Errorf("stats cache write: %w", err)
	}
	return &o, nil
}

// Cached returns the cached overview, recomputing when the key is absent.
// A failing or corrupt cache degrades to a live recompute (non-fatal).
func (c *Collector) Cached(ctx context.Context) (*Overview, error) {
	raw, err := c.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			slog.Warn("stats cache read failed", "err", err)
		}
		return c.Refresh(ctx)
	}

	var o Overview
	if err := json.Unmarshal(raw, &o); err != nil {
		slog.Warn("stats cache decode failed", "err", err)
		return c.Refresh(ctx)
	}
	return &o, nil
}

// Scheduler wraps robfig/cron and keeps the overview fresh.
type Scheduler struct {
	cron      *cron.Cron
	collector *Collector
	spec      string // cron spec, e.g. "@every 6h"
}

// NewScheduler creates a Scheduler that refreshes every intervalHours.
func NewScheduler(collector *Collector, intervalHours int) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLogger(cron.DefaultLogger)),
		collector: collector,
		spec:      fmt.Sprintf("@every %dh", intervalHours),
	}
}

// Start registers the refresh job and starts the scheduler. Also runs one
// refresh immediately so /stats is warm without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runRefresh(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	log.Printf("[stats] Cron started — spec: %s", s.spec)

	// Warm the cache on startup (non-blocking)
	go s.runRefresh(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	log.Println("[stats] Cron stopped")
}

func (s *Scheduler) runRefresh(ctx context.Context) {
	if _, err := s.collector.Refresh(ctx); err != nil {
		log.Printf("[stats] Refresh error: %v", err)
		return
	}
	log.Println("[stats] Overview refreshed")
}

// Handler serves GET /stats from the cache.
type Handler struct {
	collector *Collector
}

// NewHandler returns a configured Handler.
func NewHandler(collector *Collector) *Handler {
	return &Handler{collector: collector}
}

// RegisterRoutes mounts the stats route on mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/stats", h.overview)
}

func (h *Handler) overview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		web.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	o, err := h.collector.Cached(r.Context())
	if err != nil {
		web.ServiceError(w, err)
		return
	}
	web.JSON(w, http.StatusOK, map[string]any{"stats": o})
}
