// Package service exposes the RAPTOR engine as an HTTP API: a single
// /route query endpoint plus a /health check, wired with chi and cors
// the way the teacher's own API server is.
package service

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	"github.com/antigravity/transit-raptor/feed"
)

// NewRouter builds the chi router exposing the engine over HTTP. pool is
// the Postgres pool backing view when the feed came from
// feed.LoadPostgres; it may be nil for a directory- or zip-backed feed,
// in which case /health degrades to a plain liveness check instead of a
// pool ping, the way the teacher's own /health does when it has a pool
// to ping and nothing otherwise.
func NewRouter(view *feed.View, pool *pgxpool.Pool) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	h := &Handler{View: view, DB: pool}

	r.Get("/health", h.Health)
	r.Get("/route", h.Route)

	return r
}
