package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/score-sight/scoresight/internal/api/http"
	"github.com/score-sight/scoresight/internal/config"
	"github.com/score-sight/scoresight/internal/db"
	"github.com/score-sight/scoresight/internal/scorecard"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- DB (archive; optional) ---
	var store scorecard.Store
	if cfg.ArchiveEnabled {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		store = scorecard.NewSQLStore(dbh, cfg.DBDriver)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	uploadOpts := api.UploadOpts{
		DefaultExam:    cfg.DefaultExam,
		MaxUploadBytes: cfg.MaxUploadBytes,
	}

	r.Post("/scorecards", api.UploadScorecardHandler(store, uploadOpts))
	if store != nil {
		r.Get("/scorecards", api.ListScorecardsHandler(store))
		r.Get("/scorecards/{id}", api.GetScorecardHandler(store))
		r.Get("/scorecards/{id}/document", api.RenderScorecardHandler(store))
	}

	r.Get("/exams", api.ListExamsHandler())
	r.Get("/exams/categories", api.ListExamCategoriesHandler())
	r.Get("/exams/{id}", api.GetExamHandler())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (mode=%s, db=%s, archive=%v)", cfg.HTTPAddr, cfg.Mode, cfg.DBDriver, cfg.ArchiveEnabled)
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
