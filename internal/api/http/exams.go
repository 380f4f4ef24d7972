package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/score-sight/scoresight/internal/examcfg"
)

// layoutSummary is the catalog shape served to pickers; section detail stays
// out of the listing.
type layoutSummary struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Category       string  `json:"category"`
	TotalQuestions int     `json:"total_questions"`
	MaxMarks       float64 `json:"max_marks"`
}

func summarize(layouts []examcfg.Layout) []layoutSummary {
	out := make([]layoutSummary, 0, len(layouts))
	for _, l := range layouts {
		out = append(out, layoutSummary{
			ID:             l.ID,
			Name:           l.Name,
			Category:       l.Category,
			TotalQuestions: l.TotalQuestions,
			MaxMarks:       l.MaxMarks,
		})
	}
	return out
}

// GET /exams?category=SSC
func ListExamsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		layouts := examcfg.All()
		if cat := r.URL.Query().Get("category"); cat != "" {
			layouts = examcfg.ByCategory(cat)
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(summarize(layouts))
	}
}

// GET /exams/categories
func ListExamCategoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(examcfg.Categories())
	}
}

// GET /exams/{id}
func GetExamHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		layout, ok := examcfg.Lookup(chi.URLParam(r, "id"))
		if !ok {
			http.Error(w, "not found", 404)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(layout)
	}
}
