package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/score-sight/scoresight/internal/parse"
	"github.com/score-sight/scoresight/internal/render"
	"github.com/score-sight/scoresight/internal/scorecard"
)

// UploadOpts carries the gateway knobs the upload handler needs.
type UploadOpts struct {
	DefaultExam    string
	MaxUploadBytes int64
}

// POST /scorecards (multipart: file=response.html, exam_type=SSC_CGL_PRE)
func UploadScorecardHandler(store scorecard.Store, opts UploadOpts) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if opts.MaxUploadBytes > 0 {
			r.Body = http.MaxBytesReader(w, r.Body, opts.MaxUploadBytes)
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", 400)
			return
		}
		defer f.Close()

		raw, err := io.ReadAll(f)
		if err != nil {
			http.Error(w, "read upload: "+err.Error(), 400)
			return
		}

		examType := r.FormValue("exam_type")
		if examType == "" {
			examType = opts.DefaultExam
		}

		data, err := parse.Parse(string(raw), examType)
		if err != nil {
			if errors.Is(err, parse.ErrUnparseable) {
				http.Error(w, err.Error(), 422)
				return
			}
			http.Error(w, err.Error(), 400)
			return
		}

		rec := scorecard.NewRecord(uuid.NewString(), examType, data, time.Now().Unix())
		if store != nil {
			if err := store.Put(rec); err != nil {
				http.Error(w, err.Error(), 500)
				return
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(201)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"scorecard": rec,
			"filename":  hdr.Filename,
		})
	}
}

// GET /scorecards
func ListScorecardsHandler(store scorecard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := store.List()
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		if list == nil {
			list = []scorecard.Record{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(list)
	}
}

// GET /scorecards/{id}
func GetScorecardHandler(store scorecard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := store.Get(chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, scorecard.ErrNotFound) {
				http.Error(w, "not found", 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(rec)
	}
}

// GET /scorecards/{id}/document?mode=response-sheet&lang=bilingual
func RenderScorecardHandler(store scorecard.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := store.Get(chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, scorecard.ErrNotFound) {
				http.Error(w, "not found", 404)
				return
			}
			http.Error(w, err.Error(), 500)
			return
		}

		mode := render.ModeResponseSheet
		if m := r.URL.Query().Get("mode"); m != "" {
			if mode, err = render.ParseMode(m); err != nil {
				http.Error(w, err.Error(), 400)
				return
			}
		}
		lang, err := render.ParseLanguage(r.URL.Query().Get("lang"))
		if err != nil {
			http.Error(w, err.Error(), 400)
			return
		}

		doc, err := render.Render(rec.Data, lang, mode)
		if err != nil {
			http.Error(w, err.Error(), 500)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = io.WriteString(w, doc)
	}
}
