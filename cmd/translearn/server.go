package main

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/japaniel/translearn/pkg/capture"
	"github.com/japaniel/translearn/pkg/db"
	"github.com/japaniel/translearn/pkg/ingest"
)

const defaultVocabularyLimit = 50

type screenSubmitter interface {
	Submit(r capture.Region, done func(ingest.Result)) error
}

type vocabularyLister interface {
	ListVocabulary(ctx context.Context, q db.VocabularyQuery) ([]db.VocabularyEntry, error)
}

type screenResponse struct {
	Found          bool   `json:"found"`
	SourceText     string `json:"source_text,omitempty"`
	TranslatedText string `json:"translated_text,omitempty"`
	ObservationID  int64  `json:"observation_id,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func newRouter(screen screenSubmitter, vocab vocabularyLister, hub http.Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("GET /events", hub)
	mux.HandleFunc("POST /screen", screenHandler(screen))
	mux.HandleFunc("GET /vocabulary", vocabularyHandler(vocab))
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Warn("failed to write response", "err", err)
	}
}

// screenHandler ingests the posted region and answers with the outcome.
// Capture, recognition and translation failures are reported as 502.
func screenHandler(screen screenSubmitter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var region capture.Region
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16)).Decode(&region); err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid region: " + err.Error()})
			return
		}

		done := make(chan ingest.Result, 1)
		if err := screen.Submit(region, func(res ingest.Result) { done <- res }); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: err.Error()})
			return
		}

		select {
		case res := <-done:
			if res.Err != nil {
				writeJSON(w, http.StatusBadGateway, errorResponse{Error: res.Err.Error()})
				return
			}
			resp := screenResponse{
				Found:          res.Found,
				SourceText:     res.SourceText,
				TranslatedText: res.TranslatedText,
			}
			if res.Observation != nil {
				resp.ObservationID = res.Observation.ID
			}
			writeJSON(w, http.StatusOK, resp)
		case <-r.Context().Done():
			// The client is gone; the ingestion still completes on the pool.
		}
	}
}

var errBadLimit = errors.New("limit must be a non-negative integer")

func vocabularyHandler(vocab vocabularyLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := db.VocabularyQuery{Order: db.OrderByFrequency, Limit: defaultVocabularyLimit}
		if s := r.URL.Query().Get("limit"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 0 {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: errBadLimit.Error()})
				return
			}
			q.Limit = n
		}
		if s := r.URL.Query().Get("sort"); s != "" {
			var order sortOrder
			if err := order.Set(s); err != nil {
				writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
				return
			}
			q.Order = db.VocabularyOrder(order)
		}

		entries, err := vocab.ListVocabulary(r.Context(), q)
		if err != nil {
			slog.Error("list vocabulary failed", "err", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list vocabulary"})
			return
		}
		if entries == nil {
			entries = []db.VocabularyEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}
