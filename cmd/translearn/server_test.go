package main

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/japaniel/translearn/pkg/capture"
	"github.com/japaniel/translearn/pkg/db"
	"github.com/japaniel/translearn/pkg/events"
	"github.com/japaniel/translearn/pkg/ingest"
)

type fakeScreen struct {
	got       capture.Region
	result    ingest.Result
	submitErr error
}

func (f *fakeScreen) Submit(r capture.Region, done func(ingest.Result)) error {
	if f.submitErr != nil {
		return f.submitErr
	}
	f.got = r
	go done(f.result)
	return nil
}

type fakeVocabulary struct {
	got     db.VocabularyQuery
	entries []db.VocabularyEntry
	err     error
}

func (f *fakeVocabulary) ListVocabulary(_ context.Context, q db.VocabularyQuery) ([]db.VocabularyEntry, error) {
	f.got = q
	return f.entries, f.err
}

func TestScreenHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		screen     *fakeScreen
		wantStatus int
		wantBody   string
	}{
		{
			name: "translated",
			body: `{"x":10,"y":20,"width":300,"height":40}`,
			screen: &fakeScreen{result: ingest.Result{
				Found: true, SourceText: "猫", TranslatedText: "[Translated] 猫",
				Observation: &db.Observation{ID: 7},
			}},
			wantStatus: http.StatusOK,
			wantBody:   `"observation_id":7`,
		},
		{
			name:       "no text found",
			body:       `{"x":0,"y":0,"width":0,"height":0}`,
			screen:     &fakeScreen{result: ingest.Result{}},
			wantStatus: http.StatusOK,
			wantBody:   `"found":false`,
		},
		{
			name:       "capture failure",
			body:       `{"x":0,"y":0,"width":10,"height":10}`,
			screen:     &fakeScreen{result: ingest.Result{Err: errors.New("capture: no display")}},
			wantStatus: http.StatusBadGateway,
			wantBody:   "no display",
		},
		{
			name:       "pool closed",
			body:       `{"width":10,"height":10}`,
			screen:     &fakeScreen{submitErr: errors.New("worker pool is closed")},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "closed",
		},
		{
			name:       "bad json",
			body:       `{"x":`,
			screen:     &fakeScreen{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid region",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(tt.screen, &fakeVocabulary{}, http.NotFoundHandler())
			req := httptest.NewRequest(http.MethodPost, "/screen", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestScreenHandler_PassesRegion(t *testing.T) {
	screen := &fakeScreen{result: ingest.Result{}}
	router := newRouter(screen, &fakeVocabulary{}, http.NotFoundHandler())
	req := httptest.NewRequest(http.MethodPost, "/screen", strings.NewReader(`{"x":1,"y":2,"width":3,"height":4}`))
	router.ServeHTTP(httptest.NewRecorder(), req)
	assert.Equal(t, capture.Region{X: 1, Y: 2, Width: 3, Height: 4}, screen.got)
}

func TestVocabularyHandler(t *testing.T) {
	ctx := "the quick fox"
	tests := []struct {
		name       string
		query      string
		vocab      *fakeVocabulary
		wantStatus int
		wantQuery  db.VocabularyQuery
		wantBody   string
	}{
		{
			name:       "defaults",
			vocab:      &fakeVocabulary{entries: []db.VocabularyEntry{{Phrase: "quick", Frequency: 2, ContextSentence: &ctx}}},
			wantStatus: http.StatusOK,
			wantQuery:  db.VocabularyQuery{Order: db.OrderByFrequency, Limit: defaultVocabularyLimit},
			wantBody:   `"phrase":"quick"`,
		},
		{
			name:       "recent with limit",
			query:      "?sort=recent&limit=5",
			vocab:      &fakeVocabulary{},
			wantStatus: http.StatusOK,
			wantQuery:  db.VocabularyQuery{Order: db.OrderByRecent, Limit: 5},
			wantBody:   "[]",
		},
		{
			name:       "bad sort",
			query:      "?sort=alpha",
			vocab:      &fakeVocabulary{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "invalid sort order",
		},
		{
			name:       "bad limit",
			query:      "?limit=-1",
			vocab:      &fakeVocabulary{},
			wantStatus: http.StatusBadRequest,
			wantBody:   "limit",
		},
		{
			name:       "store failure",
			vocab:      &fakeVocabulary{err: errors.New("disk I/O error")},
			wantStatus: http.StatusInternalServerError,
			wantQuery:  db.VocabularyQuery{Order: db.OrderByFrequency, Limit: defaultVocabularyLimit},
			wantBody:   "failed to list vocabulary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeScreen{}, tt.vocab, http.NotFoundHandler())
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/vocabulary"+tt.query, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Equal(t, tt.wantQuery, tt.vocab.got)
		})
	}
}

func TestRouter_HealthzAndMethods(t *testing.T) {
	router := newRouter(&fakeScreen{}, &fakeVocabulary{}, http.NotFoundHandler())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/screen", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRouter_EventStream(t *testing.T) {
	bus := events.NewBus()
	defer bus.Close()
	srv := httptest.NewServer(newRouter(&fakeScreen{}, &fakeVocabulary{}, events.NewHub(bus)))
	defer srv.Close()

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http")+"/events", nil)
	require.NoError(t, err)
	defer conn.Close()

	received := make(chan events.Event, 1)
	go func() {
		var e events.Event
		if err := conn.ReadJSON(&e); err == nil {
			received <- e
		}
	}()

	// The hub subscribes after the upgrade completes; publish until it sees one.
	want := events.New(events.KindTranslated, "screen")
	want.SourceText = "猫"
	deadline := time.After(5 * time.Second)
	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()
	for {
		select {
		case got := <-received:
			assert.Equal(t, want.ID, got.ID)
			assert.Equal(t, events.KindTranslated, got.Kind)
			assert.Equal(t, "猫", got.SourceText)
			return
		case <-ticker.C:
			bus.Publish(want)
		case <-deadline:
			t.Fatal("no event received")
		}
	}
}
