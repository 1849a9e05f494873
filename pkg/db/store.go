package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
)

// TimeFormat is the fixed-width ISO-8601 UTC layout used for stored
// timestamps, so that lexical order matches chronological order.
const TimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

var (
	// ErrEmptyPhrase is returned by Upsert for a blank phrase.
	ErrEmptyPhrase = errors.New("phrase must be non-empty")
	// ErrEmptyText is returned by Append when source or translated text is blank.
	ErrEmptyText = errors.New("observation text must be non-empty")
)

// DBExecutor is an interface that allows methods to accept either *sqlx.DB or *sqlx.Tx
type DBExecutor interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// Store persists observations and vocabulary. Every call is a complete
// request/response against the pool; no state is carried between calls.
type Store struct {
	db  DBExecutor
	now func() time.Time
}

// NewStore returns a Store over conn.
func NewStore(conn DBExecutor) *Store {
	return &Store{db: conn, now: time.Now}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// Append inserts an observation and sets its ID.
func (s *Store) Append(ctx context.Context, obs *Observation) error {
	if obs == nil {
		return fmt.Errorf("observation must be non-nil")
	}
	if strings.TrimSpace(obs.SourceText) == "" || strings.TrimSpace(obs.TranslatedText) == "" {
		return ErrEmptyText
	}
	if obs.Modality != ModalityScreen && obs.Modality != ModalityAudio {
		return fmt.Errorf("append observation: invalid modality %q", obs.Modality)
	}
	if obs.Timestamp.IsZero() {
		obs.Timestamp = s.now().UTC()
	}

	res, err := s.db.ExecContext(ctx,
		`INSERT INTO observations (timestamp, source_text, translated_text, modality) VALUES (?, ?, ?, ?)`,
		formatTime(obs.Timestamp), obs.SourceText, obs.TranslatedText, string(obs.Modality))
	if err != nil {
		return fmt.Errorf("insert observation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("observation id: %w", err)
	}
	obs.ID = id
	return nil
}

// Upsert records one occurrence of phrase. A new phrase is inserted with
// frequency 1; an existing one has its frequency incremented and its context,
// difficulty (when non-nil) and last-seen time overwritten. The whole update
// is a single conflict-resolving statement, so concurrent callers never lose
// an increment.
func (s *Store) Upsert(ctx context.Context, phrase string, contextSentence *string, difficulty *float64) error {
	if strings.TrimSpace(phrase) == "" {
		return ErrEmptyPhrase
	}

	_, err := s.db.ExecContext(ctx, `INSERT INTO vocabulary (phrase, frequency, difficulty, context_sentence, last_seen_at)
	VALUES (?, 1, ?, ?, ?)
	ON CONFLICT(phrase) DO UPDATE SET
	  frequency = vocabulary.frequency + 1,
	  difficulty = COALESCE(excluded.difficulty, vocabulary.difficulty),
	  context_sentence = excluded.context_sentence,
	  last_seen_at = excluded.last_seen_at`,
		phrase, nullableFloat(difficulty), nullableString(contextSentence), formatTime(s.now()))
	if err != nil {
		return fmt.Errorf("upsert vocabulary %q: %w", phrase, err)
	}
	return nil
}

func nullableFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func nullableString(v *string) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

// VocabularyOrder selects the ordering of ListVocabulary.
type VocabularyOrder string

const (
	OrderByFrequency VocabularyOrder = "frequency"
	OrderByRecent    VocabularyOrder = "recent"
)

// VocabularyQuery filters ListVocabulary.
type VocabularyQuery struct {
	Order VocabularyOrder
	Limit int
}

// ListVocabulary returns learned entries, most frequent (or most recent) first.
func (s *Store) ListVocabulary(ctx context.Context, q VocabularyQuery) ([]VocabularyEntry, error) {
	order := "frequency DESC, last_seen_at DESC"
	switch q.Order {
	case OrderByFrequency, "":
	case OrderByRecent:
		order = "last_seen_at DESC, frequency DESC"
	default:
		return nil, fmt.Errorf("unknown vocabulary order %q", q.Order)
	}
	limit := q.Limit
	if limit <= 0 {
		limit = -1
	}

	var out []VocabularyEntry
	query := `SELECT id, phrase, frequency, difficulty, context_sentence, last_seen_at FROM vocabulary ORDER BY ` + order + ` LIMIT ?`
	if err := s.db.SelectContext(ctx, &out, query, limit); err != nil {
		return nil, fmt.Errorf("select vocabulary: %w", err)
	}
	return out, nil
}

// GetVocabulary returns the entry for phrase, or nil if it has never been seen.
func (s *Store) GetVocabulary(ctx context.Context, phrase string) (*VocabularyEntry, error) {
	var e VocabularyEntry
	err := s.db.GetContext(ctx, &e,
		`SELECT id, phrase, frequency, difficulty, context_sentence, last_seen_at FROM vocabulary WHERE phrase = ?`, phrase)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get vocabulary %q: %w", phrase, err)
	}
	return &e, nil
}

// DeleteVocabulary removes phrase and reports whether a row existed.
func (s *Store) DeleteVocabulary(ctx context.Context, phrase string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM vocabulary WHERE phrase = ?`, phrase)
	if err != nil {
		return false, fmt.Errorf("delete vocabulary %q: %w", phrase, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// ListObservations returns the newest observations first.
func (s *Store) ListObservations(ctx context.Context, limit int) ([]Observation, error) {
	if limit <= 0 {
		limit = -1
	}
	var out []Observation
	if err := s.db.SelectContext(ctx, &out,
		`SELECT id, timestamp, source_text, translated_text, modality FROM observations ORDER BY timestamp DESC, id DESC LIMIT ?`,
		limit); err != nil {
		return nil, fmt.Errorf("select observations: %w", err)
	}
	return out, nil
}

// CountObservations returns the number of stored observations.
func (s *Store) CountObservations(ctx context.Context) (int, error) {
	var n int
	if err := s.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM observations`); err != nil {
		return 0, fmt.Errorf("count observations: %w", err)
	}
	return n, nil
}
