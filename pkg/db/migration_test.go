package db

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// TestInitDBCreatesSchema verifies InitDB creates both tables with the
// columns the stores rely on, and that running it twice is harmless.
func TestInitDBCreatesSchema(t *testing.T) {
	dbConn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer dbConn.Close()
	dbConn.SetMaxOpenConns(1)

	if err := InitDB(dbConn); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}
	if err := InitDB(dbConn); err != nil {
		t.Fatalf("second InitDB failed: %v", err)
	}

	for table, want := range map[string][]string{
		"observations": {"id", "timestamp", "source_text", "translated_text", "modality"},
		"vocabulary":   {"id", "phrase", "frequency", "difficulty", "context_sentence", "last_seen_at"},
	} {
		cols := tableColumns(t, dbConn, table)
		for _, c := range want {
			if !cols[c] {
				t.Fatalf("expected column %s in %s, got %v", c, table, cols)
			}
		}
	}
}

func TestModalityCheckConstraint(t *testing.T) {
	dbConn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer dbConn.Close()
	dbConn.SetMaxOpenConns(1)
	if err := InitDB(dbConn); err != nil {
		t.Fatalf("InitDB failed: %v", err)
	}

	_, err = dbConn.Exec(`INSERT INTO observations (timestamp, source_text, translated_text, modality) VALUES ('2025-01-01T00:00:00Z', 'a', 'b', 'Video')`)
	if err == nil {
		t.Fatalf("expected CHECK constraint to reject modality Video")
	}
}

func tableColumns(t *testing.T, dbConn *sql.DB, table string) map[string]bool {
	t.Helper()
	rows, err := dbConn.Query("PRAGMA table_info(" + table + ")")
	if err != nil {
		t.Fatalf("pragmas: %v", err)
	}
	defer rows.Close()
	cols := map[string]bool{}
	for rows.Next() {
		var cid int
		var colName, ctype string
		var notnull, pk int
		var dfltVal interface{}
		if err := rows.Scan(&cid, &colName, &ctype, &notnull, &dfltVal, &pk); err != nil {
			t.Fatalf("scan col: %v", err)
		}
		cols[colName] = true
	}
	return cols
}
