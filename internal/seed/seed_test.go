package seed

import (
	"database/sql"
	"path/filepath"
	"testing"

	"liftquote/internal/db"
	"liftquote/internal/migrations"
)

func TestRunIsIdempotent(t *testing.T) {
	t.Parallel()

	dbPath := filepath.Join(t.TempDir(), "seed-test.db")
	database, err := db.Open(dbPath)
	if err != nil {
		t.Fatalf("open sqlite database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database, "../../migrations"); err != nil {
		t.Fatalf("run migrations: %v", err)
	}

	want := len(controlRecords) + len(tractionRecords) + len(miscRecords)

	for i := 0; i < 10; i++ {
		stats, err := Run(database)
		if err != nil {
			t.Fatalf("run seed (iteration=%d): %v", i, err)
		}
		if i == 0 {
			if stats.Inserts != want {
				t.Fatalf("expected %d inserts in first run, got %d", want, stats.Inserts)
			}
			continue
		}
		if stats.Inserts != 0 {
			t.Fatalf("expected 0 inserts in iteration %d, got %d", i, stats.Inserts)
		}
	}

	assertCount(t, database, `SELECT COUNT(*) FROM control_catalog`, nil, len(controlRecords))
	assertCount(t, database, `SELECT COUNT(*) FROM traction_catalog`, nil, len(tractionRecords))
	assertCount(t, database, `SELECT COUNT(*) FROM misc_catalog`, nil, len(miscRecords))
	assertCount(t, database, `SELECT COUNT(*) FROM control_catalog WHERE model = ?`, "K-MC1000", 7)
	assertCount(t, database, `SELECT COUNT(*) FROM control_catalog WHERE model = ?`, "K-MC5000", 6)
	assertCount(t, database, `SELECT COUNT(*) FROM traction_catalog WHERE ratio = ?`, "1:1", 4)
	assertCount(t, database, `SELECT COUNT(*) FROM misc_catalog WHERE name = ?`, "Packaging (wooden crate)", 2)

	var price float64
	if err := database.QueryRow(`SELECT price FROM control_catalog WHERE model = ? AND power_kw = ?`, "K-MC1000", 5.5).Scan(&price); err != nil {
		t.Fatalf("query base control price: %v", err)
	}
	if price != 8800 {
		t.Fatalf("expected base control price 8800, got %v", price)
	}
}

func assertCount(t *testing.T, database *sql.DB, query string, args any, expected int) {
	t.Helper()

	var count int
	var err error
	switch v := args.(type) {
	case nil:
		err = database.QueryRow(query).Scan(&count)
	case []any:
		err = database.QueryRow(query, v...).Scan(&count)
	default:
		err = database.QueryRow(query, v).Scan(&count)
	}
	if err != nil {
		t.Fatalf("count query failed: %v", err)
	}
	if count != expected {
		t.Fatalf("expected count %d, got %d", expected, count)
	}
}
