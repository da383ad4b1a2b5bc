package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists snapshot history to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets readers query history while the snapshot task writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS daily_snapshots (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			ticker      TEXT NOT NULL,
			as_of       TEXT NOT NULL,
			last_close  REAL,
			price_change REAL,
			change_pct  REAL,
			high_52w    REAL,
			low_52w     REAL,
			avg_volume  INTEGER,
			predicted   REAL,
			daily_rsi   REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_ticker_ts ON daily_snapshots(ticker, timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_run ON daily_snapshots(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordSnapshot(rec *SnapshotRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO daily_snapshots
		(run_id, timestamp, ticker, as_of, last_close, price_change, change_pct,
		 high_52w, low_52w, avg_volume, predicted, daily_rsi)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.RunID, time.Now().Unix(), rec.Ticker, rec.AsOf,
		rec.LastClose, rec.Change, rec.ChangePct,
		rec.High52w, rec.Low52w, rec.AvgVolume, rec.Predicted, rec.DailyRSI,
	)
	return err
}

// History returns the most recent snapshots of ticker, newest first.
func (r *SQLiteRecorder) History(ticker string, limit int) ([]SnapshotRecord, error) {
	rows, err := r.db.Query(`SELECT run_id, ticker, as_of, last_close, price_change, change_pct,
		high_52w, low_52w, avg_volume, predicted, daily_rsi
		FROM daily_snapshots WHERE ticker = ? ORDER BY id DESC LIMIT ?`, ticker, limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRecord
	for rows.Next() {
		var s SnapshotRecord
		if err := rows.Scan(&s.RunID, &s.Ticker, &s.AsOf, &s.LastClose, &s.Change, &s.ChangePct,
			&s.High52w, &s.Low52w, &s.AvgVolume, &s.Predicted, &s.DailyRSI); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
