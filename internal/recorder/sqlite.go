package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	"SiliconMeter/internal/model"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists polled prices to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read while the poller writes).
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
		`CREATE TABLE IF NOT EXISTS poll_events (
			id            INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp     INTEGER NOT NULL,
			status        TEXT,
			product_count INTEGER,
			last_updated  TEXT,
			note          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_poll_ts ON poll_events(timestamp)`,

		`CREATE TABLE IF NOT EXISTS price_history (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp    INTEGER NOT NULL,
			product_id   TEXT NOT NULL,
			name         TEXT,
			type         TEXT,
			price        REAL,
			change_24h   REAL,
			sentiment    TEXT,
			stock_status TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_price_ts ON price_history(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_price_product ON price_history(product_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPoll(evt *PollEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO poll_events
		(timestamp, status, product_count, last_updated, note)
		VALUES (?,?,?,?,?)`,
		time.Now().Unix(), evt.Status, evt.ProductCount, evt.LastUpdated, evt.Note,
	)
	return err
}

func (r *SQLiteRecorder) RecordPrices(snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	now := time.Now().Unix()
	for _, p := range snap.Products {
		if _, err := tx.Exec(`INSERT INTO price_history
			(timestamp, product_id, name, type, price, change_24h, sentiment, stock_status)
			VALUES (?,?,?,?,?,?,?,?)`,
			now, p.ID, p.Name, p.Type, p.CurrentPrice, p.Change24h,
			string(p.Sentiment), p.StockStatus,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("insert price row: %w", err)
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
