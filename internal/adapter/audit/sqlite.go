package audit

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder appends audit records to a local SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so reporting reads do not block the append path
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite audit recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmt := `CREATE TABLE IF NOT EXISTS operation_audit (
		id             INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp      INTEGER NOT NULL,
		user_id        TEXT NOT NULL,
		intent         TEXT NOT NULL,
		original_text  TEXT,
		success        INTEGER NOT NULL,
		result_message TEXT
	)`
	if _, err := r.db.Exec(stmt); err != nil {
		return err
	}
	_, err := r.db.Exec(`CREATE INDEX IF NOT EXISTS idx_audit_user_ts ON operation_audit(user_id, timestamp)`)
	return err
}

// Append inserts one audit record
func (r *SQLiteRecorder) Append(record *Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	success := 0
	if record.Success {
		success = 1
	}
	_, err := r.db.Exec(
		`INSERT INTO operation_audit (timestamp, user_id, intent, original_text, success, result_message)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		record.Timestamp.Unix(),
		record.UserID.String(),
		string(record.Intent),
		record.OriginalText,
		success,
		record.ResultMessage,
	)
	if err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// Close closes the underlying database
func (r *SQLiteRecorder) Close() error {
	return r.db.Close()
}
