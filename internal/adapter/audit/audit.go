// Package audit persists the append-only trail of executed copilot
// operations. Recording is best-effort: a failed append must never fail the
// user-visible operation, so callers log and continue.
package audit

import (
	"time"

	"github.com/google/uuid"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// Record is one appended audit entry
type Record struct {
	UserID        uuid.UUID
	Intent        domain.Intent
	OriginalText  string
	Success       bool
	ResultMessage string
	Timestamp     time.Time
}

// Recorder appends operation records to an external sink
type Recorder interface {
	Append(record *Record) error
	Close() error
}
