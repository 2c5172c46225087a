// Package conversation keeps the copilot's short-term memory: a bounded,
// per-user, in-memory record of recent turns. It feeds the conversation
// section of the financial context and lives only as long as the process.
package conversation

import (
	"sync"

	"github.com/google/uuid"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

// DefaultLimit bounds how many turns are kept per user
const DefaultLimit = 10

// Log is a mutex-guarded ring of recent turns keyed by user id
type Log struct {
	mu    sync.RWMutex
	limit int
	turns map[uuid.UUID][]domain.ConversationTurn
}

// NewLog creates a Log keeping up to limit turns per user
func NewLog(limit int) *Log {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Log{
		limit: limit,
		turns: make(map[uuid.UUID][]domain.ConversationTurn),
	}
}

// Append records one turn for the user, evicting the oldest when the bound
// is reached
func (l *Log) Append(userID uuid.UUID, turn domain.ConversationTurn) {
	l.mu.Lock()
	defer l.mu.Unlock()

	turns := append(l.turns[userID], turn)
	if len(turns) > l.limit {
		turns = turns[len(turns)-l.limit:]
	}
	l.turns[userID] = turns
}

// Recent returns the user's turns newest first. The slice is a copy; callers
// cannot mutate the log through it.
func (l *Log) Recent(userID uuid.UUID) []domain.ConversationTurn {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stored := l.turns[userID]
	recent := make([]domain.ConversationTurn, 0, len(stored))
	for i := len(stored) - 1; i >= 0; i-- {
		recent = append(recent, stored[i])
	}
	return recent
}
