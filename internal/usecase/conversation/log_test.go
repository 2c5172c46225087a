package conversation

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

func TestLog_RecentIsNewestFirst(t *testing.T) {
	log := NewLog(5)
	userID := uuid.New()

	log.Append(userID, domain.ConversationTurn{UserText: "primeiro"})
	log.Append(userID, domain.ConversationTurn{UserText: "segundo"})

	recent := log.Recent(userID)
	assert.Len(t, recent, 2)
	assert.Equal(t, "segundo", recent[0].UserText)
	assert.Equal(t, "primeiro", recent[1].UserText)
}

func TestLog_EvictsOldestPastLimit(t *testing.T) {
	log := NewLog(2)
	userID := uuid.New()

	log.Append(userID, domain.ConversationTurn{UserText: "a"})
	log.Append(userID, domain.ConversationTurn{UserText: "b"})
	log.Append(userID, domain.ConversationTurn{UserText: "c"})

	recent := log.Recent(userID)
	assert.Len(t, recent, 2)
	assert.Equal(t, "c", recent[0].UserText)
	assert.Equal(t, "b", recent[1].UserText)
}

func TestLog_UsersAreIsolated(t *testing.T) {
	log := NewLog(5)
	log.Append(uuid.New(), domain.ConversationTurn{UserText: "outro usuario"})

	assert.Empty(t, log.Recent(uuid.New()))
}
