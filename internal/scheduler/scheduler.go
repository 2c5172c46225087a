package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/contextbuilder"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/executor"
)

// Janitor runs the periodic maintenance tasks: sweeping expired context
// cache entries and evicting rollback ledger entries past their age limit.
type Janitor struct {
	Cron         *cron.Cron
	Contexts     *contextbuilder.Service
	Executor     *executor.Service
	LedgerMaxAge time.Duration
}

// NewJanitor creates a new Janitor.
func NewJanitor(contexts *contextbuilder.Service, exec *executor.Service, ledgerMaxAge time.Duration) *Janitor {
	return &Janitor{
		Cron:         cron.New(cron.WithSeconds()),
		Contexts:     contexts,
		Executor:     exec,
		LedgerMaxAge: ledgerMaxAge,
	}
}

// RegisterAll registers the cache sweep and ledger eviction tasks.
func (j *Janitor) RegisterAll(sweepCron, evictionCron string) error {
	if _, err := j.Cron.AddFunc(sweepCron, j.sweepCache); err != nil {
		return fmt.Errorf("register cache sweep: %w", err)
	}
	if _, err := j.Cron.AddFunc(evictionCron, j.evictLedger); err != nil {
		return fmt.Errorf("register ledger eviction: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (j *Janitor) Start() {
	j.Cron.Start()
	log.Println("[INFO] janitor started")
}

// Stop stops the cron scheduler gracefully.
func (j *Janitor) Stop() {
	j.Cron.Stop()
	log.Println("[INFO] janitor stopped")
}

func (j *Janitor) sweepCache() {
	if swept := j.Contexts.SweepExpired(); swept > 0 {
		log.Printf("[INFO] janitor: swept %d expired context entries", swept)
	}
}

func (j *Janitor) evictLedger() {
	cutoff := time.Now().Add(-j.LedgerMaxAge)
	if evicted := j.Executor.EvictLedgerBefore(cutoff); evicted > 0 {
		log.Printf("[INFO] janitor: evicted %d ledger entries older than %s", evicted, j.LedgerMaxAge)
	}
}
