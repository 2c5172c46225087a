// Package executor implements the command execution engine: it interprets a
// ParsedCommand against a FinancialContext, validates authorization and
// entities, performs a single logical mutation against the external store,
// records an operation ledger entry for rollback, and invalidates the user's
// cached context.
package executor

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/rafaelcoutinho/finpilot-backend/internal/adapter/audit"
	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/conversation"
)

// ErrRollbackNotFound is returned when rollback is asked for an unknown or
// already rolled back operation id, so callers can tell "nothing to undo"
// apart from a failed undo.
var ErrRollbackNotFound = errors.New("no operation to roll back")

// Invalidator evicts a user's cached financial context. Invalidation after
// every successful mutation is part of this engine's contract, so the
// dependency is explicit rather than inferred from call order.
type Invalidator interface {
	Invalidate(userID uuid.UUID)
}

type handlerFunc func(ctx context.Context, cmd domain.ParsedCommand, fctx *domain.FinancialContext, userID uuid.UUID) domain.OperationResult

// Service is the command execution engine. It exclusively owns the operation
// ledger; the persisted records belong to the external store.
type Service struct {
	categories    domain.CategoryRepository
	transactions  domain.TransactionRepository
	goals         domain.GoalRepository
	budgets       domain.BudgetRepository
	invalidator   Invalidator
	auditor       audit.Recorder
	conversations *conversation.Log

	ledger   *ledger
	handlers map[domain.Intent]handlerFunc

	now func() time.Time // injected for tests
}

// NewService creates a new command execution engine
func NewService(
	categories domain.CategoryRepository,
	transactions domain.TransactionRepository,
	goals domain.GoalRepository,
	budgets domain.BudgetRepository,
	invalidator Invalidator,
	auditor audit.Recorder,
	conversations *conversation.Log,
) *Service {
	s := &Service{
		categories:    categories,
		transactions:  transactions,
		goals:         goals,
		budgets:       budgets,
		invalidator:   invalidator,
		auditor:       auditor,
		conversations: conversations,
		ledger:        newLedger(),
		now:           time.Now,
	}

	// one handler per intent; adding an intent means extending this map
	s.handlers = map[domain.Intent]handlerFunc{
		domain.IntentCriarReceita:       s.handleCriarReceita,
		domain.IntentCriarDespesa:       s.handleCriarDespesa,
		domain.IntentCriarTransferencia: s.handleCriarTransferencia,
		domain.IntentCriarParcelado:     s.handleCriarParcelado,
		domain.IntentCriarMeta:          s.handleCriarMeta,
		domain.IntentCriarOrcamento:     s.handleCriarOrcamento,
		domain.IntentConsultarSaldo:     s.handleConsultarSaldo,
		domain.IntentConsultarGastos:    s.handleConsultarGastos,
		domain.IntentConsultarCategoria: s.handleConsultarCategoria,
	}
	return s
}

// Execute runs one command through the state machine: permission check,
// dispatch, entity validation, domain validation, mutation, ledger + audit +
// invalidation. Validation problems come back as result variants, never as
// Go errors.
func (s *Service) Execute(ctx context.Context, cmd domain.ParsedCommand, fctx *domain.FinancialContext, userID uuid.UUID) domain.OperationResult {
	result := s.run(ctx, cmd, fctx, userID)

	s.appendAudit(userID, cmd, result)
	if s.conversations != nil && userID != uuid.Nil {
		s.conversations.Append(userID, domain.ConversationTurn{
			Intent:        cmd.Intent,
			UserText:      cmd.OriginalText,
			ResultMessage: result.Message,
			Success:       result.Status == domain.ResultSuccess,
			At:            s.now(),
		})
	}
	return result
}

func (s *Service) run(ctx context.Context, cmd domain.ParsedCommand, fctx *domain.FinancialContext, userID uuid.UUID) domain.OperationResult {
	// permission check comes strictly before dispatch: no store access and
	// no ledger entry on rejection
	if userID == uuid.Nil || fctx == nil {
		return domain.Failure("Você precisa estar autenticado para isso.")
	}
	if cmd.Intent.RequiresAccount() && len(fctx.Patrimony.Accounts) == 0 {
		return domain.Failure(
			"Você ainda não tem nenhuma conta cadastrada.",
			"Cadastre uma conta para começar a registrar movimentações.",
		)
	}

	handler, ok := s.handlers[cmd.Intent]
	if !ok {
		// capability gap, not missing user input
		log.Printf("[ERROR] executor: no handler for intent %q (user %s)", cmd.Intent, userID)
		return domain.Failure("Ainda não sei executar esse tipo de operação.")
	}

	return handler(ctx, cmd, fctx, userID)
}

// Rollback undoes a previously executed operation by performing the inverse
// store operation recorded in the ledger, then removes the entry. A second
// rollback with the same id reports ErrRollbackNotFound.
func (s *Service) Rollback(ctx context.Context, operationID string) error {
	entry, ok := s.ledger.get(operationID)
	if !ok {
		return ErrRollbackNotFound
	}

	var err error
	switch entry.Type {
	case OpTransaction:
		err = s.transactions.Delete(ctx, entry.Payload.(*domain.Transaction).ID)
	case OpInstallmentSeries:
		err = s.transactions.DeleteInstallmentSeries(ctx, entry.Payload.(*domain.InstallmentSeries).ID)
	case OpGoal:
		err = s.goals.Delete(ctx, entry.Payload.(*domain.Goal).ID)
	case OpBudget:
		err = s.budgets.Delete(ctx, entry.Payload.(*domain.Budget).ID)
	default:
		err = errors.New("unknown operation type " + string(entry.Type))
	}
	if err != nil {
		return err
	}

	s.ledger.remove(operationID)
	// the original mutation already invalidated; doing it again is harmless
	// and covers callers that raced a rebuild
	s.invalidator.Invalidate(entry.UserID)
	return nil
}

// EvictLedgerBefore drops ledger entries older than the cutoff. Driven by
// the janitor; rolled-forward operations older than this can no longer be
// undone.
func (s *Service) EvictLedgerBefore(cutoff time.Time) int {
	return s.ledger.evictBefore(cutoff)
}

// LedgerSize reports how many operations are currently undoable
func (s *Service) LedgerSize() int {
	return s.ledger.size()
}

// commit records the mutation in the ledger and invalidates the user's
// context; returns the generated operation id
func (s *Service) commit(userID uuid.UUID, opType OperationType, payload any) string {
	operationID := uuid.NewString()
	s.ledger.add(&LedgerEntry{
		OperationID: operationID,
		Type:        opType,
		UserID:      userID,
		Payload:     payload,
		CreatedAt:   s.now(),
	})
	s.invalidator.Invalidate(userID)
	return operationID
}

// appendAudit is log-and-continue: a failing audit sink never fails the
// user-visible operation
func (s *Service) appendAudit(userID uuid.UUID, cmd domain.ParsedCommand, result domain.OperationResult) {
	if s.auditor == nil {
		return
	}
	err := s.auditor.Append(&audit.Record{
		UserID:        userID,
		Intent:        cmd.Intent,
		OriginalText:  cmd.OriginalText,
		Success:       result.Status == domain.ResultSuccess,
		ResultMessage: result.Message,
		Timestamp:     s.now(),
	})
	if err != nil {
		log.Printf("[ERROR] executor: audit append failed for user %s: %v", userID, err)
	}
}
