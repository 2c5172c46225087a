package grpc

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	finpilotv1 "github.com/rafaelcoutinho/finpilot-backend/internal/adapter/grpc/finpilot/v1"
	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/contextbuilder"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/executor"
)

// Server implements the FinPilotService gRPC server
type Server struct {
	finpilotv1.UnimplementedFinPilotServiceServer

	ContextService  *contextbuilder.Service
	ExecutorService *executor.Service
}

// NewServer creates a new gRPC server instance
func NewServer(contextService *contextbuilder.Service, executorService *executor.Service) *Server {
	return &Server{
		ContextService:  contextService,
		ExecutorService: executorService,
	}
}

// BuildContext handles the BuildContext RPC
func (s *Server) BuildContext(ctx context.Context, req *finpilotv1.BuildContextRequest) (*finpilotv1.BuildContextResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	fctx, err := s.ContextService.BuildContext(ctx, userID)
	if err != nil {
		if errors.Is(err, contextbuilder.ErrStoreUnavailable) {
			return nil, status.Errorf(codes.Unavailable, "%s", err.Error())
		}
		return nil, status.Errorf(codes.Internal, "%s", err.Error())
	}

	return &finpilotv1.BuildContextResponse{
		Context: domainContextToProto(fctx),
	}, nil
}

// ExecuteCommand handles the ExecuteCommand RPC
func (s *Server) ExecuteCommand(ctx context.Context, req *finpilotv1.ExecuteCommandRequest) (*finpilotv1.ExecuteCommandResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	cmd, err := protoCommandToDomain(req)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "%s", err.Error())
	}

	// the command runs against the current snapshot; a failed context build
	// means the executor cannot check permissions or balances
	fctx, err := s.ContextService.BuildContext(ctx, userID)
	if err != nil {
		return nil, status.Errorf(codes.Unavailable, "context unavailable: %v", err)
	}

	result := s.ExecutorService.Execute(ctx, cmd, fctx, userID)

	// clarifications and domain errors are valid outcomes, not transport
	// failures: the caller reads the status field
	return &finpilotv1.ExecuteCommandResponse{
		Status:      string(result.Status),
		Message:     result.Message,
		Impact:      result.Impact,
		Suggestions: result.Suggestions,
		OperationId: result.OperationID,
	}, nil
}

// Rollback handles the Rollback RPC
func (s *Server) Rollback(ctx context.Context, req *finpilotv1.RollbackRequest) (*finpilotv1.RollbackResponse, error) {
	if req.OperationId == "" {
		return nil, status.Errorf(codes.InvalidArgument, "operation_id is required")
	}

	if err := s.ExecutorService.Rollback(ctx, req.OperationId); err != nil {
		if errors.Is(err, executor.ErrRollbackNotFound) {
			return nil, status.Errorf(codes.NotFound, "%s", err.Error())
		}
		return nil, status.Errorf(codes.Internal, "%s", err.Error())
	}

	return &finpilotv1.RollbackResponse{}, nil
}

// SearchRelevant handles the SearchRelevant RPC
func (s *Server) SearchRelevant(ctx context.Context, req *finpilotv1.SearchRelevantRequest) (*finpilotv1.SearchRelevantResponse, error) {
	userID, err := uuid.Parse(req.UserId)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid user_id format: %v", err)
	}

	data := s.ContextService.SearchRelevant(ctx, userID, req.Query)

	resp := &finpilotv1.SearchRelevantResponse{
		Transactions: make([]*finpilotv1.Transaction, 0, len(data.Transactions)),
		Accounts:     make([]*finpilotv1.Account, 0, len(data.Accounts)),
		Categories:   make([]*finpilotv1.Category, 0, len(data.Categories)),
		Goals:        make([]*finpilotv1.Goal, 0, len(data.Goals)),
		Budgets:      make([]*finpilotv1.Budget, 0, len(data.Budgets)),
	}
	for _, tx := range data.Transactions {
		resp.Transactions = append(resp.Transactions, domainTransactionToProto(tx))
	}
	for _, account := range data.Accounts {
		resp.Accounts = append(resp.Accounts, &finpilotv1.Account{
			Id:        account.ID.String(),
			Name:      account.Name,
			Type:      string(account.Type),
			Balance:   account.Balance.String(),
			IsDefault: account.IsDefault,
		})
	}
	for _, category := range data.Categories {
		resp.Categories = append(resp.Categories, &finpilotv1.Category{
			Id:          category.ID.String(),
			Name:        category.Name,
			Kind:        string(category.Kind),
			IsPreferred: category.IsPreferred,
		})
	}
	for _, goal := range data.Goals {
		resp.Goals = append(resp.Goals, domainGoalToProto(goal))
	}
	for _, budget := range data.Budgets {
		resp.Budgets = append(resp.Budgets, domainBudgetToProto(budget))
	}

	return resp, nil
}

// protoCommandToDomain converts the wire command into the domain form,
// parsing the decimal amount and optional date
func protoCommandToDomain(req *finpilotv1.ExecuteCommandRequest) (domain.ParsedCommand, error) {
	cmd := domain.ParsedCommand{
		Intent:       domain.Intent(req.Intent),
		OriginalText: req.OriginalText,
	}
	if req.Entities == nil {
		return cmd, nil
	}

	entities := domain.CommandEntities{
		Categoria:    req.Entities.Categoria,
		Conta:        req.Entities.Conta,
		ContaDestino: req.Entities.ContaDestino,
		Descricao:    req.Entities.Descricao,
		Parcelas:     int(req.Entities.Parcelas),
	}
	if req.Entities.Valor != "" {
		valor, err := decimal.NewFromString(req.Entities.Valor)
		if err != nil {
			return cmd, err
		}
		entities.Valor = &valor
	}
	if req.Entities.Data != nil {
		date := req.Entities.Data.AsTime()
		entities.Data = &date
	}
	cmd.Entities = entities

	return cmd, nil
}

func domainContextToProto(fctx *domain.FinancialContext) *finpilotv1.FinancialContext {
	proto := &finpilotv1.FinancialContext{
		UserId:  fctx.UserID.String(),
		BuiltAt: timestamppb.New(fctx.BuiltAt),
		Patrimony: &finpilotv1.Patrimony{
			TotalBalance:     fctx.Patrimony.TotalBalance.String(),
			ProjectedBalance: fctx.Patrimony.ProjectedBalance.String(),
		},
		Indicators: &finpilotv1.Indicators{
			MonthIncome:  fctx.Indicators.MonthIncome.String(),
			MonthExpense: fctx.Indicators.MonthExpense.String(),
			NetFlow:      fctx.Indicators.NetFlow.String(),
			Health: &finpilotv1.HealthScore{
				Score:           int32(fctx.Indicators.Health.Score),
				Level:           string(fctx.Indicators.Health.Level),
				Factors:         fctx.Indicators.Health.Factors,
				Recommendations: fctx.Indicators.Health.Recommendations,
			},
			MonthComparison: &finpilotv1.MonthComparison{
				CurrentIncome:    fctx.Indicators.MonthComparison.Current.Income.String(),
				CurrentExpense:   fctx.Indicators.MonthComparison.Current.Expense.String(),
				PreviousIncome:   fctx.Indicators.MonthComparison.Previous.Income.String(),
				PreviousExpense:  fctx.Indicators.MonthComparison.Previous.Expense.String(),
				IncomeChangePct:  fctx.Indicators.MonthComparison.IncomeChangePct,
				ExpenseChangePct: fctx.Indicators.MonthComparison.ExpenseChangePct,
				SavingsChangePct: fctx.Indicators.MonthComparison.SavingsChangePct,
			},
		},
		History: &finpilotv1.History{
			PreferredCategories: fctx.History.PreferredCategories,
			TopCategories:       fctx.History.Patterns.TopCategories,
		},
		Planning:     &finpilotv1.Planning{},
		Conversation: &finpilotv1.Conversation{},
	}

	for _, account := range fctx.Patrimony.Accounts {
		proto.Patrimony.Accounts = append(proto.Patrimony.Accounts, &finpilotv1.AccountBalance{
			AccountId: account.AccountID.String(),
			Name:      account.Name,
			Balance:   account.Balance.String(),
			IsDefault: account.IsDefault,
		})
	}
	for _, trend := range fctx.Indicators.Trends {
		proto.Indicators.Trends = append(proto.Indicators.Trends, &finpilotv1.TrendRecord{
			CategoryId:         trend.CategoryID.String(),
			CategoryName:       trend.CategoryName,
			MeanMonthlyAmount:  trend.MeanMonthlyAmount.String(),
			CurrentMonthAmount: trend.CurrentMonthAmount.String(),
			PercentDeviation:   trend.PercentDeviation,
			Classification:     string(trend.Classification),
		})
	}
	for _, tx := range fctx.History.RecentTransactions {
		proto.History.RecentTransactions = append(proto.History.RecentTransactions, domainTransactionToProto(tx))
	}
	for _, scheduled := range fctx.Planning.UpcomingScheduled {
		proto.Planning.UpcomingScheduled = append(proto.Planning.UpcomingScheduled, &finpilotv1.ScheduledTransaction{
			Id:          scheduled.ID.String(),
			Description: scheduled.Description,
			Type:        string(scheduled.Type),
			Amount:      scheduled.Amount.String(),
			DueDate:     timestamppb.New(scheduled.DueDate),
		})
	}
	for _, goal := range fctx.Planning.ActiveGoals {
		proto.Planning.ActiveGoals = append(proto.Planning.ActiveGoals, domainGoalToProto(goal))
	}
	for _, budget := range fctx.Planning.ActiveBudgets {
		proto.Planning.ActiveBudgets = append(proto.Planning.ActiveBudgets, domainBudgetToProto(budget))
	}
	for _, projection := range fctx.Planning.Projections {
		proto.Planning.Projections = append(proto.Planning.Projections, &finpilotv1.MonthProjection{
			Month:            timestamppb.New(projection.Month),
			ProjectedIncome:  projection.ProjectedIncome.String(),
			ProjectedExpense: projection.ProjectedExpense.String(),
			BudgetAtRisk:     projection.BudgetAtRisk,
			GoalsDue:         projection.GoalsDue.String(),
		})
	}
	for _, turn := range fctx.Conversation.Turns {
		proto.Conversation.Turns = append(proto.Conversation.Turns, &finpilotv1.ConversationTurn{
			Intent:        string(turn.Intent),
			UserText:      turn.UserText,
			ResultMessage: turn.ResultMessage,
			Success:       turn.Success,
			At:            timestamppb.New(turn.At),
		})
	}

	return proto
}

func domainTransactionToProto(tx *domain.Transaction) *finpilotv1.Transaction {
	proto := &finpilotv1.Transaction{
		Id:            tx.ID.String(),
		AccountId:     tx.AccountID.String(),
		CategoryId:    tx.CategoryID.String(),
		Type:          string(tx.Type),
		Amount:        tx.Amount.String(),
		Description:   tx.Description,
		CategoryName:  tx.CategoryName,
		Date:          timestamppb.New(tx.Date),
		InstallmentNo: int32(tx.InstallmentNo),
	}
	if tx.DestinationAccountID != nil {
		proto.DestinationAccountId = tx.DestinationAccountID.String()
	}
	if tx.SeriesID != nil {
		proto.SeriesId = tx.SeriesID.String()
	}

	return proto
}

func domainGoalToProto(goal *domain.Goal) *finpilotv1.Goal {
	return &finpilotv1.Goal{
		Id:           goal.ID.String(),
		Name:         goal.Name,
		TargetAmount: goal.TargetAmount.String(),
		SavedAmount:  goal.SavedAmount.String(),
		Deadline:     timestamppb.New(goal.Deadline),
	}
}

func domainBudgetToProto(budget *domain.Budget) *finpilotv1.Budget {
	return &finpilotv1.Budget{
		Id:           budget.ID.String(),
		CategoryId:   budget.CategoryID.String(),
		CategoryName: budget.CategoryName,
		Ceiling:      budget.Ceiling.String(),
		Month:        timestamppb.New(budget.Month),
	}
}
