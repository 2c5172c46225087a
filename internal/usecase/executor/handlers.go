package executor

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
	"github.com/rafaelcoutinho/finpilot-backend/internal/usecase/seeder"
)

const storeFailureMessage = "Não consegui falar com seus dados agora. Tente de novo em instantes."

func (s *Service) handleCriarReceita(ctx context.Context, cmd domain.ParsedCommand, fctx *domain.FinancialContext, userID uuid.UUID) domain.OperationResult {
	valor := cmd.Entities.Valor
	if valor == nil || !valor.GreaterThan(decimal.Zero) {
		return domain.Clarification(
			"Qual o valor da receita?",
			`Ex: "recebi 2500 de salário"`,
			`Ex: "entrou 300 de freela na conta"`,
		)
	}

	account := resolveAccount(fctx, cmd.Entities.Conta)
	category := s.resolveCategory(ctx, userID, cmd.Entities.Categoria, domain.CategoryKindReceita)

	tx := &domain.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AccountID:    account.AccountID,
		CategoryID:   category.id,
		CategoryName: category.name,
		Type:         domain.TransactionTypeReceita,
		Amount:       *valor,
		Description:  descriptionOr(cmd.Entities.Descricao, "Receita"),
		Date:         dateOr(cmd.Entities.Data, s.now()),
		CreatedAt:    s.now(),
	}
	if err := tx.Validate(); err != nil {
		return domain.Failure("Não consegui montar essa receita: " + err.Error())
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		log.Printf("[ERROR] executor: create income failed for user %s: %v", userID, err)
		return domain.Failure(storeFailureMessage)
	}

	result := domain.Success(
		fmt.Sprintf("Receita de %s registrada em %s.", formatBRL(*valor), category.name),
		fmt.Sprintf("Saldo de %s aumenta em %s.", account.Name, formatBRL(*valor)),
		tx,
	)
	result.OperationID = s.commit(userID, OpTransaction, tx)
	return result
}

func (s *Service) handleCriarDespesa(ctx context.Context, cmd domain.ParsedCommand, fctx *domain.FinancialContext, userID uuid.UUID) domain.OperationResult {
	valor := cmd.Entities.Valor
	if valor == nil || !valor.GreaterThan(decimal.Zero) {
		return domain.Clarification(
			"Qual o valor da despesa?",
			`Ex: "gastei 80 no mercado"`,
			`Ex: "paguei 120 de luz ontem"`,
		)
	}

	account := resolveAccount(fctx, cmd.Entities.Conta)
	// domain validation: an insufficient balance is surfaced with
	// alternatives, never silently allowed or silently blocked
	if account.Balance.LessThan(*valor) {
		return domain.Clarification(
			fmt.Sprintf("A conta %s tem %s, menos que os %s da despesa.",
				account.Name, formatBRL(account.Balance), formatBRL(*valor)),
			"Usar outra conta",
			"Registrar um valor menor",
			"Registrar mesmo assim",
		)
	}

	category := s.resolveCategory(ctx, userID, cmd.Entities.Categoria, domain.CategoryKindDespesa)

	tx := &domain.Transaction{
		ID:           uuid.New(),
		UserID:       userID,
		AccountID:    account.AccountID,
		CategoryID:   category.id,
		CategoryName: category.name,
		Type:         domain.TransactionTypeDespesa,
		Amount:       *valor,
		Description:  descriptionOr(cmd.Entities.Descricao, "Despesa"),
		Date:         dateOr(cmd.Entities.Data, s.now()),
		CreatedAt:    s.now(),
	}
	if err := tx.Validate(); err != nil {
		return domain.Failure("Não consegui montar essa despesa: " + err.Error())
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		log.Printf("[ERROR] executor: create expense failed for user %s: %v", userID, err)
		return domain.Failure(storeFailureMessage)
	}

	result := domain.Success(
		fmt.Sprintf("Despesa de %s registrada em %s.", formatBRL(*valor), category.name),
		fmt.Sprintf("Saldo de %s reduz em %s.", account.Name, formatBRL(*valor)),
		tx,
	)
	result.OperationID = s.commit(userID, OpTransaction, tx)
	return result
}

func (s *Service) handleCriarTransferencia(ctx context.Context, cmd domain.ParsedCommand, fctx *domain.FinancialContext, userID uuid.UUID) domain.OperationResult {
	valor := cmd.Entities.Valor
	if valor == nil || !valor.GreaterThan(decimal.Zero) {
		return domain.Clarification(
			"Qual o valor da transferência?",
			`Ex: "transfere 500 da corrente para a poupança"`,
		)
	}
	if cmd.Entities.ContaDestino == "" {
		return domain.Clarification(
			"Para qual conta devo transferir?",
			accountSuggestions(fctx)...,
		)
	}

	source := resolveAccount(fctx, cmd.Entities.Conta)
	destination := findAccount(fctx, cmd.Entities.ContaDestino)
	if destination == nil {
		return domain.Clarification(
			fmt.Sprintf("Não encontrei a conta %q.", cmd.Entities.ContaDestino),
			accountSuggestions(fctx)...,
		)
	}
	if destination.AccountID == source.AccountID {
		return domain.Clarification(
			"A conta de origem e a de destino são a mesma.",
			accountSuggestions(fctx)...,
		)
	}
	if source.Balance.LessThan(*valor) {
		return domain.Clarification(
			fmt.Sprintf("A conta %s tem %s, menos que os %s da transferência.",
				source.Name, formatBRL(source.Balance), formatBRL(*valor)),
			"Usar outra conta de origem",
			"Transferir um valor menor",
		)
	}

	destinationID := destination.AccountID
	tx := &domain.Transaction{
		ID:                   uuid.New(),
		UserID:               userID,
		AccountID:            source.AccountID,
		DestinationAccountID: &destinationID,
		Type:                 domain.TransactionTypeTransferencia,
		Amount:               *valor,
		Description:          descriptionOr(cmd.Entities.Descricao, "Transferência"),
		Date:                 dateOr(cmd.Entities.Data, s.now()),
		CreatedAt:            s.now(),
	}
	if err := tx.Validate(); err != nil {
		return domain.Failure("Não consegui montar essa transferência: " + err.Error())
	}
	if err := s.transactions.Create(ctx, tx); err != nil {
		log.Printf("[ERROR] executor: create transfer failed for user %s: %v", userID, err)
		return domain.Failure(storeFailureMessage)
	}

	result := domain.Success(
		fmt.Sprintf("Transferência de %s de %s para %s registrada.",
			formatBRL(*valor), source.Name, destination.Name),
		fmt.Sprintf("Saldo de %s reduz e o de %s aumenta em %s.",
			source.Name, destination.Name, formatBRL(*valor)),
		tx,
	)
	result.OperationID = s.commit(userID, OpTransaction, tx)
	return result
}

func (s *Service) handleCriarParcelado(ctx context.Context, cmd domain.ParsedCommand, fctx *domain.FinancialContext, userID uuid.UUID) domain.OperationResult {
	valor := cmd.Entities.Valor
	if valor == nil || !valor.GreaterThan(decimal.Zero) {
		return domain.Clarification(
			"Qual o valor total da compra parcelada?",
			`Ex: "comprei uma TV de 1200 em 6 vezes"`,
		)
	}
	if cmd.Entities.Parcelas < 2 {
		return domain.Clarification(
			"Em quantas parcelas?",
			`Ex: "em 6 vezes"`,
			`Ex: "parcelado em 10x"`,
		)
	}

	account := resolveAccount(fctx, cmd.Entities.Conta)
	category := s.resolveCategory(ctx, userID, cmd.Entities.Categoria, domain.CategoryKindDespesa)

	amounts := splitInstallments(*valor, cmd.Entities.Parcelas)
	firstDue := dateOr(cmd.Entities.Data, s.now())
	items := make([]domain.InstallmentItem, len(amounts))
	for i, amount := range amounts {
		items[i] = domain.InstallmentItem{
			No:      i + 1,
			Amount:  amount,
			DueDate: firstDue.AddDate(0, i, 0),
		}
	}

	series := &domain.InstallmentSeries{
		ID:          uuid.New(),
		UserID:      userID,
		AccountID:   account.AccountID,
		CategoryID:  category.id,
		Description: descriptionOr(cmd.Entities.Descricao, "Compra parcelada"),
		Total:       *valor,
		Items:       items,
		CreatedAt:   s.now(),
	}
	if err := series.Validate(); err != nil {
		return domain.Failure("Não consegui montar o parcelamento: " + err.Error())
	}
	// one logical write: the series and its linked records go together so a
	// later rollback removes all of it
	if err := s.transactions.CreateInstallmentSeries(ctx, series); err != nil {
		log.Printf("[ERROR] executor: create installment series failed for user %s: %v", userID, err)
		return domain.Failure(storeFailureMessage)
	}

	result := domain.Success(
		fmt.Sprintf("Compra parcelada de %s registrada: %dx de %s.",
			formatBRL(*valor), cmd.Entities.Parcelas, formatBRL(amounts[0])),
		fmt.Sprintf("Parcela mensal de %s em %s até %s.",
			formatBRL(amounts[0]), category.name,
			items[len(items)-1].DueDate.Format("01/2006")),
		series,
	)
	result.OperationID = s.commit(userID, OpInstallmentSeries, series)
	return result
}

func (s *Service) handleCriarMeta(ctx context.Context, cmd domain.ParsedCommand, _ *domain.FinancialContext, userID uuid.UUID) domain.OperationResult {
	valor := cmd.Entities.Valor
	if valor == nil || !valor.GreaterThan(decimal.Zero) {
		return domain.Clarification(
			"Qual o valor da meta?",
			`Ex: "quero juntar 5000 até dezembro"`,
		)
	}

	goal := &domain.Goal{
		ID:           uuid.New(),
		UserID:       userID,
		Name:         descriptionOr(cmd.Entities.Descricao, "Meta de economia"),
		TargetAmount: *valor,
		SavedAmount:  decimal.Zero,
		Deadline:     dateOr(cmd.Entities.Data, s.now().AddDate(1, 0, 0)),
		Active:       true,
	}
	if err := goal.Validate(); err != nil {
		return domain.Failure("Não consegui montar essa meta: " + err.Error())
	}
	if err := s.goals.Create(ctx, goal); err != nil {
		log.Printf("[ERROR] executor: create goal failed for user %s: %v", userID, err)
		return domain.Failure(storeFailureMessage)
	}

	result := domain.Success(
		fmt.Sprintf("Meta %q de %s criada.", goal.Name, formatBRL(*valor)),
		fmt.Sprintf("Prazo: %s.", goal.Deadline.Format("02/01/2006")),
		goal,
	)
	result.OperationID = s.commit(userID, OpGoal, goal)
	return result
}

func (s *Service) handleCriarOrcamento(ctx context.Context, cmd domain.ParsedCommand, _ *domain.FinancialContext, userID uuid.UUID) domain.OperationResult {
	valor := cmd.Entities.Valor
	if valor == nil || !valor.GreaterThan(decimal.Zero) {
		return domain.Clarification(
			"Qual o limite do orçamento?",
			`Ex: "limite de 600 por mês para mercado"`,
		)
	}
	if cmd.Entities.Categoria == "" {
		return domain.Clarification(
			"Para qual categoria é esse orçamento?",
			`Ex: "orçamento de 600 para mercado"`,
		)
	}

	category := s.resolveCategory(ctx, userID, cmd.Entities.Categoria, domain.CategoryKindDespesa)

	budget := &domain.Budget{
		ID:           uuid.New(),
		UserID:       userID,
		CategoryID:   category.id,
		CategoryName: category.name,
		Ceiling:      *valor,
		Month:        startOfMonth(s.now()),
		Active:       true,
	}
	if err := budget.Validate(); err != nil {
		return domain.Failure("Não consegui montar esse orçamento: " + err.Error())
	}
	if err := s.budgets.Create(ctx, budget); err != nil {
		log.Printf("[ERROR] executor: create budget failed for user %s: %v", userID, err)
		return domain.Failure(storeFailureMessage)
	}

	result := domain.Success(
		fmt.Sprintf("Orçamento de %s por mês para %s criado.", formatBRL(*valor), category.name),
		fmt.Sprintf("Você será avisado quando os gastos em %s se aproximarem do limite.", category.name),
		budget,
	)
	result.OperationID = s.commit(userID, OpBudget, budget)
	return result
}

func (s *Service) handleConsultarSaldo(_ context.Context, _ domain.ParsedCommand, fctx *domain.FinancialContext, _ uuid.UUID) domain.OperationResult {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Seu saldo total é %s.", formatBRL(fctx.Patrimony.TotalBalance))
	for _, account := range fctx.Patrimony.Accounts {
		fmt.Fprintf(&sb, "\n• %s: %s", account.Name, formatBRL(account.Balance))
	}
	return domain.Success(sb.String(), "", fctx.Patrimony)
}

func (s *Service) handleConsultarGastos(_ context.Context, _ domain.ParsedCommand, fctx *domain.FinancialContext, _ uuid.UUID) domain.OperationResult {
	indicators := fctx.Indicators
	message := fmt.Sprintf("Você gastou %s este mês e recebeu %s (fluxo de %s).",
		formatBRL(indicators.MonthExpense), formatBRL(indicators.MonthIncome), formatBRL(indicators.NetFlow))

	if len(indicators.Trends) > 0 {
		top := indicators.Trends[0]
		if top.Classification == domain.TrendCrescente {
			message += fmt.Sprintf(" Atenção com %s: %.0f%% acima da média.", top.CategoryName, top.PercentDeviation)
		}
	}
	return domain.Success(message, "", indicators)
}

func (s *Service) handleConsultarCategoria(_ context.Context, cmd domain.ParsedCommand, fctx *domain.FinancialContext, _ uuid.UUID) domain.OperationResult {
	if cmd.Entities.Categoria == "" {
		return domain.Clarification(
			"Sobre qual categoria você quer saber?",
			`Ex: "quanto gastei com mercado?"`,
		)
	}

	needle := strings.ToLower(cmd.Entities.Categoria)
	for _, trend := range fctx.Indicators.Trends {
		if strings.Contains(strings.ToLower(trend.CategoryName), needle) {
			return domain.Success(
				fmt.Sprintf("Em %s você gastou %s este mês; sua média é %s (%s).",
					trend.CategoryName, formatBRL(trend.CurrentMonthAmount),
					formatBRL(trend.MeanMonthlyAmount), trend.Classification),
				"",
				trend,
			)
		}
	}
	for _, pattern := range fctx.History.Patterns.PerCategory {
		if strings.Contains(strings.ToLower(pattern.CategoryName), needle) {
			return domain.Success(
				fmt.Sprintf("Em %s seu gasto médio é %s por compra.",
					pattern.CategoryName, formatBRL(pattern.MeanAmount)),
				"",
				pattern,
			)
		}
	}
	return domain.Success(
		fmt.Sprintf("Não encontrei movimentações recentes em %q.", cmd.Entities.Categoria),
		"",
		nil,
	)
}

// resolvedCategory is the outcome of category default resolution
type resolvedCategory struct {
	id   uuid.UUID
	name string
}

// resolveCategory applies the default-resolution order: explicit entity
// match, then the user's preferred category, then the first store-returned
// category of the right kind, then the seeded fallback. The order matters:
// it decides where quick-entry transactions land by default.
func (s *Service) resolveCategory(ctx context.Context, userID uuid.UUID, hint string, kind domain.CategoryKind) resolvedCategory {
	fallback := resolvedCategory{id: seeder.FallbackExpenseCategoryID, name: "Outros"}
	if kind == domain.CategoryKindReceita {
		fallback = resolvedCategory{id: seeder.FallbackIncomeCategoryID, name: "Outras receitas"}
	}

	categories, err := s.categories.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("[WARN] executor: category lookup failed for user %s: %v", userID, err)
		return fallback
	}

	if hint != "" {
		needle := strings.ToLower(hint)
		for _, category := range categories {
			if category.Kind == kind && strings.Contains(strings.ToLower(category.Name), needle) {
				return resolvedCategory{id: category.ID, name: category.Name}
			}
		}
	}
	for _, category := range categories {
		if category.Kind == kind && category.IsPreferred {
			return resolvedCategory{id: category.ID, name: category.Name}
		}
	}
	for _, category := range categories {
		if category.Kind == kind && category.UserID == userID {
			return resolvedCategory{id: category.ID, name: category.Name}
		}
	}
	return fallback
}

// resolveAccount picks the target account from the context: named match
// first, then the default account, then the first one. Callers only reach
// this after the permission check guaranteed at least one account.
func resolveAccount(fctx *domain.FinancialContext, hint string) domain.AccountBalance {
	if hint != "" {
		if found := findAccount(fctx, hint); found != nil {
			return *found
		}
	}
	for _, account := range fctx.Patrimony.Accounts {
		if account.IsDefault {
			return account
		}
	}
	return fctx.Patrimony.Accounts[0]
}

func findAccount(fctx *domain.FinancialContext, name string) *domain.AccountBalance {
	needle := strings.ToLower(name)
	for i, account := range fctx.Patrimony.Accounts {
		if strings.Contains(strings.ToLower(account.Name), needle) {
			return &fctx.Patrimony.Accounts[i]
		}
	}
	return nil
}

func accountSuggestions(fctx *domain.FinancialContext) []string {
	suggestions := make([]string, 0, len(fctx.Patrimony.Accounts))
	for _, account := range fctx.Patrimony.Accounts {
		suggestions = append(suggestions, account.Name)
	}
	return suggestions
}

// splitInstallments divides total into n cent-rounded parts; the last
// installment absorbs the remainder so the parts always sum to total
// exactly.
func splitInstallments(total decimal.Decimal, n int) []decimal.Decimal {
	base := total.Div(decimal.NewFromInt(int64(n))).RoundDown(2)
	amounts := make([]decimal.Decimal, n)
	running := decimal.Zero
	for i := 0; i < n-1; i++ {
		amounts[i] = base
		running = running.Add(base)
	}
	amounts[n-1] = total.Sub(running)
	return amounts
}

// formatBRL renders a decimal as Brazilian currency, e.g. R$200,00
func formatBRL(v decimal.Decimal) string {
	return "R$" + strings.ReplaceAll(v.StringFixed(2), ".", ",")
}

func descriptionOr(description, fallback string) string {
	if strings.TrimSpace(description) == "" {
		return fallback
	}
	return description
}

func dateOr(date *time.Time, fallback time.Time) time.Time {
	if date != nil {
		return *date
	}
	return fallback
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
