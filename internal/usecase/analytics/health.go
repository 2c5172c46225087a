// Package analytics holds the pure derivation functions of the copilot:
// health scoring, trend detection, month comparison, short-horizon projection
// and spending-pattern detection. Everything here is deterministic and
// side-effect free; callers supply the history windows.
package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/rafaelcoutinho/finpilot-backend/internal/domain"
)

const (
	baseScore              = 50
	positiveBalanceBonus   = 20
	negativeBalancePenalty = 30
	reserveBonus           = 15

	// reserve threshold = reserveMonths x mean monthly expense
	reserveMonths = 6
)

// ComputeHealthScore derives a 0-100 score from the patrimony section.
// reserveThreshold is the emergency-reserve target (see ReserveThreshold);
// the score is monotonic in total balance for a fixed threshold.
func ComputeHealthScore(patrimony domain.Patrimony, reserveThreshold decimal.Decimal) domain.HealthScore {
	score := baseScore
	var factors []string
	var recommendations []string

	if patrimony.TotalBalance.GreaterThan(decimal.Zero) {
		score += positiveBalanceBonus
		factors = append(factors, "Saldo total positivo")
	} else {
		score -= negativeBalancePenalty
		factors = append(factors, "Saldo total negativo ou zerado")
		recommendations = append(recommendations, "Reduza despesas ate o saldo voltar a ficar positivo")
	}

	if patrimony.TotalBalance.GreaterThan(reserveThreshold) {
		score += reserveBonus
		factors = append(factors, "Saldo acima da reserva de emergencia")
	} else {
		factors = append(factors, "Saldo abaixo da reserva de emergencia")
		recommendations = append(recommendations, "Construa uma reserva equivalente a 6 meses de despesas")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return domain.HealthScore{
		Score:           score,
		Level:           healthLevel(score),
		Factors:         factors,
		Recommendations: recommendations,
	}
}

func healthLevel(score int) domain.HealthLevel {
	switch {
	case score >= 80:
		return domain.HealthExcelente
	case score >= 60:
		return domain.HealthBoa
	case score >= 40:
		return domain.HealthModerada
	default:
		return domain.HealthPreocupante
	}
}

// ReserveThreshold returns the emergency-reserve target for the given
// history: six times the mean monthly expense. Zero when there is no
// expense history.
func ReserveThreshold(history []*domain.Transaction) decimal.Decimal {
	totals := monthlyTotals(history)
	if len(totals) == 0 {
		return decimal.Zero
	}

	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t.Totals.Expense)
	}
	mean := sum.Div(decimal.NewFromInt(int64(len(totals))))
	return mean.Mul(decimal.NewFromInt(reserveMonths))
}
